package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/ergast"
	"github.com/bcdxn/f1cal/internal/i18n"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

/* View Helper Functions
------------------------------------------------------------------------------------------------- */

func view(m Model) string {
	if m.err != nil {
		return s.Error.Render(m.locale.T(i18n.MsgError, m.err.Error()))
	}
	if m.loading {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.locale.T(i18n.MsgLoading))
	}

	var body, help string
	switch {
	case m.detail:
		body, help = detailView(m), i18n.MsgHelpDetail
	case m.tab == tabCalendar:
		body, help = calendarView(m), i18n.MsgHelpCalendar
	case m.tab == tabDrivers:
		body, help = standingsView(m, m.drivers, len(m.driverStandings.Standings)), i18n.MsgHelpTable
	default:
		body, help = standingsView(m, m.constructors, len(m.constructorStandings.Standings)), i18n.MsgHelpTable
	}

	parts := []string{titleView(m), tabsView(m)}
	if banner := liveBannerView(m); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, body, s.Help.Render(m.locale.T(help)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func titleView(m Model) string {
	season := m.season
	if len(m.races) > 0 {
		season = m.races[0].Season
	}
	return s.TitleBar.Width(m.viewWidth()).Render("F1 · " + m.locale.T(i18n.MsgSeason, season))
}

func tabsView(m Model) string {
	labels := [tabCount]string{
		m.locale.T(i18n.MsgCalendar),
		m.locale.T(i18n.MsgDrivers),
		m.locale.T(i18n.MsgConstructors),
	}
	tabs := make([]string, 0, len(labels))
	for i, label := range labels {
		style := s.Tab
		if tab(i) == m.tab {
			style = s.ActiveTab
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, label)))
	}
	return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// liveBannerView shows the live timing snapshot, but only while a race weekend is running.
func liveBannerView(m Model) string {
	if m.live == nil || !m.weekendLive() {
		return ""
	}
	text := m.locale.T(i18n.MsgLiveSession, m.live.MeetingName, m.live.Name)
	if m.live.TotalLaps > 0 {
		text += " · " + m.locale.T(i18n.MsgLap, m.live.CurrentLap, m.live.TotalLaps)
	}
	if flag := trackFlag(m.live.TrackStatus); flag != "" {
		text += " " + flag
	}
	return s.LiveBanner.Width(m.viewWidth()).Render(text)
}

func calendarView(m Model) string {
	if len(m.races) == 0 {
		return s.Subtle.Render(m.locale.T(i18n.MsgNoRaces))
	}
	parts := make([]string, 0, len(m.races)+1)
	if cd := countdownView(m); cd != "" {
		parts = append(parts, cd)
	}
	first, last := m.visibleRaces()
	for i := first; i < last; i++ {
		parts = append(parts, cardView(m, m.races[i], i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func countdownView(m Model) string {
	next, rem, ok := m.countdown()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s: %s %s  %s",
		m.locale.T(i18n.MsgNextRace),
		i18n.Flag(next.Circuit.Location.Country),
		next.Name,
		s.Countdown.Render(m.locale.Countdown(rem)),
	)
}

func cardView(m Model, r domain.Race, selected bool) string {
	country := r.Circuit.Location.Country
	c := m.resolver.Classify(r)

	name := r.Name
	if r.IsSprintWeekend() {
		name += s.Subtle.Render(" · " + m.locale.T(i18n.MsgSprintWeekend))
	}
	dates := s.Subtle.Render(m.locale.Status(c))
	if w := m.resolver.Window(r); w != nil {
		dates = m.locale.DateRange(w)
	}
	badge := badgeStyle(c).Render(m.locale.Status(racewindow.Classification{Status: c.Status}))

	style := s.Card
	if selected {
		style = s.SelectedCard
	}
	return style.Width(m.viewWidth() - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  %s %s", s.Bold.Render(m.locale.Round(r.Round)), i18n.Flag(country), m.locale.Country(country)),
		name,
		dates+"  "+badge,
	))
}

func detailView(m Model) string {
	r, ok := m.selected()
	if !ok {
		return ""
	}
	loc := r.Circuit.Location
	lines := []string{
		s.Bold.Render(fmt.Sprintf("%s %s", i18n.Flag(loc.Country), r.Name)),
		fmt.Sprintf("%s · %s", m.locale.Round(r.Round), strings.Join(nonEmpty(r.Circuit.Name, loc.Locality, m.locale.Country(loc.Country)), ", ")),
	}
	if start, ok := r.RaceSession().Start(); ok {
		lines = append(lines, s.Subtle.Render(m.locale.Relative(start, m.resolver.Now())))
	}
	if r.IsSprintWeekend() {
		lines = append(lines, s.Yellow.Render(m.locale.T(i18n.MsgSprintWeekend)))
	}
	lines = append(lines, "")
	for _, sess := range r.Sessions() {
		line := fmt.Sprintf("%-22s %s", m.locale.SessionName(sess.Kind), m.locale.SessionTime(sess))
		if m.resolver.SessionLive(sess) {
			line += "  " + s.BadgeLive.Render(m.locale.T(i18n.MsgLive))
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", s.Bold.Render(m.locale.T(i18n.MsgResults)), resultsView(m, r))
	return s.Dialog.Width(m.viewWidth() - 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// resultsView renders the classification of a past race; races that are not over never request it.
func resultsView(m Model, r domain.Race) string {
	if m.resolver.Classify(r).Status != racewindow.StatusPast {
		return s.Subtle.Render(m.locale.T(i18n.MsgResultsLater))
	}
	st, ok := m.results[r.Round]
	switch {
	case !ok || st.loading:
		return fmt.Sprintf("%s %s", m.spinner.View(), m.locale.T(i18n.MsgLoading))
	case errors.Is(st.err, ergast.ErrNoResults):
		return s.Subtle.Render(m.locale.T(i18n.MsgNoResults))
	case st.err != nil:
		return s.Error.Render(m.locale.T(i18n.MsgError, st.err.Error()))
	}
	return newResultsTable(m.locale, st.result).View()
}

func standingsView(m Model, t table.Model, rows int) string {
	if rows == 0 {
		return s.Subtle.Render(m.locale.T(i18n.MsgNoResults))
	}
	return t.View()
}

func badgeStyle(c racewindow.Classification) lipgloss.Style {
	switch {
	case c.TBA:
		return s.BadgeTBA
	case c.Status == racewindow.StatusPast:
		return s.BadgePast
	case c.Status == racewindow.StatusLive:
		return s.BadgeLive
	default:
		return s.BadgeUpcoming
	}
}

func trackFlag(status domain.TrackStatus) string {
	switch status {
	case domain.TrackStatusAllClear:
		return "🟩"
	case domain.TrackStatusYellow:
		return "🟨"
	case domain.TrackStatusSCDeployed:
		return "🚨 SC"
	case domain.TrackStatusVSCDeployed, domain.TrackStatusVSCEnding:
		return "🚨 VSC"
	case domain.TrackStatusRed:
		return "🟥"
	}
	return ""
}

// visibleRaces returns the range of race cards that fit on screen around the cursor.
func (m Model) visibleRaces() (int, int) {
	if m.height == 0 {
		return 0, len(m.races)
	}
	// every card takes three lines plus its border
	n := max((m.height-12)/5, 1)
	first := max(m.cursor-n/2, 0)
	last := min(first+n, len(m.races))
	first = max(last-n, 0)
	return first, last
}

func (m Model) viewWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
