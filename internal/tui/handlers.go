package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/ergast"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

/* Tea Message Handlers
------------------------------------------------------------------------------------------------- */

func handleKeyMsg(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.logger.Debug("received quit tea message")
		return m, tea.Quit
	}
	if m.loading || m.err != nil {
		return m, nil
	}
	if m.detail {
		if msg.String() != "esc" {
			return m, nil
		}
		m.detail = false
		cmd := m.restartCountdown()
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		return switchTab(m, (m.tab+1)%tabCount)
	case "shift+tab":
		return switchTab(m, (m.tab+tabCount-1)%tabCount)
	case "1":
		return switchTab(m, tabCalendar)
	case "2":
		return switchTab(m, tabDrivers)
	case "3":
		return switchTab(m, tabConstructors)
	}

	var cmd tea.Cmd
	switch m.tab {
	case tabCalendar:
		return handleCalendarKey(m, msg)
	case tabDrivers:
		m.drivers, cmd = m.drivers.Update(msg)
	case tabConstructors:
		m.constructors, cmd = m.constructors.Update(msg)
	}
	return m, cmd
}

func handleCalendarKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.races)-1 {
			m.cursor++
		}
	case "enter":
		return openDetail(m)
	}
	return m, nil
}

func handleWindowSizeMsg(m Model, msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := s.Doc.GetFrameSize()
	m.width = msg.Width - h
	m.height = msg.Height - v
	m.drivers = m.drivers.WithPageSize(m.pageSize())
	m.constructors = m.constructors.WithPageSize(m.pageSize())
	return m, nil
}

func handleLoadedMsg(m Model, msg LoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.races = msg.Races
	m.driverStandings = msg.Drivers
	m.constructorStandings = msg.Constructors
	m.drivers = newDriversTable(m.locale, msg.Drivers).WithPageSize(m.pageSize())
	m.constructors = newConstructorsTable(m.locale, msg.Constructors).WithPageSize(m.pageSize())
	m.logger.Debug("loaded season", "season", m.season, "races", len(msg.Races))
	// start on the race that is next up
	if next, ok := m.resolver.NextRace(m.races); ok {
		for i, r := range m.races {
			if r.Round == next.Round {
				m.cursor = i
			}
		}
	}
	cmd := m.restartCountdown()
	return m, cmd
}

func handleErrMsg(m Model, msg ErrMsg) (tea.Model, tea.Cmd) {
	m.logger.Error("unable to load season", "season", m.season, "err", msg.Err)
	m.loading = false
	m.err = msg.Err
	return m, nil
}

func handleTickMsg(m Model, msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.tab != tabCalendar || m.detail {
		return m, nil
	}
	if _, _, ok := m.countdown(); !ok {
		return m, nil
	}
	return m, tickCmd(m.tickGen)
}

func handleResultsMsg(m Model, msg ResultsMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.Err, ergast.ErrNoResults) {
		// not classified yet; the next visit asks again
		m.results = withResults(m.results, msg.Round, resultsState{err: msg.Err, retry: true})
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Error("unable to load results", "round", msg.Round, "err", msg.Err)
	}
	m.results = withResults(m.results, msg.Round, resultsState{result: msg.Result, err: msg.Err})
	return m, nil
}

func handleLiveSessionMsg(m Model, msg LiveSessionMsg) (tea.Model, tea.Cmd) {
	live := domain.LiveSession(msg)
	m.live = &live
	return m, nil
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

// switchTab activates a tab. Every switch invalidates the running countdown; it is re-armed only
// when the calendar is shown again.
func switchTab(m Model, t tab) (tea.Model, tea.Cmd) {
	if t == m.tab {
		return m, nil
	}
	m.tab = t
	cmd := m.restartCountdown()
	return m, cmd
}

// restartCountdown drops any pending tick and schedules a new one when the calendar is shown and
// the next race is still in the future.
func (m *Model) restartCountdown() tea.Cmd {
	m.tickGen++
	if m.tab != tabCalendar || m.detail {
		return nil
	}
	if _, _, ok := m.countdown(); !ok {
		return nil
	}
	return tickCmd(m.tickGen)
}

// openDetail shows the dialog of the selected race, requesting its results once it is over.
func openDetail(m Model) (tea.Model, tea.Cmd) {
	r, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.detail = true
	// the dialog hides the countdown
	m.restartCountdown()
	if m.resolver.Classify(r).Status != racewindow.StatusPast {
		return m, nil
	}
	if st, requested := m.results[r.Round]; requested && !st.retry {
		return m, nil
	}
	m.results = withResults(m.results, r.Round, resultsState{loading: true})
	return m, tea.Batch(resultsCmd(m.ctx, m.source, r.Season, r.Round), m.spinner.Tick)
}

// countdown returns the next race and the time left until its start.
func (m Model) countdown() (domain.Race, racewindow.Remaining, bool) {
	next, ok := m.resolver.NextRace(m.races)
	if !ok {
		return domain.Race{}, racewindow.Remaining{}, false
	}
	start, ok := next.RaceSession().Start()
	if !ok {
		return domain.Race{}, racewindow.Remaining{}, false
	}
	rem, ok := m.resolver.Remaining(start)
	return next, rem, ok
}

// weekendLive reports whether any race weekend of the season is running right now. The weekend
// window ends when the race starts, so a running session also counts.
func (m Model) weekendLive() bool {
	for _, r := range m.races {
		if m.resolver.Classify(r).Status == racewindow.StatusLive {
			return true
		}
		for _, sess := range r.Sessions() {
			if m.resolver.SessionLive(sess) {
				return true
			}
		}
	}
	return false
}

func (m Model) pageSize() int {
	if m.height == 0 {
		return 20
	}
	return max(m.height-12, 5)
}

func withResults(results map[int]resultsState, round int, state resultsState) map[int]resultsState {
	next := make(map[int]resultsState, len(results)+1)
	for k, v := range results {
		next[k] = v
	}
	next[round] = state
	return next
}
