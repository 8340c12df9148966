package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/bcdxn/f1cal/internal/calendar"
	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/ergast"
	"github.com/bcdxn/f1cal/internal/i18n"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

// Calendar handles /calendar.ics
func (s *Server) Calendar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	races, err := s.source.Schedule(r.Context(), s.season)
	if err != nil {
		s.logger.Error("unable to load schedule", "season", s.season, "err", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	l := s.localeFor(r)
	name := "F1 " + s.season
	if len(races) > 0 {
		name = "F1 " + races[0].Season
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	s.addExpireHeaders(w)
	if err := calendar.Write(w, races, calendar.WithName(name), calendar.WithLocale(l)); err != nil {
		s.logger.Error("unable to write calendar", "err", err)
	}
}

// Races handles /api/races
func (s *Server) Races(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	races, err := s.source.Schedule(r.Context(), s.season)
	if err != nil {
		s.logger.Error("unable to load schedule", "season", s.season, "err", err)
		writeError(w, http.StatusBadGateway, "unable to load schedule")
		return
	}
	l := s.localeFor(r)
	body := make([]raceJSON, 0, len(races))
	for _, race := range races {
		body = append(body, s.toRaceJSON(l, race))
	}
	s.addExpireHeaders(w)
	writeJSON(w, http.StatusOK, body)
}

// Results handles /api/races/:round/results
//
// Results are only requested upstream once the race weekend is over.
func (s *Server) Results(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	round, err := strconv.Atoi(ps.ByName("round"))
	if err != nil || round < 1 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid round %q", ps.ByName("round")))
		return
	}
	races, err := s.source.Schedule(r.Context(), s.season)
	if err != nil {
		s.logger.Error("unable to load schedule", "season", s.season, "err", err)
		writeError(w, http.StatusBadGateway, "unable to load schedule")
		return
	}
	race, ok := findRound(races, round)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("round %d is not scheduled", round))
		return
	}
	if c := s.resolver.Classify(race); c.Status != racewindow.StatusPast {
		writeError(w, http.StatusConflict, fmt.Sprintf("round %d is %s", round, c.Status))
		return
	}

	result, err := s.source.Results(r.Context(), race.Season, round)
	switch {
	case errors.Is(err, ergast.ErrNoResults):
		writeError(w, http.StatusNotFound, fmt.Sprintf("no results for round %d", round))
		return
	case err != nil:
		s.logger.Error("unable to load results", "season", race.Season, "round", round, "err", err)
		writeError(w, http.StatusBadGateway, "unable to load results")
		return
	}

	l := s.localeFor(r)
	body := resultsJSON{Race: s.toRaceJSON(l, race), Results: make([]resultJSON, 0, len(result.Results))}
	for _, res := range result.Results {
		body.Results = append(body.Results, toResultJSON(l, res))
	}
	s.addExpireHeaders(w)
	writeJSON(w, http.StatusOK, body)
}

func findRound(races []domain.Race, round int) (domain.Race, bool) {
	for _, r := range races {
		if r.Round == round {
			return r, true
		}
	}
	return domain.Race{}, false
}

/* Response Types
------------------------------------------------------------------------------------------------- */

type raceJSON struct {
	Season      string            `json:"season"`
	Round       int               `json:"round"`
	Label       string            `json:"label"`
	Name        string            `json:"name"`
	URL         string            `json:"url,omitempty"`
	Circuit     string            `json:"circuit"`
	Locality    string            `json:"locality"`
	Country     string            `json:"country"`
	CountryName string            `json:"country_name"`
	Flag        string            `json:"flag"`
	Sprint      bool              `json:"sprint"`
	Window      *windowJSON       `json:"window"`
	Dates       string            `json:"dates"`
	Status      racewindow.Status `json:"status"`
	StatusLabel string            `json:"status_label"`
	TBA         bool              `json:"tba"`
	Sessions    []sessionJSON     `json:"sessions"`
}

type windowJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type sessionJSON struct {
	Kind  domain.SessionKind `json:"kind"`
	Name  string             `json:"name"`
	Start *time.Time         `json:"start"`
	Timed bool               `json:"timed"`
	Local string             `json:"local"`
	Live  bool               `json:"live"`
}

type resultsJSON struct {
	Race    raceJSON     `json:"race"`
	Results []resultJSON `json:"results"`
}

type resultJSON struct {
	Position    string  `json:"position"`
	Driver      string  `json:"driver"`
	Code        string  `json:"code,omitempty"`
	Nationality string  `json:"nationality"`
	Constructor string  `json:"constructor"`
	Grid        int     `json:"grid"`
	Laps        int     `json:"laps"`
	Time        string  `json:"time,omitempty"`
	Status      string  `json:"status"`
	Points      float64 `json:"points"`
	FastestLap  bool    `json:"fastest_lap"`
}

func (s *Server) toRaceJSON(l i18n.Locale, r domain.Race) raceJSON {
	country := r.Circuit.Location.Country
	c := s.resolver.Classify(r)
	rj := raceJSON{
		Season:      r.Season,
		Round:       r.Round,
		Label:       l.Round(r.Round),
		Name:        r.Name,
		URL:         r.URL,
		Circuit:     r.Circuit.Name,
		Locality:    r.Circuit.Location.Locality,
		Country:     country,
		CountryName: l.Country(country),
		Flag:        i18n.Flag(country),
		Sprint:      r.IsSprintWeekend(),
		Status:      c.Status,
		StatusLabel: l.Status(c),
		TBA:         c.TBA,
		Dates:       l.Status(c),
		Sessions:    make([]sessionJSON, 0, 5),
	}
	if w := s.resolver.Window(r); w != nil {
		rj.Window = &windowJSON{Start: w.Start, End: w.End}
		rj.Dates = l.DateRange(w)
	}
	for _, sess := range r.Sessions() {
		sj := sessionJSON{
			Kind:  sess.Kind,
			Name:  l.SessionName(sess.Kind),
			Timed: sess.HasTime(),
			Local: l.SessionTime(sess),
			Live:  s.resolver.SessionLive(sess),
		}
		if start, ok := sess.Start(); ok {
			sj.Start = &start
		}
		rj.Sessions = append(rj.Sessions, sj)
	}
	return rj
}

func toResultJSON(l i18n.Locale, r domain.Result) resultJSON {
	return resultJSON{
		Position:    position(r),
		Driver:      r.Driver.Name(),
		Code:        r.Driver.Code,
		Nationality: l.Nationality(r.Driver.Nationality),
		Constructor: r.Constructor.Name,
		Grid:        r.Grid,
		Laps:        r.Laps,
		Time:        r.Time,
		Status:      r.Status,
		Points:      r.Points,
		FastestLap:  r.FastestLapRank == 1,
	}
}

func position(r domain.Result) string {
	if r.PositionText != "" {
		return r.PositionText
	}
	return strconv.Itoa(r.Position)
}
