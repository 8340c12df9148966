// Package racewindow models the timing of a race weekend: the overall window spanned by its
// sessions, whether the weekend is past, live or upcoming, and the countdown to a future instant.
//
// Every function in this package is pure. Callers that need a ticking display must call again on
// their own timer.
package racewindow

import (
	"time"

	"github.com/bcdxn/f1cal/internal/domain"
)

const (
	StatusPast     Status = "past"
	StatusLive     Status = "live"
	StatusUpcoming Status = "upcoming"
)

// SessionDuration is the assumed length of every session. The schedule carries no end times, so a
// single session is treated as live for this long after it starts.
const SessionDuration = 2 * time.Hour

// Status is the temporal classification of a race weekend relative to the current instant.
type Status string

// Window is the span from the earliest to the latest session of a race weekend.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the window, inclusive of both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Classification is the result of classifying a race weekend. TBA is set when the weekend has no
// usable session dates, in which case Status is always StatusUpcoming.
type Classification struct {
	Status Status
	TBA    bool
}

// Remaining is a countdown broken down into fixed-length units.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

/* Pure Functions
------------------------------------------------------------------------------------------------- */

// ComputeWindow reduces the sessions of a race weekend to the earliest and latest session start.
// Sessions whose date or time cannot be parsed are skipped. A nil window is returned when no
// session has a usable start.
func ComputeWindow(sessions []domain.Session) *Window {
	var w *Window
	for _, s := range sessions {
		start, ok := s.Start()
		if !ok {
			continue
		}
		if w == nil {
			w = &Window{Start: start, End: start}
			continue
		}
		if start.Before(w.Start) {
			w.Start = start
		}
		if start.After(w.End) {
			w.End = start
		}
	}
	return w
}

// Classify determines whether a race weekend is past, live or upcoming.
//
// An undefined window is always upcoming and to be announced, even when pastHint is set. A set
// pastHint otherwise wins over the comparison with now.
func Classify(w *Window, now time.Time, pastHint bool) Classification {
	switch {
	case w == nil:
		return Classification{Status: StatusUpcoming, TBA: true}
	case pastHint:
		return Classification{Status: StatusPast}
	case w.Contains(now):
		return Classification{Status: StatusLive}
	default:
		return Classification{Status: StatusUpcoming}
	}
}

// IsPast reports whether the whole window lies before now. It is the usual source of the pastHint
// given to Classify.
func IsPast(w *Window, now time.Time) bool {
	return w != nil && w.End.Before(now)
}

// ComputeRemaining returns the time left until target in days, hours, minutes and seconds. Days are
// always 24 hours long. The second return value is false once target is not after now.
func ComputeRemaining(target, now time.Time) (Remaining, bool) {
	if !target.After(now) {
		return Remaining{}, false
	}
	total := int64(target.Sub(now) / time.Second)
	return Remaining{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}, true
}

// IsSessionLive reports whether a single session is running at now, assuming it lasts
// SessionDuration. The weekend window is not consulted.
func IsSessionLive(s domain.Session, now time.Time) bool {
	start, ok := s.Start()
	if !ok {
		return false
	}
	return !now.Before(start) && !now.After(start.Add(SessionDuration))
}

// NextRace returns the first race, in round order, whose main race has not started yet at now.
// Races without a usable race date are skipped.
func NextRace(races []domain.Race, now time.Time) (domain.Race, bool) {
	var next domain.Race
	found := false
	for _, r := range races {
		start, ok := r.RaceSession().Start()
		if !ok || !start.After(now) {
			continue
		}
		if !found || r.Round < next.Round {
			next = r
			found = true
		}
	}
	return next, found
}
