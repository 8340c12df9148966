package domain

import (
	"strings"
	"time"
)

const (
	SessionKindFirstPractice    SessionKind = "FirstPractice"
	SessionKindSecondPractice   SessionKind = "SecondPractice"
	SessionKindThirdPractice    SessionKind = "ThirdPractice"
	SessionKindSprintQualifying SessionKind = "SprintQualifying"
	SessionKindSprint           SessionKind = "Sprint"
	SessionKindQualifying       SessionKind = "Qualifying"
	SessionKindRace             SessionKind = "Race"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = time.RFC3339
	midnightUTC    = "00:00:00Z"
)

// The types of sessions within a race weekend, e.g.: Practice, Qualifying, Race, etc.
type SessionKind string

// Race represents a single round of the championship as published on the season schedule. Apart
// from the main race every session is optional; the schedule omits sessions that are not part of
// the weekend's format.
type Race struct {
	Season  string  // Season is the championship year, e.g. "2026"
	Round   int     // Round is the sequence number of the race weekend within the season
	Name    string  // Name is the informal name of the event, e.g. "Australian Grand Prix"
	URL     string  // URL is the reference (wikipedia) page of the event
	Circuit Circuit // Circuit at which the event is taking place
	Date    string  // Date of the main race (YYYY-MM-DD)
	Time    string  // Time of the main race (HH:MM:SSZ); empty until announced
	// Optional weekend sessions
	FirstPractice    *Session
	SecondPractice   *Session
	ThirdPractice    *Session
	SprintQualifying *Session
	Sprint           *Session
	Qualifying       *Session
}

// Circuit represents the venue of a race weekend.
type Circuit struct {
	ID       string
	Name     string
	URL      string
	Location Location
}

// Location is the geographic position of a circuit.
type Location struct {
	Locality string
	Country  string
	Lat      string
	Long     string
}

// Session represents a specific scheduled activity within a race weekend, e.g.: Practice 1,
// Qualifying, Race.
type Session struct {
	Kind SessionKind
	Date string // The calendar date of the session (YYYY-MM-DD)
	Time string // The time-of-day in UTC (HH:MM:SSZ); empty means "to be announced"
}

// Start returns the instant the session begins. A session without a time-of-day starts at midnight
// UTC on its date. The second return value is false when the date or time cannot be parsed.
func (s Session) Start() (time.Time, bool) {
	if _, err := time.Parse(dateLayout, s.Date); err != nil {
		return time.Time{}, false
	}
	t := s.Time
	if t == "" {
		t = midnightUTC
	} else if !strings.HasSuffix(t, "Z") && !strings.ContainsAny(t, "+-") {
		// the API always publishes UTC but occasionally drops the zone designator
		t += "Z"
	}
	start, err := time.Parse(dateTimeLayout, s.Date+"T"+t)
	if err != nil {
		return time.Time{}, false
	}
	return start.UTC(), true
}

// HasTime reports whether the session's time-of-day has been announced.
func (s Session) HasTime() bool {
	return s.Time != ""
}

// RaceSession returns the main race of the weekend as a session.
func (r Race) RaceSession() Session {
	return Session{Kind: SessionKindRace, Date: r.Date, Time: r.Time}
}

// Sessions returns every session of the weekend that is present on the schedule, in the order
// they are held within a conventional or sprint weekend, ending with the main race.
func (r Race) Sessions() []Session {
	optional := []*Session{
		r.FirstPractice,
		r.SprintQualifying,
		r.SecondPractice,
		r.Sprint,
		r.ThirdPractice,
		r.Qualifying,
	}
	sessions := make([]Session, 0, len(optional)+1)
	for _, s := range optional {
		if s != nil {
			sessions = append(sessions, *s)
		}
	}
	return append(sessions, r.RaceSession())
}

// IsSprintWeekend reports whether the weekend uses the sprint format (sprint qualifying and a
// sprint race) rather than the conventional format (second and third practice).
func (r Race) IsSprintWeekend() bool {
	return r.Sprint != nil || r.SprintQualifying != nil
}
