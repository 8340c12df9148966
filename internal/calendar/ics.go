// Package calendar exports the season schedule as an iCalendar feed so every session can be
// subscribed to from a calendar application.
package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gosimple/slug"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/i18n"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

const (
	productID = "-//bcdxn//f1cal//CS"
	uidDomain = "f1cal"
)

// New builds a calendar with one event per scheduled session. Sessions whose date cannot be parsed
// are left out; sessions without an announced time become all-day events.
func New(races []domain.Race, opts ...Option) *ics.Calendar {
	e := exporter{
		name:   "Formule 1",
		locale: i18n.New(),
		stamp:  time.Now(),
	}
	// apply given options
	for _, opt := range opts {
		opt(&e)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(e.name)
	for _, r := range races {
		for _, s := range r.Sessions() {
			e.addSession(cal, r, s)
		}
	}
	return cal
}

// Write serializes the calendar of the given races to w.
func Write(w io.Writer, races []domain.Race, opts ...Option) error {
	if err := New(races, opts...).SerializeTo(w); err != nil {
		return fmt.Errorf("error serializing calendar: %w", err)
	}
	return nil
}

// UID returns the stable identifier of a session's calendar event.
func UID(r domain.Race, s domain.Session) string {
	return slug.Make(fmt.Sprintf("%s %d %s", r.Season, r.Round, s.Kind)) + "@" + uidDomain
}

type Option = func(e *exporter)

// WithName sets the display name of the calendar.
func WithName(name string) Option {
	return func(e *exporter) { e.name = name }
}

// WithLocale configures the language of event summaries and locations.
func WithLocale(l i18n.Locale) Option {
	return func(e *exporter) { e.locale = l }
}

// WithStamp fixes the DTSTAMP of every event; primarily used for testing.
func WithStamp(t time.Time) Option {
	return func(e *exporter) { e.stamp = t }
}

type exporter struct {
	name   string
	locale i18n.Locale
	stamp  time.Time
}

func (e exporter) addSession(cal *ics.Calendar, r domain.Race, s domain.Session) {
	start, ok := s.Start()
	if !ok {
		return
	}
	event := cal.AddEvent(UID(r, s))
	event.SetDtStampTime(e.stamp)
	if s.HasTime() {
		event.SetStartAt(start)
		event.SetEndAt(start.Add(racewindow.SessionDuration))
	} else {
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
	}
	event.SetSummary(fmt.Sprintf("%s – %s", r.Name, e.locale.SessionName(s.Kind)))
	event.SetLocation(e.location(r.Circuit))
	event.SetDescription(fmt.Sprintf("%s, %s", e.locale.Round(r.Round), r.Circuit.Name))
	if r.URL != "" {
		event.SetURL(r.URL)
	}
}

func (e exporter) location(c domain.Circuit) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Name, c.Location.Locality, e.locale.Country(c.Location.Country)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
