package i18n

import (
	"fmt"
	"time"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

// genitive month names as used in Czech dates, e.g. "8. března"
var czechMonths = [...]string{
	"ledna", "února", "března", "dubna", "května", "června",
	"července", "srpna", "září", "října", "listopadu", "prosince",
}

var czechWeekdays = [...]string{
	"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota",
}

// Date formats the calendar date of t in the display timezone, e.g. "8. března 2026".
func (l Locale) Date(t time.Time) string {
	t = t.In(l.location)
	if !l.IsCzech() {
		return t.Format("January 2, 2006")
	}
	return fmt.Sprintf("%d. %s %d", t.Day(), czechMonths[t.Month()-1], t.Year())
}

// Weekday returns the name of the day of the week of t in the display timezone.
func (l Locale) Weekday(t time.Time) string {
	t = t.In(l.location)
	if !l.IsCzech() {
		return t.Weekday().String()
	}
	return czechWeekdays[t.Weekday()]
}

// Time formats the time-of-day of t in the display timezone using a 24-hour clock.
func (l Locale) Time(t time.Time) string {
	return t.In(l.location).Format("15:04")
}

// DateRange formats a race window, collapsing the shared month and year, e.g. "6.–8. března 2026"
// or "30. května – 1. června 2026". A nil window is to be announced.
func (l Locale) DateRange(w *racewindow.Window) string {
	if w == nil {
		return l.T(msgTBA)
	}
	start, end := w.Start.In(l.location), w.End.In(l.location)
	sameDay := start.YearDay() == end.YearDay() && start.Year() == end.Year()
	switch {
	case sameDay:
		return l.Date(start)
	case !l.IsCzech() && start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%s %d–%d, %d", start.Month(), start.Day(), end.Day(), end.Year())
	case !l.IsCzech() && start.Year() == end.Year():
		return fmt.Sprintf("%s – %s", start.Format("January 2"), l.Date(end))
	case !l.IsCzech():
		return fmt.Sprintf("%s – %s", l.Date(start), l.Date(end))
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%d.–%s", start.Day(), l.Date(end))
	case start.Year() == end.Year():
		return fmt.Sprintf("%d. %s – %s", start.Day(), czechMonths[start.Month()-1], l.Date(end))
	default:
		return fmt.Sprintf("%s – %s", l.Date(start), l.Date(end))
	}
}

// SessionTime formats when a session starts, e.g. "pátek 6. března 2026 02:30". Sessions whose
// time-of-day has not been announced show only the date; unparseable sessions are to be announced.
func (l Locale) SessionTime(s domain.Session) string {
	start, ok := s.Start()
	if !ok {
		return l.T(msgTBA)
	}
	if !s.HasTime() {
		// the midnight UTC placeholder must not be shifted into the previous day
		return fmt.Sprintf("%s %s", l.weekdayUTC(start), l.dateUTC(start))
	}
	return fmt.Sprintf("%s %s %s", l.Weekday(start), l.Date(start), l.Time(start))
}

func (l Locale) dateUTC(t time.Time) string {
	return Locale{tag: l.tag, location: time.UTC, printer: l.printer}.Date(t)
}

func (l Locale) weekdayUTC(t time.Time) string {
	return Locale{tag: l.tag, location: time.UTC, printer: l.printer}.Weekday(t)
}
