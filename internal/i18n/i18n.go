// Package i18n localizes what the calendar displays: country and nationality names, flags, session
// names, dates and countdowns. Czech is the primary language; English is the fallback.
package i18n

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

// DefaultTimezone is the zone dates and times are displayed in unless configured otherwise.
const DefaultTimezone = "Europe/Prague"

var matcher = language.NewMatcher([]language.Tag{language.Czech, language.English})

// New returns a Czech Locale displaying times in the Europe/Prague timezone.
func New(opts ...Option) Locale {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	l := Locale{
		tag:      language.Czech,
		location: loc,
	}
	// apply given options
	for _, opt := range opts {
		opt(&l)
	}
	l.printer = message.NewPrinter(l.tag, message.Catalog(messages))
	return l
}

// Locale formats values for display in a single language and timezone.
type Locale struct {
	tag      language.Tag
	location *time.Location
	printer  *message.Printer
}

type Option = func(l *Locale)

// WithLanguage selects the display language from a BCP 47 tag or Accept-Language style list, e.g.
// "cs", "en-GB" or "de, en;q=0.8". Unsupported languages fall back to Czech.
func WithLanguage(lang string) Option {
	return func(l *Locale) {
		tag, _ := language.MatchStrings(matcher, lang)
		base, _ := tag.Base()
		if base.String() == "en" {
			l.tag = language.English
		} else {
			l.tag = language.Czech
		}
	}
}

// WithLocation configures the timezone dates and times are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(l *Locale) {
		if loc != nil {
			l.location = loc
		}
	}
}

// Language returns the tag of the display language.
func (l Locale) Language() language.Tag {
	return l.tag
}

// Location returns the display timezone.
func (l Locale) Location() *time.Location {
	return l.location
}

// IsCzech reports whether the locale displays Czech.
func (l Locale) IsCzech() bool {
	return l.tag == language.Czech
}

// T translates a message from the catalog.
func (l Locale) T(key message.Reference, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Country returns the display name of a country.
func (l Locale) Country(country string) string {
	if !l.IsCzech() {
		return country
	}
	return CountryName(country)
}

// Nationality returns the display name of the country a nationality belongs to.
func (l Locale) Nationality(nationality string) string {
	return l.Country(NationalityCountry(nationality))
}

// SessionName returns the display name of a session kind.
func (l Locale) SessionName(kind domain.SessionKind) string {
	key, ok := sessionNames[kind]
	if !ok {
		return string(kind)
	}
	return l.T(key)
}

// Status returns the display label of a race classification.
func (l Locale) Status(c racewindow.Classification) string {
	if c.TBA {
		return l.T(msgTBA)
	}
	switch c.Status {
	case racewindow.StatusPast:
		return l.T(msgPast)
	case racewindow.StatusLive:
		return l.T(msgLive)
	default:
		return l.T(msgUpcoming)
	}
}

// Points formats championship points using the locale's decimal separator.
func (l Locale) Points(points float64) string {
	return l.printer.Sprint(points)
}

// Round returns the label of a championship round, e.g. "3. závod" or "3rd round".
func (l Locale) Round(round int) string {
	if l.IsCzech() {
		return l.T(msgRound, round)
	}
	return humanize.Ordinal(round) + " round"
}

// Countdown renders a countdown, e.g. "3 dny 4 hodiny 5 minut 6 sekund".
func (l Locale) Countdown(r racewindow.Remaining) string {
	return fmt.Sprintf("%s %s %s %s",
		l.T(msgDays, r.Days),
		l.T(msgHours, r.Hours),
		l.T(msgMinutes, r.Minutes),
		l.T(msgSeconds, r.Seconds),
	)
}

// Relative describes how far t is from now, e.g. "za 3 dny" or "3 days from now".
func (l Locale) Relative(t, now time.Time) string {
	if !l.IsCzech() {
		return humanize.RelTime(t, now, "ago", "from now")
	}
	d := t.Sub(now)
	keys := [3]message.Reference{msgInDays, msgInHours, msgInMinutes}
	if d < 0 {
		d = -d
		keys = [3]message.Reference{msgDaysAgo, msgHoursAgo, msgMinutesAgo}
	}
	switch {
	case d >= 24*time.Hour:
		return l.T(keys[0], int(d/(24*time.Hour)))
	case d >= time.Hour:
		return l.T(keys[1], int(d/time.Hour))
	default:
		return l.T(keys[2], int(d/time.Minute))
	}
}
