package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

func TestLookupTables(t *testing.T) {
	t.Run("CountryName", func(t *testing.T) {
		tests := map[string]string{
			"Australia":   "Austrálie",
			"UK":          "Velká Británie",
			"Netherlands": "Nizozemsko",
			"Atlantis":    "Atlantis",
		}
		for in, want := range tests {
			if got := CountryName(in); got != want {
				t.Errorf("expected '%s' for '%s' but found '%s'", want, in, got)
			}
		}
	})

	t.Run("Flag", func(t *testing.T) {
		if got := FlagCode("Monaco"); got != "mc" {
			t.Errorf("expected flag code '%s' but found '%s'", "mc", got)
		}
		if got := Flag("Japan"); got != "🇯🇵" {
			t.Errorf("expected flag '%s' but found '%s'", "🇯🇵", got)
		}
		if got := FlagCode("Atlantis"); got != FallbackFlagCode {
			t.Errorf("expected flag code '%s' but found '%s'", FallbackFlagCode, got)
		}
		if got := Flag("Atlantis"); got != FallbackFlag {
			t.Errorf("expected flag '%s' but found '%s'", FallbackFlag, got)
		}
	})

	t.Run("Nationality", func(t *testing.T) {
		if got := NationalityCountry("Monegasque"); got != "Monaco" {
			t.Errorf("expected '%s' but found '%s'", "Monaco", got)
		}
		if got := NationalityCountry("Martian"); got != "Martian" {
			t.Errorf("expected '%s' but found '%s'", "Martian", got)
		}
		if got := New().Nationality("Dutch"); got != "Nizozemsko" {
			t.Errorf("expected '%s' but found '%s'", "Nizozemsko", got)
		}
		if got := New(WithLanguage("en")).Nationality("Dutch"); got != "Netherlands" {
			t.Errorf("expected '%s' but found '%s'", "Netherlands", got)
		}
	})
}

func TestWithLanguage(t *testing.T) {
	tests := map[string]bool{
		"":             true,
		"cs":           true,
		"cs-CZ":        true,
		"en":           false,
		"en-GB":        false,
		"de, en;q=0.8": false,
		"xx-unknown":   true,
	}
	for lang, czech := range tests {
		if got := New(WithLanguage(lang)).IsCzech(); got != czech {
			t.Errorf("expected czech=%t for '%s' but found %t", czech, lang, got)
		}
	}
}

func TestSessionName(t *testing.T) {
	cs := New()
	tests := map[domain.SessionKind]string{
		domain.SessionKindFirstPractice:    "1. trénink",
		domain.SessionKindThirdPractice:    "3. trénink",
		domain.SessionKindSprintQualifying: "Sprintová kvalifikace",
		domain.SessionKindQualifying:       "Kvalifikace",
		domain.SessionKindRace:             "Závod",
	}
	for kind, want := range tests {
		if got := cs.SessionName(kind); got != want {
			t.Errorf("expected '%s' but found '%s'", want, got)
		}
	}
	if got := New(WithLanguage("en")).SessionName(domain.SessionKindSecondPractice); got != "Practice 2" {
		t.Errorf("expected '%s' but found '%s'", "Practice 2", got)
	}
}

func TestStatus(t *testing.T) {
	cs := New()
	tests := []struct {
		c    racewindow.Classification
		want string
	}{
		{racewindow.Classification{Status: racewindow.StatusUpcoming, TBA: true}, "Termín bude oznámen"},
		{racewindow.Classification{Status: racewindow.StatusPast}, "Proběhl"},
		{racewindow.Classification{Status: racewindow.StatusLive}, "Právě probíhá"},
		{racewindow.Classification{Status: racewindow.StatusUpcoming}, "Nadcházející"},
	}
	for _, tt := range tests {
		if got := cs.Status(tt.c); got != tt.want {
			t.Errorf("expected '%s' but found '%s'", tt.want, got)
		}
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		r    racewindow.Remaining
		want string
	}{
		{racewindow.Remaining{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, "1 den 1 hodina 1 minuta 1 sekunda"},
		{racewindow.Remaining{Days: 3, Hours: 2, Minutes: 4, Seconds: 3}, "3 dny 2 hodiny 4 minuty 3 sekundy"},
		{racewindow.Remaining{Days: 5, Hours: 0, Minutes: 12, Seconds: 59}, "5 dní 0 hodin 12 minut 59 sekund"},
	}
	cs := New()
	for _, tt := range tests {
		if got := cs.Countdown(tt.r); got != tt.want {
			t.Errorf("expected '%s' but found '%s'", tt.want, got)
		}
	}

	en := New(WithLanguage("en"))
	want := "1 day 2 hours 1 minute 0 seconds"
	if got := en.Countdown(racewindow.Remaining{Days: 1, Hours: 2, Minutes: 1}); got != want {
		t.Errorf("expected '%s' but found '%s'", want, got)
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cs := New()
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(72 * time.Hour), "za 3 dny"},
		{now.Add(time.Hour), "za 1 hodinu"},
		{now.Add(5 * time.Minute), "za 5 minut"},
		{now.Add(-24 * time.Hour), "před 1 dnem"},
		{now.Add(-3 * time.Hour), "před 3 hodinami"},
	}
	for _, tt := range tests {
		if got := cs.Relative(tt.t, now); got != tt.want {
			t.Errorf("expected '%s' but found '%s'", tt.want, got)
		}
	}
}

func TestDates(t *testing.T) {
	cs := New(WithLocation(time.UTC))

	t.Run("Date", func(t *testing.T) {
		got := cs.Date(time.Date(2026, 3, 8, 4, 0, 0, 0, time.UTC))
		if got != "8. března 2026" {
			t.Errorf("expected '%s' but found '%s'", "8. března 2026", got)
		}
	})

	t.Run("DateRange", func(t *testing.T) {
		tests := []struct {
			start, end time.Time
			want       string
		}{
			{time.Date(2026, 3, 6, 1, 30, 0, 0, time.UTC), time.Date(2026, 3, 8, 4, 0, 0, 0, time.UTC), "6.–8. března 2026"},
			{time.Date(2026, 5, 30, 1, 30, 0, 0, time.UTC), time.Date(2026, 6, 1, 4, 0, 0, 0, time.UTC), "30. května – 1. června 2026"},
			{time.Date(2026, 12, 31, 1, 30, 0, 0, time.UTC), time.Date(2027, 1, 2, 4, 0, 0, 0, time.UTC), "31. prosince 2026 – 2. ledna 2027"},
			{time.Date(2026, 3, 8, 1, 0, 0, 0, time.UTC), time.Date(2026, 3, 8, 4, 0, 0, 0, time.UTC), "8. března 2026"},
		}
		for _, tt := range tests {
			if got := cs.DateRange(&racewindow.Window{Start: tt.start, End: tt.end}); got != tt.want {
				t.Errorf("expected '%s' but found '%s'", tt.want, got)
			}
		}
		if got := cs.DateRange(nil); got != "Termín bude oznámen" {
			t.Errorf("expected '%s' but found '%s'", "Termín bude oznámen", got)
		}
	})

	t.Run("EnglishDateRange", func(t *testing.T) {
		en := New(WithLanguage("en"), WithLocation(time.UTC))
		w := &racewindow.Window{
			Start: time.Date(2026, 3, 6, 1, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 8, 4, 0, 0, 0, time.UTC),
		}
		if got := en.DateRange(w); got != "March 6–8, 2026" {
			t.Errorf("expected '%s' but found '%s'", "March 6–8, 2026", got)
		}
	})

	t.Run("SessionTime", func(t *testing.T) {
		prague, err := time.LoadLocation("Europe/Prague")
		if err != nil {
			t.Skip("timezone database unavailable")
		}
		l := New(WithLocation(prague))
		got := l.SessionTime(domain.Session{Date: "2026-03-06", Time: "01:30:00Z"})
		if got != "pátek 6. března 2026 02:30" {
			t.Errorf("expected '%s' but found '%s'", "pátek 6. března 2026 02:30", got)
		}
		got = l.SessionTime(domain.Session{Date: "2026-03-06"})
		if got != "pátek 6. března 2026" {
			t.Errorf("expected '%s' but found '%s'", "pátek 6. března 2026", got)
		}
		if got = l.SessionTime(domain.Session{Date: "bogus"}); got != "Termín bude oznámen" {
			t.Errorf("expected '%s' but found '%s'", "Termín bude oznámen", got)
		}
	})
}

func TestNumbers(t *testing.T) {
	if got := New().Points(36.5); !strings.Contains(got, "36,5") {
		t.Errorf("expected czech decimal comma in '%s'", got)
	}
	if got := New().Round(3); got != "3. závod" {
		t.Errorf("expected '%s' but found '%s'", "3. závod", got)
	}
	if got := New(WithLanguage("en")).Round(3); got != "3rd round" {
		t.Errorf("expected '%s' but found '%s'", "3rd round", got)
	}
}
