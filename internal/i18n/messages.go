package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/bcdxn/f1cal/internal/domain"
)

// Message keys are the English source strings.
const (
	msgTBA        = "To be announced"
	msgPast       = "Finished"
	msgLive       = "Live now"
	msgUpcoming   = "Upcoming"
	msgRound      = "Round %d"
	msgDays       = "%d days"
	msgHours      = "%d hours"
	msgMinutes    = "%d minutes"
	msgSeconds    = "%d seconds"
	msgInDays     = "in %d days"
	msgInHours    = "in %d hours"
	msgInMinutes  = "in %d minutes"
	msgDaysAgo    = "%d days ago"
	msgHoursAgo   = "%d hours ago"
	msgMinutesAgo = "%d minutes ago"
)

// User interface strings shared by the terminal UI and the HTTP server.
const (
	MsgCalendar      = "Calendar"
	MsgDrivers       = "Drivers"
	MsgConstructors  = "Constructors"
	MsgSeason        = "Season %s"
	MsgNextRace      = "Next race"
	MsgLoading       = "Loading…"
	MsgResults       = "Results"
	MsgResultsLater  = "Results will be available after the race"
	MsgNoResults     = "No results have been published yet"
	MsgSprintWeekend = "Sprint weekend"
	MsgError         = "Error: %s"
	MsgPosition      = "Pos"
	MsgDriver        = "Driver"
	MsgConstructor   = "Constructor"
	MsgNationality   = "Nationality"
	MsgPoints        = "Points"
	MsgWins          = "Wins"
	MsgGrid          = "Grid"
	MsgLaps          = "Laps"
	MsgTimeStatus    = "Time/Status"
	MsgLive          = "LIVE"
	MsgLiveSession   = "Live: %s – %s"
	MsgLap           = "Lap %d/%d"
	MsgHelpCalendar  = "↑/↓ select • enter detail • tab switch • q quit"
	MsgHelpDetail    = "esc close • q quit"
	MsgHelpTable     = "tab switch • q quit"
	MsgNoRaces       = "The schedule has not been published yet"
)

var sessionNames = map[domain.SessionKind]message.Reference{
	domain.SessionKindFirstPractice:    "Practice 1",
	domain.SessionKindSecondPractice:   "Practice 2",
	domain.SessionKindThirdPractice:    "Practice 3",
	domain.SessionKindSprintQualifying: "Sprint Qualifying",
	domain.SessionKindSprint:           "Sprint",
	domain.SessionKindQualifying:       "Qualifying",
	domain.SessionKindRace:             "Race",
}

var messages = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	cs := map[string]string{
		msgTBA:              "Termín bude oznámen",
		msgPast:             "Proběhl",
		msgLive:             "Právě probíhá",
		msgUpcoming:         "Nadcházející",
		msgRound:            "%d. závod",
		"Practice 1":        "1. trénink",
		"Practice 2":        "2. trénink",
		"Practice 3":        "3. trénink",
		"Sprint Qualifying": "Sprintová kvalifikace",
		"Sprint":            "Sprint",
		"Qualifying":        "Kvalifikace",
		"Race":              "Závod",
		MsgCalendar:         "Kalendář",
		MsgDrivers:          "Jezdci",
		MsgConstructors:     "Konstruktéři",
		MsgSeason:           "Sezóna %s",
		MsgNextRace:         "Příští závod",
		MsgLoading:          "Načítání…",
		MsgResults:          "Výsledky",
		MsgResultsLater:     "Výsledky budou k dispozici po závodě",
		MsgNoResults:        "Výsledky zatím nebyly zveřejněny",
		MsgSprintWeekend:    "Sprintový víkend",
		MsgError:            "Chyba: %s",
		MsgPosition:         "Poz.",
		MsgDriver:           "Jezdec",
		MsgConstructor:      "Konstruktér",
		MsgNationality:      "Národnost",
		MsgPoints:           "Body",
		MsgWins:             "Výhry",
		MsgGrid:             "Start",
		MsgLaps:             "Kola",
		MsgTimeStatus:       "Čas/Stav",
		MsgLive:             "ŽIVĚ",
		MsgLiveSession:      "Živě: %s – %s",
		MsgLap:              "Kolo %d/%d",
		MsgHelpCalendar:     "↑/↓ výběr • enter detail • tab přepnout • q konec",
		MsgHelpDetail:       "esc zavřít • q konec",
		MsgHelpTable:        "tab přepnout • q konec",
		MsgNoRaces:          "Kalendář zatím nebyl zveřejněn",
	}
	for key, msg := range cs {
		mustSet(messages.SetString(language.Czech, key, msg))
	}

	// Czech integers are "one" for 1, "few" for 2-4 and "other" otherwise
	czechPlurals := map[string][3]string{
		msgDays:       {"%d den", "%d dny", "%d dní"},
		msgHours:      {"%d hodina", "%d hodiny", "%d hodin"},
		msgMinutes:    {"%d minuta", "%d minuty", "%d minut"},
		msgSeconds:    {"%d sekunda", "%d sekundy", "%d sekund"},
		msgInDays:     {"za %d den", "za %d dny", "za %d dní"},
		msgInHours:    {"za %d hodinu", "za %d hodiny", "za %d hodin"},
		msgInMinutes:  {"za %d minutu", "za %d minuty", "za %d minut"},
		msgDaysAgo:    {"před %d dnem", "před %d dny", "před %d dny"},
		msgHoursAgo:   {"před %d hodinou", "před %d hodinami", "před %d hodinami"},
		msgMinutesAgo: {"před %d minutou", "před %d minutami", "před %d minutami"},
	}
	for key, forms := range czechPlurals {
		mustSet(messages.Set(language.Czech, key, plural.Selectf(1, "%d",
			plural.One, forms[0],
			plural.Few, forms[1],
			plural.Other, forms[2],
		)))
	}

	englishPlurals := map[string][2]string{
		msgDays:    {"%d day", "%d days"},
		msgHours:   {"%d hour", "%d hours"},
		msgMinutes: {"%d minute", "%d minutes"},
		msgSeconds: {"%d second", "%d seconds"},
	}
	for key, forms := range englishPlurals {
		mustSet(messages.Set(language.English, key, plural.Selectf(1, "%d",
			plural.One, forms[0],
			plural.Other, forms[1],
		)))
	}
}

func mustSet(err error) {
	if err != nil {
		panic(err)
	}
}
