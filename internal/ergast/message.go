package ergast

// mrData is the envelope of every response from the Ergast-compatible API. Only one of the tables
// is populated depending on the endpoint that was called.
type mrData struct {
	MRData struct {
		Series         string          `json:"series"`
		Limit          string          `json:"limit"`
		Offset         string          `json:"offset"`
		Total          string          `json:"total"`
		RaceTable      *raceTable      `json:"RaceTable"`
		StandingsTable *standingsTable `json:"StandingsTable"`
	} `json:"MRData"`
}

// raceTable lists races; used by the schedule and results endpoints.
type raceTable struct {
	Season string `json:"season"`
	Round  string `json:"round"`
	Races  []race `json:"Races"`
}

// race is a single schedule entry. Session sub-records are omitted by the API when the session is
// not part of the weekend.
type race struct {
	Season           string         `json:"season"`
	Round            string         `json:"round"`
	URL              string         `json:"url"`
	RaceName         string         `json:"raceName"`
	Circuit          circuit        `json:"Circuit"`
	Date             string         `json:"date"`
	Time             *string        `json:"time"`
	FirstPractice    *sessionRecord `json:"FirstPractice"`
	SecondPractice   *sessionRecord `json:"SecondPractice"`
	ThirdPractice    *sessionRecord `json:"ThirdPractice"`
	Qualifying       *sessionRecord `json:"Qualifying"`
	Sprint           *sessionRecord `json:"Sprint"`
	SprintQualifying *sessionRecord `json:"SprintQualifying"`
	// SprintShootout is the name of sprint qualifying in the 2023 season
	SprintShootout *sessionRecord `json:"SprintShootout"`
	Results        []result       `json:"Results"`
}

type circuit struct {
	CircuitID   string `json:"circuitId"`
	URL         string `json:"url"`
	CircuitName string `json:"circuitName"`
	Location    struct {
		Lat      string `json:"lat"`
		Long     string `json:"long"`
		Locality string `json:"locality"`
		Country  string `json:"country"`
	} `json:"Location"`
}

type sessionRecord struct {
	Date string  `json:"date"`
	Time *string `json:"time"`
}

// standingsTable contains one standings list per requested round; the API returns a single list
// for the season standings endpoints.
type standingsTable struct {
	Season         string          `json:"season"`
	Round          string          `json:"round"`
	StandingsLists []standingsList `json:"StandingsLists"`
}

type standingsList struct {
	Season               string                `json:"season"`
	Round                string                `json:"round"`
	DriverStandings      []driverStanding      `json:"DriverStandings"`
	ConstructorStandings []constructorStanding `json:"ConstructorStandings"`
}

type driverStanding struct {
	Position     *string       `json:"position"` // absent for unclassified drivers
	PositionText string        `json:"positionText"`
	Points       string        `json:"points"`
	Wins         string        `json:"wins"`
	Driver       driver        `json:"Driver"`
	Constructors []constructor `json:"Constructors"`
}

type constructorStanding struct {
	Position     *string     `json:"position"`
	PositionText string      `json:"positionText"`
	Points       string      `json:"points"`
	Wins         string      `json:"wins"`
	Constructor  constructor `json:"Constructor"`
}

type driver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	Code            string `json:"code"`
	URL             string `json:"url"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
}

type constructor struct {
	ConstructorID string `json:"constructorId"`
	URL           string `json:"url"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
}

// result is a single row of a race classification.
type result struct {
	Number       string      `json:"number"`
	Position     string      `json:"position"`
	PositionText string      `json:"positionText"`
	Points       string      `json:"points"`
	Driver       driver      `json:"Driver"`
	Constructor  constructor `json:"Constructor"`
	Grid         string      `json:"grid"`
	Laps         string      `json:"laps"`
	Status       string      `json:"status"`
	Time         *struct {
		Millis string `json:"millis"`
		Time   string `json:"time"`
	} `json:"Time"`
	FastestLap *struct {
		Rank string `json:"rank"`
		Lap  string `json:"lap"`
		Time struct {
			Time string `json:"time"`
		} `json:"Time"`
	} `json:"FastestLap"`
}
