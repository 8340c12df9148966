package ergast

import (
	"strconv"

	"github.com/bcdxn/f1cal/internal/domain"
)

/* Message Transformers
------------------------------------------------------------------------------------------------- */

// toRace converts a schedule entry from the API to the `Race` domain model.
func toRace(r race) domain.Race {
	dr := domain.Race{
		Season: r.Season,
		Round:  atoi(r.Round),
		Name:   r.RaceName,
		URL:    r.URL,
		Circuit: domain.Circuit{
			ID:   r.Circuit.CircuitID,
			Name: r.Circuit.CircuitName,
			URL:  r.Circuit.URL,
			Location: domain.Location{
				Locality: r.Circuit.Location.Locality,
				Country:  r.Circuit.Location.Country,
				Lat:      r.Circuit.Location.Lat,
				Long:     r.Circuit.Location.Long,
			},
		},
		Date: r.Date,
	}
	setTime(&dr.Time, r.Time)
	dr.FirstPractice = toSession(domain.SessionKindFirstPractice, r.FirstPractice)
	dr.SecondPractice = toSession(domain.SessionKindSecondPractice, r.SecondPractice)
	dr.ThirdPractice = toSession(domain.SessionKindThirdPractice, r.ThirdPractice)
	dr.Qualifying = toSession(domain.SessionKindQualifying, r.Qualifying)
	dr.Sprint = toSession(domain.SessionKindSprint, r.Sprint)
	dr.SprintQualifying = toSession(domain.SessionKindSprintQualifying, r.SprintQualifying)
	if dr.SprintQualifying == nil {
		dr.SprintQualifying = toSession(domain.SessionKindSprintQualifying, r.SprintShootout)
	}
	return dr
}

func toSession(kind domain.SessionKind, s *sessionRecord) *domain.Session {
	if s == nil {
		return nil
	}
	ds := &domain.Session{Kind: kind, Date: s.Date}
	setTime(&ds.Time, s.Time)
	return ds
}

func toDriver(d driver) domain.Driver {
	return domain.Driver{
		ID:          d.DriverID,
		Number:      d.PermanentNumber,
		Code:        d.Code,
		GivenName:   d.GivenName,
		FamilyName:  d.FamilyName,
		Nationality: d.Nationality,
		URL:         d.URL,
	}
}

func toConstructor(c constructor) domain.Constructor {
	return domain.Constructor{
		ID:          c.ConstructorID,
		Name:        c.Name,
		Nationality: c.Nationality,
		URL:         c.URL,
	}
}

func toDriverStanding(s driverStanding) domain.DriverStanding {
	ds := domain.DriverStanding{
		PositionText: s.PositionText,
		Points:       atof(s.Points),
		Wins:         atoi(s.Wins),
		Driver:       toDriver(s.Driver),
		Constructors: make([]domain.Constructor, 0, len(s.Constructors)),
	}
	setPosition(&ds.Position, s.Position)
	for _, c := range s.Constructors {
		ds.Constructors = append(ds.Constructors, toConstructor(c))
	}
	return ds
}

func toConstructorStanding(s constructorStanding) domain.ConstructorStanding {
	cs := domain.ConstructorStanding{
		PositionText: s.PositionText,
		Points:       atof(s.Points),
		Wins:         atoi(s.Wins),
		Constructor:  toConstructor(s.Constructor),
	}
	setPosition(&cs.Position, s.Position)
	return cs
}

func toResult(r result) domain.Result {
	dr := domain.Result{
		Position:     atoi(r.Position),
		PositionText: r.PositionText,
		Points:       atof(r.Points),
		Grid:         atoi(r.Grid),
		Laps:         atoi(r.Laps),
		Status:       r.Status,
		Driver:       toDriver(r.Driver),
		Constructor:  toConstructor(r.Constructor),
	}
	if r.Time != nil {
		dr.Time = r.Time.Time
	}
	if r.FastestLap != nil {
		dr.FastestLapRank = atoi(r.FastestLap.Rank)
		dr.FastestLapTime = r.FastestLap.Time.Time
	}
	return dr
}

func setTime(dst *string, t *string) {
	if t != nil {
		*dst = *t
	}
}

func setPosition(dst *int, pos *string) {
	if pos != nil {
		*dst = atoi(*pos)
	}
}

// atoi parses the numeric strings used throughout the API; malformed values become zero.
func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
