package domain

// Driver represents intrinsic data about a driver.
type Driver struct {
	ID          string // ID is the unique API identifier, e.g. "max_verstappen"
	Number      string // Number is the permanent racing number of the driver
	Code        string // Code is the three letter abbreviation used on the television broadcast
	GivenName   string
	FamilyName  string
	Nationality string // Nationality as published by the API, e.g. "Dutch"
	URL         string
}

// Name returns the full name of the driver.
func (d Driver) Name() string {
	if d.GivenName == "" {
		return d.FamilyName
	}
	return d.GivenName + " " + d.FamilyName
}

// Constructor represents a team entered in the constructors' championship.
type Constructor struct {
	ID          string
	Name        string
	Nationality string
	URL         string
}

// DriverStanding is a single row of the drivers' championship table.
type DriverStanding struct {
	Position     int
	PositionText string  // PositionText is "-" for drivers that are not classified
	Points       float64 // Points may be fractional when half points were awarded
	Wins         int
	Driver       Driver
	Constructors []Constructor // Constructors the driver raced for during the season
}

// DriverStandings is the drivers' championship table after a given round.
type DriverStandings struct {
	Season    string
	Round     int
	Standings []DriverStanding
}

// ConstructorStanding is a single row of the constructors' championship table.
type ConstructorStanding struct {
	Position     int
	PositionText string
	Points       float64
	Wins         int
	Constructor  Constructor
}

// ConstructorStandings is the constructors' championship table after a given round.
type ConstructorStandings struct {
	Season    string
	Round     int
	Standings []ConstructorStanding
}
