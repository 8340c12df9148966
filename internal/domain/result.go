package domain

// RaceResult contains the classification of a finished race.
type RaceResult struct {
	Race    Race
	Results []Result
}

// Result is a single row of a race classification.
type Result struct {
	Position       int
	PositionText   string // PositionText is "R" for retired, "D" for disqualified, etc.
	Points         float64
	Grid           int
	Laps           int
	Status         string // Status is "Finished", "+1 Lap", "Engine", etc.
	Time           string // Time is the total race time for the winner and the gap for the others
	FastestLapRank int    // FastestLapRank is 1 for the driver that set the fastest lap
	FastestLapTime string
	Driver         Driver
	Constructor    Constructor
}
