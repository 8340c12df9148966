package domain

const (
	TrackStatusAllClear    TrackStatus   = "AllClear"
	TrackStatusYellow      TrackStatus   = "Yellow"
	TrackStatusSCDeployed  TrackStatus   = "SCDeployed"
	TrackStatusRed         TrackStatus   = "Red"
	TrackStatusVSCDeployed TrackStatus   = "VSCDeployed"
	TrackStatusVSCEnding   TrackStatus   = "VSCEnding"
	TrackStatusUnknown     TrackStatus   = "Unknown"
	SessionStatusInactive  SessionStatus = "Inactive"
	SessionStatusStarted   SessionStatus = "Started"
	SessionStatusAborted   SessionStatus = "Aborted"
	SessionStatusFinished  SessionStatus = "Finished"
	SessionStatusFinalised SessionStatus = "Finalised"
	SessionStatusEnds      SessionStatus = "Ends"
	SessionStatusUnknown   SessionStatus = "Unknown"
)

// TrackStatus represents the flag state of the circuit as reported by race control.
type TrackStatus string

// SessionStatus represents the progress of a session as reported by the F1 LiveTiming API.
type SessionStatus string

// NewLiveSession returns a new instance of a live session with fields initialized to their unknown
// values.
func NewLiveSession() LiveSession {
	return LiveSession{
		TrackStatus:   TrackStatusUnknown,
		SessionStatus: SessionStatusUnknown,
	}
}

// LiveSession is a snapshot of the session currently running according to the F1 LiveTiming API.
type LiveSession struct {
	MeetingName   string        // MeetingName is the informal name of the race weekend
	CountryName   string        // CountryName is the country in which the event is taking place
	Name          string        // Name of the session, e.g.: "Practice 1", "Race", etc.
	Type          string        // Type of the session, e.g.: "Practice", "Qualifying", "Race"
	CurrentLap    int           // The current lead lap (only applicable for races)
	TotalLaps     int           // The total number of planned laps (only applicable for races)
	TrackStatus   TrackStatus   // TrackStatus is the latest flag state
	SessionStatus SessionStatus // SessionStatus is the latest session progress state
}
