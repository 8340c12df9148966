package livetiming

import (
	"encoding/json"
	"strconv"
)

// f1ChangeMessage represents a 'change' message sent on the websocket connection from the server.
// It is a delta between the reference data and any other preceeding change messages.
type f1ChangeMessage struct {
	ChangeSetID string `json:"C"`
	Messages    []struct {
		Hub       string            `json:"H"`
		Message   string            `json:"M"`
		Arguments []json.RawMessage `json:"A"`
	} `json:"M"`
}

// f1ReferenceMessage represents the initial state of a session for all of the requested data from
// the F1 Live Timing API. It is sent once, in reply to the subscribe message; all other messages are
// 'Change' messages that alter the state.
type f1ReferenceMessage struct {
	Reference struct {
		SessionInfo *sessionInfo `json:"SessionInfo"`
		SessionData *sessionData `json:"SessionData"`
		LapCount    *lapCount    `json:"LapCount"`
		TrackStatus *trackStatus `json:"TrackStatus"`
	} `json:"R"`
	Invocation string `json:"I"`
}

// sessionInfo contains intrinsic data about the weekend event and current session. Typically this
// event is consumed as a part of the initial reference message without significant changes
// throughout the session.
type sessionInfo struct {
	Meeting struct {
		Name    *string `json:"Name"`
		Country struct {
			Name *string `json:"Name"`
		} `json:"Country"`
	} `json:"Meeting"`
	Type *string `json:"Type"`
	Name *string `json:"Name"`
}

// sessionData contains session/track status changes. Change and Reference version of the message
// are identical except that the changes are represented in a map and the reference is represented
// as a list. This type handles unmarshaling both into a normalized structure.
type sessionData struct {
	StatusSeries map[string]sessionDataStatusSeries
}

func (s *sessionData) UnmarshalJSON(data []byte) error {
	// first try unmarshalling change message version
	var change struct {
		StatusSeries map[string]sessionDataStatusSeries `json:"StatusSeries"`
	}
	if err := json.Unmarshal(data, &change); err == nil {
		s.StatusSeries = change.StatusSeries
		return nil
	}
	// if that fails try unmarshalling reference message version
	var ref struct {
		StatusSeries []sessionDataStatusSeries `json:"StatusSeries"`
	}
	if err := json.Unmarshal(data, &ref); err != nil {
		return err
	}
	s.StatusSeries = make(map[string]sessionDataStatusSeries, len(ref.StatusSeries))
	for i, v := range ref.StatusSeries {
		s.StatusSeries[strconv.Itoa(i)] = v
	}
	return nil
}

// sessionDataStatusSeries contains a session and/or track status change.
type sessionDataStatusSeries struct {
	TrackStatus   *string `json:"TrackStatus"`
	SessionStatus *string `json:"SessionStatus"`
}

// lapCount represents the latest lap information of the session, including the `CurrentLap` of the
// leader in races.
type lapCount struct {
	CurrentLap *int `json:"CurrentLap"`
	TotalLaps  *int `json:"TotalLaps"`
}

// trackStatus is the current flag state of the circuit; Status is a numeric code.
type trackStatus struct {
	Status  *string `json:"Status"`
	Message *string `json:"Message"`
}

// negotiateResponse represents the response body of the F1 Live Timing negotiate API.
type negotiateResponse struct {
	URL             string `json:"Url"`
	ConnectionToken string `json:"ConnectionToken"`
	ConnectionID    string `json:"ConnectionId"`
	ProtocolVersion string `json:"ProtocolVersion"`
}
