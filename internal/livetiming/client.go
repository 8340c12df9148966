// Package livetiming listens to the F1 LiveTiming SignalR feed and reports the session that is
// currently running.
package livetiming

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"

	"github.com/coder/websocket"

	"github.com/bcdxn/f1cal/internal/domain"
)

const (
	DefaultHTTPBaseURL = "https://livetiming.formula1.com"
	DefaultWSBaseURL   = "wss://livetiming.formula1.com"
)

// New returns a new F1 LiveTiming API Client.
func New(opts ...ClientOption) *Client {
	// create a default instance of the client
	c := &Client{
		session:     domain.NewLiveSession(),
		sessionCh:   make(chan domain.LiveSession),
		doneCh:      make(chan error, 1),
		httpClient:  http.DefaultClient,
		logger:      slog.Default(),
		httpBaseURL: DefaultHTTPBaseURL,
		wsBaseURL:   DefaultWSBaseURL,
	}
	// apply given options
	for _, opt := range opts {
		opt(c)
	}
	// return new instance of the client
	return c
}

type Client struct {
	// Internal Session State
	session         domain.LiveSession
	connectionToken string
	cookie          string
	// channels
	sessionCh chan domain.LiveSession
	doneCh    chan error
	// F1 Live Timing API Configuration
	httpClient  *http.Client
	httpBaseURL string
	wsBaseURL   string
	// logger
	logger *slog.Logger
}

/* Client Optional Functional Parameters
------------------------------------------------------------------------------------------------- */

type ClientOption = func(c *Client)

// WithHTTPBaseURL configures the HTTP(S) URL of the F1 LiveTiming API; primarily used for testing.
func WithHTTPBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.httpBaseURL = baseURL }
}

// WithWSBaseURL configures the websocket URL of the F1 LiveTiming API; primarily used for
// testing.
func WithWSBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.wsBaseURL = baseURL }
}

// WithLogger configures the logger to use within the client.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

/* Client API
------------------------------------------------------------------------------------------------- */

// Session exposes the session channel as read-only; a full snapshot of the live session can be read
// from this channel on each update from the F1 LiveTiming API.
func (c *Client) Session() <-chan domain.LiveSession {
	return c.sessionCh
}

// Done allows the client to signal to the caller that it has exited; this can happen if an error
// occurs or if the websocket connection is closed by the server. A nil error is never sent; the
// channel is closed instead.
func (c *Client) Done() <-chan error {
	return c.doneCh
}

// Listen connects to the F1 LiveTiming API and processes messages until the context is cancelled
// or the connection is closed.
func (c *Client) Listen(ctx context.Context) {
	defer close(c.doneCh)
	if err := c.listen(ctx); err != nil {
		c.logger.Error("live timing client exited", "err", err)
		c.doneCh <- err
	}
}

func (c *Client) listen(ctx context.Context) error {
	// Call negotiate to get required token/cookie values
	if err := c.negotiate(ctx); err != nil {
		return err
	}
	// Derive the websocket URL
	u, err := c.websocketURL()
	if err != nil {
		return err
	}
	// Add required headers
	headers := make(http.Header)
	headers.Add("User-Agent", "BestHTTP")
	headers.Add("Accept-Encoding", "gzip,identity")
	headers.Add("Cookie", c.cookie)
	// Create the websocket connection with the F1 livetiming API server
	conn, _, err := websocket.Dial(ctx, u.String(), &websocket.DialOptions{HTTPHeader: headers})
	if err != nil {
		return fmt.Errorf("error dialing websocket: %w", err)
	}
	defer conn.CloseNow()
	// disable size limits as the F1 LiveTiming API sends some big messages
	conn.SetReadLimit(-1)
	// send subscribe message to start receiving messages from the F1 LiveTiming API
	if err := c.sendSubscribeMsg(ctx, conn); err != nil {
		return fmt.Errorf("error subscribing: %w", err)
	}

	for {
		_, msg, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				conn.Close(websocket.StatusNormalClosure, "client closed")
				return nil
			}
			return fmt.Errorf("error reading websocket: %w", err)
		}
		// No errors, process the message from the livetiming API
		c.processMessage(ctx, msg)
	}
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

// negotiate calls the F1 LiveTiming API, retrieving information required to start the websocket
// connection required to receive real-time updates.
func (c *Client) negotiate(ctx context.Context) error {
	req, err := c.negotiateRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending f1 livetiming api negotiation request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		ct, err := c.parseConnectionToken(resp.Body)
		if err != nil {
			return fmt.Errorf("error parsing connection token: %w", err)
		}
		c.connectionToken = ct
		c.cookie = resp.Header.Get("set-cookie")
		c.logger.Debug("successfully negotiated connection", "token_length", len(ct))
		return nil
	default:
		return fmt.Errorf("error negotiating f1 livetiming api connection: %w", errors.New(resp.Status))
	}
}

// negotiateRequest creates the HTTP request object that is required to initiate the connection to
// the F1 Live Timing Signalr API.
func (c *Client) negotiateRequest(ctx context.Context) (*http.Request, error) {
	u, err := url.Parse(c.httpBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTPBaseURL: %w", err)
	}
	u = &url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   "/signalr/negotiate",
		RawQuery: url.Values{
			"connectionData": {`[{"Name":"Streaming"}]`},
			"clientProtocol": {"1.5"},
		}.Encode(),
	}
	return http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
}

// sendSubscribeMsg sends a message that tells the server which types of data messages we would like
// to receive as required by the F1 Live Timing API.
func (*Client) sendSubscribeMsg(ctx context.Context, conn *websocket.Conn) error {
	return conn.Write(ctx, websocket.MessageText, []byte(`
      {
          "H": "Streaming",
          "M": "Subscribe",
          "A": [[
              "Heartbeat",
              "SessionInfo",
              "SessionData",
              "LapCount",
              "TrackStatus"
          ]],
          "I": 1
      }
  `))
}

// parseConnectionToken is a helper function that parses the negotiate response pulling out the
// connectionToken field from the body.
func (*Client) parseConnectionToken(body io.Reader) (string, error) {
	var n negotiateResponse
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.ConnectionToken, nil
}

// websocketURL is a helper method that generates the URL with appropriate query parameters
// required to start the websocket connection.
func (c *Client) websocketURL() (*url.URL, error) {
	u, err := url.Parse(c.wsBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid WSBaseURL: %w", err)
	}
	return &url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   "/signalr/connect",
		RawQuery: url.Values{
			"connectionData":  {`[{"Name":"Streaming"}]`},
			"connectionToken": {c.connectionToken},
			"clientProtocol":  {"1.5"},
			"transport":       {"webSockets"},
		}.Encode(),
	}, nil
}

var (
	// The F1 API returns a mixed-type map which makes ummarshalling to strongly typed structs
	// challenging, so we just strip the offending property from the message string using the kfRe
	// regular expression.
	kfRe = regexp.MustCompile(`,\s*"_kf":\s*(?:true|false)`)
)

// processMessage checks whether the message is a 'change' message or a 'reference' message and
// applies it to the session snapshot, publishing the snapshot when it changed.
func (c *Client) processMessage(ctx context.Context, msg []byte) {
	// Always try to parse a change message first since there is only 1 reference message and
	// many change messages over the course of a session
	var changeData f1ChangeMessage
	err := json.Unmarshal(msg, &changeData)
	if err == nil && len(changeData.ChangeSetID) > 0 && len(changeData.Messages) > 0 {
		c.logger.Debug("received change data message")
		if c.processChangeMessage(changeData) {
			c.publish(ctx)
		}
		return
	}
	// Next try to parse a reference data message
	var referenceData f1ReferenceMessage
	err = json.Unmarshal(kfRe.ReplaceAll(msg, nil), &referenceData)
	if err == nil && referenceData.Reference.SessionInfo != nil {
		c.logger.Debug("received reference data message")
		c.processReferenceMessage(referenceData)
		c.publish(ctx)
		return
	}
	// The message wasn't a known 'change' or 'reference' message type
	c.logger.Debug("unhandled message", "msg", string(msg))
}

// processChangeMessage applies the deltas of a change message and reports whether any of them
// touched the session snapshot.
func (c *Client) processChangeMessage(changeMessage f1ChangeMessage) bool {
	updated := false
	for _, m := range changeMessage.Messages {
		if m.Hub != "Streaming" || m.Message != "feed" || len(m.Arguments) < 2 {
			continue
		}
		var msgType string
		if err := json.Unmarshal(m.Arguments[0], &msgType); err != nil {
			c.logger.Warn("unable to read change message type", "err", err)
			continue
		}
		msgData := kfRe.ReplaceAll(m.Arguments[1], nil)
		switch msgType {
		case "SessionInfo":
			var s sessionInfo
			updated = c.unmarshal(msgType, msgData, &s) && c.updateSessionInfo(s) || updated
		case "SessionData":
			var s sessionData
			updated = c.unmarshal(msgType, msgData, &s) && c.updateSessionData(s) || updated
		case "LapCount":
			var lc lapCount
			updated = c.unmarshal(msgType, msgData, &lc) && c.updateLapCount(lc) || updated
		case "TrackStatus":
			var ts trackStatus
			updated = c.unmarshal(msgType, msgData, &ts) && c.updateTrackStatus(ts) || updated
		case "Heartbeat":
		default:
			c.logger.Debug("unknown change message", "type", msgType)
		}
	}
	return updated
}

func (c *Client) processReferenceMessage(referenceMessage f1ReferenceMessage) {
	ref := referenceMessage.Reference
	c.updateSessionInfo(*ref.SessionInfo)
	if ref.SessionData != nil {
		c.updateSessionData(*ref.SessionData)
	}
	if ref.LapCount != nil {
		c.updateLapCount(*ref.LapCount)
	}
	if ref.TrackStatus != nil {
		c.updateTrackStatus(*ref.TrackStatus)
	}
}

// unmarshal converts a change message payload to a strongly typed struct.
func (c *Client) unmarshal(msgType string, data []byte, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Warn("change msg in unknown format", "type", msgType, "msg", string(data))
		return false
	}
	return true
}

// publish writes the current snapshot for consumers to read unless the context was cancelled.
func (c *Client) publish(ctx context.Context) {
	select {
	case c.sessionCh <- c.session:
	case <-ctx.Done():
	}
}

/* Snapshot Updaters
------------------------------------------------------------------------------------------------- */

func (c *Client) updateSessionInfo(s sessionInfo) bool {
	setString(&c.session.MeetingName, s.Meeting.Name)
	setString(&c.session.CountryName, s.Meeting.Country.Name)
	setString(&c.session.Name, s.Name)
	setString(&c.session.Type, s.Type)
	return true
}

// updateSessionData applies the latest entry of the status series; keys are sequence numbers.
func (c *Client) updateSessionData(s sessionData) bool {
	keys := make([]int, 0, len(s.StatusSeries))
	for key := range s.StatusSeries {
		i, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		keys = append(keys, i)
	}
	sort.Ints(keys)
	updated := false
	for _, key := range keys {
		status := s.StatusSeries[strconv.Itoa(key)]
		if status.SessionStatus != nil {
			c.session.SessionStatus = domain.SessionStatus(*status.SessionStatus)
			updated = true
		}
		if status.TrackStatus != nil {
			c.session.TrackStatus = domain.TrackStatus(*status.TrackStatus)
			updated = true
		}
	}
	return updated
}

func (c *Client) updateLapCount(lc lapCount) bool {
	if lc.CurrentLap != nil {
		c.session.CurrentLap = *lc.CurrentLap
	}
	if lc.TotalLaps != nil {
		c.session.TotalLaps = *lc.TotalLaps
	}
	return lc.CurrentLap != nil || lc.TotalLaps != nil
}

// track status codes as published in the TrackStatus topic
var trackStatusCodes = map[string]domain.TrackStatus{
	"1": domain.TrackStatusAllClear,
	"2": domain.TrackStatusYellow,
	"4": domain.TrackStatusSCDeployed,
	"5": domain.TrackStatusRed,
	"6": domain.TrackStatusVSCDeployed,
	"7": domain.TrackStatusVSCEnding,
}

func (c *Client) updateTrackStatus(ts trackStatus) bool {
	if ts.Status == nil {
		return false
	}
	status, ok := trackStatusCodes[*ts.Status]
	if !ok {
		status = domain.TrackStatusUnknown
	}
	c.session.TrackStatus = status
	return true
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
