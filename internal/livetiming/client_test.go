package livetiming

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/bcdxn/f1cal/internal/domain"
)

func TestProcessReferenceMessage(t *testing.T) {
	t.Parallel()
	ref := readTestdata(t, "ref-msg-race.json")

	c := New(WithLogger(testLogger(t)))
	go c.processMessage(context.Background(), ref)

	session := receive(t, c)
	if session.MeetingName != "Australian Grand Prix" {
		t.Errorf("expected meeting name '%s' but found '%s'", "Australian Grand Prix", session.MeetingName)
	}
	if session.CountryName != "Australia" {
		t.Errorf("expected country '%s' but found '%s'", "Australia", session.CountryName)
	}
	if session.Type != "Race" {
		t.Errorf("expected session type '%s' but found '%s'", "Race", session.Type)
	}
	if session.CurrentLap != 12 || session.TotalLaps != 58 {
		t.Errorf("expected lap %d/%d but found %d/%d", 12, 58, session.CurrentLap, session.TotalLaps)
	}
	if session.TrackStatus != domain.TrackStatusSCDeployed {
		t.Errorf("expected track status '%s' but found '%s'", domain.TrackStatusSCDeployed, session.TrackStatus)
	}
	if session.SessionStatus != domain.SessionStatusStarted {
		t.Errorf("expected session status '%s' but found '%s'", domain.SessionStatusStarted, session.SessionStatus)
	}
}

func TestProcessChangeMessage(t *testing.T) {
	t.Parallel()
	ref := readTestdata(t, "ref-msg-race.json")
	change := readTestdata(t, "ch-msg-race.json")

	c := New(WithLogger(testLogger(t)))
	go func() {
		c.processMessage(context.Background(), ref)
		c.processMessage(context.Background(), change)
	}()

	receive(t, c)
	session := receive(t, c)
	if session.CurrentLap != 13 {
		t.Errorf("expected lap %d but found %d", 13, session.CurrentLap)
	}
	if session.TotalLaps != 58 {
		t.Errorf("expected total laps %d but found %d", 58, session.TotalLaps)
	}
	if session.TrackStatus != domain.TrackStatusAllClear {
		t.Errorf("expected track status '%s' but found '%s'", domain.TrackStatusAllClear, session.TrackStatus)
	}
	if session.SessionStatus != domain.SessionStatusFinished {
		t.Errorf("expected session status '%s' but found '%s'", domain.SessionStatusFinished, session.SessionStatus)
	}
	if session.MeetingName != "Australian Grand Prix" {
		t.Errorf("expected meeting name to survive change messages but found '%s'", session.MeetingName)
	}
}

func TestProcessUnknownMessage(t *testing.T) {
	t.Parallel()
	c := New(WithLogger(testLogger(t)))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	for _, msg := range []string{`{}`, `{"C":"x","M":[{"H":"Streaming","M":"feed","A":["Heartbeat",{}]}]}`, `not json`} {
		c.processMessage(ctx, []byte(msg))
	}
	select {
	case s := <-c.Session():
		t.Errorf("expected no session update but found %+v", s)
	default:
	}
}

func TestUpdateTrackStatus(t *testing.T) {
	tests := map[string]domain.TrackStatus{
		"1": domain.TrackStatusAllClear,
		"2": domain.TrackStatusYellow,
		"4": domain.TrackStatusSCDeployed,
		"5": domain.TrackStatusRed,
		"6": domain.TrackStatusVSCDeployed,
		"7": domain.TrackStatusVSCEnding,
		"9": domain.TrackStatusUnknown,
	}
	for code, expected := range tests {
		t.Run(code, func(t *testing.T) {
			c := New(WithLogger(testLogger(t)))
			if !c.updateTrackStatus(trackStatus{Status: &code}) {
				t.Fatalf("expected track status update to be reported")
			}
			if c.session.TrackStatus != expected {
				t.Errorf("expected track status '%s' but found '%s'", expected, c.session.TrackStatus)
			}
		})
	}
}

func TestListen(t *testing.T) {
	t.Parallel()
	ref := readTestdata(t, "ref-msg-race.json")

	mux := http.NewServeMux()
	mux.HandleFunc("/signalr/negotiate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected method '%s' but found '%s'", http.MethodPost, r.Method)
		}
		http.SetCookie(w, &http.Cookie{Name: "GCLB", Value: "abc"})
		io.WriteString(w, `{"Url":"/signalr","ConnectionToken":"token-123","ConnectionId":"id","ProtocolVersion":"1.5"}`)
	})
	mux.HandleFunc("/signalr/connect", func(w http.ResponseWriter, r *http.Request) {
		if token := r.URL.Query().Get("connectionToken"); token != "token-123" {
			t.Errorf("expected connection token '%s' but found '%s'", "token-123", token)
		}
		if !strings.Contains(r.Header.Get("Cookie"), "GCLB=abc") {
			t.Errorf("expected negotiated cookie to be forwarded but found '%s'", r.Header.Get("Cookie"))
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Errorf("unable to accept websocket: %v", err)
			return
		}
		defer conn.CloseNow()
		_, subscribe, err := conn.Read(r.Context())
		if err != nil {
			t.Errorf("unable to read subscribe message: %v", err)
			return
		}
		if !strings.Contains(string(subscribe), "TrackStatus") {
			t.Errorf("expected subscribe message to request TrackStatus but found %s", subscribe)
		}
		conn.Write(r.Context(), websocket.MessageText, ref)
		conn.Close(websocket.StatusNormalClosure, "")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(
		WithLogger(testLogger(t)),
		WithHTTPBaseURL(srv.URL),
		WithWSBaseURL("ws"+strings.TrimPrefix(srv.URL, "http")),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go c.Listen(ctx)

	session := receive(t, c)
	if session.Name != "Race" {
		t.Errorf("expected session name '%s' but found '%s'", "Race", session.Name)
	}
	select {
	case err, ok := <-c.Done():
		if ok && err != nil {
			t.Errorf("expected clean exit but found %v", err)
		}
	case <-ctx.Done():
		t.Errorf("expected client to exit after server closed the connection")
	}
}

func TestListenNegotiateError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(WithLogger(testLogger(t)), WithHTTPBaseURL(srv.URL))
	go c.Listen(context.Background())

	select {
	case err := <-c.Done():
		if err == nil {
			t.Fatalf("expected negotiate error but found nil")
		}
		if !strings.Contains(err.Error(), "503") {
			t.Errorf("expected error to contain status but found '%v'", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for client exit")
	}
}

/* Test Helpers
------------------------------------------------------------------------------------------------- */

func receive(t *testing.T, c *Client) domain.LiveSession {
	t.Helper()
	select {
	case s := <-c.Session():
		return s
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for session update")
	}
	return domain.LiveSession{}
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(path.Join(testdataDir(), name))
	if err != nil {
		t.Fatalf("unable to read testdata '%s': %v", name, err)
	}
	return b
}

func testdataDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata")
}

func testLogger(_ *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
