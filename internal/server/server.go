// Package server publishes the season calendar over HTTP as an iCalendar feed and a JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/julienschmidt/httprouter"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/i18n"
	"github.com/bcdxn/f1cal/internal/racewindow"
)

// Source provides the schedule and results served over HTTP.
type Source interface {
	Schedule(ctx context.Context, season string) ([]domain.Race, error)
	Results(ctx context.Context, season string, round int) (domain.RaceResult, error)
}

// New returns a server for the given season data.
func New(source Source, opts ...ServerOption) *Server {
	s := &Server{
		source:   source,
		season:   "current",
		locale:   i18n.New(),
		resolver: racewindow.NewResolver(),
		logger:   slog.Default(),
		cacheTTL: 5 * time.Minute,
	}
	// apply given options
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Server struct {
	source    Source
	season    string
	locale    i18n.Locale
	resolver  racewindow.Resolver
	logger    *slog.Logger
	accessLog io.Writer
	cacheTTL  time.Duration
}

/* Server Optional Functional Parameters
------------------------------------------------------------------------------------------------- */

type ServerOption = func(s *Server)

// WithSeason selects the season served, e.g. "2026" or "current".
func WithSeason(season string) ServerOption {
	return func(s *Server) { s.season = season }
}

// WithLocale configures the default language and timezone; clients may ask for another language.
func WithLocale(l i18n.Locale) ServerOption {
	return func(s *Server) { s.locale = l }
}

// WithResolver configures how races are classified; primarily used for testing with a fixed clock.
func WithResolver(r racewindow.Resolver) ServerOption {
	return func(s *Server) { s.resolver = r }
}

// WithLogger configures the logger to use within the server.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// WithAccessLog writes an Apache style access log to w.
func WithAccessLog(w io.Writer) ServerOption {
	return func(s *Server) { s.accessLog = w }
}

// WithCacheTTL sets the max-age advertised to clients; zero disables cache headers.
func WithCacheTTL(ttl time.Duration) ServerOption {
	return func(s *Server) { s.cacheTTL = ttl }
}

/* Server API
------------------------------------------------------------------------------------------------- */

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/calendar.ics", s.Calendar)
	router.GET("/api/races", s.Races)
	router.GET("/api/races/:round/results", s.Results)

	var h http.Handler = handlers.CompressHandler(router)
	if s.accessLog != nil {
		h = handlers.LoggingHandler(s.accessLog, h)
	}
	return h
}

// ListenAndServe serves on addr until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "season", s.season)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("error serving http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down http server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error serving http: %w", err)
		}
		return nil
	}
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

// localeFor picks the language from the `hl` query parameter, then Accept-Language.
func (s *Server) localeFor(r *http.Request) i18n.Locale {
	lang := r.URL.Query().Get("hl")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	if lang == "" {
		return s.locale
	}
	return i18n.New(i18n.WithLanguage(lang), i18n.WithLocation(s.locale.Location()))
}

func (s *Server) addExpireHeaders(w http.ResponseWriter) {
	if s.cacheTTL <= 0 {
		return
	}
	w.Header().Add("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cacheTTL.Seconds())))
	w.Header().Add("Expires", s.resolver.Now().Add(s.cacheTTL).UTC().Format(http.TimeFormat))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
