package racewindow

import (
	"time"

	"github.com/bcdxn/f1cal/internal/domain"
)

// NewResolver returns a Resolver that evaluates races against the current wall clock.
func NewResolver(opts ...ResolverOption) Resolver {
	r := Resolver{
		now: time.Now,
	}
	// apply given options
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Resolver binds the pure functions of this package to a clock so presentation code can classify
// races without threading the current instant through every call.
type Resolver struct {
	now func() time.Time
}

type ResolverOption = func(r *Resolver)

// WithClock configures the source of the current instant; primarily used for testing.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// Now returns the resolver's current instant.
func (r Resolver) Now() time.Time {
	return r.now()
}

// Window computes the window of all sessions of the race.
func (r Resolver) Window(race domain.Race) *Window {
	return ComputeWindow(race.Sessions())
}

// Classify classifies the race at the current instant, deriving the past hint from the window.
func (r Resolver) Classify(race domain.Race) Classification {
	now := r.now()
	w := r.Window(race)
	return Classify(w, now, IsPast(w, now))
}

// Remaining returns the countdown from the current instant to target.
func (r Resolver) Remaining(target time.Time) (Remaining, bool) {
	return ComputeRemaining(target, r.now())
}

// SessionLive reports whether the session is running at the current instant.
func (r Resolver) SessionLive(s domain.Session) bool {
	return IsSessionLive(s, r.now())
}

// NextRace returns the next race to start at the current instant.
func (r Resolver) NextRace(races []domain.Race) (domain.Race, bool) {
	return NextRace(races, r.now())
}
