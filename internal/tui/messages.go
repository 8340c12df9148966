package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/bcdxn/f1cal/internal/domain"
)

/* Tea Message Types
------------------------------------------------------------------------------------------------- */

// LoadedMsg carries the schedule and standings of the season.
type LoadedMsg struct {
	Races        []domain.Race
	Drivers      domain.DriverStandings
	Constructors domain.ConstructorStandings
}

// ErrMsg reports a failure to load the season; it replaces the whole view.
type ErrMsg struct {
	Err error
}

// TickMsg drives the countdown. Ticks from an older generation are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// ResultsMsg carries the outcome of a results request for a past race.
type ResultsMsg struct {
	Round  int
	Result domain.RaceResult
	Err    error
}

// LiveSessionMsg is the latest snapshot from the live timing feed.
type LiveSessionMsg domain.LiveSession

// LiveDoneMsg signals that the live timing feed is no longer available.
type LiveDoneMsg struct{}

/* Tea Commands
------------------------------------------------------------------------------------------------- */

// loadCmd fetches the schedule and both standings tables concurrently.
func loadCmd(ctx context.Context, source Source, season string) tea.Cmd {
	return func() tea.Msg {
		var msg LoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			races, err := source.Schedule(gctx, season)
			msg.Races = races
			return err
		})
		g.Go(func() error {
			drivers, err := source.DriverStandings(gctx, season)
			msg.Drivers = drivers
			return err
		})
		g.Go(func() error {
			constructors, err := source.ConstructorStandings(gctx, season)
			msg.Constructors = constructors
			return err
		})
		if err := g.Wait(); err != nil {
			return ErrMsg{Err: err}
		}
		return msg
	}
}

// tickCmd schedules the next countdown refresh.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// resultsCmd fetches the classification of a single race.
func resultsCmd(ctx context.Context, source Source, season string, round int) tea.Cmd {
	return func() tea.Msg {
		result, err := source.Results(ctx, season, round)
		return ResultsMsg{Round: round, Result: result, Err: err}
	}
}
