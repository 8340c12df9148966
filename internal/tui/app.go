// Package tui renders the season calendar, the championship standings and the race detail dialog
// as a Bubbletea program.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/i18n"
	"github.com/bcdxn/f1cal/internal/racewindow"
	"github.com/bcdxn/f1cal/internal/tui/styles"
)

var (
	s = styles.Default()
)

// Source provides the schedule, standings and results displayed by the TUI.
type Source interface {
	Schedule(ctx context.Context, season string) ([]domain.Race, error)
	DriverStandings(ctx context.Context, season string) (domain.DriverStandings, error)
	ConstructorStandings(ctx context.Context, season string) (domain.ConstructorStandings, error)
	Results(ctx context.Context, season string, round int) (domain.RaceResult, error)
}

// New returns a new Bubbletea program displaying the calendar of the configured season.
func New(source Source, opts ...TUIOption) *tea.Program {
	m := NewModel(source, opts...)
	return tea.NewProgram(m, tea.WithContext(m.ctx), tea.WithAltScreen())
}

// NewModel returns the initial state of the TUI; the schedule and standings are requested by Init.
func NewModel(source Source, opts ...TUIOption) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		ctx:      context.Background(),
		logger:   slog.Default(),
		source:   source,
		season:   "current",
		locale:   i18n.New(),
		resolver: racewindow.NewResolver(),
		spinner:  sp,
		loading:  true,
		results:  make(map[int]resultsState),
	}
	// apply given options
	for _, opt := range opts {
		opt(&m)
	}
	m.drivers = newDriversTable(m.locale, domain.DriverStandings{})
	m.constructors = newConstructorsTable(m.locale, domain.ConstructorStandings{})
	return m
}

type TUIOption = func(m *Model)

// WithLogger configures the logger to use within the TUI program
func WithLogger(l *slog.Logger) TUIOption {
	return func(m *Model) { m.logger = l }
}

// WithContext configures the context to use within the TUI program
func WithContext(ctx context.Context) TUIOption {
	return func(m *Model) { m.ctx = ctx }
}

// WithSeason selects the season to display, e.g. "2026" or "current".
func WithSeason(season string) TUIOption {
	return func(m *Model) { m.season = season }
}

// WithLocale configures the language and timezone of the TUI.
func WithLocale(l i18n.Locale) TUIOption {
	return func(m *Model) { m.locale = l }
}

// WithResolver configures how races are classified; primarily used for testing with a fixed clock.
func WithResolver(r racewindow.Resolver) TUIOption {
	return func(m *Model) { m.resolver = r }
}

/* Bubbletea Interface Implementation
------------------------------------------------------------------------------------------------- */

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.source, m.season))
}

func (m Model) View() string {
	return s.Doc.Render(view(m))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)
	case LoadedMsg:
		return handleLoadedMsg(m, msg)
	case ErrMsg:
		return handleErrMsg(m, msg)
	case TickMsg:
		return handleTickMsg(m, msg)
	case ResultsMsg:
		return handleResultsMsg(m, msg)
	case LiveSessionMsg:
		return handleLiveSessionMsg(m, msg)
	case LiveDoneMsg:
		m.live = nil
		return m, nil
	case spinner.TickMsg:
		if !m.spinning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

/* Type Definitions
------------------------------------------------------------------------------------------------- */

type tab int

const (
	tabCalendar tab = iota
	tabDrivers
	tabConstructors
	tabCount
)

type Model struct {
	ctx      context.Context
	logger   *slog.Logger
	source   Source
	season   string
	locale   i18n.Locale
	resolver racewindow.Resolver
	// view state
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
	tab     tab
	// calendar tab
	races   []domain.Race
	cursor  int
	detail  bool
	tickGen int
	// standings tabs
	driverStandings      domain.DriverStandings
	constructorStandings domain.ConstructorStandings
	drivers              table.Model
	constructors         table.Model
	// results of past races keyed by round
	results map[int]resultsState
	// latest snapshot from the live timing feed
	live *domain.LiveSession
}

// resultsState tracks the results request made for a past race. Only a race that has not been
// classified yet is requested again.
type resultsState struct {
	loading bool
	retry   bool
	result  domain.RaceResult
	err     error
}

// spinning reports whether anything on screen is waiting for data.
func (m Model) spinning() bool {
	if m.loading {
		return true
	}
	for _, r := range m.results {
		if r.loading {
			return true
		}
	}
	return false
}

// selected returns the race under the cursor.
func (m Model) selected() (domain.Race, bool) {
	if m.cursor < 0 || m.cursor >= len(m.races) {
		return domain.Race{}, false
	}
	return m.races[m.cursor], true
}
