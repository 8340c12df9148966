package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcdxn/f1cal/internal/calendar"
	"github.com/bcdxn/f1cal/internal/config"
	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/ergast"
	"github.com/bcdxn/f1cal/internal/i18n"
	"github.com/bcdxn/f1cal/internal/livetiming"
	"github.com/bcdxn/f1cal/internal/logger"
	"github.com/bcdxn/f1cal/internal/server"
	"github.com/bcdxn/f1cal/internal/tui"
)

const usage = `usage: f1cal [tui|ics|serve] [flags]

  tui     browse the season calendar and standings (default)
  ics     export the season as an iCalendar file
  serve   serve the calendar feed and JSON API over HTTP
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := "tui"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("f1cal "+cmd, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	configFile := fs.String("config", "", "path to a YAML config file (default ./f1cal.yaml if present)")
	var overrides config.Config
	fs.StringVar(&overrides.Season, "season", "", "season to show, e.g. 2026 or current")
	fs.StringVar(&overrides.Locale.Language, "lang", "", "display language (cs or en)")
	fs.StringVar(&overrides.Locale.Timezone, "tz", "", "timezone dates are displayed in")
	fs.StringVar(&overrides.Log.File, "log-file", "", "file to write logs to")
	fs.StringVar(&overrides.Log.Level, "log-level", "", "log level (debug, info, warn, error)")
	var out string
	var logRequests bool
	switch cmd {
	case "tui":
	case "ics":
		fs.StringVar(&out, "o", "", "file to write the calendar to (default stdout)")
	case "serve":
		fs.StringVar(&overrides.Server.Addr, "addr", "", "address to listen on")
		fs.BoolVar(&logRequests, "log-requests", false, "log requests to stdout")
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []config.Option{config.WithOverrides(overrides), config.WithSearchPaths(searchPaths()...)}
	if *configFile != "" {
		opts = append(opts, config.WithFile(*configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	l, closer, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
	}
	defer closer.Close()
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	locale := i18n.New(i18n.WithLanguage(cfg.Locale.Language), i18n.WithLocation(loc))
	client := ergast.New(
		ergast.WithHTTPBaseURL(cfg.API.BaseURL),
		ergast.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		ergast.WithLogger(l),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "ics":
		return runICS(ctx, cfg, client, locale, out)
	case "serve":
		var accessLog io.Writer
		if logRequests {
			accessLog = os.Stdout
		}
		srv := server.New(client,
			server.WithSeason(cfg.Season),
			server.WithLocale(locale),
			server.WithLogger(l),
			server.WithAccessLog(accessLog),
			server.WithCacheTTL(cfg.Server.CacheTTL),
		)
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	default:
		return runTUI(ctx, cfg, l, client, locale)
	}
}

// searchPaths lists where f1cal.yaml is looked up: the working directory, then the user's config
// directory.
func searchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "f1cal"))
	}
	return paths
}

func runICS(ctx context.Context, cfg config.Config, client ergast.Client, locale i18n.Locale, out string) error {
	races, err := client.Schedule(ctx, cfg.Season)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	name := "F1 " + cfg.Season
	if len(races) > 0 {
		name = "F1 " + races[0].Season
	}
	return calendar.Write(w, races, calendar.WithName(name), calendar.WithLocale(locale))
}

func runTUI(ctx context.Context, cfg config.Config, l *slog.Logger, client ergast.Client, locale i18n.Locale) error {
	ctx, cancelCtx := context.WithCancel(ctx)
	defer cancelCtx()
	// Create a wait group that ensures both live timing client *and* TUI exit gracefully if either exits
	wg := sync.WaitGroup{}
	// create TUI
	program := tui.New(client,
		tui.WithContext(ctx),
		tui.WithLogger(l),
		tui.WithSeason(cfg.Season),
		tui.WithLocale(locale),
	)
	var tuiErr error
	wg.Add(1)
	go func() {
		defer cancelCtx() // cancel the shared context between TUI and Client if either exits
		defer wg.Done()
		if _, err := program.Run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tea.ErrProgramKilled) {
			tuiErr = err
		}
		l.Debug("tui exited")
	}()

	// the live timing feed is optional; without it the channels stay nil and never fire
	var (
		sessions <-chan domain.LiveSession
		done     <-chan error
	)
	if cfg.LiveTiming.Enabled {
		live := livetiming.New(
			livetiming.WithHTTPBaseURL(cfg.LiveTiming.HTTPURL),
			livetiming.WithWSBaseURL(cfg.LiveTiming.WSURL),
			livetiming.WithLogger(l),
		)
		sessions, done = live.Session(), live.Done()
		wg.Add(1)
		go func() {
			defer wg.Done()
			live.Listen(ctx)
			l.Debug("live timing client exited")
		}()
	}

	// pass messages between client and TUI
	for {
		select {
		case <-ctx.Done():
			l.Debug("context done")
			wg.Wait()
			return tuiErr
		case err, ok := <-done:
			if ok && err != nil {
				l.Warn("live timing unavailable", "err", err)
			}
			done, sessions = nil, nil
			program.Send(tui.LiveDoneMsg{})
		case session := <-sessions:
			program.Send(tui.LiveSessionMsg(session))
		}
	}
}
