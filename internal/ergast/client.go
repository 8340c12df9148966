// Package ergast is a client for the Ergast-compatible Formula 1 results API. It retrieves the season
// schedule, championship standings and race results and converts them to domain models.
package ergast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bcdxn/f1cal/internal/domain"
)

const (
	DefaultBaseURL = "https://api.jolpi.ca/ergast/f1"
	// CurrentSeason can be passed in place of a year to address the season in progress.
	CurrentSeason = "current"
)

var (
	// ErrUnexpectedStatus is returned when the API responds with a non-200 status code.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrNoResults is returned when the API has no results for the requested race yet.
	ErrNoResults = errors.New("no results available")
)

// New returns a new Ergast API Client.
func New(opts ...ClientOption) Client {
	// create a default instance of the client
	c := Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
	}
	// apply given options
	for _, opt := range opts {
		opt(&c)
	}
	// return new instance of the client
	return c
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

/* Client Optional Functional Parameters
------------------------------------------------------------------------------------------------- */

type ClientOption = func(c *Client)

// WithHTTPBaseURL configures the base URL of the API; primarily used for testing.
func WithHTTPBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient configures the HTTP client used to send requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger configures the logger to use within the client.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

/* Client API
------------------------------------------------------------------------------------------------- */

// Schedule retrieves every race of the given season in round order.
func (c Client) Schedule(ctx context.Context, season string) ([]domain.Race, error) {
	var data mrData
	if err := c.get(ctx, season+".json", &data); err != nil {
		return nil, fmt.Errorf("error fetching %s schedule: %w", season, err)
	}
	if data.MRData.RaceTable == nil {
		return []domain.Race{}, nil
	}
	races := make([]domain.Race, 0, len(data.MRData.RaceTable.Races))
	for _, r := range data.MRData.RaceTable.Races {
		races = append(races, toRace(r))
	}
	c.logger.Debug("fetched schedule", "season", season, "races", len(races))
	return races, nil
}

// DriverStandings retrieves the drivers' championship table of the given season.
func (c Client) DriverStandings(ctx context.Context, season string) (domain.DriverStandings, error) {
	var data mrData
	if err := c.get(ctx, season+"/driverStandings.json", &data); err != nil {
		return domain.DriverStandings{}, fmt.Errorf("error fetching %s driver standings: %w", season, err)
	}
	list, ok := firstStandingsList(data)
	if !ok {
		return domain.DriverStandings{Season: season}, nil
	}
	standings := domain.DriverStandings{
		Season:    list.Season,
		Round:     atoi(list.Round),
		Standings: make([]domain.DriverStanding, 0, len(list.DriverStandings)),
	}
	for _, s := range list.DriverStandings {
		standings.Standings = append(standings.Standings, toDriverStanding(s))
	}
	return standings, nil
}

// ConstructorStandings retrieves the constructors' championship table of the given season.
func (c Client) ConstructorStandings(ctx context.Context, season string) (domain.ConstructorStandings, error) {
	var data mrData
	if err := c.get(ctx, season+"/constructorStandings.json", &data); err != nil {
		return domain.ConstructorStandings{}, fmt.Errorf("error fetching %s constructor standings: %w", season, err)
	}
	list, ok := firstStandingsList(data)
	if !ok {
		return domain.ConstructorStandings{Season: season}, nil
	}
	standings := domain.ConstructorStandings{
		Season:    list.Season,
		Round:     atoi(list.Round),
		Standings: make([]domain.ConstructorStanding, 0, len(list.ConstructorStandings)),
	}
	for _, s := range list.ConstructorStandings {
		standings.Standings = append(standings.Standings, toConstructorStanding(s))
	}
	return standings, nil
}

// Results retrieves the classification of a single race. ErrNoResults is returned when the race has
// not been classified yet.
func (c Client) Results(ctx context.Context, season string, round int) (domain.RaceResult, error) {
	var data mrData
	if err := c.get(ctx, fmt.Sprintf("%s/%d/results.json", season, round), &data); err != nil {
		return domain.RaceResult{}, fmt.Errorf("error fetching results of %s round %d: %w", season, round, err)
	}
	if data.MRData.RaceTable == nil || len(data.MRData.RaceTable.Races) == 0 {
		return domain.RaceResult{}, ErrNoResults
	}
	r := data.MRData.RaceTable.Races[0]
	if len(r.Results) == 0 {
		return domain.RaceResult{}, ErrNoResults
	}
	rr := domain.RaceResult{
		Race:    toRace(r),
		Results: make([]domain.Result, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		rr.Results = append(rr.Results, toResult(res))
	}
	return rr, nil
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

// get sends a GET request for the given API path and decodes the JSON response body into v.
func (c Client) get(ctx context.Context, path string, v any) error {
	u, err := c.url(path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sending api request", "url", u.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("error reading response body: %w", err)
		}
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("error parsing response body: %w", err)
		}
		return nil
	default:
		c.logger.Warn("unexpected api response", "url", u.String(), "status", resp.StatusCode)
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
}

// url builds the full request URL for an API path. The limit is raised so that a whole season fits
// in a single page.
func (c Client) url(path string) (*url.URL, error) {
	u, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTPBaseURL: %w", err)
	}
	u.RawQuery = url.Values{"limit": {"100"}}.Encode()
	return u, nil
}

func firstStandingsList(data mrData) (standingsList, bool) {
	t := data.MRData.StandingsTable
	if t == nil || len(t.StandingsLists) == 0 {
		return standingsList{}, false
	}
	return t.StandingsLists[0], true
}
