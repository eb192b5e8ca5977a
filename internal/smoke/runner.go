package smoke

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
	"github.com/okian/olympus/pkg/logger"
)

// Defaults applied to zero Config fields.
const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultWorkers = 8
	DefaultTimeout = 10 * time.Second
)

// Run executes the complete smoke check and returns the collected statistics.
// A non-nil error wrapping ErrInconsistent means the service answered but its pages disagree.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	cfg := withDefaults(config)
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get().Named("smoke")
	client := newHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout)

	log.Info(ctx, "starting olympus smoke check",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
		logger.Bool("verbose", cfg.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, log); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch filters and the all-time NOC table
	var ov types.Overview
	if err := client.getJSON(ctx, "/api/v1/overview", &ov); err != nil {
		return stats, fmt.Errorf("overview retrieval failed: %w", err)
	}
	if ov.Empty {
		return stats, fmt.Errorf("%w: %s", ErrEmptyDataset, ov.Reason)
	}
	var opts model.FilterOptions
	if err := client.getJSON(ctx, "/api/v1/filters", &opts); err != nil {
		return stats, fmt.Errorf("filter retrieval failed: %w", err)
	}
	var table types.MedalTable
	if err := client.getJSON(ctx, "/api/v1/medals?by=noc", &table); err != nil {
		return stats, fmt.Errorf("medal table retrieval failed: %w", err)
	}
	stats.PagesRequested += 3
	stats.TableRows = len(table.Rows)

	var mu sync.Mutex
	report := func(v ...string) {
		if len(v) == 0 {
			return
		}
		mu.Lock()
		stats.Violations = append(stats.Violations, v...)
		mu.Unlock()
	}
	report(checkTable("all-time NOC table", table.Rows)...)
	report(checkOverview(ov, opts)...)

	// Step 3: Crawl every country and year page concurrently
	totals := make(map[string]medals.Counts, len(table.Rows))
	for _, e := range table.Rows {
		totals[e.Name] = e.Counts
	}
	fetched := func(n int, ok bool) {
		mu.Lock()
		stats.PagesRequested += n
		if !ok {
			stats.PagesFailed++
		}
		mu.Unlock()
	}
	err := crawl(ctx, cfg.Workers, func(group pond.TaskGroup) {
		for _, noc := range opts.NOCs {
			group.Submit(func() {
				v, err := checkCountry(ctx, client, noc, totals[noc])
				fetched(1, err == nil)
				if err != nil {
					report(fmt.Sprintf("country %s: %v", noc, err))
					return
				}
				report(v...)
				mu.Lock()
				stats.CountriesChecked++
				mu.Unlock()
				if cfg.Verbose {
					log.Debug(ctx, "country checked", logger.String("noc", noc))
				}
			})
		}
		for _, year := range opts.Years {
			group.Submit(func() {
				v, n, err := checkYear(ctx, client, year)
				fetched(n, err == nil)
				if err != nil {
					report(fmt.Sprintf("year %d: %v", year, err))
					return
				}
				report(v...)
				mu.Lock()
				stats.YearsChecked++
				mu.Unlock()
				if cfg.Verbose {
					log.Debug(ctx, "year checked", logger.Int("year", year))
				}
			})
		}
	})
	if err != nil {
		return stats, fmt.Errorf("crawl failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if len(stats.Violations) > 0 {
		for _, v := range stats.Violations {
			log.Warn(ctx, "consistency violation", logger.String("detail", v))
		}
		return stats, fmt.Errorf("%w: %d violations", ErrInconsistent, len(stats.Violations))
	}
	log.Info(ctx, "smoke check passed")
	return stats, nil
}

// crawl runs submit against a bounded pool and waits for every task.
func crawl(ctx context.Context, workers int, submit func(pond.TaskGroup)) error {
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	submit(group)
	if err := group.Wait(); err != nil && !errors.Is(err, pond.ErrGroupStopped) {
		return err
	}
	return ctx.Err()
}

func withDefaults(config *Config) Config {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *httpClient, log logger.Logger) error {
	log.Info(ctx, "checking service health")

	resp, err := client.get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 is healthy; the body is Prometheus text.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}

	log.Info(ctx, "service is healthy")
	return nil
}

// checkCountry compares a country profile with its row in the all-time NOC table.
func checkCountry(ctx context.Context, client *httpClient, noc string, want medals.Counts) ([]string, error) {
	var p types.CountryProfile
	if err := client.getJSON(ctx, "/api/v1/countries/"+url.PathEscape(noc), &p); err != nil {
		return nil, err
	}
	var v []string
	if p.Medals != want {
		v = append(v, fmt.Sprintf("country %s: profile medals %+v, table row %+v", noc, p.Medals, want))
	}
	v = append(v, checkCounts("country "+noc, p.Medals)...)

	var byYear medals.Counts
	for _, y := range p.MedalsByYear {
		byYear = byYear.Plus(y.Counts)
	}
	if byYear != p.Medals {
		v = append(v, fmt.Sprintf("country %s: yearly medals sum to %+v, total is %+v", noc, byYear, p.Medals))
	}
	return v, nil
}

// checkYear compares a year summary table with the medal table filtered to that year.
// It returns the number of pages fetched alongside any violations.
func checkYear(ctx context.Context, client *httpClient, year int) ([]string, int, error) {
	var sum types.YearSummary
	if err := client.getJSON(ctx, "/api/v1/years/"+strconv.Itoa(year), &sum); err != nil {
		return nil, 1, err
	}
	label := fmt.Sprintf("year %d", year)
	v := checkTable(label, sum.Table)
	if len(sum.Table) == 0 {
		return v, 1, nil
	}

	var table types.MedalTable
	path := fmt.Sprintf("/api/v1/medals?year=%d&by=noc&limit=%d", year, len(sum.Table))
	if err := client.getJSON(ctx, path, &table); err != nil {
		return nil, 2, err
	}
	return append(v, compareTables(label, sum.Table, table.Rows)...), 2, nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var pagesPerSecond float64
	if stats.Duration > 0 {
		pagesPerSecond = float64(stats.PagesRequested) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("pagesRequested", stats.PagesRequested),
		logger.Int("pagesFailed", stats.PagesFailed),
		logger.Int("countriesChecked", stats.CountriesChecked),
		logger.Int("yearsChecked", stats.YearsChecked),
		logger.Int("tableRows", stats.TableRows),
		logger.Int("violations", len(stats.Violations)),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("pagesPerSecond", pagesPerSecond))
}
