// Package service provides the application service behind the HTTP API. It
// owns the loaded dataset and computes every dashboard page from it.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/okian/olympus/internal/adapters/dataset"
	"github.com/okian/olympus/internal/adapters/repository"
	"github.com/okian/olympus/internal/domain/insights"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
	"github.com/okian/olympus/pkg/logger"
	"github.com/okian/olympus/pkg/metrics"
)

const (
	defaultTopLimit  = 20
	countryTopSports = 10
	sportTopNOCs     = 15
	ageHistogramBins = 20
)

// state is everything derived from one load. It is never modified after Start.
type state struct {
	out   *dataset.Outcome
	store repository.Store
	hdi   *insights.HDIIndex
}

// Service implements the API dependencies for the analytics dashboard.
type Service struct {
	mu sync.RWMutex

	// Configuration
	source   dataset.Source
	unit     medals.Unit
	topLimit int
	clock    clockwork.Clock
	preload  *dataset.Outcome

	// State
	st        *state
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets the input files loaded by Start.
func WithSource(src dataset.Source) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithUnit sets the default counting unit of medal tables.
func WithUnit(u medals.Unit) Option {
	return func(s *Service) {
		if u == medals.UnitRegion || u == medals.UnitNOC {
			s.unit = u
		}
	}
}

// WithClock sets the clock used for load timing and uptime.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithTopLimit sets how many rows the Olympic year medal table shows.
func WithTopLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// WithOutcome makes Start use an already loaded outcome instead of reading files.
func WithOutcome(out *dataset.Outcome) Option {
	return func(s *Service) {
		s.preload = out
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		unit:     medals.UnitRegion,
		topLimit: defaultTopLimit,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset once. A missing or malformed input does not fail
// Start; the service then serves empty pages for its lifetime.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting olympus service...",
		logger.String("athleteEvents", s.source.AthleteEvents),
		logger.String("regions", s.source.Regions),
		logger.String("unit", string(s.unit)),
	)

	out := s.preload
	if out == nil {
		loader := dataset.NewLoader(
			dataset.WithClock(s.clock),
			dataset.WithLogger(s.logger.Named("dataset")),
		)
		out = dataset.NewCache(loader, s.source).Get(ctx)
	}

	s.st = &state{
		out:   out,
		store: repository.NewMemoryStore(out.Table, out.Options),
		hdi:   insights.NewHDIIndex(out.HDI),
	}
	s.started = true
	s.startedAt = s.clock.Now()

	s.logger.Info(ctx, "olympus service started",
		logger.String("status", string(out.Status)),
		logger.Int("rows", len(out.Table)),
		logger.Int("hdiPoints", len(out.HDI)),
	)
	return nil
}

// Stop releases the loaded state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.st = nil
	s.started = false
	s.logger.Info(context.Background(), "olympus service stopped")
}

// Ready reports whether Start has completed.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

func (s *Service) state() (*state, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started || s.st == nil {
		return nil, ErrNotStarted
	}
	return s.st, nil
}

// observe records the latency of a page computation started at start.
func (s *Service) observe(op string, start time.Time) {
	metrics.RecordAggregationLatency(op, float64(s.clock.Since(start).Microseconds())/1000)
}

// aggregate runs the shared medal aggregation and records its counters.
func aggregate(rows []model.AthleteEvent, unit medals.Unit, dims ...medals.Dimension) medals.Result {
	res := medals.Aggregate(rows, unit, dims...)
	metrics.RecordMedalEvents(res.Events, res.Collapsed)
	return res
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := types.Stats{
		Status: "stopped",
		Unit:   s.unit,
	}
	if !s.started || s.st == nil {
		return stats
	}

	out := s.st.out
	stats.Status = string(out.Status)
	stats.Reason = out.Reason
	stats.Rows = len(out.Table)
	stats.RowsDropped = out.Stats.RowsDropped
	stats.UnknownRegions = out.Stats.UnknownRegions
	stats.HDIPoints = len(out.HDI)
	stats.Normalized = out.Stats.Normalized
	stats.Options = map[string]int{
		"years":   len(out.Options.Years),
		"sports":  len(out.Options.Sports),
		"nocs":    len(out.Options.NOCs),
		"regions": len(out.Options.Regions),
	}
	stats.LoadedAt = out.LoadedAt
	stats.LoadDuration = out.Duration.String()
	stats.Uptime = s.clock.Since(s.startedAt).Truncate(time.Second).String()
	return stats
}
