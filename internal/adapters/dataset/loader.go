// Package dataset loads the athlete-event table, the NOC region lookup and the
// optional HDI table into the canonical read-only representation.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/jonboulle/clockwork"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/pkg/logger"
	"github.com/okian/olympus/pkg/metrics"
)

// Column names of the input files.
const (
	colName   = "Name"
	colSex    = "Sex"
	colAge    = "Age"
	colHeight = "Height"
	colWeight = "Weight"
	colTeam   = "Team"
	colNOC    = "NOC"
	colGames  = "Games"
	colYear   = "Year"
	colSeason = "Season"
	colCity   = "City"
	colSport  = "Sport"
	colEvent  = "Event"
	colMedal  = "Medal"
	colRegion = "region"
)

var athleteColumns = []string{ //nolint:gochecknoglobals // read-only table
	colName, colSex, colAge, colHeight, colWeight, colTeam, colNOC,
	colGames, colYear, colSeason, colCity, colSport, colEvent, colMedal,
}

// Source names the input files. HDI is optional.
type Source struct {
	AthleteEvents string
	Regions       string
	HDI           string
}

// Status tells whether a load produced data.
type Status string

const (
	StatusLoaded Status = "loaded"
	StatusEmpty  Status = "empty"
)

// Stats describes what the load did to the raw rows.
type Stats struct {
	RowsRead       int            `json:"rows_read"`
	RowsDropped    int            `json:"rows_dropped"`
	UnknownRegions int            `json:"unknown_regions"`
	HDIPoints      int            `json:"hdi_points"`
	Normalized     map[string]int `json:"normalized"`
}

// Outcome is the result of a load. An empty outcome carries an empty table and
// empty filter options, never nil slices. Outcomes are not mutated after Load returns.
type Outcome struct {
	Status   Status
	Reason   string
	Table    []model.AthleteEvent
	Options  model.FilterOptions
	HDI      []model.HDIPoint
	LoadedAt time.Time
	Duration time.Duration
	Stats    Stats
}

// Loaded reports whether the athlete table is available.
func (o *Outcome) Loaded() bool { return o != nil && o.Status == StatusLoaded }

// Loader reads and cleans the input files.
type Loader struct {
	clock clockwork.Clock
	log   logger.Logger
	pool  pond.Pool
}

// Option configures a Loader.
type Option func(*Loader)

// WithClock sets the clock used for LoadedAt and Duration.
func WithClock(c clockwork.Clock) Option {
	return func(l *Loader) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithPool runs the file reads on a shared pool instead of a private one.
func WithPool(p pond.Pool) Option {
	return func(l *Loader) {
		if p != nil {
			l.pool = p
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Get().Named("dataset")
	}
	return l
}

// Load reads src and returns the cleaned table. It never fails: a missing or
// malformed athlete or region file yields a StatusEmpty outcome with a reason.
// A missing HDI file only leaves Outcome.HDI empty.
func (l *Loader) Load(ctx context.Context, src Source) *Outcome {
	start := l.clock.Now()

	pool := l.pool
	if pool == nil {
		pool = pond.NewPool(3)
		defer pool.StopAndWait()
	}

	var (
		athletes, regions *table
		athErr, regErr    error
		hdi               []model.HDIPoint
		hdiErr            error
	)

	group := pool.NewGroupContext(ctx)
	group.Submit(func() {
		athletes, athErr = readTable(src.AthleteEvents)
	})
	group.Submit(func() {
		regions, regErr = readTable(src.Regions)
	})
	if src.HDI != "" {
		group.Submit(func() {
			hdi, hdiErr = LoadHDI(src.HDI)
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, pond.ErrGroupStopped) {
		return l.empty(ctx, start, fmt.Sprintf("load interrupted: %v", err))
	}
	if err := ctx.Err(); err != nil {
		return l.empty(ctx, start, fmt.Sprintf("load interrupted: %v", err))
	}

	if hdiErr != nil {
		metrics.RecordDatasetLoadFailure("hdi")
		l.log.Warn(ctx, "hdi table unavailable", logger.String("path", src.HDI), logger.Error(hdiErr))
		hdi = nil
	}
	if athErr != nil {
		metrics.RecordDatasetLoadFailure("athlete_events")
		return l.empty(ctx, start, athErr.Error())
	}
	if regErr != nil {
		metrics.RecordDatasetLoadFailure("noc_regions")
		return l.empty(ctx, start, regErr.Error())
	}

	lookup, err := buildRegions(src.Regions, regions)
	if err != nil {
		metrics.RecordDatasetLoadFailure("noc_regions")
		return l.empty(ctx, start, err.Error())
	}

	out, err := clean(src.AthleteEvents, athletes, lookup)
	if err != nil {
		metrics.RecordDatasetLoadFailure("athlete_events")
		return l.empty(ctx, start, err.Error())
	}

	out.Options = Options(out.Table)
	out.HDI = hdi
	if out.HDI == nil {
		out.HDI = []model.HDIPoint{}
	}
	out.Stats.HDIPoints = len(out.HDI)
	out.LoadedAt = l.clock.Now()
	out.Duration = l.clock.Since(start)

	l.log.Info(ctx, "dataset loaded",
		logger.Int("rows", len(out.Table)),
		logger.Int("rowsDropped", out.Stats.RowsDropped),
		logger.Int("unknownRegions", out.Stats.UnknownRegions),
		logger.Int("hdiPoints", out.Stats.HDIPoints),
		logger.Duration("took", out.Duration),
	)
	for field, n := range out.Stats.Normalized {
		if n > 0 {
			l.log.Warn(ctx, "normalized unexpected values", logger.String("field", field), logger.Int("rows", n))
		}
	}
	record(out)
	return out
}

func (l *Loader) empty(ctx context.Context, start time.Time, reason string) *Outcome {
	l.log.Error(ctx, "dataset unavailable, serving empty data", logger.String("reason", reason))
	out := &Outcome{
		Status:   StatusEmpty,
		Reason:   reason,
		Table:    []model.AthleteEvent{},
		Options:  Options(nil),
		HDI:      []model.HDIPoint{},
		LoadedAt: l.clock.Now(),
		Duration: l.clock.Since(start),
		Stats:    Stats{Normalized: map[string]int{}},
	}
	record(out)
	return out
}

func record(out *Outcome) {
	metrics.RecordDatasetLoad(metrics.DatasetSnapshot{
		Loaded:        out.Loaded(),
		Rows:          len(out.Table),
		RowsDropped:   out.Stats.RowsDropped,
		UnknownRegion: out.Stats.UnknownRegions,
		Normalized:    out.Stats.Normalized,
		Duration:      out.Duration,
		FilterOptions: map[string]int{
			"years":   len(out.Options.Years),
			"sports":  len(out.Options.Sports),
			"nocs":    len(out.Options.NOCs),
			"regions": len(out.Options.Regions),
		},
	})
}

// buildRegions maps NOC to region. The first row of a duplicated NOC wins and
// empty region cells are left unmapped.
func buildRegions(path string, t *table) (map[string]string, error) {
	idx, err := t.require(path, colNOC, colRegion)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]string, len(t.rows))
	for _, rec := range t.rows {
		noc := cell(rec, idx[colNOC])
		if noc == "" {
			continue
		}
		if _, seen := lookup[noc]; seen {
			continue
		}
		lookup[noc] = cell(rec, idx[colRegion])
	}
	return lookup, nil
}

// clean applies the row pipeline: region merge, Unknown fill, Sex to Gender,
// medal normalization, numeric coercion, and the year filter.
func clean(path string, t *table, regions map[string]string) (*Outcome, error) {
	idx, err := t.require(path, athleteColumns...)
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Status: StatusLoaded,
		Table:  make([]model.AthleteEvent, 0, len(t.rows)),
		Stats: Stats{
			RowsRead:   len(t.rows),
			Normalized: map[string]int{"medal": 0, "gender": 0, "season": 0},
		},
	}

	for _, rec := range t.rows {
		year, ok := parseYear(cell(rec, idx[colYear]))
		if !ok {
			out.Stats.RowsDropped++
			continue
		}

		noc := cell(rec, idx[colNOC])
		region := regions[noc]
		if region == "" {
			region = model.RegionUnknown
			out.Stats.UnknownRegions++
		}

		medal, ok := model.ParseMedal(cell(rec, idx[colMedal]))
		if !ok {
			out.Stats.Normalized["medal"]++
		}
		rawSex := cell(rec, idx[colSex])
		gender := model.ParseGender(rawSex)
		if gender == model.GenderUnknown && rawSex != "" {
			out.Stats.Normalized["gender"]++
		}
		rawSeason := cell(rec, idx[colSeason])
		season := model.ParseSeason(rawSeason)
		if season == model.SeasonUnknown && rawSeason != "" {
			out.Stats.Normalized["season"]++
		}

		out.Table = append(out.Table, model.AthleteEvent{
			Name:   cell(rec, idx[colName]),
			Gender: gender,
			Age:    parseOptional(cell(rec, idx[colAge])),
			Height: parseOptional(cell(rec, idx[colHeight])),
			Weight: parseOptional(cell(rec, idx[colWeight])),
			Team:   cell(rec, idx[colTeam]),
			NOC:    noc,
			Region: region,
			Games:  cell(rec, idx[colGames]),
			Year:   year,
			Season: season,
			City:   cell(rec, idx[colCity]),
			Sport:  cell(rec, idx[colSport]),
			Event:  cell(rec, idx[colEvent]),
			Medal:  medal,
		})
	}
	return out, nil
}

// parseOptional coerces a numeric cell; anything unparsable is nil.
func parseOptional(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseYear accepts integral numbers only, so "1996" and "1996.0" pass and "1996.5" does not.
func parseYear(s string) (int, bool) {
	f := parseOptional(s)
	if f == nil || *f != math.Trunc(*f) {
		return 0, false
	}
	return int(*f), true
}

// Cache loads a Source once and hands out the same Outcome afterwards.
type Cache struct {
	loader *Loader
	src    Source
	once   sync.Once
	out    *Outcome
}

// NewCache creates a load-once cache for src.
func NewCache(loader *Loader, src Source) *Cache {
	return &Cache{loader: loader, src: src}
}

// Get loads on first use. Concurrent callers wait for the first load.
func (c *Cache) Get(ctx context.Context) *Outcome {
	c.once.Do(func() {
		c.out = c.loader.Load(ctx, c.src)
	})
	return c.out
}
