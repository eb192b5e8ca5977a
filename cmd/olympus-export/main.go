package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/olympus/internal/adapters/dataset"
	"github.com/okian/olympus/internal/adapters/export"
	"github.com/okian/olympus/internal/config"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
	"github.com/okian/olympus/pkg/logger"
)

const defaultTimeout = 5 * time.Minute

func main() {
	var (
		format  = flag.String("format", export.FormatSQLite, "Export format: sqlite or xlsx")
		output  = flag.String("output", "olympus.db", "Output file")
		year    = flag.Int("year", 0, "Only this Games year (0 = all)")
		season  = flag.String("season", "", "Only Summer or Winter Games")
		sport   = flag.String("sport", "", "Only this sport")
		by      = flag.String("by", "", "Medal table unit: region or noc (default: dedupe_unit)")
		limit   = flag.Int("limit", 0, "Maximum medal table rows (0 = all)")
		timeout = flag.Duration("timeout", defaultTimeout, "Overall timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Input paths and the default unit come from the service configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	_ = logger.SetLevelString(cfg.LogLevel)

	unit := medals.Unit(cfg.DedupeUnit)
	if *by != "" {
		if unit, err = medals.ParseUnit(*by); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(2)
		}
	}

	err = export.Run(ctx, export.Config{
		Source: dataset.Source{
			AthleteEvents: cfg.AthleteEventsFile,
			Regions:       cfg.NOCRegionsFile,
		},
		Format: *format,
		Output: *output,
		Query: types.MedalTableQuery{
			Year:   *year,
			Season: model.ParseSeason(*season),
			Sport:  *sport,
			Unit:   unit,
			Limit:  *limit,
		},
	})
	if err != nil {
		os.Stderr.WriteString("export failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
