package export

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/okian/olympus/internal/adapters/dataset"
	service "github.com/okian/olympus/internal/app"
	"github.com/okian/olympus/internal/domain/types"
	"github.com/okian/olympus/pkg/logger"
)

// Export formats.
const (
	FormatSQLite = "sqlite"
	FormatXLSX   = "xlsx"
)

// Config describes one export run.
type Config struct {
	Source dataset.Source
	Format string
	Output string
	Query  types.MedalTableQuery
}

// Run loads the dataset, computes the medal table for cfg.Query and writes it
// to cfg.Output. SQLite exports also carry the cleaned athlete table.
func Run(ctx context.Context, cfg Config) error {
	log := logger.Get().Named("export")
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != FormatSQLite && format != FormatXLSX {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	out := dataset.NewLoader(dataset.WithLogger(log.Named("dataset"))).Load(ctx, cfg.Source)
	if !out.Loaded() {
		return fmt.Errorf("%w: %s", ErrNoData, out.Reason)
	}

	svc := service.New(service.WithOutcome(out), service.WithLogger(log))
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	table, err := svc.MedalTable(ctx, cfg.Query)
	if err != nil {
		return err
	}

	switch format {
	case FormatSQLite:
		err = WriteSQLite(ctx, cfg.Output, out.Table, table)
	case FormatXLSX:
		err = writeXLSXFile(cfg.Output, table)
	}
	if err != nil {
		return err
	}

	log.Info(ctx, "export written",
		logger.String("format", format),
		logger.String("output", cfg.Output),
		logger.Int("athleteRows", len(out.Table)),
		logger.Int("tableRows", len(table.Rows)),
	)
	return nil
}

func writeXLSXFile(path string, table types.MedalTable) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %w", ErrWorkbook, cerr)
		}
	}()
	return WriteMedalTable(f, table)
}
