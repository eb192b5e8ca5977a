package export

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"

	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver
)

const schema = `
DROP TABLE IF EXISTS athlete_events;
DROP TABLE IF EXISTS medal_table;
CREATE TABLE athlete_events (
	name    TEXT NOT NULL,
	sex     TEXT,
	age     REAL,
	height  REAL,
	weight  REAL,
	team    TEXT,
	noc     TEXT NOT NULL,
	region  TEXT NOT NULL,
	games   TEXT,
	year    INTEGER NOT NULL,
	season  TEXT,
	city    TEXT,
	sport   TEXT,
	event   TEXT,
	medal   TEXT
);
CREATE INDEX idx_athlete_events_noc_year ON athlete_events (noc, year);
CREATE TABLE medal_table (
	rank   INTEGER NOT NULL,
	name   TEXT NOT NULL,
	gold   INTEGER NOT NULL,
	silver INTEGER NOT NULL,
	bronze INTEGER NOT NULL,
	total  INTEGER NOT NULL
);`

const (
	insertAthleteEvent = `INSERT INTO athlete_events
	(name, sex, age, height, weight, team, noc, region, games, year, season, city, sport, event, medal)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertMedalRow = `INSERT INTO medal_table (rank, name, gold, silver, bronze, total) VALUES (?, ?, ?, ?, ?, ?)`
)

// WriteSQLite writes rows and table to the SQLite database at path, replacing
// any earlier export in the same file. Everything is written in one transaction.
func WriteSQLite(ctx context.Context, path string, rows []model.AthleteEvent, table types.MedalTable) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrDatabase, path, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: create schema: %w", ErrDatabase, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrDatabase, err)
	}
	defer func() { _ = tx.Rollback() }()

	events, err := tx.PrepareContext(ctx, insertAthleteEvent)
	if err != nil {
		return fmt.Errorf("%w: prepare: %w", ErrDatabase, err)
	}
	defer func() { _ = events.Close() }()
	for i := range rows {
		r := &rows[i]
		if _, err := events.ExecContext(ctx,
			r.Name, string(r.Gender), nullable(r.Age), nullable(r.Height), nullable(r.Weight),
			r.Team, r.NOC, r.Region, r.Games, r.Year, string(r.Season), r.City, r.Sport, r.Event, string(r.Medal),
		); err != nil {
			return fmt.Errorf("%w: insert athlete event %d: %w", ErrDatabase, i, err)
		}
	}

	medals, err := tx.PrepareContext(ctx, insertMedalRow)
	if err != nil {
		return fmt.Errorf("%w: prepare: %w", ErrDatabase, err)
	}
	defer func() { _ = medals.Close() }()
	for _, e := range table.Rows {
		if _, err := medals.ExecContext(ctx, e.Rank, e.Name, e.Gold, e.Silver, e.Bronze, e.Total); err != nil {
			return fmt.Errorf("%w: insert medal row %q: %w", ErrDatabase, e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrDatabase, err)
	}
	return nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
