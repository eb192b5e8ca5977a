// Package repository provides read access to the loaded athlete-event table.
package repository

import (
	"context"

	"github.com/okian/olympus/internal/domain/model"
)

// Criteria narrows a query. Zero-valued fields do not filter.
type Criteria struct {
	Year   int
	Season model.Season
	NOC    string
	Region string
	Sport  string
	Event  string
	Gender model.Gender
}

// Store provides read access to the canonical table. It is immutable once built.
type Store interface {
	// Query returns the rows matching c in table order. The returned slice
	// must not be modified.
	Query(ctx context.Context, c Criteria) ([]model.AthleteEvent, error)

	// Count returns the number of rows.
	Count(ctx context.Context) int

	// Options returns the filter options of the table.
	Options(ctx context.Context) model.FilterOptions

	// Region returns the region of a NOC, or ErrNotFound.
	Region(ctx context.Context, noc string) (string, error)

	HasNOC(ctx context.Context, noc string) bool
	HasSport(ctx context.Context, sport string) bool
	HasYear(ctx context.Context, year int) bool
}
