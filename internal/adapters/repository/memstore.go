package repository

import (
	"context"
	"fmt"

	"github.com/okian/olympus/internal/domain/model"
)

// MemoryStore indexes the table by NOC, sport and year. Reads need no locks
// because nothing changes after NewMemoryStore returns.
type MemoryStore struct {
	rows    []model.AthleteEvent
	options model.FilterOptions

	byNOC   map[string][]int
	bySport map[string][]int
	byYear  map[int][]int
	region  map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore builds the indexes over rows. rows must not be modified afterwards.
func NewMemoryStore(rows []model.AthleteEvent, options model.FilterOptions) *MemoryStore {
	s := &MemoryStore{
		rows:    rows,
		options: options,
		byNOC:   make(map[string][]int),
		bySport: make(map[string][]int),
		byYear:  make(map[int][]int),
		region:  make(map[string]string),
	}
	for i := range rows {
		r := &rows[i]
		s.byNOC[r.NOC] = append(s.byNOC[r.NOC], i)
		s.bySport[r.Sport] = append(s.bySport[r.Sport], i)
		s.byYear[r.Year] = append(s.byYear[r.Year], i)
		if _, ok := s.region[r.NOC]; !ok {
			s.region[r.NOC] = r.Region
		}
	}
	return s
}

// Query returns matching rows. With no criteria it returns the whole table.
func (s *MemoryStore) Query(ctx context.Context, c Criteria) ([]model.AthleteEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if c == (Criteria{}) {
		return s.rows, nil
	}

	candidates, indexed := s.candidates(c)
	out := make([]model.AthleteEvent, 0, 64)
	if indexed {
		for _, i := range candidates {
			if c.match(&s.rows[i]) {
				out = append(out, s.rows[i])
			}
		}
		return out, nil
	}
	for i := range s.rows {
		if c.match(&s.rows[i]) {
			out = append(out, s.rows[i])
		}
	}
	return out, nil
}

// candidates picks the smallest index that applies to c.
func (s *MemoryStore) candidates(c Criteria) ([]int, bool) {
	var best []int
	found := false
	consider := func(idx []int) {
		if !found || len(idx) < len(best) {
			best, found = idx, true
		}
	}
	if c.NOC != "" {
		consider(s.byNOC[c.NOC])
	}
	if c.Sport != "" {
		consider(s.bySport[c.Sport])
	}
	if c.Year != 0 {
		consider(s.byYear[c.Year])
	}
	return best, found
}

func (c Criteria) match(r *model.AthleteEvent) bool {
	switch {
	case c.Year != 0 && r.Year != c.Year:
		return false
	case c.Season != model.SeasonUnknown && r.Season != c.Season:
		return false
	case c.NOC != "" && r.NOC != c.NOC:
		return false
	case c.Region != "" && r.Region != c.Region:
		return false
	case c.Sport != "" && r.Sport != c.Sport:
		return false
	case c.Event != "" && r.Event != c.Event:
		return false
	case c.Gender != model.GenderUnknown && r.Gender != c.Gender:
		return false
	default:
		return true
	}
}

func (s *MemoryStore) Count(_ context.Context) int { return len(s.rows) }

func (s *MemoryStore) Options(_ context.Context) model.FilterOptions { return s.options }

func (s *MemoryStore) Region(_ context.Context, noc string) (string, error) {
	r, ok := s.region[noc]
	if !ok {
		return "", fmt.Errorf("noc %q: %w", noc, ErrNotFound)
	}
	return r, nil
}

func (s *MemoryStore) HasNOC(_ context.Context, noc string) bool {
	_, ok := s.byNOC[noc]
	return ok
}

func (s *MemoryStore) HasSport(_ context.Context, sport string) bool {
	_, ok := s.bySport[sport]
	return ok
}

func (s *MemoryStore) HasYear(_ context.Context, year int) bool {
	_, ok := s.byYear[year]
	return ok
}
