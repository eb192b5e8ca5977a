// Package medals turns per-athlete event rows into per-unit medal counts.
//
// A team medal appears once per team member in the source data. Aggregate
// counts it once per (Year, Season, Event, Medal, unit), where the unit is the
// region or the NOC chosen by the caller.
package medals

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/okian/olympus/internal/domain/dedupe"
	"github.com/okian/olympus/internal/domain/model"
)

// Unit selects what a team medal is counted once for.
type Unit string

const (
	UnitRegion Unit = "region"
	UnitNOC    Unit = "noc"
)

// ParseUnit accepts "region" or "noc" in any case.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitRegion:
		return UnitRegion, nil
	case UnitNOC:
		return UnitNOC, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

func (u Unit) of(r *model.AthleteEvent) string {
	if u == UnitNOC {
		return r.NOC
	}
	return r.Region
}

// Dimension is a column rows can be grouped by.
type Dimension string

const (
	DimRegion Dimension = "region"
	DimNOC    Dimension = "noc"
	DimYear   Dimension = "year"
	DimSeason Dimension = "season"
	DimSport  Dimension = "sport"
	DimEvent  Dimension = "event"
	DimGender Dimension = "gender"
	// DimMedal folds into the per-medal breakdown of Counts instead of splitting groups.
	DimMedal Dimension = "medal"
)

func (d Dimension) of(r *model.AthleteEvent) string {
	switch d {
	case DimRegion:
		return r.Region
	case DimNOC:
		return r.NOC
	case DimYear:
		return strconv.Itoa(r.Year)
	case DimSeason:
		return string(r.Season)
	case DimSport:
		return r.Sport
	case DimEvent:
		return r.Event
	case DimGender:
		return string(r.Gender)
	default:
		return ""
	}
}

// Counts is a per-medal breakdown. Total is always Gold+Silver+Bronze.
type Counts struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
	Total  int `json:"total"`
}

func (c *Counts) add(m model.Medal) {
	switch m {
	case model.MedalGold:
		c.Gold++
	case model.MedalSilver:
		c.Silver++
	case model.MedalBronze:
		c.Bronze++
	default:
		return
	}
	c.Total++
}

// Plus returns the element-wise sum of c and o.
func (c Counts) Plus(o Counts) Counts {
	return Counts{
		Gold:   c.Gold + o.Gold,
		Silver: c.Silver + o.Silver,
		Bronze: c.Bronze + o.Bronze,
		Total:  c.Total + o.Total,
	}
}

// Row is one group: its key values, in Result.Dims order, and its counts.
type Row struct {
	Key []string `json:"key"`
	Counts
}

// Result holds the groups produced by Aggregate in first-seen order.
type Result struct {
	Dims []Dimension
	// Events is the number of unique medal events counted.
	Events int
	// Collapsed is the number of medal rows folded into an already counted event.
	Collapsed int

	rows  []Row
	index map[string]int
}

func joinKey(key []string) string { return strings.Join(key, "\x1f") }

// Rows returns the groups in first-seen order.
func (r Result) Rows() []Row { return r.rows }

// Len is the number of groups.
func (r Result) Len() int { return len(r.rows) }

// Counts returns the counts of the group with the given key, or zeros if absent.
func (r Result) Counts(key ...string) Counts {
	if i, ok := r.index[joinKey(key)]; ok {
		return r.rows[i].Counts
	}
	return Counts{}
}

// Total sums every group.
func (r Result) Total() Counts {
	var c Counts
	for _, row := range r.rows {
		c = c.Plus(row.Counts)
	}
	return c
}

// Reindex returns a Result with one row per requested key, in that order,
// zero-filled where the group was absent. Groups not requested are dropped.
func (r Result) Reindex(keys [][]string) Result {
	out := Result{Dims: r.Dims, Events: r.Events, Collapsed: r.Collapsed, index: make(map[string]int, len(keys))}
	for _, k := range keys {
		jk := joinKey(k)
		if _, dup := out.index[jk]; dup {
			continue
		}
		out.index[jk] = len(out.rows)
		out.rows = append(out.rows, Row{Key: append([]string(nil), k...), Counts: r.Counts(k...)})
	}
	return out
}

// Dedupe keeps the first row of every medal event and drops rows without a medal.
// Input order is preserved. Dedupe(Dedupe(x, u), u) equals Dedupe(x, u).
func Dedupe(records []model.AthleteEvent, unit Unit) []model.AthleteEvent {
	out, _ := dedupeRows(records, unit)
	return out
}

func dedupeRows(records []model.AthleteEvent, unit Unit) ([]model.AthleteEvent, int) {
	seen := dedupe.New(dedupe.WithCapacity(len(records) / 4))
	out := make([]model.AthleteEvent, 0, len(records)/4)
	for i := range records {
		r := &records[i]
		if !r.Medal.Awarded() {
			continue
		}
		key := dedupe.Key{Year: r.Year, Season: r.Season, Event: r.Event, Medal: r.Medal, Unit: unit.of(r)}
		if seen.SeenAndRecord(key) {
			continue
		}
		out = append(out, *r)
	}
	return out, seen.Collapsed()
}

// Aggregate counts unique medal events grouped by the given dimensions.
// With no dimensions the result has a single group with an empty key.
// Empty input yields an empty Result.
func Aggregate(records []model.AthleteEvent, unit Unit, groupBy ...Dimension) Result {
	dims := make([]Dimension, 0, len(groupBy))
	for _, d := range groupBy {
		if d != DimMedal {
			dims = append(dims, d)
		}
	}

	events, collapsed := dedupeRows(records, unit)
	res := Result{Dims: dims, Events: len(events), Collapsed: collapsed, index: make(map[string]int)}

	key := make([]string, len(dims))
	for i := range events {
		r := &events[i]
		for j, d := range dims {
			key[j] = d.of(r)
		}
		jk := joinKey(key)
		idx, ok := res.index[jk]
		if !ok {
			idx = len(res.rows)
			res.index[jk] = idx
			res.rows = append(res.rows, Row{Key: append([]string(nil), key...)})
		}
		res.rows[idx].add(r.Medal)
	}
	return res
}

// Ranked is a row with its 1-based position in the medal table.
type Ranked struct {
	Rank int `json:"rank"`
	Row
}

// Less orders medal tables: Gold, then Silver, then Bronze, then Total, all descending.
func Less(a, b Counts) bool {
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	if a.Bronze != b.Bronze {
		return a.Bronze > b.Bronze
	}
	return a.Total > b.Total
}

// Rank sorts rows into medal table order. Rows with equal counts are ordered
// by key ascending so the output is deterministic. The input is not modified.
func Rank(rows []Row) []Ranked {
	sorted := append([]Row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Counts != b.Counts {
			return Less(a.Counts, b.Counts)
		}
		return joinKey(a.Key) < joinKey(b.Key)
	})
	out := make([]Ranked, len(sorted))
	for i, row := range sorted {
		out[i] = Ranked{Rank: i + 1, Row: row}
	}
	return out
}

// Efficiency is medals per athlete, 0 when there are no athletes.
func Efficiency(medals, athletes int) float64 {
	if athletes <= 0 {
		return 0
	}
	return float64(medals) / float64(athletes)
}
