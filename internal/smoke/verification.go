package smoke

import (
	"fmt"

	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
)

// checkCounts verifies that a total is the sum of its medal colors.
func checkCounts(label string, c medals.Counts) []string {
	if c.Gold < 0 || c.Silver < 0 || c.Bronze < 0 {
		return []string{fmt.Sprintf("%s: negative medal count %+v", label, c)}
	}
	if c.Gold+c.Silver+c.Bronze != c.Total {
		return []string{fmt.Sprintf("%s: total %d is not gold+silver+bronze in %+v", label, c.Total, c)}
	}
	return nil
}

// checkTable verifies row totals, ranking order and dense 1-based ranks.
func checkTable(label string, rows []types.Entry) []string {
	var v []string
	seen := make(map[string]struct{}, len(rows))
	for i, e := range rows {
		v = append(v, checkCounts(fmt.Sprintf("%s row %s", label, e.Name), e.Counts)...)
		if e.Rank != i+1 {
			v = append(v, fmt.Sprintf("%s: row %d has rank %d", label, i+1, e.Rank))
		}
		if _, dup := seen[e.Name]; dup {
			v = append(v, fmt.Sprintf("%s: %s listed twice", label, e.Name))
		}
		seen[e.Name] = struct{}{}
		if i == 0 {
			continue
		}
		prev := rows[i-1]
		if medals.Less(e.Counts, prev.Counts) {
			v = append(v, fmt.Sprintf("%s: %s (%+v) ranked below %s (%+v)", label, e.Name, e.Counts, prev.Name, prev.Counts))
		} else if e.Counts == prev.Counts && e.Name < prev.Name {
			v = append(v, fmt.Sprintf("%s: tie between %s and %s not ordered by name", label, prev.Name, e.Name))
		}
	}
	return v
}

// compareTables verifies two renderings of the same table agree row by row.
func compareTables(label string, got, want []types.Entry) []string {
	if len(got) != len(want) {
		return []string{fmt.Sprintf("%s: %d rows, medal table has %d", label, len(got), len(want))}
	}
	var v []string
	for i := range got {
		if got[i] != want[i] {
			v = append(v, fmt.Sprintf("%s: row %d is %+v, medal table has %+v", label, i+1, got[i], want[i]))
		}
	}
	return v
}

// checkOverview verifies the landing page against the filter options.
func checkOverview(ov types.Overview, opts model.FilterOptions) []string {
	v := checkCounts("overview medals", ov.Medals)
	if ov.NOCs != len(opts.NOCs) {
		v = append(v, fmt.Sprintf("overview: %d NOCs, filters list %d", ov.NOCs, len(opts.NOCs)))
	}
	if ov.Sports != len(opts.Sports) {
		v = append(v, fmt.Sprintf("overview: %d sports, filters list %d", ov.Sports, len(opts.Sports)))
	}
	if n := len(opts.Years); n > 0 && (ov.FirstYear != opts.Years[n-1] || ov.LastYear != opts.Years[0]) {
		v = append(v, fmt.Sprintf("overview: years %d-%d, filters span %d-%d", ov.FirstYear, ov.LastYear, opts.Years[n-1], opts.Years[0]))
	}
	return v
}
