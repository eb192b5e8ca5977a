package dataset

import (
	"sort"

	"github.com/okian/olympus/internal/domain/model"
)

// Options computes the selector values of a table: years descending, sports,
// NOCs and regions ascending. Empty values are left out. A nil table yields
// empty, non-nil lists.
func Options(rows []model.AthleteEvent) model.FilterOptions {
	years := make(map[int]struct{})
	sports := make(map[string]struct{})
	nocs := make(map[string]struct{})
	regions := make(map[string]struct{})
	for i := range rows {
		r := &rows[i]
		years[r.Year] = struct{}{}
		add(sports, r.Sport)
		add(nocs, r.NOC)
		add(regions, r.Region)
	}

	opts := model.FilterOptions{
		Years:   make([]int, 0, len(years)),
		Sports:  sortedKeys(sports),
		NOCs:    sortedKeys(nocs),
		Regions: sortedKeys(regions),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(opts.Years)))
	return opts
}

func add(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
