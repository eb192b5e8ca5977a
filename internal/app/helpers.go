package service

import (
	"sort"
	"strconv"

	"github.com/okian/olympus/internal/domain/insights"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
)

func uniqueNames(rows []model.AthleteEvent) int {
	names := make(map[string]struct{}, len(rows))
	for i := range rows {
		names[rows[i].Name] = struct{}{}
	}
	return len(names)
}

// distinctYears returns the years present in rows, ascending.
func distinctYears(rows []model.AthleteEvent) []int {
	set := make(map[int]struct{})
	for i := range rows {
		set[rows[i].Year] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

func distinctSports(rows []model.AthleteEvent) []string {
	set := make(map[string]struct{})
	for i := range rows {
		set[rows[i].Sport] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for sp := range set {
		out = append(out, sp)
	}
	sort.Strings(out)
	return out
}

func yearKeys(years []int) [][]string {
	keys := make([][]string, len(years))
	for i, y := range years {
		keys[i] = []string{strconv.Itoa(y)}
	}
	return keys
}

// athletesByYear counts unique (Year, Name) pairs per year, ascending.
func athletesByYear(rows []model.AthleteEvent) []types.YearCount {
	type key struct {
		year int
		name string
	}
	seen := make(map[key]struct{}, len(rows))
	counts := make(map[int]int)
	for i := range rows {
		k := key{rows[i].Year, rows[i].Name}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		counts[k.year]++
	}
	out := make([]types.YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, types.YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// genderByYear counts unique (Year, Name, Gender) triples per year and gender.
func genderByYear(rows []model.AthleteEvent) []types.YearGender {
	type key struct {
		year   int
		name   string
		gender model.Gender
	}
	seen := make(map[key]struct{}, len(rows))
	byYear := make(map[int]*types.YearGender)
	for i := range rows {
		r := &rows[i]
		k := key{r.Year, r.Name, r.Gender}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		yg, ok := byYear[r.Year]
		if !ok {
			yg = &types.YearGender{Year: r.Year}
			byYear[r.Year] = yg
		}
		switch r.Gender {
		case model.GenderMale:
			yg.Male++
		case model.GenderFemale:
			yg.Female++
		}
	}
	out := make([]types.YearGender, 0, len(byYear))
	for _, yg := range byYear {
		out = append(out, *yg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func topN(ranked []medals.Ranked, n int) []medals.Ranked {
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

func unionInts(a, b []int) []int {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		set[v] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// intersectStrings returns the values of sorted a that also appear in b.
func intersectStrings(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, v := range b {
		in[v] = struct{}{}
	}
	out := make([]string, 0)
	for _, v := range a {
		if _, ok := in[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// gamesHosts lists the host city of each season held in year, Summer first.
// The city comes from the rows; the Summer host table adds the NOC and region.
func gamesHosts(year int, rows []model.AthleteEvent) []model.HostCity {
	cities := make(map[model.Season]string)
	for i := range rows {
		if r := &rows[i]; cities[r.Season] == "" {
			cities[r.Season] = r.City
		}
	}

	hosts := []model.HostCity{}
	for _, season := range []model.Season{model.SeasonSummer, model.SeasonWinter} {
		city, held := cities[season]
		h := model.HostCity{Year: year, Season: season, City: city}
		if season == model.SeasonSummer {
			if known, ok := insights.Host(year); ok {
				h.NOC, h.Region = known.NOC, known.Region
				if h.City == "" {
					h.City = known.City
				}
			}
		}
		if held && h.City != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
