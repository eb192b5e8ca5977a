// Package insights holds the secondary analytics used by the dashboard pages:
// HDI binning, correlation, host cities and histograms.
package insights

import (
	"sort"

	"github.com/okian/olympus/internal/domain/model"
)

// HDI category labels, lowest first.
const (
	HDILow      = "Low HDI (<0.55)"
	HDIMedium   = "Medium HDI (0.55-0.7)"
	HDIHigh     = "High HDI (0.7-0.8)"
	HDIVeryHigh = "Very High HDI (>0.8)"
)

// HDICategories lists the category labels in ascending order.
var HDICategories = []string{HDILow, HDIMedium, HDIHigh, HDIVeryHigh} //nolint:gochecknoglobals // read-only table

// HDICategory bins an HDI value into right-closed intervals
// (0,0.55], (0.55,0.7], (0.7,0.8], (0.8,1.0]. ok is false outside (0,1].
func HDICategory(hdi float64) (category string, ok bool) {
	switch {
	case hdi <= 0 || hdi > 1:
		return "", false
	case hdi <= 0.55:
		return HDILow, true
	case hdi <= 0.7:
		return HDIMedium, true
	case hdi <= 0.8:
		return HDIHigh, true
	default:
		return HDIVeryHigh, true
	}
}

// ClosestHDIYear picks the latest available year not after target, falling
// back to the earliest available year. ok is false when available is empty.
func ClosestHDIYear(available []int, target int) (year int, ok bool) {
	if len(available) == 0 {
		return 0, false
	}
	best, found := 0, false
	lowest := available[0]
	for _, y := range available {
		if y < lowest {
			lowest = y
		}
		if y <= target && (!found || y > best) {
			best, found = y, true
		}
	}
	if !found {
		return lowest, true
	}
	return best, true
}

// regionToHDICountry maps dataset region names to the names used in the HDI table.
var regionToHDICountry = map[string]string{ //nolint:gochecknoglobals // read-only table
	"USA":                              "United States",
	"Russia":                           "Russian Federation",
	"UK":                               "United Kingdom",
	"Great Britain":                    "United Kingdom",
	"South Korea":                      "Korea (Republic of)",
	"North Korea":                      "Korea (Democratic People's Rep. of)",
	"West Germany":                     "Germany",
	"East Germany":                     "Germany",
	"Soviet Union":                     "Russian Federation",
	"Czechoslovakia":                   "Czechia",
	"Yugoslavia":                       "Serbia",
	"Bolivia":                          "Bolivia (Plurinational State of)",
	"Iran":                             "Iran (Islamic Republic of)",
	"Moldova":                          "Moldova (Republic of)",
	"Syria":                            "Syrian Arab Republic",
	"Tanzania":                         "Tanzania (United Republic of)",
	"Venezuela":                        "Venezuela (Bolivarian Republic of)",
	"Vietnam":                          "Viet Nam",
	"Palestine":                        "Palestine, State of",
	"Republic of Congo":                "Congo",
	"Democratic Republic of the Congo": "Congo (Democratic Republic of the)",
	"Eswatini":                         "Eswatini (Kingdom of)",
	"Czech Republic":                   "Czechia",
	"Ivory Coast":                      "Côte d'Ivoire",
}

// RegionToHDICountry returns the HDI table name for a region. Unmapped regions
// are assumed to use the same name in both tables.
func RegionToHDICountry(region string) string {
	if c, ok := regionToHDICountry[region]; ok {
		return c
	}
	return region
}

// HDIIndex answers HDI lookups by country and year.
type HDIIndex struct {
	values map[string]map[int]float64
	years  []int
}

// NewHDIIndex indexes long-format HDI points. Later duplicates of a
// (country, year) pair are ignored.
func NewHDIIndex(points []model.HDIPoint) *HDIIndex {
	idx := &HDIIndex{values: make(map[string]map[int]float64)}
	seenYear := make(map[int]bool)
	for _, p := range points {
		byYear, ok := idx.values[p.Country]
		if !ok {
			byYear = make(map[int]float64)
			idx.values[p.Country] = byYear
		}
		if _, dup := byYear[p.Year]; dup {
			continue
		}
		byYear[p.Year] = p.HDI
		if !seenYear[p.Year] {
			seenYear[p.Year] = true
			idx.years = append(idx.years, p.Year)
		}
	}
	sort.Ints(idx.years)
	return idx
}

// Years returns the available years ascending.
func (i *HDIIndex) Years() []int { return i.years }

// Empty reports whether the index holds no values.
func (i *HDIIndex) Empty() bool { return len(i.years) == 0 }

// At returns the HDI of country in exactly year.
func (i *HDIIndex) At(country string, year int) (float64, bool) {
	v, ok := i.values[country][year]
	return v, ok
}

// Latest returns the HDI of country in its most recent year.
func (i *HDIIndex) Latest(country string) (float64, bool) {
	byYear, ok := i.values[country]
	if !ok {
		return 0, false
	}
	best, found := 0, false
	for y := range byYear {
		if !found || y > best {
			best, found = y, true
		}
	}
	return byYear[best], found
}
