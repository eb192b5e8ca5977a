package dataset

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/okian/olympus/internal/domain/model"
)

const (
	colHDICountry = "Country"
	colHDIRank    = "HDI Rank"
)

// LoadHDI reads the wide HDI table (one column per year, headers made of
// digits only) and melts it into long-format points. Cells that do not parse,
// such as "..", are dropped. The result is ordered by country, then year.
func LoadHDI(path string) ([]model.HDIPoint, error) {
	t, err := readTable(path)
	if err != nil {
		return []model.HDIPoint{}, err
	}
	idx, err := t.require(path, colHDICountry)
	if err != nil {
		return []model.HDIPoint{}, err
	}

	type yearCol struct {
		year int
		col  int
	}
	var years []yearCol
	for i, h := range t.header {
		if h == colHDIRank || !isDigits(h) {
			continue
		}
		y, err := strconv.Atoi(h)
		if err != nil {
			continue
		}
		years = append(years, yearCol{year: y, col: i})
	}
	if len(years) == 0 {
		return []model.HDIPoint{}, fmt.Errorf("%w: %s", ErrNoHDIYears, path)
	}

	points := make([]model.HDIPoint, 0, len(t.rows)*len(years))
	for _, rec := range t.rows {
		country := cell(rec, idx[colHDICountry])
		if country == "" {
			continue
		}
		for _, yc := range years {
			v := parseOptional(cell(rec, yc.col))
			if v == nil {
				continue
			}
			points = append(points, model.HDIPoint{Country: country, Year: yc.year, HDI: *v})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Country != points[j].Country {
			return points[i].Country < points[j].Country
		}
		return points[i].Year < points[j].Year
	})
	return points, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
