// Package types contains the payloads returned by the application service.
package types

import (
	"strings"
	"time"

	"github.com/okian/olympus/internal/domain/insights"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
)

// Entry represents a medal table entry.
type Entry struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
	medals.Counts
}

// Entries converts ranked rows into entries, keeping at most limit (limit <= 0 keeps all).
// Multi-dimension keys are joined with " / ".
func Entries(ranked []medals.Ranked, limit int) []Entry {
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]Entry, len(ranked))
	for i, r := range ranked {
		out[i] = Entry{Rank: r.Rank, Name: strings.Join(r.Key, " / "), Counts: r.Counts}
	}
	return out
}

// YearCount is a count for one Games year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearMedals is a medal breakdown for one Games year.
type YearMedals struct {
	Year int `json:"year"`
	medals.Counts
}

// YearGender counts unique athletes by gender for one year.
type YearGender struct {
	Year   int `json:"year"`
	Male   int `json:"male"`
	Female int `json:"female"`
}

// SportMedals is a medal breakdown for one sport.
type SportMedals struct {
	Sport string `json:"sport"`
	medals.Counts
}

// Overview backs the landing page.
type Overview struct {
	Empty          bool          `json:"empty"`
	Reason         string        `json:"reason,omitempty"`
	Athletes       int           `json:"athletes"`
	NOCs           int           `json:"nocs"`
	Regions        int           `json:"regions"`
	Sports         int           `json:"sports"`
	Events         int           `json:"events"`
	Games          int           `json:"games"`
	FirstYear      int           `json:"first_year"`
	LastYear       int           `json:"last_year"`
	Medals         medals.Counts `json:"medals"`
	AthletesByYear []YearCount   `json:"athletes_by_year"`
}

// MedalTableQuery filters a medal table. Zero values mean "all".
type MedalTableQuery struct {
	Year   int
	Season model.Season
	Sport  string
	Unit   medals.Unit
	Limit  int
}

// MedalTable is a ranked medal table under the given filters.
type MedalTable struct {
	Empty  bool        `json:"empty"`
	Unit   medals.Unit `json:"unit"`
	Year   int         `json:"year,omitempty"`
	Season string      `json:"season,omitempty"`
	Sport  string      `json:"sport,omitempty"`
	Rows   []Entry     `json:"rows"`
}

// YearSummary backs the Olympic year page.
type YearSummary struct {
	Empty    bool             `json:"empty"`
	Year     int              `json:"year"`
	Host     *model.HostCity  `json:"host,omitempty"`
	Hosts    []model.HostCity `json:"hosts"`
	NOCs     int              `json:"nocs"`
	Athletes int              `json:"athletes"`
	Sports   int              `json:"sports"`
	Events   int              `json:"events"`
	Table    []Entry          `json:"table"`
}

// CountryProfile backs the country page.
type CountryProfile struct {
	Empty          bool           `json:"empty"`
	NOC            string         `json:"noc"`
	Region         string         `json:"region"`
	Athletes       int            `json:"athletes"`
	Medals         medals.Counts  `json:"medals"`
	Efficiency     float64        `json:"efficiency"`
	MedalsByYear   []YearMedals   `json:"medals_by_year"`
	AthletesByYear []YearGender   `json:"athletes_by_year"`
	TopSports      []SportMedals  `json:"top_sports"`
	AgeHistogram   []insights.Bin `json:"age_histogram"`
}

// SportProfile backs the sport page.
type SportProfile struct {
	Empty          bool        `json:"empty"`
	Sport          string      `json:"sport"`
	TopNOCs        []Entry     `json:"top_nocs"`
	AthletesByYear []YearCount `json:"athletes_by_year"`
}

// CompareSide summarizes one NOC in a comparison.
type CompareSide struct {
	NOC        string        `json:"noc"`
	Region     string        `json:"region"`
	Athletes   int           `json:"athletes"`
	Medals     medals.Counts `json:"medals"`
	Efficiency float64       `json:"efficiency"`
}

// ComparePoint holds the medal totals of both sides for one year or sport.
type ComparePoint struct {
	Label string `json:"label"`
	A     int    `json:"a"`
	B     int    `json:"b"`
}

// Comparison backs the country comparison page.
type Comparison struct {
	Empty  bool           `json:"empty"`
	A      CompareSide    `json:"a"`
	B      CompareSide    `json:"b"`
	Years  []ComparePoint `json:"years"`
	Sports []ComparePoint `json:"sports"`
}

// HostRow is one host nation's home Games against its other Summer Games.
type HostRow struct {
	Year       int     `json:"year"`
	City       string  `json:"city"`
	NOC        string  `json:"noc"`
	Region     string  `json:"region"`
	HostMedals int     `json:"host_medals"`
	OtherGames int     `json:"other_games"`
	Baseline   float64 `json:"baseline"`
	Ratio      float64 `json:"ratio"`
}

// HostAnalysis backs the host advantage page.
type HostAnalysis struct {
	Empty     bool      `json:"empty"`
	Rows      []HostRow `json:"rows"`
	MeanRatio float64   `json:"mean_ratio"`
}

// HDIRegion is one region's medals paired with its HDI.
type HDIRegion struct {
	Region   string  `json:"region"`
	Country  string  `json:"country"`
	HDI      float64 `json:"hdi"`
	Category string  `json:"category"`
	Medals   int     `json:"medals"`
}

// CategoryShare is the medal total and share of one HDI category.
type CategoryShare struct {
	Category string  `json:"category"`
	Medals   int     `json:"medals"`
	Share    float64 `json:"share"`
}

// HDIAnalysis backs the economic page.
type HDIAnalysis struct {
	Empty           bool            `json:"empty"`
	Reason          string          `json:"reason,omitempty"`
	Year            int             `json:"year,omitempty"`
	HDIYear         int             `json:"hdi_year,omitempty"`
	Sport           string          `json:"sport,omitempty"`
	Regions         []HDIRegion     `json:"regions"`
	Correlation     *float64        `json:"correlation,omitempty"`
	Strength        string          `json:"strength,omitempty"`
	Categories      []CategoryShare `json:"categories"`
	SportCategories []CategoryShare `json:"sport_categories,omitempty"`
}

// Stats reports the service state.
type Stats struct {
	Status         string         `json:"status"`
	Reason         string         `json:"reason,omitempty"`
	Unit           medals.Unit    `json:"unit"`
	Rows           int            `json:"rows"`
	RowsDropped    int            `json:"rows_dropped"`
	UnknownRegions int            `json:"unknown_regions"`
	HDIPoints      int            `json:"hdi_points"`
	Options        map[string]int `json:"options"`
	LoadedAt       time.Time      `json:"loaded_at"`
	LoadDuration   string         `json:"load_duration"`
	Uptime         string         `json:"uptime"`
	Normalized     map[string]int `json:"normalized,omitempty"`
}
