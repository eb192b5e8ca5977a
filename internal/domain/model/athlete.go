// Package model contains domain models passed between layers.
package model

import "strings"

// RegionUnknown is the region assigned to rows whose NOC has no region mapping.
const RegionUnknown = "Unknown"

// Medal is the medal outcome of one athlete-event row.
type Medal string

const (
	MedalNone   Medal = "None"
	MedalGold   Medal = "Gold"
	MedalSilver Medal = "Silver"
	MedalBronze Medal = "Bronze"
)

// Medals lists the awarded medal types in podium order.
var Medals = []Medal{MedalGold, MedalSilver, MedalBronze} //nolint:gochecknoglobals // read-only table

// ParseMedal normalizes a raw medal cell. Empty and NA cells are MedalNone.
// ok is false when the value was not recognized; the result is MedalNone then.
func ParseMedal(raw string) (m Medal, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gold":
		return MedalGold, true
	case "silver":
		return MedalSilver, true
	case "bronze":
		return MedalBronze, true
	case "", "na", "nan", "none":
		return MedalNone, true
	default:
		return MedalNone, false
	}
}

// Awarded reports whether the row carries a medal.
func (m Medal) Awarded() bool {
	return m == MedalGold || m == MedalSilver || m == MedalBronze
}

// Gender of an athlete. The zero value is GenderUnknown.
type Gender string

const (
	GenderUnknown Gender = ""
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
)

// ParseGender maps M/F (and male/female) to a Gender; anything else is GenderUnknown.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m", "male":
		return GenderMale
	case "f", "female":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// Season of a Games edition. The zero value is SeasonUnknown.
type Season string

const (
	SeasonUnknown Season = ""
	SeasonSummer  Season = "Summer"
	SeasonWinter  Season = "Winter"
)

// ParseSeason maps Summer/Winter case-insensitively; anything else is SeasonUnknown.
func ParseSeason(raw string) Season {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "summer":
		return SeasonSummer
	case "winter":
		return SeasonWinter
	default:
		return SeasonUnknown
	}
}

// AthleteEvent is one athlete's participation in one event at one Games.
// Many rows share (Year, Season, Event, Medal, NOC) for team medals.
type AthleteEvent struct {
	Name   string   `json:"name"`
	Gender Gender   `json:"gender"`
	Age    *float64 `json:"age"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
	Team   string   `json:"team"`
	NOC    string   `json:"noc"`
	Region string   `json:"region"`
	Games  string   `json:"games"`
	Year   int      `json:"year"`
	Season Season   `json:"season"`
	City   string   `json:"city"`
	Sport  string   `json:"sport"`
	Event  string   `json:"event"`
	Medal  Medal    `json:"medal"`
}

// FilterOptions are the distinct values offered by the dashboard selectors.
// Years are descending; the string lists ascending.
type FilterOptions struct {
	Years   []int    `json:"years"`
	Sports  []string `json:"sports"`
	NOCs    []string `json:"nocs"`
	Regions []string `json:"regions"`
}

// HDIPoint is one (country, year) Human Development Index value.
type HDIPoint struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	HDI     float64 `json:"hdi"`
}

// HostCity names the city of one Games. NOC and Region are set for Summer hosts only.
type HostCity struct {
	Year   int    `json:"year"`
	Season Season `json:"season,omitempty"`
	City   string `json:"city"`
	NOC    string `json:"noc,omitempty"`
	Region string `json:"region,omitempty"`
}
