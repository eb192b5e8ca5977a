package service_test

import (
	"fmt"
	"io"

	"github.com/okian/olympus/internal/adapters/dataset"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		panic(err)
	}
}

func f(v float64) *float64 { return &v }

type rowSpec struct {
	name   string
	gender model.Gender
	age    float64
	noc    string
	region string
	year   int
	season model.Season
	sport  string
	event  string
	medal  model.Medal
}

// fixtureCities leaves 1984 and 1988 blank so the Summer host table fills them in.
var fixtureCities = map[string]string{
	"2012 Summer": "London",
	"2014 Winter": "Sochi",
	"2016 Summer": "Rio de Janeiro",
}

func build(specs []rowSpec) []model.AthleteEvent {
	rows := make([]model.AthleteEvent, len(specs))
	for i, s := range specs {
		rows[i] = model.AthleteEvent{
			Name:   s.name,
			Gender: s.gender,
			NOC:    s.noc,
			Region: s.region,
			Year:   s.year,
			Season: s.season,
			Games:  fmt.Sprintf("%d %s", s.year, s.season),
			City:   fixtureCities[fmt.Sprintf("%d %s", s.year, s.season)],
			Sport:  s.sport,
			Event:  s.event,
			Medal:  s.medal,
		}
		if s.age > 0 {
			rows[i].Age = f(s.age)
		}
	}
	return rows
}

const (
	relay = "Athletics Women's 4 x 100 metres Relay"
	m100  = "Athletics Men's 100 metres"
	eight = "Rowing Men's Eights"
)

// fixtureRows is a small table with a team medal, a host year and a shared region.
func fixtureRows() []model.AthleteEvent {
	S, W := model.SeasonSummer, model.SeasonWinter
	M, F := model.GenderMale, model.GenderFemale
	G, Sv, B, N := model.MedalGold, model.MedalSilver, model.MedalBronze, model.MedalNone
	return build([]rowSpec{
		{"Tori", F, 23, "USA", "USA", 2016, S, "Athletics", relay, G},
		{"Allyson", F, 30, "USA", "USA", 2016, S, "Athletics", relay, G},
		{"English", F, 27, "USA", "USA", 2016, S, "Athletics", relay, G},
		{"Tianna", F, 30, "USA", "USA", 2016, S, "Athletics", relay, G},
		{"Justin", M, 34, "USA", "USA", 2016, S, "Athletics", m100, Sv},
		{"Usain", M, 29, "JAM", "Jamaica", 2016, S, "Athletics", m100, G},
		{"Andre", M, 21, "CAN", "Canada", 2016, S, "Athletics", m100, B},
		{"Carl", M, 23, "USA", "USA", 1984, S, "Athletics", m100, G},
		{"Sam", M, 25, "USA", "USA", 1988, S, "Athletics", m100, N},
		{"Rower1", M, 28, "GBR", "UK", 2012, S, "Rowing", eight, G},
		{"Rower2", M, 29, "GBR", "UK", 2012, S, "Rowing", eight, G},
		{"Rower3", M, 30, "GBR", "UK", 2016, S, "Rowing", eight, Sv},
		{"Skier", F, 22, "NOR", "Norway", 2014, W, "Alpine Skiing", "Slalom", G},
		{"Tori", F, 24, "USA", "USA", 2016, S, "Athletics", "Athletics Women's 200 metres", N},
	})
}

func loadedOutcome(rows []model.AthleteEvent, hdi []model.HDIPoint) *dataset.Outcome {
	if hdi == nil {
		hdi = []model.HDIPoint{}
	}
	return &dataset.Outcome{
		Status:  dataset.StatusLoaded,
		Table:   rows,
		Options: dataset.Options(rows),
		HDI:     hdi,
		Stats:   dataset.Stats{RowsRead: len(rows), Normalized: map[string]int{}},
	}
}

func emptyOutcome() *dataset.Outcome {
	return &dataset.Outcome{
		Status:  dataset.StatusEmpty,
		Reason:  "input file missing: athlete_events.csv",
		Table:   []model.AthleteEvent{},
		Options: dataset.Options(nil),
		HDI:     []model.HDIPoint{},
		Stats:   dataset.Stats{Normalized: map[string]int{}},
	}
}
