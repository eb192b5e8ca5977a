package model_test

import (
	"testing"

	model "github.com/okian/olympus/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseMedal(t *testing.T) {
	convey.Convey("Given raw medal cells", t, func() {
		convey.Convey("When the value is a known medal in any case", func() {
			for raw, want := range map[string]model.Medal{
				"Gold":     model.MedalGold,
				" silver ": model.MedalSilver,
				"BRONZE":   model.MedalBronze,
			} {
				got, ok := model.ParseMedal(raw)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(got, convey.ShouldEqual, want)
			}
		})

		convey.Convey("When the value is missing", func() {
			for _, raw := range []string{"", "NA", "nan", "None"} {
				got, ok := model.ParseMedal(raw)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(got, convey.ShouldEqual, model.MedalNone)
			}
		})

		convey.Convey("When the value is unrecognized", func() {
			got, ok := model.ParseMedal("Platinum")

			convey.Convey("Then it becomes None and is flagged", func() {
				convey.So(ok, convey.ShouldBeFalse)
				convey.So(got, convey.ShouldEqual, model.MedalNone)
				convey.So(got.Awarded(), convey.ShouldBeFalse)
			})
		})
	})
}

func TestMedalAwarded(t *testing.T) {
	convey.Convey("Given the podium medals", t, func() {
		for _, m := range model.Medals {
			convey.So(m.Awarded(), convey.ShouldBeTrue)
		}
		convey.So(model.MedalNone.Awarded(), convey.ShouldBeFalse)
		convey.So(model.Medal("").Awarded(), convey.ShouldBeFalse)
	})
}

func TestParseGenderAndSeason(t *testing.T) {
	convey.Convey("Given raw sex and season cells", t, func() {
		convey.So(model.ParseGender("M"), convey.ShouldEqual, model.GenderMale)
		convey.So(model.ParseGender("f"), convey.ShouldEqual, model.GenderFemale)
		convey.So(model.ParseGender("X"), convey.ShouldEqual, model.GenderUnknown)
		convey.So(model.ParseSeason("Summer"), convey.ShouldEqual, model.SeasonSummer)
		convey.So(model.ParseSeason(" winter"), convey.ShouldEqual, model.SeasonWinter)
		convey.So(model.ParseSeason("Autumn"), convey.ShouldEqual, model.SeasonUnknown)
	})
}
