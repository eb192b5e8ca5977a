package types_test

import (
	"testing"

	"github.com/okian/olympus/internal/domain/medals"
	types "github.com/okian/olympus/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEntries(t *testing.T) {
	Convey("Given ranked medal rows", t, func() {
		ranked := medals.Rank([]medals.Row{
			{Key: []string{"USA", "2016"}, Counts: medals.Counts{Gold: 2, Total: 2}},
			{Key: []string{"GBR", "2016"}, Counts: medals.Counts{Gold: 1, Total: 1}},
			{Key: []string{"CHN", "2016"}, Counts: medals.Counts{Silver: 1, Total: 1}},
		})

		Convey("When converting without a limit", func() {
			entries := types.Entries(ranked, 0)

			Convey("Then every row is kept with a joined name", func() {
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Name, ShouldEqual, "USA / 2016")
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].Gold, ShouldEqual, 2)
			})
		})

		Convey("When converting with a limit", func() {
			entries := types.Entries(ranked, 2)

			Convey("Then only the top rows are kept", func() {
				So(entries, ShouldHaveLength, 2)
				So(entries[1].Name, ShouldEqual, "GBR / 2016")
			})
		})

		Convey("When the limit exceeds the rows", func() {
			So(types.Entries(ranked, 10), ShouldHaveLength, 3)
		})
	})

	Convey("Given no rows", t, func() {
		So(types.Entries(nil, 5), ShouldBeEmpty)
	})
}
