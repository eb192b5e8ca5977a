package export_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/olympus/internal/adapters/dataset"
	"github.com/okian/olympus/internal/adapters/export"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/types"
	"github.com/okian/olympus/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		panic(err)
	}
}

func writeInputs(t *testing.T) dataset.Source {
	t.Helper()
	dir := t.TempDir()
	src := dataset.Source{
		AthleteEvents: filepath.Join(dir, "athlete_events.csv"),
		Regions:       filepath.Join(dir, "noc_regions.csv"),
	}
	athletes := `Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal
R1,M,28,190,90,Great Britain,GBR,2012 Summer,2012,Summer,London,Rowing,Rowing Men's Eights,Gold
R2,M,29,191,91,Great Britain,GBR,2012 Summer,2012,Summer,London,Rowing,Rowing Men's Eights,Gold
R3,M,30,192,92,Germany,GER,2012 Summer,2012,Summer,London,Rowing,Rowing Men's Eights,Silver
`
	if err := os.WriteFile(src.AthleteEvents, []byte(athletes), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src.Regions, []byte("NOC,region\nGBR,UK\nGER,Germany\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return src
}

func TestRun(t *testing.T) {
	Convey("Given input files", t, func() {
		src := writeInputs(t)
		outDir := t.TempDir()
		ctx := context.Background()

		Convey("When exporting to SQLite", func() {
			path := filepath.Join(outDir, "olympus.db")
			err := export.Run(ctx, export.Config{Source: src, Format: "SQLite", Output: path})

			Convey("Then both tables are written and the eight counts once", func() {
				So(err, ShouldBeNil)
				db, err := sql.Open("sqlite", path)
				So(err, ShouldBeNil)
				defer func() { _ = db.Close() }()

				var rows, gold int
				So(db.QueryRow("SELECT COUNT(*) FROM athlete_events").Scan(&rows), ShouldBeNil)
				So(db.QueryRow("SELECT gold FROM medal_table WHERE name = 'UK'").Scan(&gold), ShouldBeNil)
				So(rows, ShouldEqual, 3)
				So(gold, ShouldEqual, 1)
			})
		})

		Convey("When exporting to XLSX per NOC", func() {
			path := filepath.Join(outDir, "medals.xlsx")
			err := export.Run(ctx, export.Config{
				Source: src,
				Format: export.FormatXLSX,
				Output: path,
				Query:  types.MedalTableQuery{Year: 2012, Unit: medals.UnitNOC},
			})

			Convey("Then the workbook ranks NOCs", func() {
				So(err, ShouldBeNil)
				f, err := excelize.OpenFile(path)
				So(err, ShouldBeNil)
				defer func() { _ = f.Close() }()
				first, _ := f.GetCellValue(export.SheetMedals, "B2")
				second, _ := f.GetCellValue(export.SheetMedals, "B3")
				So(first, ShouldEqual, "GBR")
				So(second, ShouldEqual, "GER")
			})
		})

		Convey("When the format is unknown", func() {
			err := export.Run(ctx, export.Config{Source: src, Format: "csv", Output: filepath.Join(outDir, "x")})
			So(errors.Is(err, export.ErrUnknownFormat), ShouldBeTrue)
		})

		Convey("When the input is missing", func() {
			src.AthleteEvents = filepath.Join(outDir, "none.csv")
			err := export.Run(ctx, export.Config{Source: src, Format: export.FormatSQLite, Output: filepath.Join(outDir, "x.db")})
			So(errors.Is(err, export.ErrNoData), ShouldBeTrue)
		})
	})
}
