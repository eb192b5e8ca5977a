package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/okian/olympus/internal/adapters/dataset"
	service "github.com/okian/olympus/internal/app"
	"github.com/okian/olympus/internal/domain/insights"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		defer svc.Stop()
		ctx := context.Background()

		Convey("When it has not been started", func() {
			_, err := svc.Overview(ctx)

			Convey("Then page operations fail with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
				So(svc.Ready(), ShouldBeFalse)
				So(svc.GetStats().Status, ShouldEqual, "stopped")
			})
		})

		Convey("When starting the service", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then it should be ready and report stats", func() {
				So(svc.Ready(), ShouldBeTrue)
				stats := svc.GetStats()
				So(stats.Status, ShouldEqual, string(dataset.StatusLoaded))
				So(stats.Rows, ShouldEqual, 14)
				So(stats.Unit, ShouldEqual, medals.UnitRegion)
				So(stats.Options["nocs"], ShouldEqual, 5)
			})

			Convey("And starting twice is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stopping returns it to the stopped state", func() {
				svc.Stop()
				So(svc.Ready(), ShouldBeFalse)
				_, err := svc.FilterOptions(ctx)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})
}

func TestService_StartFromFiles(t *testing.T) {
	Convey("Given input files on disk", t, func() {
		dir := t.TempDir()
		athletes := filepath.Join(dir, "athlete_events.csv")
		regions := filepath.Join(dir, "noc_regions.csv")
		So(os.WriteFile(athletes, []byte(`Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal
A,F,20,170,60,United States,USA,2016 Summer,2016,Summer,Rio,Athletics,Relay,Gold
B,F,21,171,61,United States,USA,2016 Summer,2016,Summer,Rio,Athletics,Relay,Gold
`), 0o600), ShouldBeNil)
		So(os.WriteFile(regions, []byte("NOC,region\nUSA,USA\n"), 0o600), ShouldBeNil)

		clock := clockwork.NewFakeClock()
		ctx := context.Background()

		Convey("When the service starts", func() {
			svc := service.New(
				service.WithSource(dataset.Source{AthleteEvents: athletes, Regions: regions}),
				service.WithClock(clock),
			)
			defer svc.Stop()
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the relay gold counts once", func() {
				table, err := svc.MedalTable(ctx, service.MedalTableQuery{})
				So(err, ShouldBeNil)
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].Name, ShouldEqual, "USA")
				So(table.Rows[0].Gold, ShouldEqual, 1)
				So(table.Rows[0].Total, ShouldEqual, 1)
			})

			Convey("Then uptime follows the clock", func() {
				clock.Advance(90 * time.Second)
				So(svc.GetStats().Uptime, ShouldEqual, "1m30s")
			})
		})

		Convey("When the athlete file is missing", func() {
			svc := service.New(service.WithSource(dataset.Source{AthleteEvents: filepath.Join(dir, "none.csv"), Regions: regions}))
			defer svc.Stop()

			Convey("Then Start still succeeds and pages are empty", func() {
				So(svc.Start(ctx), ShouldBeNil)
				ov, err := svc.Overview(ctx)
				So(err, ShouldBeNil)
				So(ov.Empty, ShouldBeTrue)
				So(ov.Reason, ShouldContainSubstring, "input file missing")
				So(svc.GetStats().Status, ShouldEqual, string(dataset.StatusEmpty))
			})
		})
	})
}

func TestService_Overview(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		ov, err := svc.Overview(ctx)

		Convey("Then the landing numbers are computed", func() {
			So(err, ShouldBeNil)
			So(ov.Empty, ShouldBeFalse)
			So(ov.Athletes, ShouldEqual, 13)
			So(ov.NOCs, ShouldEqual, 5)
			So(ov.Regions, ShouldEqual, 5)
			So(ov.Sports, ShouldEqual, 3)
			So(ov.Events, ShouldEqual, 5)
			So(ov.Games, ShouldEqual, 5)
			So(ov.FirstYear, ShouldEqual, 1984)
			So(ov.LastYear, ShouldEqual, 2016)
			So(ov.Medals, ShouldResemble, medals.Counts{Gold: 5, Silver: 2, Bronze: 1, Total: 8})
		})

		Convey("Then unique athletes are counted per year", func() {
			So(ov.AthletesByYear, ShouldHaveLength, 5)
			So(ov.AthletesByYear[0].Year, ShouldEqual, 1984)
			So(ov.AthletesByYear[4].Year, ShouldEqual, 2016)
			So(ov.AthletesByYear[4].Count, ShouldEqual, 8)
		})

		Convey("Then filter options come from the table", func() {
			opts, err := svc.FilterOptions(ctx)
			So(err, ShouldBeNil)
			So(opts.Years, ShouldResemble, []int{2016, 2014, 2012, 1988, 1984})
		})
	})
}

func TestService_MedalTable(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When ranking every Games by region", func() {
			table, err := svc.MedalTable(ctx, service.MedalTableQuery{})

			Convey("Then rows follow gold, silver, bronze order with name ties broken", func() {
				So(err, ShouldBeNil)
				So(table.Unit, ShouldEqual, medals.UnitRegion)
				names := make([]string, len(table.Rows))
				for i, r := range table.Rows {
					names[i] = r.Name
				}
				So(names, ShouldResemble, []string{"USA", "UK", "Jamaica", "Norway", "Canada"})
				So(table.Rows[0].Counts, ShouldResemble, medals.Counts{Gold: 2, Silver: 1, Total: 3})
				So(table.Rows[1].Counts, ShouldResemble, medals.Counts{Gold: 1, Silver: 1, Total: 2})
			})

			Convey("Then every total is the sum of its medals", func() {
				for _, r := range table.Rows {
					So(r.Total, ShouldEqual, r.Gold+r.Silver+r.Bronze)
				}
			})
		})

		Convey("When filtering by year and counting per NOC", func() {
			table, err := svc.MedalTable(ctx, service.MedalTableQuery{Year: 2016, Unit: medals.UnitNOC})
			So(err, ShouldBeNil)
			So(table.Rows, ShouldHaveLength, 4)
			So(table.Rows[0].Name, ShouldEqual, "USA")
			So(table.Rows[0].Gold, ShouldEqual, 1)
			So(table.Rows[3].Name, ShouldEqual, "CAN")
		})

		Convey("When filtering by season", func() {
			table, _ := svc.MedalTable(ctx, service.MedalTableQuery{Season: "Winter"})
			So(table.Rows, ShouldHaveLength, 1)
			So(table.Rows[0].Name, ShouldEqual, "Norway")
		})

		Convey("When limiting the rows", func() {
			table, _ := svc.MedalTable(ctx, service.MedalTableQuery{Limit: 2})
			So(table.Rows, ShouldHaveLength, 2)
		})

		Convey("When the arguments are invalid", func() {
			_, err := svc.MedalTable(ctx, service.MedalTableQuery{Limit: -1})
			So(errors.Is(err, service.ErrInvalidArgument), ShouldBeTrue)
			_, err = svc.MedalTable(ctx, service.MedalTableQuery{Unit: "team"})
			So(errors.Is(err, service.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("When no row matches", func() {
			table, err := svc.MedalTable(ctx, service.MedalTableQuery{Year: 1896})
			So(err, ShouldBeNil)
			So(table.Rows, ShouldBeEmpty)
			So(table.Rows, ShouldNotBeNil)
		})
	})

	Convey("Given a service configured to count per NOC", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)), service.WithUnit(medals.UnitNOC))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		table, _ := svc.MedalTable(context.Background(), service.MedalTableQuery{})
		So(table.Unit, ShouldEqual, medals.UnitNOC)
		So(table.Rows[1].Name, ShouldEqual, "GBR")
	})
}

func TestService_YearSummary(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)), service.WithTopLimit(3))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When summarizing 2016", func() {
			sum, err := svc.YearSummary(ctx, 2016)

			Convey("Then host, counts and the top table are filled", func() {
				So(err, ShouldBeNil)
				So(sum.Host, ShouldNotBeNil)
				So(sum.Host.City, ShouldEqual, "Rio de Janeiro")
				So(sum.Host.NOC, ShouldEqual, "BRA")
				So(sum.Hosts, ShouldHaveLength, 1)
				So(sum.NOCs, ShouldEqual, 4)
				So(sum.Athletes, ShouldEqual, 8)
				So(sum.Sports, ShouldEqual, 2)
				So(sum.Events, ShouldEqual, 4)
				So(sum.Table, ShouldHaveLength, 3)
				So(sum.Table[0].Name, ShouldEqual, "USA")
				So(sum.Table[0].Rank, ShouldEqual, 1)
			})
		})

		Convey("When summarizing a Winter year", func() {
			sum, err := svc.YearSummary(ctx, 2014)

			Convey("Then the host city comes from the Winter rows", func() {
				So(err, ShouldBeNil)
				So(sum.Host, ShouldNotBeNil)
				So(sum.Host.City, ShouldEqual, "Sochi")
				So(sum.Host.Season, ShouldEqual, model.SeasonWinter)
				So(sum.Host.NOC, ShouldBeEmpty)
				So(sum.Hosts, ShouldHaveLength, 1)
			})
		})

		Convey("When the rows carry no city", func() {
			sum, err := svc.YearSummary(ctx, 1984)

			Convey("Then the Summer host table supplies it", func() {
				So(err, ShouldBeNil)
				So(sum.Host.City, ShouldEqual, "Los Angeles")
				So(sum.Host.Region, ShouldEqual, "USA")
			})
		})

		Convey("When the year is absent", func() {
			_, err := svc.YearSummary(ctx, 1900)
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestService_CountryProfile(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When profiling USA", func() {
			p, err := svc.CountryProfile(ctx, "USA")

			Convey("Then medals by year are zero-filled", func() {
				So(err, ShouldBeNil)
				So(p.Region, ShouldEqual, "USA")
				So(p.MedalsByYear, ShouldHaveLength, 3)
				So(p.MedalsByYear[0].Year, ShouldEqual, 1984)
				So(p.MedalsByYear[0].Gold, ShouldEqual, 1)
				So(p.MedalsByYear[1].Year, ShouldEqual, 1988)
				So(p.MedalsByYear[1].Total, ShouldEqual, 0)
				So(p.MedalsByYear[2].Counts, ShouldResemble, medals.Counts{Gold: 1, Silver: 1, Total: 2})
			})

			Convey("Then athletes are split by gender per year", func() {
				last := p.AthletesByYear[len(p.AthletesByYear)-1]
				So(last.Year, ShouldEqual, 2016)
				So(last.Female, ShouldEqual, 4)
				So(last.Male, ShouldEqual, 1)
			})

			Convey("Then totals and efficiency are consistent", func() {
				So(p.Athletes, ShouldEqual, 7)
				So(p.Medals.Total, ShouldEqual, 3)
				So(p.Efficiency, ShouldAlmostEqual, 3.0/7.0, 1e-9)
				So(p.TopSports, ShouldHaveLength, 1)
				So(p.TopSports[0].Sport, ShouldEqual, "Athletics")
			})

			Convey("Then the age histogram covers every row with an age", func() {
				So(p.AgeHistogram, ShouldHaveLength, 20)
				total := 0
				for _, b := range p.AgeHistogram {
					total += b.Count
				}
				So(total, ShouldEqual, 8)
			})
		})

		Convey("When the NOC is unknown", func() {
			_, err := svc.CountryProfile(ctx, "XYZ")
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestService_SportProfile(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When profiling rowing", func() {
			p, err := svc.SportProfile(ctx, "Rowing")

			Convey("Then the eight counts once per Games", func() {
				So(err, ShouldBeNil)
				So(p.TopNOCs, ShouldHaveLength, 1)
				So(p.TopNOCs[0].Name, ShouldEqual, "GBR")
				So(p.TopNOCs[0].Counts, ShouldResemble, medals.Counts{Gold: 1, Silver: 1, Total: 2})
				So(p.AthletesByYear, ShouldHaveLength, 2)
				So(p.AthletesByYear[0].Count, ShouldEqual, 2)
			})
		})

		Convey("When the sport is unknown", func() {
			_, err := svc.SportProfile(ctx, "Quidditch")
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestService_Compare(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When comparing USA and JAM", func() {
			cmp, err := svc.Compare(ctx, "USA", "JAM")

			Convey("Then years are the zero-filled union", func() {
				So(err, ShouldBeNil)
				So(cmp.Years, ShouldHaveLength, 3)
				So(cmp.Years[0].Label, ShouldEqual, "1984")
				So(cmp.Years[0].A, ShouldEqual, 1)
				So(cmp.Years[0].B, ShouldEqual, 0)
				So(cmp.Years[2].A, ShouldEqual, 2)
				So(cmp.Years[2].B, ShouldEqual, 1)
			})

			Convey("Then shared sports and sides are filled", func() {
				So(cmp.Sports, ShouldHaveLength, 1)
				So(cmp.Sports[0].Label, ShouldEqual, "Athletics")
				So(cmp.A.Medals.Total, ShouldEqual, 3)
				So(cmp.B.Athletes, ShouldEqual, 1)
				So(cmp.B.Efficiency, ShouldEqual, 1)
				So(cmp.B.Region, ShouldEqual, "Jamaica")
			})
		})

		Convey("When a NOC is missing or unknown", func() {
			_, err := svc.Compare(ctx, "USA", "")
			So(errors.Is(err, service.ErrInvalidArgument), ShouldBeTrue)
			_, err = svc.Compare(ctx, "USA", "XYZ")
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestService_HostAnalysis(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		ha, err := svc.HostAnalysis(ctx)

		Convey("Then only hosts present in the table are listed", func() {
			So(err, ShouldBeNil)
			So(ha.Rows, ShouldHaveLength, 2)
			So(ha.Rows[0].Year, ShouldEqual, 1984)
			So(ha.Rows[0].NOC, ShouldEqual, "USA")
			So(ha.Rows[1].NOC, ShouldEqual, "GBR")
		})

		Convey("Then the host year is compared with the other Summer Games", func() {
			la := ha.Rows[0]
			So(la.HostMedals, ShouldEqual, 1)
			So(la.OtherGames, ShouldEqual, 2)
			So(la.Baseline, ShouldEqual, 1)
			So(la.Ratio, ShouldEqual, 1)
			So(ha.MeanRatio, ShouldEqual, 1)
		})
	})

	Convey("Given hosts that competed under former NOC codes", t, func() {
		S, G, B := model.SeasonSummer, model.MedalGold, model.MedalBronze
		rows := build([]rowSpec{
			{"Boxer", model.GenderMale, 24, "URS", "Russia", 1976, S, "Boxing", "Boxing Men's Heavyweight", G},
			{"Lifter", model.GenderMale, 26, "URS", "Russia", 1980, S, "Weightlifting", "Weightlifting Men's Heavyweight", G},
			{"Wrestler", model.GenderMale, 27, "URS", "Russia", 1980, S, "Wrestling", "Wrestling Men's Heavyweight", G},
			{"Gymnast", model.GenderFemale, 19, "RUS", "Russia", 1996, S, "Gymnastics", "Gymnastics Women's Vault", G},
			{"Rower", model.GenderMale, 25, "FRG", "Germany", 1972, S, "Rowing", eight, G},
			{"Cyclist", model.GenderMale, 28, "GER", "Germany", 1992, S, "Cycling", "Cycling Men's Road Race", B},
		})
		svc := service.New(service.WithOutcome(loadedOutcome(rows, nil)))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		ha, err := svc.HostAnalysis(ctx)

		Convey("Then their medals count through the host region", func() {
			So(err, ShouldBeNil)
			So(ha.Rows, ShouldHaveLength, 2)

			munich := ha.Rows[0]
			So(munich.Year, ShouldEqual, 1972)
			So(munich.Region, ShouldEqual, "Germany")
			So(munich.HostMedals, ShouldEqual, 1)
			So(munich.Ratio, ShouldEqual, 1)

			moscow := ha.Rows[1]
			So(moscow.Year, ShouldEqual, 1980)
			So(moscow.NOC, ShouldEqual, "RUS")
			So(moscow.Region, ShouldEqual, "Russia")
			So(moscow.HostMedals, ShouldEqual, 2)
			So(moscow.OtherGames, ShouldEqual, 2)
			So(moscow.Baseline, ShouldEqual, 1)
			So(moscow.Ratio, ShouldEqual, 2)
			So(ha.MeanRatio, ShouldEqual, 1.5)
		})
	})
}

func hdiPoints() []model.HDIPoint {
	return []model.HDIPoint{
		{Country: "United States", Year: 2010, HDI: 0.91},
		{Country: "United States", Year: 2016, HDI: 0.92},
		{Country: "Jamaica", Year: 2016, HDI: 0.73},
		{Country: "Canada", Year: 2016, HDI: 0.92},
		{Country: "United Kingdom", Year: 2010, HDI: 0.90},
		{Country: "United Kingdom", Year: 2016, HDI: 0.92},
		{Country: "Norway", Year: 2016, HDI: 0.95},
	}
}

func TestService_HDIAnalysis(t *testing.T) {
	Convey("Given a started service with HDI data", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), hdiPoints())))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When analysing 2016", func() {
			an, err := svc.HDIAnalysis(ctx, 2016, "")

			Convey("Then regions are paired with their HDI category", func() {
				So(err, ShouldBeNil)
				So(an.Empty, ShouldBeFalse)
				So(an.HDIYear, ShouldEqual, 2016)
				So(an.Regions, ShouldHaveLength, 4)
				So(an.Regions[0].Region, ShouldEqual, "USA")
				So(an.Regions[0].Country, ShouldEqual, "United States")
				So(an.Regions[0].Medals, ShouldEqual, 2)
				So(an.Correlation, ShouldNotBeNil)
				So(an.Strength, ShouldNotBeBlank)
			})

			Convey("Then category shares sum to one", func() {
				So(an.Categories, ShouldHaveLength, len(insights.HDICategories))
				So(an.Categories[2].Category, ShouldEqual, insights.HDIHigh)
				So(an.Categories[2].Share, ShouldAlmostEqual, 0.2, 1e-9)
				So(an.Categories[3].Medals, ShouldEqual, 4)
				So(an.Categories[3].Share, ShouldAlmostEqual, 0.8, 1e-9)
			})
		})

		Convey("When the year has no HDI of its own", func() {
			an, err := svc.HDIAnalysis(ctx, 2014, "")

			Convey("Then the closest earlier HDI year is used", func() {
				So(err, ShouldBeNil)
				So(an.HDIYear, ShouldEqual, 2010)
				So(an.Regions, ShouldBeEmpty)
				So(an.Correlation, ShouldBeNil)
			})
		})

		Convey("When a sport is selected", func() {
			an, err := svc.HDIAnalysis(ctx, 2016, "Rowing")
			So(err, ShouldBeNil)
			So(an.SportCategories, ShouldHaveLength, 4)
			So(an.SportCategories[3].Share, ShouldEqual, 1)
		})

		Convey("When the year or sport is unknown", func() {
			_, err := svc.HDIAnalysis(ctx, 1900, "")
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
			_, err = svc.HDIAnalysis(ctx, 0, "Quidditch")
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a service without HDI data", t, func() {
		svc := service.New(service.WithOutcome(loadedOutcome(fixtureRows(), nil)))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		an, err := svc.HDIAnalysis(context.Background(), 0, "")
		So(err, ShouldBeNil)
		So(an.Empty, ShouldBeTrue)
		So(an.Reason, ShouldEqual, "hdi data unavailable")
	})
}

func TestService_EmptyDataset(t *testing.T) {
	Convey("Given a service whose load came back empty", t, func() {
		svc := service.New(service.WithOutcome(emptyOutcome()))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then every page is empty instead of failing", func() {
			ov, err := svc.Overview(ctx)
			So(err, ShouldBeNil)
			So(ov.Empty, ShouldBeTrue)

			table, err := svc.MedalTable(ctx, service.MedalTableQuery{Year: 2016})
			So(err, ShouldBeNil)
			So(table.Empty, ShouldBeTrue)
			So(table.Rows, ShouldNotBeNil)

			sum, err := svc.YearSummary(ctx, 2016)
			So(err, ShouldBeNil)
			So(sum.Empty, ShouldBeTrue)

			cp, err := svc.CountryProfile(ctx, "USA")
			So(err, ShouldBeNil)
			So(cp.Empty, ShouldBeTrue)

			sp, err := svc.SportProfile(ctx, "Rowing")
			So(err, ShouldBeNil)
			So(sp.Empty, ShouldBeTrue)

			cmp, err := svc.Compare(ctx, "USA", "JAM")
			So(err, ShouldBeNil)
			So(cmp.Empty, ShouldBeTrue)

			ha, err := svc.HostAnalysis(ctx)
			So(err, ShouldBeNil)
			So(ha.Empty, ShouldBeTrue)

			an, err := svc.HDIAnalysis(ctx, 0, "")
			So(err, ShouldBeNil)
			So(an.Empty, ShouldBeTrue)
			So(an.Reason, ShouldContainSubstring, "input file missing")
		})

		Convey("Then stats report the empty status", func() {
			stats := svc.GetStats()
			So(stats.Status, ShouldEqual, "empty")
			So(stats.Rows, ShouldEqual, 0)
		})
	})
}
