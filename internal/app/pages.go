package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/okian/olympus/internal/adapters/repository"
	"github.com/okian/olympus/internal/domain/insights"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
)

// FilterOptions returns the selector values of the loaded table.
func (s *Service) FilterOptions(ctx context.Context) (model.FilterOptions, error) {
	st, err := s.state()
	if err != nil {
		return model.FilterOptions{}, err
	}
	return st.store.Options(ctx), nil
}

// Overview summarizes the whole table for the landing page.
func (s *Service) Overview(ctx context.Context) (types.Overview, error) {
	defer s.observe("overview", s.clock.Now())
	st, err := s.state()
	if err != nil {
		return types.Overview{}, err
	}
	if !st.out.Loaded() {
		return types.Overview{Empty: true, Reason: st.out.Reason, AthletesByYear: []types.YearCount{}}, nil
	}

	rows, err := st.store.Query(ctx, repository.Criteria{})
	if err != nil {
		return types.Overview{}, err
	}
	opts := st.store.Options(ctx)

	names := make(map[string]struct{})
	events := make(map[string]struct{})
	games := make(map[string]struct{})
	for i := range rows {
		r := &rows[i]
		names[r.Name] = struct{}{}
		events[r.Event] = struct{}{}
		games[r.Games] = struct{}{}
	}

	ov := types.Overview{
		Athletes:       len(names),
		NOCs:           len(opts.NOCs),
		Regions:        len(opts.Regions),
		Sports:         len(opts.Sports),
		Events:         len(events),
		Games:          len(games),
		Medals:         aggregate(rows, s.unit).Total(),
		AthletesByYear: athletesByYear(rows),
	}
	if n := len(opts.Years); n > 0 {
		ov.FirstYear, ov.LastYear = opts.Years[n-1], opts.Years[0]
	}
	return ov, nil
}

// MedalTableQuery mirrors the medal table filters accepted by MedalTable.
type MedalTableQuery = types.MedalTableQuery

// MedalTable ranks regions or NOCs by medals under the query filters.
// The table is grouped by the counting unit.
func (s *Service) MedalTable(ctx context.Context, q MedalTableQuery) (types.MedalTable, error) {
	defer s.observe("medal_table", s.clock.Now())
	if q.Limit < 0 {
		return types.MedalTable{}, fmt.Errorf("%w: limit must not be negative", ErrInvalidArgument)
	}
	unit := q.Unit
	if unit == "" {
		unit = s.unit
	}
	if unit != medals.UnitRegion && unit != medals.UnitNOC {
		return types.MedalTable{}, fmt.Errorf("%w: unit %q", ErrInvalidArgument, unit)
	}

	st, err := s.state()
	if err != nil {
		return types.MedalTable{}, err
	}
	table := types.MedalTable{Unit: unit, Year: q.Year, Season: string(q.Season), Sport: q.Sport, Rows: []types.Entry{}}
	if !st.out.Loaded() {
		table.Empty = true
		return table, nil
	}

	rows, err := st.store.Query(ctx, repository.Criteria{Year: q.Year, Season: q.Season, Sport: q.Sport})
	if err != nil {
		return types.MedalTable{}, err
	}
	res := aggregate(rows, unit, unitDimension(unit))
	table.Rows = types.Entries(medals.Rank(res.Rows()), q.Limit)
	return table, nil
}

func unitDimension(u medals.Unit) medals.Dimension {
	if u == medals.UnitNOC {
		return medals.DimNOC
	}
	return medals.DimRegion
}

// YearSummary describes one Olympic year and its top NOCs.
func (s *Service) YearSummary(ctx context.Context, year int) (types.YearSummary, error) {
	defer s.observe("year_summary", s.clock.Now())
	st, err := s.state()
	if err != nil {
		return types.YearSummary{}, err
	}
	sum := types.YearSummary{Year: year, Hosts: []model.HostCity{}, Table: []types.Entry{}}
	if !st.out.Loaded() {
		sum.Empty = true
		return sum, nil
	}
	if !st.store.HasYear(ctx, year) {
		return types.YearSummary{}, fmt.Errorf("year %d: %w", year, ErrNotFound)
	}

	rows, err := st.store.Query(ctx, repository.Criteria{Year: year})
	if err != nil {
		return types.YearSummary{}, err
	}
	sum.Hosts = gamesHosts(year, rows)
	if len(sum.Hosts) > 0 {
		sum.Host = &sum.Hosts[0]
	}
	nocs, names, sports, events := map[string]struct{}{}, map[string]struct{}{}, map[string]struct{}{}, map[string]struct{}{}
	for i := range rows {
		r := &rows[i]
		nocs[r.NOC] = struct{}{}
		names[r.Name] = struct{}{}
		sports[r.Sport] = struct{}{}
		events[r.Event] = struct{}{}
	}
	sum.NOCs, sum.Athletes, sum.Sports, sum.Events = len(nocs), len(names), len(sports), len(events)
	sum.Table = types.Entries(medals.Rank(aggregate(rows, medals.UnitNOC, medals.DimNOC).Rows()), s.topLimit)
	return sum, nil
}

// CountryProfile describes one NOC's history.
func (s *Service) CountryProfile(ctx context.Context, noc string) (types.CountryProfile, error) {
	defer s.observe("country_profile", s.clock.Now())
	st, err := s.state()
	if err != nil {
		return types.CountryProfile{}, err
	}
	p := types.CountryProfile{
		NOC:            noc,
		MedalsByYear:   []types.YearMedals{},
		AthletesByYear: []types.YearGender{},
		TopSports:      []types.SportMedals{},
		AgeHistogram:   []insights.Bin{},
	}
	if !st.out.Loaded() {
		p.Empty = true
		return p, nil
	}
	if !st.store.HasNOC(ctx, noc) {
		return types.CountryProfile{}, fmt.Errorf("noc %q: %w", noc, ErrNotFound)
	}

	rows, err := st.store.Query(ctx, repository.Criteria{NOC: noc})
	if err != nil {
		return types.CountryProfile{}, err
	}
	p.Region, _ = st.store.Region(ctx, noc)

	years := distinctYears(rows)
	byYear := aggregate(rows, medals.UnitNOC, medals.DimYear).Reindex(yearKeys(years))
	for i, row := range byYear.Rows() {
		p.MedalsByYear = append(p.MedalsByYear, types.YearMedals{Year: years[i], Counts: row.Counts})
	}
	p.AthletesByYear = genderByYear(rows)

	for _, r := range topN(medals.Rank(aggregate(rows, medals.UnitNOC, medals.DimSport).Rows()), countryTopSports) {
		p.TopSports = append(p.TopSports, types.SportMedals{Sport: r.Key[0], Counts: r.Counts})
	}

	ages := make([]float64, 0, len(rows))
	for i := range rows {
		if a := rows[i].Age; a != nil {
			ages = append(ages, *a)
		}
	}
	if bins := insights.Histogram(ages, ageHistogramBins); bins != nil {
		p.AgeHistogram = bins
	}

	p.Athletes = uniqueNames(rows)
	p.Medals = byYear.Total()
	p.Efficiency = medals.Efficiency(p.Medals.Total, p.Athletes)
	return p, nil
}

// SportProfile describes one sport.
func (s *Service) SportProfile(ctx context.Context, sport string) (types.SportProfile, error) {
	defer s.observe("sport_profile", s.clock.Now())
	st, err := s.state()
	if err != nil {
		return types.SportProfile{}, err
	}
	p := types.SportProfile{Sport: sport, TopNOCs: []types.Entry{}, AthletesByYear: []types.YearCount{}}
	if !st.out.Loaded() {
		p.Empty = true
		return p, nil
	}
	if !st.store.HasSport(ctx, sport) {
		return types.SportProfile{}, fmt.Errorf("sport %q: %w", sport, ErrNotFound)
	}

	rows, err := st.store.Query(ctx, repository.Criteria{Sport: sport})
	if err != nil {
		return types.SportProfile{}, err
	}
	p.TopNOCs = types.Entries(medals.Rank(aggregate(rows, medals.UnitNOC, medals.DimNOC).Rows()), sportTopNOCs)
	p.AthletesByYear = athletesByYear(rows)
	return p, nil
}

// Compare puts two NOCs side by side.
func (s *Service) Compare(ctx context.Context, a, b string) (types.Comparison, error) {
	defer s.observe("compare", s.clock.Now())
	if a == "" || b == "" {
		return types.Comparison{}, fmt.Errorf("%w: two NOCs are required", ErrInvalidArgument)
	}
	st, err := s.state()
	if err != nil {
		return types.Comparison{}, err
	}
	cmp := types.Comparison{
		A:      types.CompareSide{NOC: a},
		B:      types.CompareSide{NOC: b},
		Years:  []types.ComparePoint{},
		Sports: []types.ComparePoint{},
	}
	if !st.out.Loaded() {
		cmp.Empty = true
		return cmp, nil
	}
	for _, noc := range []string{a, b} {
		if !st.store.HasNOC(ctx, noc) {
			return types.Comparison{}, fmt.Errorf("noc %q: %w", noc, ErrNotFound)
		}
	}

	rowsA, err := st.store.Query(ctx, repository.Criteria{NOC: a})
	if err != nil {
		return types.Comparison{}, err
	}
	rowsB, err := st.store.Query(ctx, repository.Criteria{NOC: b})
	if err != nil {
		return types.Comparison{}, err
	}

	cmp.A = side(ctx, st, a, rowsA)
	cmp.B = side(ctx, st, b, rowsB)

	years := unionInts(distinctYears(rowsA), distinctYears(rowsB))
	yearsA := aggregate(rowsA, medals.UnitNOC, medals.DimYear)
	yearsB := aggregate(rowsB, medals.UnitNOC, medals.DimYear)
	for _, y := range years {
		k := strconv.Itoa(y)
		cmp.Years = append(cmp.Years, types.ComparePoint{Label: k, A: yearsA.Counts(k).Total, B: yearsB.Counts(k).Total})
	}

	sportsA := aggregate(rowsA, medals.UnitNOC, medals.DimSport)
	sportsB := aggregate(rowsB, medals.UnitNOC, medals.DimSport)
	for _, sp := range intersectStrings(distinctSports(rowsA), distinctSports(rowsB)) {
		cmp.Sports = append(cmp.Sports, types.ComparePoint{Label: sp, A: sportsA.Counts(sp).Total, B: sportsB.Counts(sp).Total})
	}
	return cmp, nil
}

func side(ctx context.Context, st *state, noc string, rows []model.AthleteEvent) types.CompareSide {
	region, _ := st.store.Region(ctx, noc)
	total := aggregate(rows, medals.UnitNOC).Total()
	athletes := uniqueNames(rows)
	return types.CompareSide{
		NOC:        noc,
		Region:     region,
		Athletes:   athletes,
		Medals:     total,
		Efficiency: medals.Efficiency(total.Total, athletes),
	}
}

// HostAnalysis compares each Summer host's home medals with its other Summer Games.
func (s *Service) HostAnalysis(ctx context.Context) (types.HostAnalysis, error) {
	defer s.observe("host_analysis", s.clock.Now())
	st, err := s.state()
	if err != nil {
		return types.HostAnalysis{}, err
	}
	ha := types.HostAnalysis{Rows: []types.HostRow{}}
	if !st.out.Loaded() {
		ha.Empty = true
		return ha, nil
	}

	var ratios []float64
	for _, year := range insights.HostYears() {
		host, _ := insights.Host(year)
		if !st.store.HasYear(ctx, year) {
			continue
		}
		// Former codes (URS, FRG) share the host's region.
		region := host.Region
		if r, err := st.store.Region(ctx, host.NOC); err == nil {
			region = r
		}
		rows, err := st.store.Query(ctx, repository.Criteria{Region: region, Season: model.SeasonSummer})
		if err != nil {
			return types.HostAnalysis{}, err
		}
		if len(rows) == 0 {
			continue
		}
		byYear := aggregate(rows, medals.UnitRegion, medals.DimYear)

		var others []int
		for _, y := range distinctYears(rows) {
			if y != year {
				others = append(others, byYear.Counts(strconv.Itoa(y)).Total)
			}
		}
		hostMedals := byYear.Counts(strconv.Itoa(year)).Total
		baseline, ratio := insights.HostAdvantage(hostMedals, others)
		ha.Rows = append(ha.Rows, types.HostRow{
			Year:       year,
			City:       host.City,
			NOC:        host.NOC,
			Region:     region,
			HostMedals: hostMedals,
			OtherGames: len(others),
			Baseline:   baseline,
			Ratio:      ratio,
		})
		if ratio > 0 {
			ratios = append(ratios, ratio)
		}
	}
	ha.MeanRatio = insights.Mean(ratios)
	return ha, nil
}

// HDIAnalysis relates regional medal counts to HDI. year 0 uses every Games
// and each country's latest HDI; otherwise the Games of that year and the HDI
// of the closest year not after it. sport optionally adds a per-category breakdown.
func (s *Service) HDIAnalysis(ctx context.Context, year int, sport string) (types.HDIAnalysis, error) {
	defer s.observe("hdi_analysis", s.clock.Now())
	st, err := s.state()
	if err != nil {
		return types.HDIAnalysis{}, err
	}
	an := types.HDIAnalysis{Year: year, Sport: sport, Regions: []types.HDIRegion{}, Categories: []types.CategoryShare{}}
	if !st.out.Loaded() {
		an.Empty, an.Reason = true, st.out.Reason
		return an, nil
	}
	if st.hdi.Empty() {
		an.Empty, an.Reason = true, "hdi data unavailable"
		return an, nil
	}
	if year != 0 && !st.store.HasYear(ctx, year) {
		return types.HDIAnalysis{}, fmt.Errorf("year %d: %w", year, ErrNotFound)
	}
	if sport != "" && !st.store.HasSport(ctx, sport) {
		return types.HDIAnalysis{}, fmt.Errorf("sport %q: %w", sport, ErrNotFound)
	}

	lookup := func(region string) (string, float64, bool) {
		country := insights.RegionToHDICountry(region)
		if year == 0 {
			v, ok := st.hdi.Latest(country)
			return country, v, ok
		}
		v, ok := st.hdi.At(country, an.HDIYear)
		return country, v, ok
	}
	if year != 0 {
		an.HDIYear, _ = insights.ClosestHDIYear(st.hdi.Years(), year)
	}

	rows, err := st.store.Query(ctx, repository.Criteria{Year: year})
	if err != nil {
		return types.HDIAnalysis{}, err
	}
	byRegion := aggregate(rows, medals.UnitRegion, medals.DimRegion)

	var xs, ys []float64
	perCategory := make(map[string]int)
	for _, row := range byRegion.Rows() {
		region := row.Key[0]
		country, v, ok := lookup(region)
		if !ok {
			continue
		}
		cat, ok := insights.HDICategory(v)
		if !ok {
			continue
		}
		an.Regions = append(an.Regions, types.HDIRegion{Region: region, Country: country, HDI: v, Category: cat, Medals: row.Total})
		xs = append(xs, v)
		ys = append(ys, float64(row.Total))
		perCategory[cat] += row.Total
	}
	sort.SliceStable(an.Regions, func(i, j int) bool { return an.Regions[i].Medals > an.Regions[j].Medals })

	if r, ok := insights.Correlation(xs, ys); ok {
		an.Correlation = &r
		an.Strength = insights.Strength(r)
	}
	an.Categories = shares(perCategory)

	if sport != "" {
		sportRows, err := st.store.Query(ctx, repository.Criteria{Year: year, Sport: sport})
		if err != nil {
			return types.HDIAnalysis{}, err
		}
		sportCategory := make(map[string]int)
		for _, row := range aggregate(sportRows, medals.UnitRegion, medals.DimRegion).Rows() {
			if _, v, ok := lookup(row.Key[0]); ok {
				if cat, ok := insights.HDICategory(v); ok {
					sportCategory[cat] += row.Total
				}
			}
		}
		an.SportCategories = shares(sportCategory)
	}
	return an, nil
}

// shares lists every HDI category in order with its medal total and share.
func shares(perCategory map[string]int) []types.CategoryShare {
	total := 0
	for _, n := range perCategory {
		total += n
	}
	out := make([]types.CategoryShare, 0, len(insights.HDICategories))
	for _, cat := range insights.HDICategories {
		cs := types.CategoryShare{Category: cat, Medals: perCategory[cat]}
		if total > 0 {
			cs.Share = float64(cs.Medals) / float64(total)
		}
		out = append(out, cs)
	}
	return out
}
