package insights

import "github.com/okian/olympus/internal/domain/model"

// hostCities lists every Summer Games host from 1896 to 2020. Region uses the
// noc_regions naming so hosts that competed under a former code (URS, FRG) still match.
var hostCities = map[int]model.HostCity{ //nolint:gochecknoglobals // read-only table
	1896: {Year: 1896, Season: model.SeasonSummer, City: "Athens", NOC: "GRE", Region: "Greece"},
	1900: {Year: 1900, Season: model.SeasonSummer, City: "Paris", NOC: "FRA", Region: "France"},
	1904: {Year: 1904, Season: model.SeasonSummer, City: "St. Louis", NOC: "USA", Region: "USA"},
	1908: {Year: 1908, Season: model.SeasonSummer, City: "London", NOC: "GBR", Region: "UK"},
	1912: {Year: 1912, Season: model.SeasonSummer, City: "Stockholm", NOC: "SWE", Region: "Sweden"},
	1920: {Year: 1920, Season: model.SeasonSummer, City: "Antwerp", NOC: "BEL", Region: "Belgium"},
	1924: {Year: 1924, Season: model.SeasonSummer, City: "Paris", NOC: "FRA", Region: "France"},
	1928: {Year: 1928, Season: model.SeasonSummer, City: "Amsterdam", NOC: "NED", Region: "Netherlands"},
	1932: {Year: 1932, Season: model.SeasonSummer, City: "Los Angeles", NOC: "USA", Region: "USA"},
	1936: {Year: 1936, Season: model.SeasonSummer, City: "Berlin", NOC: "GER", Region: "Germany"},
	1948: {Year: 1948, Season: model.SeasonSummer, City: "London", NOC: "GBR", Region: "UK"},
	1952: {Year: 1952, Season: model.SeasonSummer, City: "Helsinki", NOC: "FIN", Region: "Finland"},
	1956: {Year: 1956, Season: model.SeasonSummer, City: "Melbourne", NOC: "AUS", Region: "Australia"},
	1960: {Year: 1960, Season: model.SeasonSummer, City: "Rome", NOC: "ITA", Region: "Italy"},
	1964: {Year: 1964, Season: model.SeasonSummer, City: "Tokyo", NOC: "JPN", Region: "Japan"},
	1968: {Year: 1968, Season: model.SeasonSummer, City: "Mexico City", NOC: "MEX", Region: "Mexico"},
	1972: {Year: 1972, Season: model.SeasonSummer, City: "Munich", NOC: "GER", Region: "Germany"},
	1976: {Year: 1976, Season: model.SeasonSummer, City: "Montreal", NOC: "CAN", Region: "Canada"},
	1980: {Year: 1980, Season: model.SeasonSummer, City: "Moscow", NOC: "RUS", Region: "Russia"},
	1984: {Year: 1984, Season: model.SeasonSummer, City: "Los Angeles", NOC: "USA", Region: "USA"},
	1988: {Year: 1988, Season: model.SeasonSummer, City: "Seoul", NOC: "KOR", Region: "South Korea"},
	1992: {Year: 1992, Season: model.SeasonSummer, City: "Barcelona", NOC: "ESP", Region: "Spain"},
	1996: {Year: 1996, Season: model.SeasonSummer, City: "Atlanta", NOC: "USA", Region: "USA"},
	2000: {Year: 2000, Season: model.SeasonSummer, City: "Sydney", NOC: "AUS", Region: "Australia"},
	2004: {Year: 2004, Season: model.SeasonSummer, City: "Athens", NOC: "GRE", Region: "Greece"},
	2008: {Year: 2008, Season: model.SeasonSummer, City: "Beijing", NOC: "CHN", Region: "China"},
	2012: {Year: 2012, Season: model.SeasonSummer, City: "London", NOC: "GBR", Region: "UK"},
	2016: {Year: 2016, Season: model.SeasonSummer, City: "Rio de Janeiro", NOC: "BRA", Region: "Brazil"},
	2020: {Year: 2020, Season: model.SeasonSummer, City: "Tokyo", NOC: "JPN", Region: "Japan"},
}

// Host returns the Summer host of year.
func Host(year int) (model.HostCity, bool) {
	h, ok := hostCities[year]
	return h, ok
}

// HostYears returns every known host year ascending.
func HostYears() []int {
	years := make([]int, 0, len(hostCities))
	for y := 1896; y <= 2020; y++ {
		if _, ok := hostCities[y]; ok {
			years = append(years, y)
		}
	}
	return years
}

// HostAdvantage compares the medals a NOC won as host against the mean of its
// other Games. Ratio is 0 when the baseline is 0.
func HostAdvantage(hostMedals int, otherMedals []int) (baseline, ratio float64) {
	if len(otherMedals) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(otherMedals))
	for i, m := range otherMedals {
		xs[i] = float64(m)
	}
	baseline = Mean(xs)
	if baseline == 0 {
		return 0, 0
	}
	return baseline, float64(hostMedals) / baseline
}
