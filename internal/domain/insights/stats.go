package insights

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Correlation strength labels.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
	StrengthNone     = "none"
)

// Correlation returns the Pearson coefficient of xs and ys. ok is false when
// the series differ in length, have fewer than two points, or either is constant.
func Correlation(xs, ys []float64) (r float64, ok bool) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, false
	}
	if constant(xs) || constant(ys) {
		return 0, false
	}
	r = stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// Strength labels |r|: strong >= 0.7, moderate >= 0.4, weak >= 0.1, otherwise none.
func Strength(r float64) string {
	a := math.Abs(r)
	switch {
	case a >= 0.7:
		return StrengthStrong
	case a >= 0.4:
		return StrengthModerate
	case a >= 0.1:
		return StrengthWeak
	default:
		return StrengthNone
	}
}

// Bin is one histogram bucket covering [Lo, Hi).
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Histogram splits values into n equal-width bins spanning min..max. The
// maximum lands in the last bin. NaN values are skipped.
func Histogram(values []float64, n int) []Bin {
	if n <= 0 {
		return nil
	}
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	lo, hi := clean[0], clean[0]
	for _, v := range clean {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		// A single value gets a unit-wide range so every bin has a width.
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	for _, v := range clean {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}
