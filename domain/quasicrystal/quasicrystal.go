// Package quasicrystal builds 1D temporal quasicrystal structures from the
// Cedra constant via the cut-and-project method: the Delone set
// S_C = {n ≥ 1 | frac(n·ln C) < τ_C} and its Sturmian word.
package quasicrystal

import (
	"math"
	"sort"

	"cedralab/domain/cedra"
	"cedralab/internal/errors"
)

// Structure is the generated quasicrystal up to a bound, with its derived
// diagnostics. Created once, read-only afterwards.
type Structure struct {
	Bound           int         `json:"bound"`
	DeloneSet       []int       `json:"delone_set"`
	Sturmian        []int       `json:"sturmian"` // bits, one per index 1..Bound
	ObservedDensity float64     `json:"observed_density"`
	TheoryDensity   float64     `json:"theory_density"` // τ_C
	DensityError    float64     `json:"density_error"`
	Period          int         `json:"period"` // 0 when aperiodic
	Gaps            GapAnalysis `json:"gaps"`
}

// GapAnalysis summarizes the spacings between consecutive Delone points.
type GapAnalysis struct {
	Unique      []int       `json:"unique"`
	Frequencies map[int]int `json:"frequencies"`
}

// Generate builds the quasicrystal over indices 1..bound. The aperiodicity
// check scans periods up to bound/2, capped at 25.
func Generate(bound int) (*Structure, error) {
	return GenerateWithWindow(bound, cedra.Tau)
}

// GenerateWithWindow builds the structure with an explicit acceptance window
// width. The window must lie in (0,1).
func GenerateWithWindow(bound int, window float64) (*Structure, error) {
	if bound <= 0 {
		return nil, errors.InvalidInputf("bound must be positive, got %d", bound)
	}
	if window <= 0 || window >= 1 {
		return nil, errors.InvalidInputf("window must lie in (0,1), got %f", window)
	}

	delone := make([]int, 0, int(float64(bound)*window)+1)
	sturmian := make([]int, bound)
	for n := 1; n <= bound; n++ {
		f := math.Mod(float64(n)*cedra.LnCedra, 1)
		if f < window {
			delone = append(delone, n)
			sturmian[n-1] = 1
		}
	}

	s := &Structure{
		Bound:           bound,
		DeloneSet:       delone,
		Sturmian:        sturmian,
		ObservedDensity: float64(len(delone)) / float64(bound),
		TheoryDensity:   window,
		Period:          detectPeriod(sturmian, 25),
		Gaps:            analyzeGaps(delone),
	}
	s.DensityError = math.Abs(s.ObservedDensity - s.TheoryDensity)
	return s, nil
}

// IsAperiodic reports whether no period was detected.
func (s *Structure) IsAperiodic() bool {
	return s.Period == 0
}

// detectPeriod returns the smallest period of the word up to maxPeriod
// (and at most len/2), or 0 when none exists.
func detectPeriod(word []int, maxPeriod int) int {
	limit := len(word) / 2
	if maxPeriod < limit {
		limit = maxPeriod
	}
	for period := 1; period <= limit; period++ {
		periodic := true
		for i := 0; i < len(word)-period; i++ {
			if word[i] != word[i+period] {
				periodic = false
				break
			}
		}
		if periodic {
			return period
		}
	}
	return 0
}

// analyzeGaps collects the spacings between consecutive Delone points.
// A genuine Sturmian structure exhibits exactly two or three distinct gaps.
func analyzeGaps(delone []int) GapAnalysis {
	freq := make(map[int]int)
	for i := 1; i < len(delone); i++ {
		freq[delone[i]-delone[i-1]]++
	}

	unique := make([]int, 0, len(freq))
	for gap := range freq {
		unique = append(unique, gap)
	}
	sort.Ints(unique)

	return GapAnalysis{Unique: unique, Frequencies: freq}
}
