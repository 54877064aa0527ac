// Package biquad solves biquadratic equations ax⁴ + bx² + c = 0 over the
// reals. The substitution y = x² reduces the quartic to a quadratic; special
// cases are handled separately for numerical stability.
package biquad

import (
	"math"
	"sort"
	"sync"
)

const (
	eps       = 1e-15
	tolerance = 1e-14
)

// Solver solves biquadratic equations and keeps usage counters.
type Solver struct {
	mu           sync.Mutex
	solveCount   int
	specialCount int
}

// Stats reports solver usage counters.
type Stats struct {
	TotalSolves     int     `json:"total_solves"`
	SpecialCases    int     `json:"special_cases"`
	SpecialCaseRate float64 `json:"special_case_rate"` // percent
}

// NewSolver creates a new solver.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve returns the real solutions of ax⁴ + bx² + c = 0 in ascending order,
// deduplicated. Non-finite coefficients or a ≈ 0 yield no solutions.
func (s *Solver) Solve(a, b, c float64) []float64 {
	s.mu.Lock()
	s.solveCount++
	s.mu.Unlock()

	for _, v := range []float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	}
	if math.Abs(a) < 1e-16 {
		return nil
	}

	if roots, ok := s.solveSpecialCase(a, b, c); ok {
		return roots
	}
	return solveGeneral(a, b, c)
}

// Stats returns the solver counters.
func (s *Solver) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	rate := 0.0
	if s.solveCount > 0 {
		rate = float64(s.specialCount) / float64(s.solveCount) * 100
	}
	return Stats{
		TotalSolves:     s.solveCount,
		SpecialCases:    s.specialCount,
		SpecialCaseRate: rate,
	}
}

// solveSpecialCase handles degenerate coefficient patterns before the general
// quadratic path. Returns ok=false when no special case applies.
func (s *Solver) solveSpecialCase(a, b, c float64) ([]float64, bool) {
	s.mu.Lock()
	s.specialCount++
	s.mu.Unlock()

	// c = 0: x²(ax² + b) = 0
	if math.Abs(c) < eps {
		if math.Abs(b) < eps {
			return []float64{0}, true
		}
		if -b/a > eps {
			r := math.Sqrt(-b / a)
			return []float64{-r, 0, r}, true
		}
		return []float64{0}, true
	}

	// b = 0: ax⁴ + c = 0
	if math.Abs(b) < eps {
		ratio := -c / a
		switch {
		case ratio < -eps:
			return nil, true
		case math.Abs(ratio) < eps:
			return []float64{0}, true
		default:
			root := math.Pow(ratio, 0.25)
			return []float64{-root, root}, true
		}
	}

	// Perfect square: discriminant ≈ 0 relative to the coefficient scale.
	disc := b*b - 4*a*c
	scale := math.Max(math.Max(b*b, math.Abs(4*a*c)), 1)
	if math.Abs(disc) < eps*scale {
		xSquared := -b / (2 * a)
		switch {
		case xSquared > eps:
			x := math.Sqrt(xSquared)
			return []float64{-x, x}, true
		case math.Abs(xSquared) <= eps:
			return []float64{0}, true
		default:
			return nil, true
		}
	}

	// Not special after all; undo the counter.
	s.mu.Lock()
	s.specialCount--
	s.mu.Unlock()
	return nil, false
}

// solveGeneral applies the quadratic formula to ay² + by + c = 0 and maps the
// admissible y roots back to x. The second root uses the Citardauq form
// 2c / (−b ∓ √disc) to avoid cancellation.
func solveGeneral(a, b, c float64) []float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(disc)

	var y1, y2 float64
	if b >= 0 {
		y1 = (-b - sqrtDisc) / (2 * a)
		if sqrtDisc > eps {
			y2 = (2 * c) / (-b - sqrtDisc)
		}
	} else {
		y1 = (-b + sqrtDisc) / (2 * a)
		if sqrtDisc > eps {
			y2 = (2 * c) / (-b + sqrtDisc)
		}
	}

	var roots []float64
	for _, y := range []float64{y1, y2} {
		switch {
		case y > tolerance:
			x := math.Sqrt(y)
			roots = append(roots, -x, x)
		case math.Abs(y) <= tolerance:
			roots = append(roots, 0)
		}
	}

	return dedupe(roots)
}

// dedupe sorts and removes near-duplicate roots.
func dedupe(roots []float64) []float64 {
	if len(roots) == 0 {
		return nil
	}
	sort.Float64s(roots)

	out := roots[:1]
	for _, r := range roots[1:] {
		if math.Abs(r-out[len(out)-1]) >= tolerance {
			out = append(out, r)
		}
	}
	return out
}
