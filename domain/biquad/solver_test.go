package biquad

import (
	"math"
	"testing"
)

func TestSolveKnownEquations(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"four roots", 1, -5, 4, []float64{-2, -1, 1, 2}},
		{"perfect square", 1, -2, 1, []float64{-1, 1}},
		{"b zero", 1, 0, -1, []float64{-1, 1}},
		{"wide roots", 1, -10, 9, []float64{-3, -1, 1, 3}},
		{"scaled", 2, -8, 6, []float64{-math.Sqrt(3), -1, 1, math.Sqrt(3)}},
		{"no real roots", 1, 1, 1, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			solver := NewSolver()
			got := solver.Solve(tc.a, tc.b, tc.c)
			if len(got) != len(tc.want) {
				t.Fatalf("Solve(%v,%v,%v) = %v, want %v", tc.a, tc.b, tc.c, got, tc.want)
			}
			for i := range got {
				if math.Abs(got[i]-tc.want[i]) > 1e-9 {
					t.Errorf("root %d = %.12f, want %.12f", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSolveResidualsAreSmall(t *testing.T) {
	solver := NewSolver()
	cases := [][3]float64{
		{1, -5, 4}, {1, -2, 1}, {1, 0, -1}, {1, -10, 9}, {2, -8, 6},
	}
	for _, tc := range cases {
		for _, x := range solver.Solve(tc[0], tc[1], tc[2]) {
			residual := math.Abs(tc[0]*math.Pow(x, 4) + tc[1]*x*x + tc[2])
			if residual > 1e-9 {
				t.Errorf("equation %v: root %f residual %.2e", tc, x, residual)
			}
		}
	}
}

func TestSolveDegenerateInputs(t *testing.T) {
	solver := NewSolver()

	if got := solver.Solve(0, 1, 1); got != nil {
		t.Errorf("a=0 should give no solutions, got %v", got)
	}
	if got := solver.Solve(math.NaN(), 1, 1); got != nil {
		t.Errorf("NaN coefficient should give no solutions, got %v", got)
	}
	if got := solver.Solve(1, math.Inf(1), 1); got != nil {
		t.Errorf("Inf coefficient should give no solutions, got %v", got)
	}

	// c = 0 with b = 0: only the origin.
	got := solver.Solve(1, 0, 0)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("x⁴ = 0 roots = %v, want [0]", got)
	}

	// c = 0 with -b/a > 0: three roots around the origin.
	got = solver.Solve(1, -4, 0)
	want := []float64{-2, 0, 2}
	if len(got) != 3 {
		t.Fatalf("x⁴−4x² = 0 roots = %v, want %v", got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("root %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestSolverStats(t *testing.T) {
	solver := NewSolver()

	solver.Solve(1, -5, 4) // general
	solver.Solve(1, 0, -1) // special (b = 0)
	solver.Solve(1, -4, 0) // special (c = 0)

	stats := solver.Stats()
	if stats.TotalSolves != 3 {
		t.Errorf("total solves = %d, want 3", stats.TotalSolves)
	}
	if stats.SpecialCases != 2 {
		t.Errorf("special cases = %d, want 2", stats.SpecialCases)
	}
	if math.Abs(stats.SpecialCaseRate-2.0/3.0*100) > 1e-9 {
		t.Errorf("special case rate = %f", stats.SpecialCaseRate)
	}
}
