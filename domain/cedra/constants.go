// Package cedra defines the Cedra constant, its derived constants, and the
// deterministic sequences built from them.
//
// The Cedra constant is the closed-form scalar
//
//	C = √3 + √2 + √(1/2) − 2 ≈ 1.853371151128520
//
// Its natural logarithm drives an irrational-rotation ("deterministic chaos")
// sequence X_n = frac(n·ln C) that is equidistributed on [0,1). The auxiliary
// constant Delta ties C to the golden ratio: C·Δ = (1+√5)/2 exactly.
package cedra

import "math"

// Closed-form constants. All are fixed at package init and never mutated.
var (
	// Cedra is √3 + √2 + √(1/2) − 2.
	Cedra = math.Sqrt(3) + math.Sqrt(2) + math.Sqrt(0.5) - 2

	// LnCedra is the rotation parameter α = ln C of the chaos sequence.
	LnCedra = math.Log(Cedra)

	// Delta is the auxiliary constant (1+√5) / (2√3 + 3√2 − 4).
	Delta = (1 + math.Sqrt(5)) / (2*math.Sqrt(3) + 3*math.Sqrt(2) - 4)

	// GoldenRatio is φ = (1+√5)/2.
	GoldenRatio = (1 + math.Sqrt(5)) / 2

	// Tau is the quasicrystal window width
	// τ_C = (2√3 + 3√2 − 4) / ((1+√5)·C), numerically 1/φ.
	Tau = (2*math.Sqrt(3) + 3*math.Sqrt(2) - 4) / ((1 + math.Sqrt(5)) * Cedra)
)

// Constants is an immutable snapshot of every derived scalar, suitable for
// serialization to API responses and reports.
type Constants struct {
	Cedra       float64 `json:"cedra"`
	LnCedra     float64 `json:"ln_cedra"`
	Delta       float64 `json:"delta"`
	Phi         float64 `json:"phi"`          // Cedra × Delta
	GoldenRatio float64 `json:"golden_ratio"` // (1+√5)/2
	PhiError    float64 `json:"phi_error"`    // |Phi − GoldenRatio|
	Tau         float64 `json:"tau"`          // quasicrystal window width
	InvPhi      float64 `json:"inv_phi"`      // 2/(1+√5)
	OrderValue  float64 `json:"order_value"`  // frac(n − ln C), same for all n
}

// Snapshot returns the derived constants.
func Snapshot() Constants {
	phi := Cedra * Delta
	return Constants{
		Cedra:       Cedra,
		LnCedra:     LnCedra,
		Delta:       Delta,
		Phi:         phi,
		GoldenRatio: GoldenRatio,
		PhiError:    math.Abs(phi - GoldenRatio),
		Tau:         Tau,
		InvPhi:      2 / (1 + math.Sqrt(5)),
		OrderValue:  OrderValue(),
	}
}

// OrderValue returns Y_n = frac(n − ln C), which is independent of n: the
// "pure order" dual of the chaos sequence. Together with frac(ln C) it
// satisfies ln C + (1 − ln C) = 1.
func OrderValue() float64 {
	return frac(1 - LnCedra)
}

// frac returns the fractional part of x mapped into [0,1).
func frac(x float64) float64 {
	f := math.Mod(x, 1)
	if f < 0 {
		f += 1
	}
	return f
}
