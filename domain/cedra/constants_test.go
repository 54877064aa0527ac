package cedra

import (
	"math"
	"testing"
)

func TestCedraDocumentedValue(t *testing.T) {
	// Documented approximation, accurate to at least 10 significant digits.
	const documented = 1.853371151128520

	relErr := math.Abs(Cedra-documented) / documented
	if relErr > 1e-10 {
		t.Errorf("Cedra = %.15f, want %.15f (rel err %.2e)", Cedra, documented, relErr)
	}
}

func TestGoldenRatioIdentity(t *testing.T) {
	// C·Δ = (1+√5)/2 holds exactly in closed form; allow a few ulps.
	phi := Cedra * Delta
	if math.Abs(phi-GoldenRatio) > 1e-14 {
		t.Errorf("Cedra*Delta = %.16f, want %.16f", phi, GoldenRatio)
	}
}

func TestTauIsInverseGoldenRatio(t *testing.T) {
	invPhi := 2 / (1 + math.Sqrt(5))
	if math.Abs(Tau-invPhi) > 1e-14 {
		t.Errorf("Tau = %.16f, want 1/phi = %.16f", Tau, invPhi)
	}
}

func TestOrderValueDuality(t *testing.T) {
	// ln C ≈ 0.617 lies in (0,1), so the order value is 1 − ln C and the
	// chaotic and ordered fractional parts sum to exactly 1.
	if LnCedra <= 0 || LnCedra >= 1 {
		t.Fatalf("LnCedra = %f, expected to lie in (0,1)", LnCedra)
	}
	if math.Abs(OrderValue()-(1-LnCedra)) > 1e-15 {
		t.Errorf("OrderValue() = %.16f, want %.16f", OrderValue(), 1-LnCedra)
	}
}

func TestSnapshotIsConsistent(t *testing.T) {
	c := Snapshot()
	if c.Cedra != Cedra || c.LnCedra != LnCedra || c.Delta != Delta {
		t.Error("Snapshot should expose the package constants unchanged")
	}
	if c.PhiError > 1e-14 {
		t.Errorf("PhiError = %.2e, want < 1e-14", c.PhiError)
	}
}
