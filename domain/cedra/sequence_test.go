package cedra

import (
	"math"
	"testing"

	"cedralab/internal/errors"
)

func TestChaosSequenceRange(t *testing.T) {
	for _, n := range []int{1, 10, 1000, 2000} {
		seq, err := ChaosSequence(n)
		if err != nil {
			t.Fatalf("ChaosSequence(%d) returned error: %v", n, err)
		}
		if len(seq) != n {
			t.Fatalf("ChaosSequence(%d) length = %d", n, len(seq))
		}
		for i, v := range seq {
			if v < 0 || v >= 1 {
				t.Fatalf("element %d = %f, outside [0,1)", i, v)
			}
		}
	}
}

func TestChaosSequenceFirstTerms(t *testing.T) {
	// X_i = frac(i·ln C) for i starting at 1.
	seq, err := ChaosSequence(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range seq {
		want := math.Mod(float64(i+1)*LnCedra, 1)
		if math.Abs(v-want) > 1e-15 {
			t.Errorf("X_%d = %.15f, want %.15f", i+1, v, want)
		}
	}
}

func TestChaosSequenceDeterministic(t *testing.T) {
	a, _ := ChaosSequence(500)
	b, _ := ChaosSequence(500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence not deterministic at index %d", i)
		}
	}
}

func TestChaosSequenceInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := ChaosSequence(n)
		if err == nil {
			t.Fatalf("ChaosSequence(%d) should fail", n)
		}
		if errors.GetCode(err) != errors.CodeInvalidInput {
			t.Errorf("ChaosSequence(%d) error code = %s, want %s", n, errors.GetCode(err), errors.CodeInvalidInput)
		}
	}
}

func TestIdealSequence(t *testing.T) {
	seq, err := IdealSequence(10)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range seq {
		if v != float64(i)/10 {
			t.Errorf("element %d = %f, want %f", i, v, float64(i)/10)
		}
	}

	if _, err := IdealSequence(0); err == nil {
		t.Error("IdealSequence(0) should fail")
	}
}

func TestWeylSequenceNegativeAlpha(t *testing.T) {
	// Fractional parts must land in [0,1) even for negative rotations.
	seq, err := WeylSequence(50, -LnCedra)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range seq {
		if v < 0 || v >= 1 {
			t.Fatalf("element %d = %f, outside [0,1)", i, v)
		}
	}
}
