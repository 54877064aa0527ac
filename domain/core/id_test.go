package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseReportID tests report ID parsing
func TestParseReportID(t *testing.T) {
	tests := []struct {
		input    string
		expected ReportID
		hasError bool
	}{
		{"valid-id", ReportID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseReportID(tt.input)
		if tt.hasError {
			if err == nil {
				t.Errorf("ParseReportID(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseReportID(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseReportID(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// TestSequenceFingerprintDeterminism tests that identical parameters hash identically
func TestSequenceFingerprintDeterminism(t *testing.T) {
	a := ComputeSequenceFingerprint(1000, 20, 500, []int{1, 2, 3})
	b := ComputeSequenceFingerprint(1000, 20, 500, []int{1, 2, 3})
	if !a.Equals(b) {
		t.Error("identical parameters should produce identical fingerprints")
	}

	c := ComputeSequenceFingerprint(1001, 20, 500, []int{1, 2, 3})
	if a.Equals(c) {
		t.Error("different parameters should produce different fingerprints")
	}
}
