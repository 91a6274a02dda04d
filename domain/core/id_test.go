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
}

// TestNewSnapshotID tests that snapshot IDs are distinct UUID strings
func TestNewSnapshotID(t *testing.T) {
	a, b := NewSnapshotID(), NewSnapshotID()
	if a == b {
		t.Errorf("Expected distinct snapshot IDs, got %s twice", a)
	}
	if len(a.String()) != 36 {
		t.Errorf("Expected a 36 character UUID, got %q", a)
	}
}

// TestFingerprint tests that equal values hash equally
func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(map[string]float64{"avg": 85})
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	b, _ := Fingerprint(map[string]float64{"avg": 85})
	c, _ := Fingerprint(map[string]float64{"avg": 85.1})

	if !a.Equals(b) {
		t.Errorf("Expected equal fingerprints, got %s and %s", a, b)
	}
	if a.Equals(c) {
		t.Errorf("Expected different fingerprints for different values")
	}
	if len(a.String()) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(a.String()))
	}
}
