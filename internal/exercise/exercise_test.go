package exercise

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		kind      Kind
		name      string
		inputSize int
	}{
		{Pushup, "Push-ups", 5},
		{Pullup, "Pull-ups", 2},
		{Plank, "Plank", 3},
		{Squat, "Squats", 5},
		{TricepDips, "Tricep Dips", 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p, err := Lookup(tt.kind)
			if err != nil {
				t.Fatal(err)
			}
			if p.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, p.Name)
			}
			if p.InputSize != tt.inputSize {
				t.Errorf("expected input size %d, got %d", tt.inputSize, p.InputSize)
			}
			if p.ModelFile == "" || p.StatsFile == "" {
				t.Error("expected artifact file names to be set")
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup(Kind("burpee"))

	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKinds_AllHaveProfiles(t *testing.T) {
	kinds := Kinds()

	if len(kinds) != 5 {
		t.Fatalf("expected 5 kinds, got %d", len(kinds))
	}

	for _, k := range kinds {
		if _, err := Lookup(k); err != nil {
			t.Errorf("kind %s has no profile: %v", k, err)
		}
	}
}
