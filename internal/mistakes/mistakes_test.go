package mistakes

import (
	"testing"

	"github.com/ayusman/repwise/internal/exercise"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestDetect_PushupCleanForm(t *testing.T) {
	// All angles within tolerance of the reference
	current := []float64{90, 92, 170, 10, 12}
	mean := []float64{90, 90, 170, 10, 10}

	got := Detect(exercise.Pushup, current, mean)

	if len(got) != 0 {
		t.Errorf("expected no mistakes, got %v", got)
	}
}

func TestDetect_PushupShallowElbows(t *testing.T) {
	// Average elbow angle 171 against a mean of 90 means barely bending
	current := []float64{170, 172, 170, 10, 10}
	mean := []float64{90, 90, 170, 10, 10}

	got := Detect(exercise.Pushup, current, mean)

	if !contains(got, "Go lower - bend elbows more") {
		t.Errorf("expected elbow depth mistake, got %v", got)
	}
}

func TestDetect_PushupBentBackAndKnees(t *testing.T) {
	current := []float64{90, 90, 150, 60, 60}
	mean := []float64{90, 90, 170, 10, 10}

	got := Detect(exercise.Pushup, current, mean)

	if !contains(got, "Keep back straight") {
		t.Errorf("expected back mistake, got %v", got)
	}
	if !contains(got, "Knees bent - keep legs straight") {
		t.Errorf("expected knee mistake, got %v", got)
	}
}

func TestDetect_Pullup(t *testing.T) {
	mean := []float64{60, 40}

	tests := []struct {
		name    string
		current []float64
		want    string
	}{
		{"shallow elbows", []float64{80, 40}, "Pull higher - bend the elbows more at top"},
		{"low shoulders", []float64{60, 60}, "Drive shoulders up - reach the bar higher"},
		{"dropping fast", []float64{60, 15}, "Control the descent - don't drop too fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(exercise.Pullup, tt.current, mean)
			if !contains(got, tt.want) {
				t.Errorf("expected %q, got %v", tt.want, got)
			}
		})
	}
}

func TestDetect_PlankBackDirection(t *testing.T) {
	mean := []float64{180, 90, 170}

	// Back angle 140 is more than 15 off straight and below the 165 cutoff
	got := Detect(exercise.Plank, []float64{140, 90, 170}, mean)
	if !contains(got, "Hips too high - lower your hips") {
		t.Errorf("expected hips-too-high mistake, got %v", got)
	}

	// Back angle just under 180 but above the cutoff reads as sagging
	got = Detect(exercise.Plank, []float64{210, 90, 170}, mean)
	if !contains(got, "Hips sagging - raise your hips") {
		t.Errorf("expected sagging mistake, got %v", got)
	}
}

func TestDetect_PlankHipDirection(t *testing.T) {
	mean := []float64{180, 90, 170}

	got := Detect(exercise.Plank, []float64{180, 90, 150}, mean)
	if !contains(got, "Engage core - don't let hips drop") {
		t.Errorf("expected core mistake, got %v", got)
	}

	got = Detect(exercise.Plank, []float64{180, 90, 190}, mean)
	if !contains(got, "Keep body straight - hips too high") {
		t.Errorf("expected hips-too-high mistake, got %v", got)
	}
}

func TestDetect_Squat(t *testing.T) {
	mean := []float64{80, 80, 100, 100, 160}

	tests := []struct {
		name    string
		current []float64
		want    string
	}{
		{"shallow depth", []float64{120, 110, 100, 100, 160}, "Go deeper - squat below parallel"},
		{"uneven knees", []float64{70, 90, 100, 100, 160}, "Uneven knees - maintain symmetry"},
		{"no hip hinge", []float64{80, 80, 130, 125, 160}, "Push hips back more - proper hip hinge"},
		{"forward lean", []float64{80, 80, 100, 100, 140}, "Keep chest up - too much forward lean"},
		{"too upright", []float64{80, 80, 100, 100, 178}, "Lean forward slightly - engage posterior chain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(exercise.Squat, tt.current, mean)
			if !contains(got, tt.want) {
				t.Errorf("expected %q, got %v", tt.want, got)
			}
		})
	}
}

func TestDetect_TricepDips(t *testing.T) {
	mean := []float64{90, 90, 70, 70}

	tests := []struct {
		name    string
		current []float64
		want    string
	}{
		{"shallow depth", []float64{120, 115, 70, 70}, "Go deeper - lower until elbows at 90 degrees"},
		{"uneven elbows", []float64{75, 95, 70, 70}, "Uneven elbows - maintain symmetry"},
		{"leaning forward", []float64{90, 90, 50, 52}, "Keep chest up - don't lean too far forward"},
		{"flared elbows", []float64{65, 68, 70, 70}, "Keep elbows tucked - don't flare out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(exercise.TricepDips, tt.current, mean)
			if !contains(got, tt.want) {
				t.Errorf("expected %q, got %v", tt.want, got)
			}
		})
	}
}

func TestDetect_SameMessageRegardlessOfMagnitude(t *testing.T) {
	mean := []float64{90, 90, 170, 10, 10}

	slightly := Detect(exercise.Pushup, []float64{101, 101, 170, 10, 10}, mean)
	wildly := Detect(exercise.Pushup, []float64{179, 179, 170, 10, 10}, mean)

	if len(slightly) != 1 || len(wildly) != 1 || slightly[0] != wildly[0] {
		t.Errorf("expected identical single message, got %v and %v", slightly, wildly)
	}
}

func TestDedupe(t *testing.T) {
	all := []string{"a", "b", "a", "c", "b", "a"}

	got := Dedupe(all)

	if len(got) != 3 {
		t.Fatalf("expected 3 unique mistakes, got %d: %v", len(got), got)
	}
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("expected first-appearance order, got %v", got)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
