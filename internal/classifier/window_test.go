package classifier

import "testing"

func TestBuildWindow_AlwaysFullLength(t *testing.T) {
	tests := []struct {
		name   string
		frames int
	}{
		{"empty history", 0},
		{"single frame", 1},
		{"partial window", 30},
		{"exact window", WindowSize},
		{"overfull history", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := make([][]float64, tt.frames)
			for i := range history {
				history[i] = []float64{float64(i + 1), float64(i + 1)}
			}

			window := BuildWindow(history, 2)

			if len(window) != WindowSize {
				t.Fatalf("expected %d rows, got %d", WindowSize, len(window))
			}
			for i, row := range window {
				if len(row) != 2 {
					t.Fatalf("row %d: expected 2 features, got %d", i, len(row))
				}
			}
		})
	}
}

func TestBuildWindow_LeftPadding(t *testing.T) {
	history := [][]float64{
		{10, 20},
		{30, 40},
	}

	window := BuildWindow(history, 2)

	// First 58 rows are zero padding
	for i := 0; i < WindowSize-2; i++ {
		if window[i][0] != 0 || window[i][1] != 0 {
			t.Fatalf("row %d: expected zero padding, got %v", i, window[i])
		}
	}

	// The real frames occupy the tail in order
	if window[WindowSize-2][0] != 10 || window[WindowSize-1][0] != 30 {
		t.Errorf("expected history at the window tail, got %v and %v",
			window[WindowSize-2], window[WindowSize-1])
	}
}

func TestBuildWindow_TakesHistoryTail(t *testing.T) {
	history := make([][]float64, 100)
	for i := range history {
		history[i] = []float64{float64(i)}
	}

	window := BuildWindow(history, 1)

	if window[0][0] != 40 {
		t.Errorf("expected window to start at frame 40, got %f", window[0][0])
	}
	if window[WindowSize-1][0] != 99 {
		t.Errorf("expected window to end at frame 99, got %f", window[WindowSize-1][0])
	}
}
