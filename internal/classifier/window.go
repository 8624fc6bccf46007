package classifier

// WindowSize is the fixed number of frames fed to the sequence model.
const WindowSize = 60

// BuildWindow assembles the classifier input from the tail of the rolling
// angle history. The result always has exactly WindowSize rows: when fewer
// real frames exist the window is left-padded with zero vectors, so the first
// ~59 frames of a video are classified against a partially synthetic window.
// That costs accuracy early in a video but keeps every frame classifiable.
func BuildWindow(history [][]float64, inputSize int) [][]float64 {
	window := make([][]float64, WindowSize)

	start := len(history) - WindowSize
	if start < 0 {
		start = 0
	}
	tail := history[start:]

	pad := WindowSize - len(tail)
	for i := 0; i < pad; i++ {
		window[i] = make([]float64, inputSize)
	}
	for i, row := range tail {
		window[pad+i] = row
	}

	return window
}
