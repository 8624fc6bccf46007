package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// Stats holds the per-exercise reference angle statistics used as the
// baseline for mistake detection.
type Stats struct {
	Mean []float64 `json:"mean"`
}

// LoadStats reads a reference-statistics artifact from disk.
func LoadStats(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, path, err)
	}
	if len(s.Mean) == 0 {
		return nil, fmt.Errorf("%w: %s has no mean vector", ErrUnavailable, path)
	}

	return &s, nil
}

// ComputeStats averages a recorded sequence of angle vectors into reference
// statistics. All-zero rows are skipped: they mark frames without a detected
// subject, not real anatomical angles.
func ComputeStats(frames [][]float64) (*Stats, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames provided")
	}

	n := len(frames[0])
	sums := make([]float64, n)
	var counted int

	for i, frame := range frames {
		if len(frame) != n {
			return nil, fmt.Errorf("frame %d has %d angles, expected %d", i, len(frame), n)
		}
		if isZero(frame) {
			continue
		}
		for j, v := range frame {
			sums[j] += v
		}
		counted++
	}

	if counted == 0 {
		return nil, fmt.Errorf("no frames with a detected subject")
	}

	mean := make([]float64, n)
	for j := range sums {
		mean[j] = sums[j] / float64(counted)
	}

	return &Stats{Mean: mean}, nil
}

// SaveStats writes a reference-statistics artifact to disk.
func SaveStats(path string, s *Stats) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isZero(frame []float64) bool {
	for _, v := range frame {
		if v != 0 {
			return false
		}
	}
	return true
}
