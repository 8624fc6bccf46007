// Package mistakes evaluates per-frame joint angles against reference
// statistics and produces human-readable form feedback.
package mistakes

import (
	"math"

	"github.com/ayusman/repwise/internal/exercise"
)

// Detect compares the current frame's angle vector against the exercise's
// mean reference angles and returns every violated check's message. Each
// check contributes the same fixed string however far past its threshold the
// angle is; there is no severity grading.
//
// The tolerance constants and messages are fixed alongside the trained
// models: changing them changes the product's feedback behavior.
func Detect(kind exercise.Kind, current, mean []float64) []string {
	var out []string

	switch kind {
	case exercise.Pushup:
		avgElbows := (current[0] + current[1]) / 2
		if avgElbows > mean[0]+10 {
			out = append(out, "Go lower - bend elbows more")
		}
		if math.Abs(current[2]-mean[2]) > 15 {
			out = append(out, "Keep back straight")
		}
		if (current[3]+current[4])/2 > mean[3]+10 {
			out = append(out, "Knees bent - keep legs straight")
		}

	case exercise.Pullup:
		if current[0] > mean[0]+15 {
			out = append(out, "Pull higher - bend the elbows more at top")
		}
		if current[1] > mean[1]+15 {
			out = append(out, "Drive shoulders up - reach the bar higher")
		}
		if current[1] < mean[1]-20 {
			out = append(out, "Control the descent - don't drop too fast")
		}

	case exercise.Plank:
		if math.Abs(current[0]-180) > 15 {
			if current[0] < 165 {
				out = append(out, "Hips too high - lower your hips")
			} else {
				out = append(out, "Hips sagging - raise your hips")
			}
		}
		if math.Abs(current[1]-mean[1]) > 20 {
			out = append(out, "Adjust elbow position - keep forearms flat")
		}
		if math.Abs(current[2]-mean[2]) > 15 {
			if current[2] < mean[2]-15 {
				out = append(out, "Engage core - don't let hips drop")
			} else {
				out = append(out, "Keep body straight - hips too high")
			}
		}

	case exercise.Squat:
		avgKnee := (current[0] + current[1]) / 2
		if avgKnee > 100 {
			out = append(out, "Go deeper - squat below parallel")
		}
		if math.Abs(current[0]-current[1]) > 15 {
			out = append(out, "Uneven knees - maintain symmetry")
		}
		avgHip := (current[2] + current[3]) / 2
		if avgHip > mean[2]+20 {
			out = append(out, "Push hips back more - proper hip hinge")
		}
		if current[4] < mean[4]-15 {
			out = append(out, "Keep chest up - too much forward lean")
		} else if current[4] > mean[4]+15 {
			out = append(out, "Lean forward slightly - engage posterior chain")
		}

	case exercise.TricepDips:
		avgElbow := (current[0] + current[1]) / 2
		if avgElbow > 110 {
			out = append(out, "Go deeper - lower until elbows at 90 degrees")
		}
		if math.Abs(current[0]-current[1]) > 15 {
			out = append(out, "Uneven elbows - maintain symmetry")
		}
		avgShoulder := (current[2] + current[3]) / 2
		if avgShoulder < mean[2]-15 {
			out = append(out, "Keep chest up - don't lean too far forward")
		}
		if avgElbow < mean[0]-20 {
			out = append(out, "Keep elbows tucked - don't flare out")
		}
	}

	return out
}

// Dedupe collapses repeated mistake strings across frames, preserving the
// order of first appearance.
func Dedupe(all []string) []string {
	seen := make(map[string]struct{}, len(all))
	var out []string
	for _, m := range all {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
