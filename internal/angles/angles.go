// Package angles converts detected pose landmarks into per-exercise joint angle vectors.
package angles

import (
	"math"

	"github.com/ayusman/repwise/internal/detector"
	"github.com/ayusman/repwise/internal/exercise"
)

const epsilon = 1e-6

// Between computes the angle in degrees at vertex b between the rays b->a and
// b->c. The cosine is clamped to [-1,1] before the arccos so floating point
// overshoot never produces a domain error, and epsilon guards the division
// when landmarks coincide.
func Between(a, b, c detector.Point2D) float64 {
	bax := a.X - b.X
	bay := a.Y - b.Y
	bcx := c.X - b.X
	bcy := c.Y - b.Y

	dot := bax*bcx + bay*bcy
	normBA := math.Sqrt(bax*bax + bay*bay)
	normBC := math.Sqrt(bcx*bcx + bcy*bcy)

	cosine := dot / (normBA*normBC + epsilon)
	if cosine > 1 {
		cosine = 1
	} else if cosine < -1 {
		cosine = -1
	}

	return math.Acos(cosine) * 180 / math.Pi
}

// Def names one joint angle and the landmark triple that forms it.
// B is the vertex joint; A and C are the endpoints of the two rays.
type Def struct {
	Name    string
	A, B, C int
}

// Per-exercise angle tables. The order and landmark triples are fixed: the
// classifier weights and the reference statistics were produced against these
// exact vectors, so reordering or substituting joints breaks compatibility.
var tables = map[exercise.Kind][]Def{
	exercise.Pushup: {
		{Name: "left_elbow", A: detector.LeftShoulder, B: detector.LeftElbow, C: detector.LeftWrist},
		{Name: "right_elbow", A: detector.RightShoulder, B: detector.RightElbow, C: detector.RightWrist},
		{Name: "back", A: detector.LeftShoulder, B: detector.LeftHip, C: detector.LeftKnee},
		{Name: "left_knee", A: detector.LeftHip, B: detector.LeftKnee, C: detector.LeftAnkle},
		{Name: "right_knee", A: detector.RightHip, B: detector.RightKnee, C: detector.RightAnkle},
	},
	exercise.Pullup: {
		{Name: "elbow", A: detector.LeftWrist, B: detector.LeftElbow, C: detector.LeftShoulder},
		{Name: "shoulder", A: detector.LeftElbow, B: detector.LeftShoulder, C: detector.LeftHip},
	},
	exercise.Plank: {
		{Name: "back", A: detector.LeftShoulder, B: detector.LeftHip, C: detector.LeftAnkle},
		{Name: "elbow", A: detector.LeftShoulder, B: detector.LeftElbow, C: detector.LeftWrist},
		{Name: "hip", A: detector.LeftShoulder, B: detector.LeftHip, C: detector.LeftKnee},
	},
	exercise.Squat: {
		{Name: "left_knee", A: detector.LeftHip, B: detector.LeftKnee, C: detector.LeftAnkle},
		{Name: "right_knee", A: detector.RightHip, B: detector.RightKnee, C: detector.RightAnkle},
		{Name: "left_hip", A: detector.LeftShoulder, B: detector.LeftHip, C: detector.LeftKnee},
		{Name: "right_hip", A: detector.LeftShoulder, B: detector.RightHip, C: detector.RightKnee},
		{Name: "back", A: detector.LeftShoulder, B: detector.LeftHip, C: detector.LeftAnkle},
	},
	exercise.TricepDips: {
		{Name: "left_elbow", A: detector.LeftShoulder, B: detector.LeftElbow, C: detector.LeftWrist},
		{Name: "right_elbow", A: detector.RightShoulder, B: detector.RightElbow, C: detector.RightWrist},
		{Name: "left_shoulder", A: detector.LeftElbow, B: detector.LeftShoulder, C: detector.LeftHip},
		{Name: "right_shoulder", A: detector.RightElbow, B: detector.RightShoulder, C: detector.RightHip},
	},
}

// Table returns the angle definitions for the given exercise kind.
func Table(kind exercise.Kind) ([]Def, error) {
	defs, ok := tables[kind]
	if !ok {
		return nil, exercise.ErrUnknownKind
	}
	return defs, nil
}

// Extract computes the angle vector for one frame's landmarks. Landmarks are
// scaled to pixel coordinates for the given frame dimensions before the angle
// math. The returned vector length always equals the exercise's input size.
func Extract(kind exercise.Kind, lm *detector.PoseLandmarks, width, height float64) ([]float64, error) {
	defs, ok := tables[kind]
	if !ok {
		return nil, exercise.ErrUnknownKind
	}

	vec := make([]float64, len(defs))
	for i, def := range defs {
		a := lm.Scaled(def.A, width, height)
		b := lm.Scaled(def.B, width, height)
		c := lm.Scaled(def.C, width, height)
		vec[i] = Between(a, b, c)
	}

	return vec, nil
}
