package angles

import (
	"errors"
	"math"
	"testing"

	"github.com/ayusman/repwise/internal/detector"
	"github.com/ayusman/repwise/internal/exercise"
)

func TestBetween_StraightLine(t *testing.T) {
	// Collinear points form a 180 degree angle at the vertex
	a := detector.Point2D{X: 0, Y: 0}
	b := detector.Point2D{X: 1, Y: 0}
	c := detector.Point2D{X: 2, Y: 0}

	angle := Between(a, b, c)

	if math.Abs(angle-180) > 0.1 {
		t.Errorf("expected 180 degrees for a straight line, got %f", angle)
	}
}

func TestBetween_RightAngle(t *testing.T) {
	a := detector.Point2D{X: 0, Y: 1}
	b := detector.Point2D{X: 0, Y: 0}
	c := detector.Point2D{X: 1, Y: 0}

	angle := Between(a, b, c)

	if math.Abs(angle-90) > 0.1 {
		t.Errorf("expected 90 degrees for a right angle, got %f", angle)
	}
}

func TestBetween_DegeneratePoints(t *testing.T) {
	// Coincident landmarks must not panic or produce NaN
	p := detector.Point2D{X: 0.5, Y: 0.5}

	angle := Between(p, p, p)

	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		t.Errorf("expected a finite angle for coincident points, got %f", angle)
	}
}

func TestBetween_ClampedCosine(t *testing.T) {
	// Nearly collinear rays can push the cosine just past 1 through floating
	// point error; the clamp must keep arccos in its domain
	a := detector.Point2D{X: 1e-9, Y: 1}
	b := detector.Point2D{X: 0, Y: 0}
	c := detector.Point2D{X: -1e-9, Y: -1}

	angle := Between(a, b, c)

	if math.IsNaN(angle) {
		t.Errorf("expected a finite angle, got NaN")
	}
}

func TestExtract_VectorLengthMatchesProfile(t *testing.T) {
	lm := detector.PushupTopLandmarks()

	for _, kind := range exercise.Kinds() {
		profile, err := exercise.Lookup(kind)
		if err != nil {
			t.Fatalf("lookup %s: %v", kind, err)
		}

		vec, err := Extract(kind, &lm, 640, 480)
		if err != nil {
			t.Fatalf("extract %s: %v", kind, err)
		}

		if len(vec) != profile.InputSize {
			t.Errorf("%s: expected %d angles, got %d", kind, profile.InputSize, len(vec))
		}

		for i, v := range vec {
			if v < 0 || v > 180 || math.IsNaN(v) {
				t.Errorf("%s angle %d out of range: %f", kind, i, v)
			}
		}
	}
}

func TestExtract_UnknownKind(t *testing.T) {
	lm := detector.PushupTopLandmarks()

	_, err := Extract("yoga", &lm, 640, 480)

	if !errors.Is(err, exercise.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestTable_MatchesProfileDimensions(t *testing.T) {
	for _, kind := range exercise.Kinds() {
		profile, err := exercise.Lookup(kind)
		if err != nil {
			t.Fatalf("lookup %s: %v", kind, err)
		}

		defs, err := Table(kind)
		if err != nil {
			t.Fatalf("table %s: %v", kind, err)
		}

		if len(defs) != profile.InputSize {
			t.Errorf("%s: angle table has %d entries, profile declares %d", kind, len(defs), profile.InputSize)
		}
	}
}

func TestExtract_PushupElbowBend(t *testing.T) {
	// The bottom-of-pushup fixture bends the elbows well past the top fixture
	top := detector.PushupTopLandmarks()
	bottom := detector.PushupBottomLandmarks()

	topVec, err := Extract(exercise.Pushup, &top, 640, 640)
	if err != nil {
		t.Fatal(err)
	}
	bottomVec, err := Extract(exercise.Pushup, &bottom, 640, 640)
	if err != nil {
		t.Fatal(err)
	}

	if bottomVec[0] >= topVec[0] {
		t.Errorf("expected bent left elbow (%f) to be smaller than straight (%f)", bottomVec[0], topVec[0])
	}
	if bottomVec[1] >= topVec[1] {
		t.Errorf("expected bent right elbow (%f) to be smaller than straight (%f)", bottomVec[1], topVec[1])
	}
}
