package detector

import (
	"errors"
	"math"
	"testing"

	"gocv.io/x/gocv"
)

func TestMockDetector_FixedPose(t *testing.T) {
	det := NewMockDetector()
	pose := PushupTopLandmarks()
	det.SetPose(&pose)

	frame := gocv.NewMatWithSize(240, 320, gocv.MatTypeCV8UC3)
	defer frame.Close()

	for i := 0; i < 3; i++ {
		got, err := det.Detect(&frame)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil {
			t.Fatal("expected a pose")
		}
		if got.Score != pose.Score {
			t.Errorf("expected score %f, got %f", pose.Score, got.Score)
		}
	}
}

func TestMockDetector_PoseSequence(t *testing.T) {
	det := NewMockDetector()
	top := PushupTopLandmarks()
	bottom := PushupBottomLandmarks()
	det.SetPoses([]*PoseLandmarks{&top, nil, &bottom})

	frame := gocv.NewMatWithSize(240, 320, gocv.MatTypeCV8UC3)
	defer frame.Close()

	got, _ := det.Detect(&frame)
	if got != &top {
		t.Error("expected the first pose in the sequence")
	}

	got, _ = det.Detect(&frame)
	if got != nil {
		t.Error("expected no subject for the nil entry")
	}

	got, _ = det.Detect(&frame)
	if got != &bottom {
		t.Error("expected the last pose in the sequence")
	}

	// Past the end of the sequence means no subject
	got, _ = det.Detect(&frame)
	if got != nil {
		t.Error("expected no subject after the sequence is exhausted")
	}
}

func TestMockDetector_Error(t *testing.T) {
	det := NewMockDetector()
	want := errors.New("subprocess died")
	det.SetError(want)

	frame := gocv.NewMatWithSize(240, 320, gocv.MatTypeCV8UC3)
	defer frame.Close()

	_, err := det.Detect(&frame)

	if !errors.Is(err, want) {
		t.Errorf("expected the configured error, got %v", err)
	}
}

func TestPoseLandmarks_Scaled(t *testing.T) {
	lm := PoseLandmarks{}
	lm.Points[LeftShoulder] = Point2D{X: 0.25, Y: 0.5}

	got := lm.Scaled(LeftShoulder, 640, 480)

	if math.Abs(got.X-160) > 1e-9 || math.Abs(got.Y-240) > 1e-9 {
		t.Errorf("expected (160, 240), got (%f, %f)", got.X, got.Y)
	}
}

func TestConnections_ValidIndices(t *testing.T) {
	for _, c := range Connections {
		for _, i := range c {
			if i < 0 || i >= NumLandmarks {
				t.Errorf("connection %v references landmark %d outside 0..%d", c, i, NumLandmarks-1)
			}
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ModelComplexity != 1 {
		t.Errorf("expected model complexity 1, got %d", cfg.ModelComplexity)
	}
	if cfg.MinConfidence != 0.3 || cfg.MinTrackingConf != 0.3 {
		t.Errorf("unexpected confidence thresholds: %f, %f", cfg.MinConfidence, cfg.MinTrackingConf)
	}
}
