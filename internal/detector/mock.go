package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	pose  *PoseLandmarks
	poses []*PoseLandmarks
	next  int
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetPose sets the pose that will be returned by every Detect call.
func (m *MockDetector) SetPose(pose *PoseLandmarks) {
	m.pose = pose
	m.poses = nil
	m.next = 0
}

// SetPoses sets a sequence of per-frame results. Each Detect call consumes
// the next entry; a nil entry means no subject in that frame. After the
// sequence is exhausted Detect returns nil.
func (m *MockDetector) SetPoses(poses []*PoseLandmarks) {
	m.poses = poses
	m.pose = nil
	m.next = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured pose or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*PoseLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.poses != nil {
		if m.next >= len(m.poses) {
			return nil, nil
		}
		p := m.poses[m.next]
		m.next++
		return p, nil
	}
	return m.pose, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PushupTopLandmarks returns a preset PoseLandmarks for the top of a push-up.
// Arms are extended and the body forms a straight line from shoulders to ankles.
func PushupTopLandmarks() PoseLandmarks {
	lm := PoseLandmarks{Score: 0.95}

	// Head at the left of the frame, feet at the right
	lm.Points[Nose] = Point2D{X: 0.18, Y: 0.38}

	// Shoulders over the wrists, arms straight down
	lm.Points[LeftShoulder] = Point2D{X: 0.25, Y: 0.40}
	lm.Points[RightShoulder] = Point2D{X: 0.26, Y: 0.42}
	lm.Points[LeftElbow] = Point2D{X: 0.25, Y: 0.55}
	lm.Points[RightElbow] = Point2D{X: 0.26, Y: 0.57}
	lm.Points[LeftWrist] = Point2D{X: 0.25, Y: 0.70}
	lm.Points[RightWrist] = Point2D{X: 0.26, Y: 0.72}

	// Torso and legs in one line, slight downward slope toward the feet
	lm.Points[LeftHip] = Point2D{X: 0.50, Y: 0.50}
	lm.Points[RightHip] = Point2D{X: 0.51, Y: 0.52}
	lm.Points[LeftKnee] = Point2D{X: 0.65, Y: 0.56}
	lm.Points[RightKnee] = Point2D{X: 0.66, Y: 0.58}
	lm.Points[LeftAnkle] = Point2D{X: 0.80, Y: 0.62}
	lm.Points[RightAnkle] = Point2D{X: 0.81, Y: 0.64}
	lm.Points[LeftHeel] = Point2D{X: 0.82, Y: 0.64}
	lm.Points[RightHeel] = Point2D{X: 0.83, Y: 0.66}
	lm.Points[LeftFootIndex] = Point2D{X: 0.84, Y: 0.68}
	lm.Points[RightFootIndex] = Point2D{X: 0.85, Y: 0.70}

	return lm
}

// PushupBottomLandmarks returns a preset PoseLandmarks for the bottom of a
// push-up, elbows bent to roughly ninety degrees.
func PushupBottomLandmarks() PoseLandmarks {
	lm := PushupTopLandmarks()

	// Chest lowered, elbows flared back so shoulder-elbow-wrist bends sharply
	lm.Points[LeftShoulder] = Point2D{X: 0.25, Y: 0.55}
	lm.Points[RightShoulder] = Point2D{X: 0.26, Y: 0.57}
	lm.Points[LeftElbow] = Point2D{X: 0.33, Y: 0.62}
	lm.Points[RightElbow] = Point2D{X: 0.34, Y: 0.64}
	lm.Points[LeftWrist] = Point2D{X: 0.25, Y: 0.70}
	lm.Points[RightWrist] = Point2D{X: 0.26, Y: 0.72}

	return lm
}
