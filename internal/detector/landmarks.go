// Package detector provides body pose detection interfaces and types for exercise analysis.
package detector

// Body landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// Point2D represents a normalized 2D image coordinate.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PoseLandmarks represents the 33 body landmarks detected by MediaPipe.
// Coordinates are normalized to the [0,1] frame extent.
type PoseLandmarks struct {
	Points [NumLandmarks]Point2D `json:"points"`
	Score  float64               `json:"score"`
}

// Scaled returns the landmark at index i scaled to pixel coordinates for a
// frame of the given width and height. Scaling matters for angle math: frames
// are rarely square, so normalized coordinates would distort joint angles.
func (p *PoseLandmarks) Scaled(i int, width, height float64) Point2D {
	return Point2D{
		X: p.Points[i].X * width,
		Y: p.Points[i].Y * height,
	}
}

// Connections lists landmark index pairs forming the pose skeleton, used when
// rendering detected landmarks onto output frames.
var Connections = [][2]int{
	{LeftShoulder, RightShoulder},
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},
	{LeftShoulder, LeftHip},
	{RightShoulder, RightHip},
	{LeftHip, RightHip},
	{LeftHip, LeftKnee},
	{LeftKnee, LeftAnkle},
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
	{LeftAnkle, LeftHeel},
	{LeftHeel, LeftFootIndex},
	{RightAnkle, RightHeel},
	{RightHeel, RightFootIndex},
}
