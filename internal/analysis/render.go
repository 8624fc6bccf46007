package analysis

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/repwise/internal/detector"
)

var (
	jointColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	skeletonColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	mistakeColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	accuracyColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// drawPose renders the detected landmarks and skeleton connections onto the frame.
func drawPose(frame *gocv.Mat, lm *detector.PoseLandmarks, width, height float64) {
	for _, conn := range detector.Connections {
		a := lm.Scaled(conn[0], width, height)
		b := lm.Scaled(conn[1], width, height)
		gocv.Line(frame, image.Pt(int(a.X), int(a.Y)), image.Pt(int(b.X), int(b.Y)), skeletonColor, 2)
	}

	for i := 0; i < detector.NumLandmarks; i++ {
		p := lm.Scaled(i, width, height)
		gocv.Circle(frame, image.Pt(int(p.X), int(p.Y)), 3, jointColor, -1)
	}
}

// drawFeedback renders the frame's mistake messages and the trailing-average
// accuracy below them.
func drawFeedback(frame *gocv.Mat, mistakes []string, displayAccuracy int) {
	const yOffset = 30

	for i, mistake := range mistakes {
		gocv.PutText(frame, mistake, image.Pt(30, yOffset+i*30),
			gocv.FontHersheySimplex, 0.7, mistakeColor, 2)
	}

	gocv.PutText(frame, fmt.Sprintf("Accuracy: %d%%", displayAccuracy),
		image.Pt(30, yOffset+(len(mistakes)+1)*30),
		gocv.FontHersheySimplex, 1, accuracyColor, 2)
}
