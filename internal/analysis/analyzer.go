// Package analysis orchestrates per-frame exercise form analysis over a video file.
package analysis

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/repwise/internal/angles"
	"github.com/ayusman/repwise/internal/classifier"
	"github.com/ayusman/repwise/internal/detector"
	"github.com/ayusman/repwise/internal/exercise"
	"github.com/ayusman/repwise/internal/mistakes"
	"github.com/ayusman/repwise/internal/video"
)

// ErrNoPoseDetected is returned when the whole video was processed without a
// single frame yielding a pose detection. It signals a content problem (the
// subject is not visible or poorly lit), distinct from a decode failure.
var ErrNoPoseDetected = errors.New("no pose detected in video")

// Fixed accuracy placeholders for degraded runs, matching the product's
// established fallback behavior.
const (
	mockAccuracyMissing = 85
	mockAccuracyLoad    = 80
	mockAccuracyOutput  = 75
)

// trailingWindow is the number of recent frames averaged for the on-frame
// accuracy overlay.
const trailingWindow = 20

// penaltyPerMistake is subtracted from the model's confidence score for each
// rule violation in a frame. The blend of learned score and rule penalty is a
// product heuristic kept for behavioral compatibility.
const penaltyPerMistake = 10

// Config holds the construction options for an Analyzer.
type Config struct {
	// Detector is the pose detection capability, owned by the caller for
	// the lifetime of one analysis session.
	Detector detector.Detector

	// ModelDir holds the classifier weight and statistics artifacts.
	ModelDir string

	// OutputDir receives the annotated output videos.
	OutputDir string

	// OpenSource overrides how the input video is opened. Tests use this to
	// substitute a mock source; nil means read from the file path.
	OpenSource func(path string) video.Source

	// OpenWriter overrides how the output video is opened. Tests use this
	// to substitute a discarding writer; nil means write a real video file.
	OpenWriter func(path string, fps float64, width, height int) (FrameWriter, error)
}

// FrameWriter receives the annotated output frames.
type FrameWriter interface {
	Write(frame *gocv.Mat) error
	Path() string
	Close() error
}

// Analyzer runs the frame-by-frame analysis pipeline for one video at a time.
// Each Analyze call is independent: rolling state lives on the stack of the
// call, so separate Analyzer instances may run concurrently.
type Analyzer struct {
	config Config
}

// New creates an Analyzer with the given configuration.
func New(config Config) *Analyzer {
	if config.OpenSource == nil {
		config.OpenSource = video.NewFileSource
	}
	if config.OpenWriter == nil {
		config.OpenWriter = func(path string, fps float64, width, height int) (FrameWriter, error) {
			return video.NewWriter(path, fps, width, height)
		}
	}
	return &Analyzer{config: config}
}

// frameSample is one frame's extracted angles plus an explicit detection
// marker. The zero vector doubles as the classifier's "no signal" sentinel
// for compatibility with the trained artifacts, but presence is tracked
// separately rather than inferred from the values.
type frameSample struct {
	angles   []float64
	detected bool
}

// Analyze processes the video end-to-end and returns the aggregate result.
//
// Fatal errors are limited to an unknown exercise kind, an unreadable video,
// invalid dimensions, and a video with no detectable subject. Missing model
// artifacts degrade to a structurally valid mock result instead of failing.
func (a *Analyzer) Analyze(videoPath string, kind exercise.Kind) (*Result, error) {
	profile, err := exercise.Lookup(kind)
	if err != nil {
		return nil, err
	}

	log.Printf("Starting %s analysis of %s", profile.Name, filepath.Base(videoPath))

	source := a.config.OpenSource(videoPath)
	if err := source.Open(); err != nil {
		return nil, err
	}
	defer source.Close()

	// Model loading failures degrade instead of failing the run.
	model, stats, degraded := a.loadArtifacts(profile)
	if degraded != nil {
		return degraded, nil
	}

	outputName := fmt.Sprintf("feedback_%s_%s.mp4", kind, uuid.NewString()[:8])
	writer, err := a.config.OpenWriter(filepath.Join(a.config.OutputDir, outputName),
		source.FPS(), source.Width(), source.Height())
	if err != nil {
		log.Printf("Output writer unavailable: %v", err)
		return a.mockResult(profile, mockAccuracyOutput,
			fmt.Sprintf("Video processing error: %v", err)), nil
	}
	defer writer.Close()

	width := float64(source.Width())
	height := float64(source.Height())

	var (
		history        []frameSample
		accuracies     []int
		allMistakes    []string
		frameCount     int
		detectedFrames int
	)

	for {
		frame, err := source.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		frameCount++
		if frameCount%30 == 0 {
			log.Printf("Processing frame %d", frameCount)
		}

		// Detection errors are recovered per frame as "no subject".
		lm, err := a.config.Detector.Detect(frame)
		if err != nil {
			log.Printf("Detection failed on frame %d: %v", frameCount, err)
			lm = nil
		}

		sample := frameSample{angles: make([]float64, profile.InputSize)}
		if lm != nil {
			vec, err := angles.Extract(kind, lm, width, height)
			if err != nil {
				frame.Close()
				return nil, err
			}
			sample = frameSample{angles: vec, detected: true}
			detectedFrames++
			drawPose(frame, lm, width, height)
		}
		history = append(history, sample)

		window := classifier.BuildWindow(angleRows(history), profile.InputSize)
		prob, err := model.Predict(window)
		if err != nil {
			// Window shape is fixed by construction, so this only fires on
			// a malformed artifact. Degrade the frame, not the run.
			log.Printf("Prediction failed on frame %d: %v", frameCount, err)
			prob = 0
		}

		frameMistakes := mistakes.Detect(kind, sample.angles, stats.Mean)
		allMistakes = append(allMistakes, frameMistakes...)

		accuracy := frameAccuracy(prob, len(frameMistakes))
		accuracies = append(accuracies, accuracy)

		drawFeedback(frame, frameMistakes, trailingMean(accuracies))

		if err := writer.Write(frame); err != nil {
			log.Printf("Failed writing frame %d: %v", frameCount, err)
		}
		frame.Close()
	}

	log.Printf("Processed %d frames, %d with a detected pose", frameCount, detectedFrames)

	if detectedFrames == 0 {
		// Remove the useless annotated output before reporting.
		writer.Close()
		os.Remove(writer.Path())
		return nil, ErrNoPoseDetected
	}

	return &Result{
		ID:           uuid.NewString(),
		ExerciseType: string(kind),
		ExerciseName: profile.Name,
		Accuracy:     meanAccuracy(accuracies),
		Mistakes:     mistakes.Dedupe(allMistakes),
		OutputVideo:  outputName,
		TotalFrames:  detectedFrames,
	}, nil
}

// loadArtifacts loads the classifier weights and reference statistics for the
// profile. On any failure it returns a degraded mock result as the third
// value; the run must not crash because an artifact is missing.
func (a *Analyzer) loadArtifacts(profile *exercise.Profile) (*classifier.Model, *classifier.Stats, *Result) {
	modelPath := filepath.Join(a.config.ModelDir, profile.ModelFile)
	statsPath := filepath.Join(a.config.ModelDir, profile.StatsFile)

	if !fileExists(modelPath) || !fileExists(statsPath) {
		log.Printf("Model artifacts missing for %s, returning mock result", profile.Kind)
		return nil, nil, a.mockResult(profile, mockAccuracyMissing,
			"Model files not available - using mock analysis")
	}

	model, err := classifier.Load(modelPath)
	if err != nil {
		log.Printf("Model load failed for %s: %v", profile.Kind, err)
		return nil, nil, a.mockResult(profile, mockAccuracyLoad,
			fmt.Sprintf("Model loading failed: %v", err))
	}

	stats, err := classifier.LoadStats(statsPath)
	if err != nil {
		log.Printf("Stats load failed for %s: %v", profile.Kind, err)
		return nil, nil, a.mockResult(profile, mockAccuracyLoad,
			fmt.Sprintf("Model loading failed: %v", err))
	}

	if model.InputSize != profile.InputSize || len(stats.Mean) != profile.InputSize {
		log.Printf("Artifact dimensionality mismatch for %s", profile.Kind)
		return nil, nil, a.mockResult(profile, mockAccuracyLoad,
			"Model loading failed: artifact dimensions do not match exercise")
	}

	return model, stats, nil
}

// mockResult builds the structurally valid fallback returned when the real
// analysis cannot run.
func (a *Analyzer) mockResult(profile *exercise.Profile, accuracy int, message string) *Result {
	return &Result{
		ID:           uuid.NewString(),
		ExerciseType: string(profile.Kind),
		ExerciseName: profile.Name,
		Accuracy:     accuracy,
		Mistakes:     []string{message},
		TotalFrames:  0,
		MockResult:   true,
		Message:      message,
	}
}

// frameAccuracy blends the classifier's confidence with the rule penalty and
// clamps to the 0-100 range.
func frameAccuracy(prob float64, mistakeCount int) int {
	score := math.Round(prob*100 - float64(penaltyPerMistake*mistakeCount))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(score)
}

// trailingMean averages the most recent accuracies for the on-frame overlay.
func trailingMean(accuracies []int) int {
	if len(accuracies) == 0 {
		return 0
	}
	start := len(accuracies) - trailingWindow
	if start < 0 {
		start = 0
	}
	tail := accuracies[start:]

	var sum int
	for _, a := range tail {
		sum += a
	}
	return sum / len(tail)
}

// meanAccuracy returns the mean of all per-frame accuracies, rounded to the
// nearest integer.
func meanAccuracy(accuracies []int) int {
	if len(accuracies) == 0 {
		return 0
	}
	var sum int
	for _, a := range accuracies {
		sum += a
	}
	return int(math.Round(float64(sum) / float64(len(accuracies))))
}

func angleRows(history []frameSample) [][]float64 {
	rows := make([][]float64, len(history))
	for i, s := range history {
		rows[i] = s.angles
	}
	return rows
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
