// Package video provides video file reading and writing using GoCV (OpenCV).
package video

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"gocv.io/x/gocv"
)

// DefaultFPS is used when the container reports no frame rate.
const DefaultFPS = 30

var (
	// ErrOpen is returned when the input video cannot be opened or decoded.
	ErrOpen = errors.New("cannot open video")

	// ErrInvalidDimensions is returned when the decoder reports a
	// non-positive frame width or height.
	ErrInvalidDimensions = errors.New("invalid video dimensions")

	// ErrNotOpen is returned when reading from a source that is not open.
	ErrNotOpen = errors.New("video source is not open")
)

// allowedExtensions is the set of supported container formats.
var allowedExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".mkv":  {},
	".webm": {},
}

// AllowedFormat reports whether the file's extension is in the supported set.
func AllowedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := allowedExtensions[ext]
	return ok
}

// Source defines the interface for frame-by-frame video reading.
// ReadFrame returns io.EOF once the stream is exhausted.
type Source interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	FPS() float64
	Width() int
	Height() int
}

// fileSource reads frames from a video file using GoCV.
type fileSource struct {
	path    string
	capture *gocv.VideoCapture
	mu      sync.Mutex
	running bool
	fps     float64
	width   int
	height  int
}

// NewFileSource creates a Source reading from the given video file path.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

// Open opens the video file and reads its properties. The reported FPS falls
// back to DefaultFPS when the container carries none.
func (s *fileSource) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	capture, err := gocv.VideoCaptureFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return ErrOpen
	}

	fps := capture.Get(gocv.VideoCaptureFPS)
	if fps <= 0 {
		fps = DefaultFPS
	}

	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))
	if width <= 0 || height <= 0 {
		capture.Close()
		return ErrInvalidDimensions
	}

	s.capture = capture
	s.fps = fps
	s.width = width
	s.height = height
	s.running = true

	return nil
}

// Close closes the video file and releases resources.
func (s *fileSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.capture == nil {
		s.running = false
		return nil
	}

	err := s.capture.Close()
	s.capture = nil
	s.running = false

	return err
}

// ReadFrame reads the next frame. The caller is responsible for closing the
// returned Mat. Returns io.EOF at end of stream.
func (s *fileSource) ReadFrame() (*gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.capture == nil {
		return nil, ErrNotOpen
	}

	mat := gocv.NewMat()
	if ok := s.capture.Read(&mat); !ok {
		mat.Close()
		return nil, io.EOF
	}

	if mat.Empty() {
		mat.Close()
		return nil, io.EOF
	}

	return &mat, nil
}

func (s *fileSource) FPS() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fps
}

func (s *fileSource) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

func (s *fileSource) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}
