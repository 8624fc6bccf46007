package video

import (
	"io"
	"sync"

	"gocv.io/x/gocv"
)

// MockSource plays back a fixed sequence of frames for testing.
type MockSource struct {
	frames  []*gocv.Mat
	index   int
	mu      sync.Mutex
	running bool
	fps     float64
	width   int
	height  int
}

// NewMockSource creates a MockSource serving the given frames with the given
// reported properties.
func NewMockSource(frames []*gocv.Mat, fps float64, width, height int) *MockSource {
	return &MockSource{
		frames: frames,
		fps:    fps,
		width:  width,
		height: height,
	}
}

func (s *MockSource) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.index = 0
	return nil
}

func (s *MockSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	return nil
}

// ReadFrame returns a clone of the next frame, or io.EOF once exhausted.
func (s *MockSource) ReadFrame() (*gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil, ErrNotOpen
	}

	if s.index >= len(s.frames) {
		return nil, io.EOF
	}

	// Clone so callers can draw on and close the frame freely
	frame := s.frames[s.index].Clone()
	s.index++

	return &frame, nil
}

func (s *MockSource) FPS() float64 { return s.fps }
func (s *MockSource) Width() int   { return s.width }
func (s *MockSource) Height() int  { return s.height }
