package video

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"
)

func TestAllowedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"workout.mp4", true},
		{"workout.MP4", true},
		{"clip.avi", true},
		{"clip.mov", true},
		{"clip.mkv", true},
		{"clip.webm", true},
		{"clip.gif", false},
		{"clip.txt", false},
		{"clip", false},
		{"/some/dir/session.Mp4", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := AllowedFormat(tt.path); got != tt.want {
				t.Errorf("AllowedFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	s := NewFileSource(filepath.Join(t.TempDir(), "nope.mp4"))

	err := s.Open()

	if !errors.Is(err, ErrOpen) {
		t.Errorf("expected ErrOpen, got %v", err)
	}
}

func TestFileSource_ReadBeforeOpen(t *testing.T) {
	s := NewFileSource("whatever.mp4")

	_, err := s.ReadFrame()

	if !errors.Is(err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
}

func TestMockSource_Playback(t *testing.T) {
	mat := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer mat.Close()

	s := NewMockSource([]*gocv.Mat{&mat, &mat}, 24, 160, 120)
	if err := s.Open(); err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.FPS() != 24 || s.Width() != 160 || s.Height() != 120 {
		t.Errorf("unexpected properties: fps=%f w=%d h=%d", s.FPS(), s.Width(), s.Height())
	}

	for i := 0; i < 2; i++ {
		frame, err := s.ReadFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		frame.Close()
	}

	if _, err := s.ReadFrame(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after the last frame, got %v", err)
	}
}

func TestMockSource_ReadBeforeOpen(t *testing.T) {
	s := NewMockSource(nil, 30, 320, 240)

	if _, err := s.ReadFrame(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
}
