package video

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// Writer codecs, tried in order. mp4v has the widest OpenCV build support;
// H264 is the fallback for builds where mp4v refuses to open.
const (
	primaryCodec  = "mp4v"
	fallbackCodec = "H264"
)

// ErrWriterOpen is returned when no codec could open the output stream.
var ErrWriterOpen = errors.New("cannot open video writer")

// Writer writes annotated frames to an output video file.
type Writer struct {
	writer *gocv.VideoWriter
	path   string
	closed bool
}

// NewWriter opens an output video stream at the given path, retrying with the
// fallback codec when the primary one fails to open.
func NewWriter(path string, fps float64, width, height int) (*Writer, error) {
	w, err := gocv.VideoWriterFile(path, primaryCodec, fps, width, height, true)
	if err == nil && w.IsOpened() {
		return &Writer{writer: w, path: path}, nil
	}
	if w != nil {
		w.Close()
	}

	w, err = gocv.VideoWriterFile(path, fallbackCodec, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriterOpen, err)
	}
	if !w.IsOpened() {
		w.Close()
		return nil, ErrWriterOpen
	}

	return &Writer{writer: w, path: path}, nil
}

// Write appends one frame to the output stream.
func (w *Writer) Write(frame *gocv.Mat) error {
	return w.writer.Write(*frame)
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Close finalizes the output stream. Safe to call more than once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.writer.Close()
}
