package analysis

// Result is the aggregate outcome of one full video analysis.
// Degraded runs produce the same shape with MockResult set, so callers never
// need to special-case a fallback beyond showing the explanatory message.
type Result struct {
	ID           string   `json:"id"`
	ExerciseType string   `json:"exercise_type"`
	ExerciseName string   `json:"exercise_name"`
	Accuracy     int      `json:"accuracy"`
	Mistakes     []string `json:"mistakes"`
	OutputVideo  string   `json:"output_video,omitempty"`
	TotalFrames  int      `json:"total_frames"`
	MockResult   bool     `json:"mock_result,omitempty"`
	Message      string   `json:"message,omitempty"`
}
