package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Analysis represents a completed analysis run stored in the database.
type Analysis struct {
	ID           string
	ExerciseType string
	ExerciseName string
	Accuracy     int
	Mistakes     []string
	OutputVideo  string
	TotalFrames  int
	MockResult   bool
	CreatedAt    time.Time
}

// AnalysisRepository provides CRUD operations for analysis runs.
type AnalysisRepository struct {
	db *sql.DB
}

// Analyses returns the analysis repository for this store.
func (s *Store) Analyses() *AnalysisRepository {
	return &AnalysisRepository{db: s.db}
}

// Create inserts a new analysis run into the database.
func (r *AnalysisRepository) Create(a *Analysis) error {
	a.CreatedAt = time.Now()

	mistakes, err := json.Marshal(a.Mistakes)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		`INSERT INTO analyses (id, exercise_type, exercise_name, accuracy, mistakes, output_video, total_frames, mock_result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ExerciseType, a.ExerciseName, a.Accuracy, string(mistakes),
		a.OutputVideo, a.TotalFrames, a.MockResult, a.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an analysis run by its ID.
func (r *AnalysisRepository) GetByID(id string) (*Analysis, error) {
	a := &Analysis{}
	var mistakes string

	err := r.db.QueryRow(
		`SELECT id, exercise_type, exercise_name, accuracy, mistakes, output_video, total_frames, mock_result, created_at
		 FROM analyses WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.ExerciseType, &a.ExerciseName, &a.Accuracy, &mistakes,
		&a.OutputVideo, &a.TotalFrames, &a.MockResult, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(mistakes), &a.Mistakes); err != nil {
		return nil, err
	}

	return a, nil
}

// List retrieves all analysis runs, most recent first.
func (r *AnalysisRepository) List() ([]*Analysis, error) {
	rows, err := r.db.Query(
		`SELECT id, exercise_type, exercise_name, accuracy, mistakes, output_video, total_frames, mock_result, created_at
		 FROM analyses ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		a := &Analysis{}
		var mistakes string

		err := rows.Scan(&a.ID, &a.ExerciseType, &a.ExerciseName, &a.Accuracy, &mistakes,
			&a.OutputVideo, &a.TotalFrames, &a.MockResult, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(mistakes), &a.Mistakes); err != nil {
			return nil, err
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}

// ListByExercise retrieves the analysis runs for one exercise type, most
// recent first.
func (r *AnalysisRepository) ListByExercise(exerciseType string) ([]*Analysis, error) {
	rows, err := r.db.Query(
		`SELECT id, exercise_type, exercise_name, accuracy, mistakes, output_video, total_frames, mock_result, created_at
		 FROM analyses WHERE exercise_type = ? ORDER BY created_at DESC`,
		exerciseType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		a := &Analysis{}
		var mistakes string

		err := rows.Scan(&a.ID, &a.ExerciseType, &a.ExerciseName, &a.Accuracy, &mistakes,
			&a.OutputVideo, &a.TotalFrames, &a.MockResult, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(mistakes), &a.Mistakes); err != nil {
			return nil, err
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}

// Delete removes an analysis run from the database by its ID.
func (r *AnalysisRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
