package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Analyses table - one row per completed analysis run
		`CREATE TABLE IF NOT EXISTS analyses (
			id TEXT PRIMARY KEY,
			exercise_type TEXT NOT NULL,
			exercise_name TEXT NOT NULL,
			accuracy INTEGER NOT NULL,
			mistakes TEXT NOT NULL DEFAULT '[]',
			output_video TEXT,
			total_frames INTEGER NOT NULL DEFAULT 0,
			mock_result INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_analyses_exercise_type ON analyses(exercise_type)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
