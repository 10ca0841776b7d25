package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			started_at_unix INTEGER NOT NULL,
			question_count INTEGER NOT NULL,
			amount INTEGER NOT NULL,
			category INTEGER NOT NULL,
			difficulty TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS attempts (
			session_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			question TEXT NOT NULL,
			chosen TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			verdict TEXT NOT NULL,
			answered_at_unix INTEGER NOT NULL,
			PRIMARY KEY (session_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_session_verdict ON attempts(session_id, verdict);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
