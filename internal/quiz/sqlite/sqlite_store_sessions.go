package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"trivia-quiz/internal/quiz"
)

func (s *SQLiteStore) StartSession(ctx context.Context, session quiz.Session) error {
	if session.SessionID == "" {
		return errors.New("session id is required")
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, started_at_unix, question_count, amount, category, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session.SessionID,
		session.StartedAt.UnixNano(),
		session.QuestionCount,
		session.Options.Amount,
		session.Options.Category,
		session.Options.Difficulty,
	)
	return err
}

// RecordAttempt never overwrites an existing (session, position) row.
func (s *SQLiteStore) RecordAttempt(ctx context.Context, attempt quiz.Attempt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exists, err := sessionExists(ctx, tx, attempt.SessionID)
	if err != nil {
		return err
	}
	if !exists {
		return quiz.ErrSessionNotFound
	}

	answeredAt := attempt.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = time.Now().UTC()
	}

	result, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO attempts (session_id, position, question, chosen, correct_answer, verdict, answered_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		attempt.SessionID,
		attempt.Position,
		attempt.Question,
		attempt.Chosen,
		attempt.CorrectAnswer,
		string(attempt.Verdict),
		answeredAt.UnixNano(),
	)
	if err != nil {
		return err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		return quiz.ErrAlreadyRecorded
	}

	return tx.Commit()
}

func (s *SQLiteStore) Breakdown(ctx context.Context, sessionID string) (quiz.Breakdown, error) {
	exists, err := sessionExists(ctx, s.db, sessionID)
	if err != nil {
		return quiz.Breakdown{}, err
	}
	if !exists {
		return quiz.Breakdown{}, quiz.ErrSessionNotFound
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT verdict, COUNT(*) FROM attempts WHERE session_id = ? GROUP BY verdict`,
		sessionID,
	)
	if err != nil {
		return quiz.Breakdown{}, err
	}
	defer rows.Close()

	var breakdown quiz.Breakdown
	for rows.Next() {
		var (
			verdict string
			count   int
		)
		if err := rows.Scan(&verdict, &count); err != nil {
			return quiz.Breakdown{}, err
		}
		switch quiz.Verdict(verdict) {
		case quiz.VerdictCorrect:
			breakdown.Correct = count
		case quiz.VerdictIncorrect:
			breakdown.Incorrect = count
		case quiz.VerdictInvalid:
			breakdown.Invalid = count
		}
	}

	return breakdown, rows.Err()
}

// Attempts returns a session's attempts in question order.
func (s *SQLiteStore) Attempts(ctx context.Context, sessionID string) ([]quiz.Attempt, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT position, question, chosen, correct_answer, verdict, answered_at_unix
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY position ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := make([]quiz.Attempt, 0)
	for rows.Next() {
		var (
			attempt      quiz.Attempt
			verdict      string
			answeredAtNs int64
		)
		if err := rows.Scan(&attempt.Position, &attempt.Question, &attempt.Chosen, &attempt.CorrectAnswer, &verdict, &answeredAtNs); err != nil {
			return nil, err
		}
		attempt.SessionID = sessionID
		attempt.Verdict = quiz.Verdict(verdict)
		attempt.AnsweredAt = time.Unix(0, answeredAtNs).UTC()
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func sessionExists(ctx context.Context, q queryRower, sessionID string) (bool, error) {
	var found int
	err := q.QueryRowContext(
		ctx,
		`SELECT 1 FROM sessions WHERE session_id = ? LIMIT 1`,
		sessionID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
