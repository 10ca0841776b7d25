package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"trivia-quiz/internal/quiz"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore("")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func startTestSession(t *testing.T, store *SQLiteStore, id string) {
	t.Helper()

	err := store.StartSession(context.Background(), quiz.Session{
		SessionID:     id,
		Options:       quiz.Options{Amount: 3, Difficulty: "easy", Category: 9},
		QuestionCount: 3,
		StartedAt:     time.Unix(1700000000, 0).UTC(),
	})
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
}

func TestSQLiteStoreBreakdownCountsVerdicts(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()
	startTestSession(t, store, "s1")

	attempts := []quiz.Attempt{
		{SessionID: "s1", Position: 0, Question: "Q1", Chosen: "A", CorrectAnswer: "A", Verdict: quiz.VerdictCorrect},
		{SessionID: "s1", Position: 1, Question: "Q2", Chosen: "B", CorrectAnswer: "C", Verdict: quiz.VerdictIncorrect},
		{SessionID: "s1", Position: 2, Question: "Q3", CorrectAnswer: "D", Verdict: quiz.VerdictInvalid},
	}
	for _, attempt := range attempts {
		if err := store.RecordAttempt(ctx, attempt); err != nil {
			t.Fatalf("RecordAttempt(%d) failed: %v", attempt.Position, err)
		}
	}

	breakdown, err := store.Breakdown(ctx, "s1")
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if breakdown.Correct != 1 || breakdown.Incorrect != 1 || breakdown.Invalid != 1 || breakdown.Answered() != 3 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}

	got, err := store.Attempts(ctx, "s1")
	if err != nil {
		t.Fatalf("Attempts failed: %v", err)
	}
	if len(got) != 3 || got[0].Question != "Q1" || got[2].Verdict != quiz.VerdictInvalid {
		t.Fatalf("unexpected attempts: %+v", got)
	}
}

func TestSQLiteStoreRecordAttemptDuplicate(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()
	startTestSession(t, store, "s1")

	first := quiz.Attempt{SessionID: "s1", Position: 0, Question: "Q1", Chosen: "A", CorrectAnswer: "A", Verdict: quiz.VerdictCorrect}
	if err := store.RecordAttempt(ctx, first); err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}

	second := first
	second.Chosen = "B"
	second.Verdict = quiz.VerdictIncorrect
	if err := store.RecordAttempt(ctx, second); !errors.Is(err, quiz.ErrAlreadyRecorded) {
		t.Fatalf("expected ErrAlreadyRecorded, got %v", err)
	}

	breakdown, err := store.Breakdown(ctx, "s1")
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if breakdown.Correct != 1 || breakdown.Incorrect != 0 {
		t.Fatalf("first attempt was overwritten: %+v", breakdown)
	}
}

func TestSQLiteStoreUnknownSession(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	err := store.RecordAttempt(ctx, quiz.Attempt{SessionID: "missing", Verdict: quiz.VerdictCorrect})
	if !errors.Is(err, quiz.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound from RecordAttempt, got %v", err)
	}
	if _, err := store.Breakdown(ctx, "missing"); !errors.Is(err, quiz.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound from Breakdown, got %v", err)
	}
}

func TestSQLiteStoreSessionsAreIsolated(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()
	startTestSession(t, store, "s1")
	startTestSession(t, store, "s2")

	if err := store.RecordAttempt(ctx, quiz.Attempt{SessionID: "s1", Position: 0, Verdict: quiz.VerdictCorrect}); err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}

	breakdown, err := store.Breakdown(ctx, "s2")
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if breakdown.Answered() != 0 {
		t.Fatalf("expected empty breakdown for s2, got %+v", breakdown)
	}
}

func TestSQLiteStoreFileDSN(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	startTestSession(t, store, "s1")
	if _, err := store.Breakdown(context.Background(), "s1"); err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
}

func TestSQLiteStoreStartSessionRequiresID(t *testing.T) {
	store := newTestSQLiteStore(t)
	if err := store.StartSession(context.Background(), quiz.Session{}); err == nil {
		t.Fatalf("expected error for empty session id")
	}
}
