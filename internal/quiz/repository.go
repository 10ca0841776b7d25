package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAlreadyRecorded = errors.New("attempt already recorded")
)

type Session struct {
	SessionID     string
	Options       Options
	QuestionCount int
	StartedAt     time.Time
}

func NewSession(options Options, questionCount int) Session {
	return Session{
		SessionID:     uuid.NewString(),
		Options:       options,
		QuestionCount: questionCount,
		StartedAt:     time.Now().UTC(),
	}
}

// Attempt is one answered question. Chosen is empty for invalid input.
type Attempt struct {
	SessionID     string
	Position      int
	Question      string
	Chosen        string
	CorrectAnswer string
	Verdict       Verdict
	AnsweredAt    time.Time
}

type Breakdown struct {
	Correct   int
	Incorrect int
	Invalid   int
}

func (b Breakdown) Answered() int {
	return b.Correct + b.Incorrect + b.Invalid
}

// Journal keeps the attempts of the running session.
type Journal interface {
	StartSession(ctx context.Context, session Session) error
	RecordAttempt(ctx context.Context, attempt Attempt) error
	Breakdown(ctx context.Context, sessionID string) (Breakdown, error)
}
