package quiz

import (
	"math/rand"
	"time"
)

// NewRand returns a time-seeded source; orderings are not reproducible
// across runs.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle reorders items in place using Fisher-Yates.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Choices returns the incorrect answers plus the correct one in random order.
// The question itself is left untouched.
func Choices(question Question, rng *rand.Rand) []string {
	choices := make([]string, 0, len(question.IncorrectAnswers)+1)
	choices = append(choices, question.IncorrectAnswers...)
	choices = append(choices, question.CorrectAnswer)

	Shuffle(choices, rng)
	return choices
}
