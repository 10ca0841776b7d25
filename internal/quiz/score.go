package quiz

import (
	"strconv"
	"strings"
)

type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictInvalid   Verdict = "invalid"
)

// Evaluate scores a raw input line against a choice list. The input must be
// a 1-based index into choices; anything else is VerdictInvalid. The returned
// index is 0-based and -1 for invalid input.
func Evaluate(choices []string, correct, input string) (Verdict, int) {
	selected, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || selected < 1 || selected > len(choices) {
		return VerdictInvalid, -1
	}

	index := selected - 1
	if choices[index] == correct {
		return VerdictCorrect, index
	}
	return VerdictIncorrect, index
}

// Score tallies one quiz run. Total is the number of fetched questions, not
// the number attempted.
type Score struct {
	Correct   int
	Incorrect int
	Total     int
}

func NewScore(total int) Score {
	return Score{Total: total}
}

// Apply counts invalid answers as incorrect.
func (s *Score) Apply(verdict Verdict) {
	if verdict == VerdictCorrect {
		s.Correct++
		return
	}
	s.Incorrect++
}

// Percentages reports ok=false when there is nothing to divide by.
func (s Score) Percentages() (correct, incorrect float64, ok bool) {
	if s.Total <= 0 {
		return 0, 0, false
	}
	total := float64(s.Total)
	return float64(s.Correct) / total * 100, float64(s.Incorrect) / total * 100, true
}
