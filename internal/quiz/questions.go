package quiz

import (
	"html"
	"strings"

	"trivia-quiz/internal/opentdb"
)

// Options holds the parameters collected before a quiz starts. It is built
// once and passed by value.
type Options struct {
	Amount     int
	Difficulty string
	Category   int
}

func (o Options) Params() opentdb.Params {
	return opentdb.Params{
		Amount:     o.Amount,
		Category:   o.Category,
		Difficulty: strings.ToLower(strings.TrimSpace(o.Difficulty)),
	}
}

type Question struct {
	Text             string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// BuildQuestions decodes the HTML entities opentdb embeds in every text field.
func BuildQuestions(raw []opentdb.RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		questions = append(questions, buildQuestion(item))
	}
	return questions
}

func buildQuestion(raw opentdb.RawQuestion) Question {
	incorrect := make([]string, 0, len(raw.IncorrectAnswers))
	for _, answer := range raw.IncorrectAnswers {
		incorrect = append(incorrect, html.UnescapeString(answer))
	}

	return Question{
		Text:             html.UnescapeString(raw.Question),
		CorrectAnswer:    html.UnescapeString(raw.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}
}
