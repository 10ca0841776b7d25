package httpapi

import (
	"html"
	"net/http"
	"strings"

	"trivia-quiz/internal/opentdb"
	"trivia-quiz/internal/quiz"
)

const maxAmount = 50

type questionQuery struct {
	amount     int
	category   int
	difficulty string
	kind       string
}

// HandleQuestions mimics opentdb's api.php: failures are reported through
// response_code with HTTP 200, never through the status line.
func (a *API) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	query, err := parseQuestionQuery(r)
	if err != nil {
		writeCode(w, opentdb.CodeInvalidParameter)
		return
	}

	// The bank only holds multiple-choice questions.
	if query.kind != "" && query.kind != opentdb.TypeMultiple {
		writeCode(w, opentdb.CodeNoResults)
		return
	}

	matches := a.bank.Match(query.category, query.difficulty)
	if len(matches) < query.amount {
		writeCode(w, opentdb.CodeNoResults)
		return
	}

	a.mu.Lock()
	quiz.Shuffle(matches, a.rng)
	a.mu.Unlock()

	results := make([]opentdb.RawQuestion, 0, query.amount)
	for _, entry := range matches[:query.amount] {
		results = append(results, escapeQuestion(entry.raw()))
	}

	writeJSON(w, http.StatusOK, opentdb.Response{
		ResponseCode: opentdb.CodeSuccess,
		Results:      results,
	})
}

func parseQuestionQuery(r *http.Request) (questionQuery, error) {
	amount, err := parseIntParam(r, "amount", 0)
	if err != nil {
		return questionQuery{}, err
	}
	if amount == 0 {
		return questionQuery{}, errAmountRequired
	}
	if amount > maxAmount {
		return questionQuery{}, errAmountTooLarge
	}

	category, err := parseIntParam(r, "category", 0)
	if err != nil {
		return questionQuery{}, err
	}

	difficulty := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("difficulty")))
	if difficulty != "" && !validDifficulty(difficulty) {
		return questionQuery{}, errUnknownDifficulty
	}

	return questionQuery{
		amount:     amount,
		category:   category,
		difficulty: difficulty,
		kind:       strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))),
	}, nil
}

// escapeQuestion applies the default html encoding opentdb uses for every
// text field.
func escapeQuestion(raw opentdb.RawQuestion) opentdb.RawQuestion {
	incorrect := make([]string, 0, len(raw.IncorrectAnswers))
	for _, answer := range raw.IncorrectAnswers {
		incorrect = append(incorrect, html.EscapeString(answer))
	}

	raw.Category = html.EscapeString(raw.Category)
	raw.Question = html.EscapeString(raw.Question)
	raw.CorrectAnswer = html.EscapeString(raw.CorrectAnswer)
	raw.IncorrectAnswers = incorrect
	return raw
}
