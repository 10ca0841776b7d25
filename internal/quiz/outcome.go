package quiz

import (
	"context"

	"trivia-quiz/internal/opentdb"
)

type Fetcher interface {
	FetchQuestions(ctx context.Context, params opentdb.Params) ([]opentdb.RawQuestion, error)
}

// Outcome separates "fetched N questions" from "fetch failed". A failed
// outcome always carries zero questions.
type Outcome struct {
	Questions []Question
	Err       error
}

func (o Outcome) Fetched() bool {
	return o.Err == nil
}

func Load(ctx context.Context, fetcher Fetcher, options Options) Outcome {
	raw, err := fetcher.FetchQuestions(ctx, options.Params())
	if err != nil {
		return Outcome{Questions: []Question{}, Err: err}
	}
	return Outcome{Questions: BuildQuestions(raw)}
}
