package httpapi

import (
	"math/rand"
	"sync"

	"trivia-quiz/internal/quiz"
)

type API struct {
	bank *Bank

	mu  sync.Mutex
	rng *rand.Rand
}

func NewAPI(bank *Bank, rng *rand.Rand) *API {
	if bank == nil {
		bank = &Bank{}
	}
	if rng == nil {
		rng = quiz.NewRand()
	}
	return &API{
		bank: bank,
		rng:  rng,
	}
}
