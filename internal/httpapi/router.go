package httpapi

import (
	"log"
	"math/rand"
	"net/http"
)

func NewRouter(bank *Bank, rng *rand.Rand, logger *log.Logger) http.Handler {
	api := NewAPI(bank, rng)

	mux := http.NewServeMux()
	mux.HandleFunc("/api.php", api.HandleQuestions)

	if logger == nil {
		return mux
	}
	return withRequestLog(logger, mux)
}
