package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/httpapi"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load env: %v", err)
	}

	defaultAddr := os.Getenv("ADDR")
	if defaultAddr == "" {
		defaultAddr = "127.0.0.1:8080"
	}

	addr := flag.String("addr", defaultAddr, "HTTP listen address")
	bankPath := flag.String("bank", "", "YAML question bank (default: built-in questions)")
	quiet := flag.Bool("quiet", false, "disable request logging")
	flag.Parse()

	bank, err := loadBank(*bankPath)
	if err != nil {
		log.Fatalf("question bank: %v", err)
	}

	var requestLog *log.Logger
	if !*quiet {
		requestLog = log.Default()
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(bank, nil, requestLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("trivia-stub serving %d questions on http://%s/api.php", bank.Len(), *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func loadBank(path string) (*httpapi.Bank, error) {
	if path == "" {
		return httpapi.DefaultBank()
	}
	return httpapi.LoadBank(path)
}
