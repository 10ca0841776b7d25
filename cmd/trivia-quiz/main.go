package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"trivia-quiz/internal/cli"
	"trivia-quiz/internal/config"
	"trivia-quiz/internal/opentdb"
	"trivia-quiz/internal/quiz/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "optional YAML config file")
	apiURL := flag.String("api", "", "trivia API endpoint (default https://opentdb.com/api.php)")
	timeout := flag.Duration("timeout", 0, "HTTP timeout for the question request")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	logger := log.New(os.Stderr, "trivia-quiz: ", log.LstdFlags)

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *timeout > 0 {
		cfg.HTTPTimeout = *timeout
	}
	if *noColor || !cli.IsTerminal(os.Stdout) {
		cfg.NoColor = true
	}

	categories, err := config.Categories()
	if err != nil {
		return err
	}

	journal, err := sqlite.NewSQLiteStore("")
	if err != nil {
		return fmt.Errorf("open session journal: %w", err)
	}
	defer journal.Close()

	client := opentdb.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.APIURL)

	return cli.Run(context.Background(), os.Stdin, os.Stdout, cli.Config{
		Fetcher:       client,
		Journal:       journal,
		Categories:    categories,
		Logger:        logger,
		DefaultAmount: cfg.DefaultAmount,
		NoColor:       cfg.NoColor,
	})
}
