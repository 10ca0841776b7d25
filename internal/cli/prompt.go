package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/quiz"
)

const maxAttempts = 3

// readLine returns io.EOF only when the input ended before any text.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func collectOptions(reader *bufio.Reader, out io.Writer, categories []config.Category, defaultAmount int) (quiz.Options, error) {
	amount, err := promptInt(reader, out, "How many questions?", defaultAmount, func(value int) bool {
		return value > 0
	})
	if err != nil {
		return quiz.Options{}, fmt.Errorf("question count: %w", err)
	}

	fmt.Fprint(out, "Difficulty (easy, medium, hard) [any]: ")
	difficulty, err := readLine(reader)
	if err != nil {
		return quiz.Options{}, fmt.Errorf("difficulty: %w", err)
	}
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	if difficulty == "any" {
		difficulty = ""
	}

	printCategories(out, categories)
	known := make(map[int]bool, len(categories))
	for _, category := range categories {
		known[category.ID] = true
	}
	category, err := promptInt(reader, out, "Category number", config.AnyCategory, func(value int) bool {
		return value == config.AnyCategory || known[value]
	})
	if err != nil {
		return quiz.Options{}, fmt.Errorf("category: %w", err)
	}

	return quiz.Options{
		Amount:     amount,
		Difficulty: difficulty,
		Category:   category,
	}, nil
}

// promptInt re-asks up to maxAttempts times and then settles on defaultValue.
// An empty line selects defaultValue straight away.
func promptInt(reader *bufio.Reader, out io.Writer, label string, defaultValue int, valid func(int) bool) (int, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprintf(out, "%s [%d]: ", label, defaultValue)
		line, err := readLine(reader)
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return defaultValue, nil
		}

		value, err := strconv.Atoi(line)
		if err == nil && valid(value) {
			return value, nil
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "Invalid input %q. Please try again.\n", line)
		}
	}

	fmt.Fprintf(out, "Too many invalid entries, using %d.\n", defaultValue)
	return defaultValue, nil
}

func printCategories(out io.Writer, categories []config.Category) {
	fmt.Fprintln(out, "Categories:")
	fmt.Fprintf(out, "  %2d. Any category\n", config.AnyCategory)
	for _, category := range categories {
		fmt.Fprintf(out, "  %2d. %s\n", category.ID, category.Name)
	}
}
