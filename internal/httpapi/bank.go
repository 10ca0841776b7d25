package httpapi

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"trivia-quiz/internal/opentdb"
)

//go:embed default_bank.yaml
var defaultBankYAML []byte

type BankEntry struct {
	CategoryID       int      `yaml:"category_id"`
	Category         string   `yaml:"category"`
	Difficulty       string   `yaml:"difficulty"`
	Question         string   `yaml:"question"`
	CorrectAnswer    string   `yaml:"correct_answer"`
	IncorrectAnswers []string `yaml:"incorrect_answers"`
}

// Bank is a read-only set of multiple-choice questions.
type Bank struct {
	entries []BankEntry
}

func DefaultBank() (*Bank, error) {
	return ParseBank(defaultBankYAML)
}

func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

func ParseBank(data []byte) (*Bank, error) {
	var entries []BankEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	for idx := range entries {
		entry := &entries[idx]
		entry.Difficulty = strings.ToLower(strings.TrimSpace(entry.Difficulty))
		if strings.TrimSpace(entry.Question) == "" || strings.TrimSpace(entry.CorrectAnswer) == "" {
			return nil, fmt.Errorf("question bank entry %d: question and correct_answer are required", idx+1)
		}
		if !validDifficulty(entry.Difficulty) {
			return nil, fmt.Errorf("question bank entry %d: unknown difficulty %q", idx+1, entry.Difficulty)
		}
	}

	return &Bank{entries: entries}, nil
}

func (b *Bank) Len() int {
	return len(b.entries)
}

// Match returns the entries for a category (0 = any) and difficulty ("" = any).
func (b *Bank) Match(category int, difficulty string) []BankEntry {
	matches := make([]BankEntry, 0, len(b.entries))
	for _, entry := range b.entries {
		if category > 0 && entry.CategoryID != category {
			continue
		}
		if difficulty != "" && entry.Difficulty != difficulty {
			continue
		}
		matches = append(matches, entry)
	}
	return matches
}

func validDifficulty(difficulty string) bool {
	switch difficulty {
	case "easy", "medium", "hard":
		return true
	default:
		return false
	}
}

func (e BankEntry) raw() opentdb.RawQuestion {
	return opentdb.RawQuestion{
		Type:             opentdb.TypeMultiple,
		Difficulty:       e.Difficulty,
		Category:         e.Category,
		Question:         e.Question,
		CorrectAnswer:    e.CorrectAnswer,
		IncorrectAnswers: e.IncorrectAnswers,
	}
}
