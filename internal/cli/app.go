package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/quiz"
)

const defaultQuestionCount = 10

type Config struct {
	Fetcher    quiz.Fetcher
	Journal    quiz.Journal
	Categories []config.Category
	Rand       *rand.Rand
	Logger     *log.Logger

	DefaultAmount int
	NoColor       bool
}

type runner struct {
	reader  *bufio.Reader
	out     io.Writer
	journal quiz.Journal
	rng     *rand.Rand
	logger  *log.Logger
	noColor bool
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	if cfg.Fetcher == nil {
		return errors.New("question fetcher is not configured")
	}
	if cfg.Rand == nil {
		cfg.Rand = quiz.NewRand()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.DefaultAmount <= 0 {
		cfg.DefaultAmount = defaultQuestionCount
	}

	r := &runner{
		reader:  bufio.NewReader(in),
		out:     out,
		journal: cfg.Journal,
		rng:     cfg.Rand,
		logger:  cfg.Logger,
		noColor: cfg.NoColor,
	}

	options, err := collectOptions(r.reader, out, cfg.Categories, cfg.DefaultAmount)
	if err != nil {
		return err
	}

	outcome := quiz.Load(ctx, cfg.Fetcher, options)
	if !outcome.Fetched() {
		r.logger.Printf("fetch questions: %v", outcome.Err)
	}

	session := quiz.NewSession(options, len(outcome.Questions))
	r.startJournal(ctx, session)

	score, err := r.play(ctx, session, outcome.Questions)
	if err != nil {
		return err
	}

	r.printSummary(ctx, session, score)
	return nil
}

func (r *runner) play(ctx context.Context, session quiz.Session, questions []quiz.Question) (quiz.Score, error) {
	score := quiz.NewScore(len(questions))

	for idx, question := range questions {
		choices := quiz.Choices(question, r.rng)
		r.printQuestion(idx+1, question, choices)

		line, err := readLine(r.reader)
		ended := errors.Is(err, io.EOF)
		if err != nil && !ended {
			return score, err
		}

		verdict, chosen := quiz.Evaluate(choices, question.CorrectAnswer, line)
		score.Apply(verdict)
		r.printVerdict(verdict, question.CorrectAnswer)
		r.record(ctx, session, idx, question, choices, chosen, verdict)

		if ended {
			fmt.Fprintln(r.out, "Input ended, stopping the quiz.")
			break
		}
	}

	return score, nil
}

func (r *runner) printQuestion(number int, question quiz.Question, choices []string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, stylize(fmt.Sprintf("Q%d: %s", number, question.Text), r.noColor, colorHeading))
	fmt.Fprintln(r.out)
	for idx, choice := range choices {
		fmt.Fprintf(r.out, "%d. %s\n", idx+1, choice)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Your answer (1-%d): ", len(choices))
}

func (r *runner) printVerdict(verdict quiz.Verdict, correct string) {
	switch verdict {
	case quiz.VerdictCorrect:
		fmt.Fprintln(r.out, stylize("Correct!", r.noColor, colorCorrect))
	case quiz.VerdictIncorrect:
		fmt.Fprintln(r.out, stylize("Wrong. The correct answer was "+correct, r.noColor, colorWrong))
	default:
		fmt.Fprintln(r.out, stylize("Invalid selection, counted as incorrect.", r.noColor, colorWrong))
	}
}

func (r *runner) printSummary(ctx context.Context, session quiz.Session, score quiz.Score) {
	fmt.Fprintln(r.out)

	correctPct, incorrectPct, ok := score.Percentages()
	if !ok {
		fmt.Fprintln(r.out, "No questions to score.")
		return
	}

	fmt.Fprintf(r.out, "Score: %d/%d\n", score.Correct, score.Total)
	fmt.Fprintf(r.out, "Correct: %.2f%%\n", correctPct)
	fmt.Fprintf(r.out, "Incorrect: %.2f%%\n", incorrectPct)

	if r.journal == nil {
		return
	}
	breakdown, err := r.journal.Breakdown(ctx, session.SessionID)
	if err != nil {
		r.logger.Printf("journal breakdown: %v", err)
		return
	}
	if breakdown.Invalid > 0 {
		fmt.Fprintln(r.out, stylize(fmt.Sprintf("Invalid answers: %d", breakdown.Invalid), r.noColor, colorMuted))
	}
}

// startJournal drops the journal for the rest of the run if it cannot open a
// session; the quiz itself never depends on it.
func (r *runner) startJournal(ctx context.Context, session quiz.Session) {
	if r.journal == nil {
		return
	}
	if err := r.journal.StartSession(ctx, session); err != nil {
		r.logger.Printf("journal start session: %v", err)
		r.journal = nil
	}
}

func (r *runner) record(ctx context.Context, session quiz.Session, position int, question quiz.Question, choices []string, chosen int, verdict quiz.Verdict) {
	if r.journal == nil {
		return
	}

	attempt := quiz.Attempt{
		SessionID:     session.SessionID,
		Position:      position,
		Question:      question.Text,
		CorrectAnswer: question.CorrectAnswer,
		Verdict:       verdict,
	}
	if chosen >= 0 {
		attempt.Chosen = choices[chosen]
	}

	if err := r.journal.RecordAttempt(ctx, attempt); err != nil {
		r.logger.Printf("journal record attempt %d: %v", position+1, err)
	}
}
