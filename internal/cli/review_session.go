package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
	"github.com/at-ishikawa/vocabreview/internal/client"
)

var errEnd = errors.New("end")

//go:generate mockgen -source=review_session.go -destination=../mocks/cli/mock_review_client.go -package=mock_cli ReviewClient

// ReviewClient is the part of the review service a review session needs.
type ReviewClient interface {
	ListDueWords(ctx context.Context) (*apiv1.ListDueWordsResponse, error)
	SubmitReview(ctx context.Context, req *apiv1.SubmitReviewRequest) (*apiv1.SubmitReviewResponse, error)
}

// Session is one step of an interactive loop. It returns errEnd when there is nothing left to do.
type Session interface {
	Session(ctx context.Context) error
}

// ReviewSession asks the user about each due word and submits the answers.
type ReviewSession struct {
	client       ReviewClient
	words        []apiv1.DueWord
	total        int
	correct      int
	incorrect    int
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	now          func() time.Time
	bold         *color.Color
	italic       *color.Color
}

// SessionOption configures a ReviewSession.
type SessionOption func(*ReviewSession)

// WithInput replaces stdin.
func WithInput(r io.Reader) SessionOption {
	return func(s *ReviewSession) {
		s.stdinReader = bufio.NewReader(r)
	}
}

// WithOutput replaces stdout.
func WithOutput(w io.Writer) SessionOption {
	return func(s *ReviewSession) {
		s.stdoutWriter = w
	}
}

// WithClock overrides the clock used to measure the time spent on a word.
func WithClock(now func() time.Time) SessionOption {
	return func(s *ReviewSession) {
		s.now = now
	}
}

// NewReviewSession loads the words that are due now.
func NewReviewSession(ctx context.Context, reviewClient ReviewClient, opts ...SessionOption) (*ReviewSession, error) {
	s := &ReviewSession{
		client:       reviewClient,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		now:          time.Now,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
	for _, opt := range opts {
		opt(s)
	}

	resp, err := reviewClient.ListDueWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due words: %w", err)
	}
	s.words = resp.Words
	s.total = len(resp.Words)
	return s, nil
}

// Remaining returns the number of words not reviewed yet.
func (s *ReviewSession) Remaining() int {
	return len(s.words)
}

// Session reviews the next due word.
func (s *ReviewSession) Session(ctx context.Context) error {
	if len(s.words) == 0 {
		s.printSummary()
		return errEnd
	}
	current := s.words[0]

	_, _ = fmt.Fprintf(s.stdoutWriter, "[%d/%d] %s\n", s.total-len(s.words)+1, s.total, s.bold.Sprint(current.Text))
	_, _ = fmt.Fprint(s.stdoutWriter, "Do you remember it? [y/n/q]: ")

	start := s.now()
	line, err := s.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			_, _ = fmt.Fprintln(s.stdoutWriter)
			s.printSummary()
			return errEnd
		}
	}
	timeSpent := int(s.now().Sub(start) / time.Second)

	var isCorrect bool
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		isCorrect = true
	case "n", "no":
		isCorrect = false
	case "q", "quit":
		s.printSummary()
		return errEnd
	default:
		_, _ = fmt.Fprintln(s.stdoutWriter, "Please answer y, n or q.")
		return nil
	}

	resp, err := s.client.SubmitReview(ctx, &apiv1.SubmitReviewRequest{
		WordID:    current.WordID,
		IsCorrect: &isCorrect,
		TimeSpent: timeSpent,
	})
	if err != nil {
		if client.HasCode(err, client.CodeNotFound) {
			_, _ = fmt.Fprintf(s.stdoutWriter, "%s is no longer scheduled, skipping.\n\n", current.Text)
			s.words = s.words[1:]
			return nil
		}
		return fmt.Errorf("submit review for word %d: %w", current.WordID, err)
	}

	plan := resp.Plan
	if isCorrect {
		s.correct++
		_, _ = fmt.Fprint(s.stdoutWriter, "✅ ")
		if plan.IsMastered {
			_, _ = fmt.Fprintln(s.stdoutWriter, color.GreenString("Mastered %s!", s.bold.Sprint(current.Text)))
		} else {
			_, _ = fmt.Fprintln(s.stdoutWriter, color.GreenString("Level %d, next review at %s",
				plan.MasteryLevel, s.italic.Sprint(formatTime(plan.NextReviewAt))))
		}
	} else {
		s.incorrect++
		_, _ = fmt.Fprint(s.stdoutWriter, "❌ ")
		_, _ = fmt.Fprintln(s.stdoutWriter, color.RedString("Level %d, next review at %s",
			plan.MasteryLevel, s.italic.Sprint(formatTime(plan.NextReviewAt))))
	}
	_, _ = fmt.Fprintln(s.stdoutWriter)

	s.words = s.words[1:]
	return nil
}

func (s *ReviewSession) printSummary() {
	if s.total == 0 {
		_, _ = fmt.Fprintln(s.stdoutWriter, "No words to review!")
		return
	}
	_, _ = fmt.Fprintf(s.stdoutWriter, "Reviewed %d of %d words: %d correct, %d incorrect\n",
		s.correct+s.incorrect, s.total, s.correct, s.incorrect)
}

// Run calls session until it ends, fails, or the process is interrupted.
func Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("review session: %w", err)
		}
	}
	return nil
}
