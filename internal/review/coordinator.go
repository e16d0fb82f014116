package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
)

// DefaultTxTimeout bounds a single submission transaction.
const DefaultTxTimeout = 5 * time.Second

// conflictAttempts is the first attempt plus one retry after a concurrent update.
const conflictAttempts = 2

// Coordinator enrolls words and applies review submissions.
type Coordinator struct {
	store     Store
	plans     PlanRepository
	validator *submissionValidator
	now       func() time.Time
	txTimeout time.Duration
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		c.now = now
	}
}

// WithTxTimeout overrides DefaultTxTimeout. Zero disables the timeout.
func WithTxTimeout(timeout time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.txTimeout = timeout
	}
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(store Store, plans PlanRepository, opts ...CoordinatorOption) (*Coordinator, error) {
	v, err := newSubmissionValidator()
	if err != nil {
		return nil, fmt.Errorf("create submission validator: %w", err)
	}

	c := &Coordinator{
		store:     store,
		plans:     plans,
		validator: v,
		now:       time.Now,
		txTimeout: DefaultTxTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Enroll makes sure the user has a plan for a word they looked up.
// It reports whether the plan was created by this call.
func (c *Coordinator) Enroll(ctx context.Context, userID, wordID int64) (ReviewPlan, bool, error) {
	if userID <= 0 || wordID <= 0 {
		return ReviewPlan{}, false, &ValidationError{Violations: idViolations(userID, wordID)}
	}

	plan, created, err := c.plans.CreateIfAbsent(ctx, userID, wordID, c.now())
	if err != nil {
		return ReviewPlan{}, false, storeError(err)
	}
	if created {
		slog.Default().Debug("review plan created", "userID", userID, "wordID", wordID)
	}
	return plan, created, nil
}

// SubmitReview schedules the next review from an outcome and logs the outcome.
// The plan update and the log entry are written together or not at all.
func (c *Coordinator) SubmitReview(ctx context.Context, sub Submission) (ReviewPlan, error) {
	if err := c.validator.Validate(sub); err != nil {
		return ReviewPlan{}, err
	}

	var updated ReviewPlan
	err := retry.Do(
		func() error {
			plan, err := c.submitOnce(ctx, sub)
			if err != nil {
				return err
			}
			updated = plan
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(conflictAttempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrConcurrentConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			if n+1 >= conflictAttempts {
				return
			}
			slog.Default().Warn("review plan changed concurrently, retrying",
				"attempt", n+1,
				"userID", sub.UserID,
				"wordID", sub.WordID,
				"error", err)
		}),
	)
	if err != nil {
		return ReviewPlan{}, storeError(err)
	}

	slog.Default().Debug("review submitted",
		"userID", sub.UserID,
		"wordID", sub.WordID,
		"isCorrect", *sub.IsCorrect,
		"masteryLevel", updated.MasteryLevel)
	return updated, nil
}

func (c *Coordinator) submitOnce(ctx context.Context, sub Submission) (ReviewPlan, error) {
	if c.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.txTimeout)
		defer cancel()
	}

	var updated ReviewPlan
	err := c.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		plan, err := tx.GetForUpdate(ctx, sub.UserID, sub.WordID)
		if err != nil {
			return err
		}

		// Stored timestamps keep microseconds.
		now := c.now().UTC().Truncate(time.Microsecond)
		next := Schedule(plan, *sub.IsCorrect, now)
		if err := tx.Upsert(ctx, &next); err != nil {
			return err
		}
		if err := tx.AppendOutcome(ctx, &OutcomeRecord{
			UserID:     sub.UserID,
			WordID:     sub.WordID,
			IsCorrect:  *sub.IsCorrect,
			TimeSpent:  sub.TimeSpent,
			ReviewedAt: now,
		}); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return ReviewPlan{}, err
	}
	return updated, nil
}

// storeError keeps client errors as they are and reports everything else, including
// a conflict that survived the retry, as ErrStoreUnavailable.
func storeError(err error) error {
	if errors.Is(err, ErrPlanNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func idViolations(userID, wordID int64) []FieldViolation {
	var violations []FieldViolation
	if userID <= 0 {
		violations = append(violations, FieldViolation{Field: "user_id", Description: "user_id must be greater than 0"})
	}
	if wordID <= 0 {
		violations = append(violations, FieldViolation{Field: "word_id", Description: "word_id must be greater than 0"})
	}
	return violations
}
