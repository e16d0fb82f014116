package review

import (
	"context"
	"fmt"
	"time"
)

// MaxHistoryLimit caps the number of outcomes returned by one History call.
const MaxHistoryLimit = 500

// Selector answers read-only questions about a user's plans.
type Selector struct {
	plans    PlanRepository
	outcomes OutcomeRepository
}

// NewSelector creates a new Selector.
func NewSelector(plans PlanRepository, outcomes OutcomeRepository) *Selector {
	return &Selector{plans: plans, outcomes: outcomes}
}

// Due returns every plan of the user that needs a review at now. The order is not part of the contract.
func (s *Selector) Due(ctx context.Context, userID int64, now time.Time) ([]ReviewPlan, error) {
	plans, err := s.plans.FindDue(ctx, userID, now)
	if err != nil {
		return nil, storeError(err)
	}

	// Mastered and future plans are never due, whatever the store returned.
	due := plans[:0]
	for _, p := range plans {
		if p.IsDue(now) {
			due = append(due, p)
		}
	}
	return due, nil
}

// Plan returns the plan of the pair or ErrPlanNotFound.
func (s *Selector) Plan(ctx context.Context, userID, wordID int64) (ReviewPlan, error) {
	if userID <= 0 || wordID <= 0 {
		return ReviewPlan{}, &ValidationError{Violations: idViolations(userID, wordID)}
	}
	plan, err := s.plans.Get(ctx, userID, wordID)
	if err != nil {
		return ReviewPlan{}, storeError(err)
	}
	return plan, nil
}

// Overview counts the user's plans by state at now.
func (s *Selector) Overview(ctx context.Context, userID int64, now time.Time) (Overview, error) {
	overview, err := s.plans.Summarize(ctx, userID, now)
	if err != nil {
		return Overview{}, storeError(err)
	}
	return overview, nil
}

// History returns the outcomes of the pair, newest first. A limit of 0 or above MaxHistoryLimit
// is replaced by MaxHistoryLimit.
func (s *Selector) History(ctx context.Context, userID, wordID int64, limit int) ([]OutcomeRecord, error) {
	violations := idViolations(userID, wordID)
	if limit < 0 {
		violations = append(violations, FieldViolation{
			Field:       "limit",
			Description: fmt.Sprintf("limit must be 0 or greater, got %d", limit),
		})
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	if limit == 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	records, err := s.outcomes.FindByPair(ctx, userID, wordID, limit)
	if err != nil {
		return nil, storeError(err)
	}
	return records, nil
}
