package review

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review

// PlanRepository defines operations for reading and initializing review plans.
type PlanRepository interface {
	// Get returns ErrPlanNotFound when the pair has no plan.
	Get(ctx context.Context, userID, wordID int64) (ReviewPlan, error)
	// CreateIfAbsent returns the existing plan or creates a due-now plan, reporting whether it was created.
	CreateIfAbsent(ctx context.Context, userID, wordID int64, now time.Time) (ReviewPlan, bool, error)
	// Upsert inserts a plan with Version 0 or updates the stored plan with the same Version.
	// It returns ErrConcurrentConflict when the pair already exists or the version moved on.
	Upsert(ctx context.Context, plan *ReviewPlan) error
	// FindDue returns the unmastered plans of the user with a next review at or before now.
	FindDue(ctx context.Context, userID int64, now time.Time) ([]ReviewPlan, error)
	// Summarize counts the user's plans by state at now.
	Summarize(ctx context.Context, userID int64, now time.Time) (Overview, error)
}

// OutcomeRepository defines read access to the review outcome log.
type OutcomeRepository interface {
	// FindByPair returns outcomes newest first. A limit of 0 returns all of them.
	FindByPair(ctx context.Context, userID, wordID int64, limit int) ([]OutcomeRecord, error)
}

// Store runs a review submission as one transaction.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the set of writes a submission performs atomically.
type Tx interface {
	// GetForUpdate locks the plan row until the transaction ends.
	GetForUpdate(ctx context.Context, userID, wordID int64) (ReviewPlan, error)
	Upsert(ctx context.Context, plan *ReviewPlan) error
	AppendOutcome(ctx context.Context, record *OutcomeRecord) error
}
