// Package review tracks per-user, per-word mastery and schedules the next review of each word.
package review

import (
	"fmt"
	"time"
)

// ReviewPlan is the scheduling state of one word for one user.
// Exactly one plan exists per (UserID, WordID).
type ReviewPlan struct {
	ID           int64      `db:"id"`
	UserID       int64      `db:"user_id"`
	WordID       int64      `db:"word_id"`
	MasteryLevel int        `db:"mastery_level"`
	ReviewCount  int        `db:"review_count"`
	LastReviewAt *time.Time `db:"last_review_at"`
	NextReviewAt *time.Time `db:"next_review_at"`
	IsMastered   bool       `db:"is_mastered"`
	// Version is bumped on every write and guards against lost updates.
	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewReviewPlan returns the initial plan of a word the user has just looked up.
// It is due immediately.
func NewReviewPlan(userID, wordID int64, now time.Time) ReviewPlan {
	now = now.UTC()
	next := now
	return ReviewPlan{
		UserID:       userID,
		WordID:       wordID,
		NextReviewAt: &next,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsDue reports whether the plan needs a review at now.
func (p ReviewPlan) IsDue(now time.Time) bool {
	if p.IsMastered || p.NextReviewAt == nil {
		return false
	}
	return !p.NextReviewAt.After(now)
}

// Validate checks the mastery range and that a plan is mastered exactly when nothing is scheduled.
func (p ReviewPlan) Validate() error {
	if p.MasteryLevel < 0 || p.MasteryLevel > MaxMasteryLevel {
		return fmt.Errorf("mastery level %d out of range [0, %d]", p.MasteryLevel, MaxMasteryLevel)
	}
	if p.IsMastered && p.NextReviewAt != nil {
		return fmt.Errorf("mastered plan has next review at %s", p.NextReviewAt.Format(time.RFC3339))
	}
	if !p.IsMastered && p.NextReviewAt == nil {
		return fmt.Errorf("unmastered plan has no next review")
	}
	return nil
}

// OutcomeRecord is an immutable log entry of one review attempt.
type OutcomeRecord struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	WordID     int64     `db:"word_id"`
	IsCorrect  bool      `db:"is_correct"`
	TimeSpent  int       `db:"time_spent"` // seconds
	ReviewedAt time.Time `db:"reviewed_at"`
}

// Overview summarizes a user's plans at a point in time.
type Overview struct {
	TotalWords int `db:"total_words"`
	Mastered   int `db:"mastered"`
	Learning   int `db:"learning"`
	ToReview   int `db:"to_review"`
}
