// Package apiv1 defines the messages and procedures of the vocabreview.v1 review service.
package apiv1

import "time"

// Plan is the wire form of a review plan. Timestamps are UTC and null when unset.
type Plan struct {
	WordID       int64      `json:"word_id"`
	MasteryLevel int        `json:"mastery_level"`
	ReviewCount  int        `json:"review_count"`
	LastReviewAt *time.Time `json:"last_review_at"`
	NextReviewAt *time.Time `json:"next_review_at"`
	IsMastered   bool       `json:"is_mastered"`
}

// SubmitReviewRequest records the outcome of one review of a word.
type SubmitReviewRequest struct {
	WordID int64 `json:"word_id"`
	// IsCorrect is required. A missing value is rejected rather than read as false.
	IsCorrect *bool `json:"is_correct"`
	// TimeSpent is in seconds.
	TimeSpent int `json:"time_spent"`
}

// SubmitReviewResponse carries the plan after the review.
type SubmitReviewResponse struct {
	Plan Plan `json:"plan"`
}

// EnrollWordRequest adds a looked-up word to the caller's review schedule.
type EnrollWordRequest struct {
	WordID int64 `json:"word_id"`
}

// EnrollWordResponse carries the stored plan and whether this call created it.
type EnrollWordResponse struct {
	Plan    Plan `json:"plan"`
	Created bool `json:"created"`
}

// GetPlanRequest asks for the caller's plan of one word.
type GetPlanRequest struct {
	WordID int64 `json:"word_id"`
}

// GetPlanResponse carries the requested plan.
type GetPlanResponse struct {
	Plan Plan `json:"plan"`
}

// ListDueWordsRequest asks for every word the caller should review now.
type ListDueWordsRequest struct{}

// DueWord is a due word with its text and plan.
type DueWord struct {
	WordID int64  `json:"word_id"`
	Text   string `json:"text"`
	Plan   Plan   `json:"plan"`
}

// ListDueWordsResponse lists the due words.
type ListDueWordsResponse struct {
	Count int       `json:"count"`
	Words []DueWord `json:"words"`
}

// GetOverviewRequest asks for the caller's plan counts.
type GetOverviewRequest struct{}

// GetOverviewResponse counts the caller's plans by state.
type GetOverviewResponse struct {
	TotalWords int `json:"total_words"`
	Mastered   int `json:"mastered"`
	Learning   int `json:"learning"`
	ToReview   int `json:"to_review"`
}

// ListReviewHistoryRequest asks for the logged outcomes of one word.
type ListReviewHistoryRequest struct {
	WordID int64 `json:"word_id"`
	// Limit of 0 returns the server maximum.
	Limit int `json:"limit"`
}

// Outcome is one logged review.
type Outcome struct {
	IsCorrect  bool      `json:"is_correct"`
	TimeSpent  int       `json:"time_spent"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// ListReviewHistoryResponse lists outcomes, newest first.
type ListReviewHistoryResponse struct {
	Outcomes []Outcome `json:"outcomes"`
}
