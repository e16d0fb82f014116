// Package server provides Connect RPC handlers for the review service.
package server

//go:generate mockgen -source=review_handler.go -destination=../mocks/server/mock_review_handler.go -package=mock_server

import (
	"context"
	"fmt"
	"time"

	"connectrpc.com/connect"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
	"github.com/at-ishikawa/vocabreview/internal/auth"
	"github.com/at-ishikawa/vocabreview/internal/review"
	"github.com/at-ishikawa/vocabreview/internal/word"
)

// ReviewCoordinator applies enrollments and review submissions.
type ReviewCoordinator interface {
	Enroll(ctx context.Context, userID, wordID int64) (review.ReviewPlan, bool, error)
	SubmitReview(ctx context.Context, sub review.Submission) (review.ReviewPlan, error)
}

// PlanSelector answers read-only plan queries.
type PlanSelector interface {
	Due(ctx context.Context, userID int64, now time.Time) ([]review.ReviewPlan, error)
	Plan(ctx context.Context, userID, wordID int64) (review.ReviewPlan, error)
	Overview(ctx context.Context, userID int64, now time.Time) (review.Overview, error)
	History(ctx context.Context, userID, wordID int64, limit int) ([]review.OutcomeRecord, error)
}

// TokenVerifier resolves a bearer token to a user ID.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// ReviewHandler implements the ReviewServiceHandler interface.
type ReviewHandler struct {
	coordinator ReviewCoordinator
	selector    PlanSelector
	catalog     word.Catalog
	now         func() time.Time
}

var _ apiv1.ReviewServiceHandler = (*ReviewHandler)(nil)

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(coordinator ReviewCoordinator, selector PlanSelector, catalog word.Catalog) *ReviewHandler {
	return &ReviewHandler{
		coordinator: coordinator,
		selector:    selector,
		catalog:     catalog,
		now:         time.Now,
	}
}

// SubmitReview records the outcome of one review and returns the rescheduled plan.
func (h *ReviewHandler) SubmitReview(
	ctx context.Context,
	req *connect.Request[apiv1.SubmitReviewRequest],
) (*connect.Response[apiv1.SubmitReviewResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := h.coordinator.SubmitReview(ctx, review.Submission{
		UserID:    userID,
		WordID:    req.Msg.WordID,
		IsCorrect: req.Msg.IsCorrect,
		TimeSpent: req.Msg.TimeSpent,
	})
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("submit review(word %d): %w", req.Msg.WordID, err))
	}

	return connect.NewResponse(&apiv1.SubmitReviewResponse{Plan: toAPIPlan(plan)}), nil
}

// EnrollWord creates the plan of a word the user looked up, unless one exists.
func (h *ReviewHandler) EnrollWord(
	ctx context.Context,
	req *connect.Request[apiv1.EnrollWordRequest],
) (*connect.Response[apiv1.EnrollWordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	plan, created, err := h.coordinator.Enroll(ctx, userID, req.Msg.WordID)
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("enroll word %d: %w", req.Msg.WordID, err))
	}

	return connect.NewResponse(&apiv1.EnrollWordResponse{
		Plan:    toAPIPlan(plan),
		Created: created,
	}), nil
}

// GetPlan returns the plan of one word.
func (h *ReviewHandler) GetPlan(
	ctx context.Context,
	req *connect.Request[apiv1.GetPlanRequest],
) (*connect.Response[apiv1.GetPlanResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := h.selector.Plan(ctx, userID, req.Msg.WordID)
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("get plan(word %d): %w", req.Msg.WordID, err))
	}

	return connect.NewResponse(&apiv1.GetPlanResponse{Plan: toAPIPlan(plan)}), nil
}

// ListDueWords returns the words the user should review now.
// Plans whose word is no longer in the catalog are left out.
func (h *ReviewHandler) ListDueWords(
	ctx context.Context,
	req *connect.Request[apiv1.ListDueWordsRequest],
) (*connect.Response[apiv1.ListDueWordsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := h.selector.Due(ctx, userID, h.now())
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("list due plans: %w", err))
	}

	if len(plans) == 0 {
		return connect.NewResponse(&apiv1.ListDueWordsResponse{Words: []apiv1.DueWord{}}), nil
	}

	ids := make([]int64, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.WordID)
	}
	words, err := h.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("find due words: %w: %w", review.ErrStoreUnavailable, err))
	}

	dueWords := make([]apiv1.DueWord, 0, len(plans))
	for _, p := range plans {
		w, ok := words[p.WordID]
		if !ok {
			continue
		}
		dueWords = append(dueWords, apiv1.DueWord{
			WordID: p.WordID,
			Text:   w.Text,
			Plan:   toAPIPlan(p),
		})
	}

	return connect.NewResponse(&apiv1.ListDueWordsResponse{
		Count: len(dueWords),
		Words: dueWords,
	}), nil
}

// GetOverview counts the user's words by state.
func (h *ReviewHandler) GetOverview(
	ctx context.Context,
	req *connect.Request[apiv1.GetOverviewRequest],
) (*connect.Response[apiv1.GetOverviewResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := h.selector.Overview(ctx, userID, h.now())
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("get overview: %w", err))
	}

	return connect.NewResponse(&apiv1.GetOverviewResponse{
		TotalWords: overview.TotalWords,
		Mastered:   overview.Mastered,
		Learning:   overview.Learning,
		ToReview:   overview.ToReview,
	}), nil
}

// ListReviewHistory returns the outcomes of one word, newest first.
func (h *ReviewHandler) ListReviewHistory(
	ctx context.Context,
	req *connect.Request[apiv1.ListReviewHistoryRequest],
) (*connect.Response[apiv1.ListReviewHistoryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	records, err := h.selector.History(ctx, userID, req.Msg.WordID, req.Msg.Limit)
	if err != nil {
		return nil, toConnectError(ctx, fmt.Errorf("list review history(word %d): %w", req.Msg.WordID, err))
	}

	outcomes := make([]apiv1.Outcome, 0, len(records))
	for _, r := range records {
		outcomes = append(outcomes, apiv1.Outcome{
			IsCorrect:  r.IsCorrect,
			TimeSpent:  r.TimeSpent,
			ReviewedAt: r.ReviewedAt.UTC(),
		})
	}

	return connect.NewResponse(&apiv1.ListReviewHistoryResponse{Outcomes: outcomes}), nil
}

func requireUser(ctx context.Context) (int64, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return 0, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

func toAPIPlan(p review.ReviewPlan) apiv1.Plan {
	return apiv1.Plan{
		WordID:       p.WordID,
		MasteryLevel: p.MasteryLevel,
		ReviewCount:  p.ReviewCount,
		LastReviewAt: utcOrNil(p.LastReviewAt),
		NextReviewAt: utcOrNil(p.NextReviewAt),
		IsMastered:   p.IsMastered,
	}
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
