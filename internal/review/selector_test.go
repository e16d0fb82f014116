package review_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_review "github.com/at-ishikawa/vocabreview/internal/mocks/review"
	"github.com/at-ishikawa/vocabreview/internal/review"
)

func TestSelector_Due(t *testing.T) {
	past := t0.Add(-time.Hour)
	future := t0.Add(time.Hour)
	duePlan := review.ReviewPlan{ID: 1, UserID: 1, WordID: 10, NextReviewAt: &past}
	dueNow := review.ReviewPlan{ID: 2, UserID: 1, WordID: 11, MasteryLevel: 3, NextReviewAt: &t0}
	notYet := review.ReviewPlan{ID: 3, UserID: 1, WordID: 12, NextReviewAt: &future}
	mastered := review.ReviewPlan{ID: 4, UserID: 1, WordID: 13, MasteryLevel: 5, IsMastered: true}

	tests := []struct {
		name      string
		setupMock func(plans *mock_review.MockPlanRepository)
		want      []review.ReviewPlan
		wantErr   error
	}{
		{
			name: "returns plans due at or before now",
			setupMock: func(plans *mock_review.MockPlanRepository) {
				plans.EXPECT().FindDue(gomock.Any(), int64(1), t0).Return([]review.ReviewPlan{duePlan, dueNow}, nil)
			},
			want: []review.ReviewPlan{duePlan, dueNow},
		},
		{
			name: "drops mastered and future plans",
			setupMock: func(plans *mock_review.MockPlanRepository) {
				plans.EXPECT().FindDue(gomock.Any(), int64(1), t0).Return([]review.ReviewPlan{mastered, duePlan, notYet}, nil)
			},
			want: []review.ReviewPlan{duePlan},
		},
		{
			name: "user without plans",
			setupMock: func(plans *mock_review.MockPlanRepository) {
				plans.EXPECT().FindDue(gomock.Any(), int64(1), t0).Return(nil, nil)
			},
			want: []review.ReviewPlan{},
		},
		{
			name: "store failure",
			setupMock: func(plans *mock_review.MockPlanRepository) {
				plans.EXPECT().FindDue(gomock.Any(), int64(1), t0).Return(nil, fmt.Errorf("connection refused"))
			},
			wantErr: review.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			plans := mock_review.NewMockPlanRepository(ctrl)
			outcomes := mock_review.NewMockOutcomeRepository(ctrl)
			tt.setupMock(plans)

			got, err := review.NewSelector(plans, outcomes).Due(context.Background(), 1, t0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestSelector_Plan(t *testing.T) {
	ctrl := gomock.NewController(t)
	plans := mock_review.NewMockPlanRepository(ctrl)
	selector := review.NewSelector(plans, mock_review.NewMockOutcomeRepository(ctrl))

	stored := review.ReviewPlan{ID: 1, UserID: 1, WordID: 2, NextReviewAt: &t0}
	plans.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(stored, nil)
	plans.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(review.ReviewPlan{}, review.ErrPlanNotFound)

	got, err := selector.Plan(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = selector.Plan(context.Background(), 1, 3)
	assert.ErrorIs(t, err, review.ErrPlanNotFound)
	assert.NotErrorIs(t, err, review.ErrStoreUnavailable)

	_, err = selector.Plan(context.Background(), 1, 0)
	assert.ErrorIs(t, err, review.ErrInvalidInput)
}

func TestSelector_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	plans := mock_review.NewMockPlanRepository(ctrl)
	selector := review.NewSelector(plans, mock_review.NewMockOutcomeRepository(ctrl))

	want := review.Overview{TotalWords: 3, Mastered: 1, Learning: 2, ToReview: 1}
	plans.EXPECT().Summarize(gomock.Any(), int64(1), t0).Return(want, nil)

	got, err := selector.Overview(context.Background(), 1, t0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelector_History(t *testing.T) {
	records := []review.OutcomeRecord{
		{ID: 2, UserID: 1, WordID: 2, IsCorrect: true, ReviewedAt: t0},
		{ID: 1, UserID: 1, WordID: 2, IsCorrect: false, ReviewedAt: t0.Add(-time.Hour)},
	}

	tests := []struct {
		name      string
		wordID    int64
		limit     int
		wantLimit int
		wantErr   error
	}{
		{name: "explicit limit", limit: 10, wantLimit: 10},
		{name: "zero means the maximum", limit: 0, wantLimit: review.MaxHistoryLimit},
		{name: "capped at the maximum", limit: review.MaxHistoryLimit + 1, wantLimit: review.MaxHistoryLimit},
		{name: "negative limit", limit: -1, wantErr: review.ErrInvalidInput},
		{name: "non-positive word id", wordID: -2, limit: 1, wantErr: review.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			outcomes := mock_review.NewMockOutcomeRepository(ctrl)
			if tt.wantErr == nil {
				outcomes.EXPECT().FindByPair(gomock.Any(), int64(1), int64(2), tt.wantLimit).Return(records, nil)
			}

			wordID := tt.wordID
			if wordID == 0 {
				wordID = 2
			}
			got, err := review.NewSelector(mock_review.NewMockPlanRepository(ctrl), outcomes).History(context.Background(), 1, wordID, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}
