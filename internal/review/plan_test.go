package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReviewPlan(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.FixedZone("PST", -8*60*60))

	got := NewReviewPlan(3, 9, now)

	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, int64(9), got.WordID)
	assert.Equal(t, 0, got.MasteryLevel)
	assert.Equal(t, 0, got.ReviewCount)
	assert.Nil(t, got.LastReviewAt)
	assert.False(t, got.IsMastered)
	assert.Equal(t, now.UTC(), *got.NextReviewAt)
	assert.True(t, got.IsDue(now))
	assert.NoError(t, got.Validate())
}

func TestReviewPlan_IsDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		plan ReviewPlan
		want bool
	}{
		{
			name: "next review in the past",
			plan: ReviewPlan{NextReviewAt: timePtr(now.Add(-time.Minute))},
			want: true,
		},
		{
			name: "next review exactly now",
			plan: ReviewPlan{NextReviewAt: timePtr(now)},
			want: true,
		},
		{
			name: "next review in the future",
			plan: ReviewPlan{NextReviewAt: timePtr(now.Add(time.Second))},
		},
		{
			name: "mastered",
			plan: ReviewPlan{MasteryLevel: 5, IsMastered: true},
		},
		{
			name: "mastered with a stale next review",
			plan: ReviewPlan{MasteryLevel: 5, IsMastered: true, NextReviewAt: timePtr(now.Add(-time.Hour))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.IsDue(now))
		})
	}
}

func TestReviewPlan_Validate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		plan    ReviewPlan
		wantErr bool
	}{
		{
			name: "learning plan",
			plan: ReviewPlan{MasteryLevel: 2, NextReviewAt: &now},
		},
		{
			name: "mastered plan",
			plan: ReviewPlan{MasteryLevel: 5, IsMastered: true},
		},
		{
			name:    "negative mastery",
			plan:    ReviewPlan{MasteryLevel: -1, NextReviewAt: &now},
			wantErr: true,
		},
		{
			name:    "mastery above the ceiling",
			plan:    ReviewPlan{MasteryLevel: 6, IsMastered: true},
			wantErr: true,
		},
		{
			name:    "mastered with next review",
			plan:    ReviewPlan{MasteryLevel: 5, IsMastered: true, NextReviewAt: &now},
			wantErr: true,
		},
		{
			name:    "unmastered without next review",
			plan:    ReviewPlan{MasteryLevel: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
