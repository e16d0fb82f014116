package review

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestSchedule(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name           string
		plan           ReviewPlan
		isCorrect      bool
		wantMastery    int
		wantMastered   bool
		wantNextReview *time.Time
	}{
		{
			name:           "new plan answered correctly",
			plan:           NewReviewPlan(1, 1, t0),
			isCorrect:      true,
			wantMastery:    1,
			wantNextReview: timePtr(t0.Add(2 * day)),
		},
		{
			name:           "new plan answered incorrectly stays at zero",
			plan:           NewReviewPlan(1, 1, t0),
			isCorrect:      false,
			wantMastery:    0,
			wantNextReview: timePtr(t0.Add(day)),
		},
		{
			name:           "level 3 answered incorrectly drops one level",
			plan:           ReviewPlan{MasteryLevel: 3, ReviewCount: 4, NextReviewAt: timePtr(t0)},
			isCorrect:      false,
			wantMastery:    2,
			wantNextReview: timePtr(t0.Add(day)),
		},
		{
			name:           "level 3 answered correctly waits fifteen days",
			plan:           ReviewPlan{MasteryLevel: 3, ReviewCount: 4, NextReviewAt: timePtr(t0)},
			isCorrect:      true,
			wantMastery:    4,
			wantNextReview: timePtr(t0.Add(15 * day)),
		},
		{
			name:         "level 4 answered correctly is mastered",
			plan:         ReviewPlan{MasteryLevel: 4, ReviewCount: 5, NextReviewAt: timePtr(t0)},
			isCorrect:    true,
			wantMastery:  5,
			wantMastered: true,
		},
		{
			name:         "mastered plan answered correctly stays mastered",
			plan:         ReviewPlan{MasteryLevel: 5, ReviewCount: 6, IsMastered: true},
			isCorrect:    true,
			wantMastery:  5,
			wantMastered: true,
		},
		{
			name:           "mastered plan answered incorrectly reenters the schedule",
			plan:           ReviewPlan{MasteryLevel: 5, ReviewCount: 6, IsMastered: true},
			isCorrect:      false,
			wantMastery:    4,
			wantNextReview: timePtr(t0.Add(day)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Schedule(tt.plan, tt.isCorrect, t0)

			assert.Equal(t, tt.wantMastery, got.MasteryLevel)
			assert.Equal(t, tt.wantMastered, got.IsMastered)
			assert.Equal(t, tt.wantNextReview, got.NextReviewAt)
			assert.Equal(t, tt.plan.ReviewCount+1, got.ReviewCount)
			require.NotNil(t, got.LastReviewAt)
			assert.Equal(t, t0, *got.LastReviewAt)
			assert.Equal(t, t0, got.UpdatedAt)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestSchedule_CorrectStreakReachesMastery(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	plan := NewReviewPlan(7, 42, now)

	wantDays := []int{2, 4, 7, 15}
	for i, days := range wantDays {
		plan = Schedule(plan, true, now)
		require.Equal(t, i+1, plan.MasteryLevel)
		require.False(t, plan.IsMastered)
		require.NotNil(t, plan.NextReviewAt)
		assert.Equal(t, now.Add(time.Duration(days)*24*time.Hour), *plan.NextReviewAt)
		now = *plan.NextReviewAt
	}

	plan = Schedule(plan, true, now)
	assert.Equal(t, MaxMasteryLevel, plan.MasteryLevel)
	assert.True(t, plan.IsMastered)
	assert.Nil(t, plan.NextReviewAt)
	assert.Equal(t, 5, plan.ReviewCount)
}

func TestSchedule_AnchorsToReviewTime(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	late := due.Add(3 * 24 * time.Hour)
	plan := ReviewPlan{MasteryLevel: 1, NextReviewAt: &due}

	got := Schedule(plan, true, late)

	require.NotNil(t, got.NextReviewAt)
	assert.Equal(t, late.Add(4*24*time.Hour), *got.NextReviewAt)
}

func TestSchedule_DoesNotModifyInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	plan := NewReviewPlan(1, 2, now)
	before := plan
	beforeNext := *plan.NextReviewAt

	_ = Schedule(plan, true, now.Add(time.Hour))

	assert.Equal(t, before, plan)
	assert.Equal(t, beforeNext, *plan.NextReviewAt)
}

func TestSchedule_ConvertsToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, tokyo)

	got := Schedule(NewReviewPlan(1, 2, now), false, now)

	require.NotNil(t, got.NextReviewAt)
	assert.Equal(t, time.UTC, got.NextReviewAt.Location())
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), *got.NextReviewAt)
}

func TestSchedule_KeepsInvariantsForEveryLevel(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for level := 0; level <= MaxMasteryLevel; level++ {
		for _, isCorrect := range []bool{true, false} {
			t.Run(fmt.Sprintf("level %d correct %t", level, isCorrect), func(t *testing.T) {
				plan := ReviewPlan{MasteryLevel: level, NextReviewAt: timePtr(now)}
				if level == MaxMasteryLevel {
					plan.IsMastered = true
					plan.NextReviewAt = nil
				}

				got := Schedule(plan, isCorrect, now)

				assert.NoError(t, got.Validate())
				if isCorrect {
					assert.GreaterOrEqual(t, got.MasteryLevel, plan.MasteryLevel)
				} else {
					assert.LessOrEqual(t, got.MasteryLevel, plan.MasteryLevel)
				}
				if got.NextReviewAt != nil {
					assert.True(t, got.NextReviewAt.After(now))
				}
			})
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		level  int
		want   time.Duration
		wantOK bool
	}{
		{level: -1},
		{level: 0, want: 24 * time.Hour, wantOK: true},
		{level: 1, want: 2 * 24 * time.Hour, wantOK: true},
		{level: 2, want: 4 * 24 * time.Hour, wantOK: true},
		{level: 3, want: 7 * 24 * time.Hour, wantOK: true},
		{level: 4, want: 15 * 24 * time.Hour, wantOK: true},
		{level: 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level %d", tt.level), func(t *testing.T) {
			got, ok := Interval(tt.level)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
