package review

import "time"

// MaxMasteryLevel is the mastery ceiling. Reaching it takes a word off the schedule.
const MaxMasteryLevel = 5

// reviewIntervals are the days until the next review, indexed by the mastery level after a review.
var reviewIntervals = [...]int{1, 2, 4, 7, 15}

// ladderLength must equal MaxMasteryLevel: stepping off the end of the ladder is what marks a word mastered.
const ladderLength = len(reviewIntervals)

var _ = [1]struct{}{}[ladderLength-MaxMasteryLevel]

// Schedule returns the plan after a review with the given outcome at now.
// The input plan is not modified. Intervals are anchored to now, not to the previous due date.
func Schedule(plan ReviewPlan, isCorrect bool, now time.Time) ReviewPlan {
	now = now.UTC()
	next := plan

	if isCorrect {
		next.MasteryLevel = min(plan.MasteryLevel+1, MaxMasteryLevel)
		if next.MasteryLevel >= ladderLength {
			next.IsMastered = true
			next.NextReviewAt = nil
		} else {
			due := now.Add(intervalDays(next.MasteryLevel))
			next.IsMastered = false
			next.NextReviewAt = &due
		}
	} else {
		next.MasteryLevel = max(plan.MasteryLevel-1, 0)
		due := now.Add(intervalDays(0))
		next.IsMastered = false
		next.NextReviewAt = &due
	}

	reviewedAt := now
	next.ReviewCount = plan.ReviewCount + 1
	next.LastReviewAt = &reviewedAt
	next.UpdatedAt = now
	return next
}

// Interval returns the wait before the next review of a word at the given mastery level
// and false when the level is past the end of the ladder.
func Interval(masteryLevel int) (time.Duration, bool) {
	if masteryLevel < 0 || masteryLevel >= ladderLength {
		return 0, false
	}
	return intervalDays(masteryLevel), true
}

func intervalDays(masteryLevel int) time.Duration {
	return time.Duration(reviewIntervals[masteryLevel]) * 24 * time.Hour
}
