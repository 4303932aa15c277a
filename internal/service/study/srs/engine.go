package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// againInterval is the interval in days after a failed recall.
const againInterval = 1

// Review is a single learner answer for one card.
type Review struct {
	Outcome          domain.Outcome
	TimeSpentSeconds int
	ReviewedAt       time.Time
}

// Result is the card state computed by Schedule together with the history event to append.
type Result struct {
	MasteryLevel int
	Interval     int
	NextReview   time.Time
	Event        domain.ReviewEvent
}

// Update converts the result into the fields persisted on the card.
func (r Result) Update() domain.ScheduleUpdate {
	return domain.ScheduleUpdate{
		MasteryLevel: r.MasteryLevel,
		Interval:     r.Interval,
		NextReview:   r.NextReview,
		ReviewedAt:   r.Event.ReviewedAt,
	}
}

// Schedule is a pure function. No DB, no context, no logger.
// It returns domain.ErrInvalidOutcome for an unknown outcome and a validation
// error for negative time spent; in both cases nothing is computed.
// The returned event has no ID; the store assigns one on append.
func Schedule(params Parameters, card domain.Flashcard, review Review) (Result, error) {
	if !review.Outcome.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, review.Outcome)
	}
	if review.TimeSpentSeconds < 0 {
		return Result{}, domain.NewValidationError("time_spent_seconds", "must be >= 0")
	}

	before := clampMastery(card.MasteryLevel)
	mastery := nextMastery(before, review.Outcome)
	interval := nextInterval(params, max(card.Interval, 0), review.Outcome)
	reviewedAt := review.ReviewedAt.UTC()

	return Result{
		MasteryLevel: mastery,
		Interval:     interval,
		NextReview:   reviewedAt.AddDate(0, 0, interval),
		Event: domain.ReviewEvent{
			CardID:             card.ID,
			OwnerID:            card.OwnerID,
			Kind:               domain.EventKindReview,
			Outcome:            review.Outcome,
			TimeSpentSeconds:   review.TimeSpentSeconds,
			MasteryLevelBefore: before,
			MasteryLevelAfter:  mastery,
			IntervalAfter:      interval,
			ReviewedAt:         reviewedAt,
		},
	}, nil
}

func nextMastery(m int, outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeAgain:
		return clampMastery(m - 2)
	case domain.OutcomeGood:
		return clampMastery(m + 1)
	case domain.OutcomeEasy:
		return clampMastery(m + 2)
	default:
		return m
	}
}

func nextInterval(params Parameters, current int, outcome domain.Outcome) int {
	var days int
	switch outcome {
	case domain.OutcomeAgain:
		return againInterval
	case domain.OutcomeHard:
		days = scale(current, params.HardMultiplier)
	case domain.OutcomeGood:
		if current == 0 {
			days = params.FirstGoodInterval
		} else {
			days = scale(current, params.GoodMultiplier)
		}
	case domain.OutcomeEasy:
		if current == 0 {
			days = params.FirstEasyInterval
		} else {
			days = scale(current, params.EasyMultiplier)
		}
	}

	days = max(days, 1)
	if params.MaxIntervalDays > 0 {
		days = min(days, params.MaxIntervalDays)
	}
	return days
}

// scale multiplies an interval and rounds half away from zero.
func scale(interval int, multiplier float64) int {
	return int(math.Round(float64(interval) * multiplier))
}

func clampMastery(m int) int {
	return min(max(m, domain.MinMasteryLevel), domain.MaxMasteryLevel)
}
