package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardCounts holds the aggregate card counts for one owner.
type CardCounts struct {
	Total    int
	New      int
	Learning int
	Mastered int
	Due      int
}

// Stats holds aggregated study statistics for a learner.
type Stats struct {
	CardCounts
	ReviewedToday int
	Streak        int
}

// SessionSummary is the persisted result of a finished review session.
type SessionSummary struct {
	SessionID      uuid.UUID
	OwnerID        uuid.UUID
	TotalReviewed  int
	CorrectAnswers int
	Skipped        int
	Accuracy       float64
	Completed      bool
	StartedAt      time.Time
	FinishedAt     time.Time
	Duration       time.Duration
}

// Accuracy returns correct/total, or 0 when nothing was reviewed.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}
