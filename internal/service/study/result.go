package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// Session is a point-in-time view of a review session.
type Session struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Filter         domain.CardFilter
	Queue          []uuid.UUID
	TotalReviewed  int
	CorrectAnswers int
	Skipped        int
	StartedAt      time.Time
	LastActivityAt time.Time
}

// Remaining returns the number of cards left in the queue.
func (s Session) Remaining() int { return len(s.Queue) }

// Accuracy returns the running share of correct answers.
func (s Session) Accuracy() float64 { return domain.Accuracy(s.CorrectAnswers, s.TotalReviewed) }

// NextCardResult holds the card at the head of a session queue.
// Card is nil when the queue is exhausted.
type NextCardResult struct {
	Card    *domain.Flashcard
	Session Session
}

// ReviewResult is the outcome of one submitted answer.
type ReviewResult struct {
	Card      domain.Flashcard
	Event     domain.ReviewEvent
	Session   Session
	Completed bool
	Accuracy  float64
}
