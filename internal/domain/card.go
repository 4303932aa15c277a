package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to cards created without a category.
const DefaultCategory = "general"

// Flashcard is a vocabulary card owned by exactly one learner.
// MasteryLevel, Interval and NextReview are written only by the scheduler.
type Flashcard struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Word           string
	Translation    string
	Language       Language
	TargetLanguage Language
	Category       string
	MasteryLevel   int
	Interval       int
	NextReview     time.Time
	LastReviewedAt *time.Time
	ReviewCount    int
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDue returns true if the card needs review at the given time.
func (c *Flashcard) IsDue(now time.Time) bool {
	return !c.NextReview.After(now)
}

// Stage returns the card's mastery classification.
func (c *Flashcard) Stage() MasteryStage {
	return StageOf(c.MasteryLevel)
}

// ReviewEvent is one immutable entry of a card's review history.
// Reset markers carry an empty Outcome and zero time spent.
type ReviewEvent struct {
	ID                 uuid.UUID
	CardID             uuid.UUID
	OwnerID            uuid.UUID
	Kind               EventKind
	Outcome            Outcome
	TimeSpentSeconds   int
	MasteryLevelBefore int
	MasteryLevelAfter  int
	IntervalAfter      int
	ReviewedAt         time.Time
}

// ScheduleUpdate holds the fields written to a card after a review.
type ScheduleUpdate struct {
	MasteryLevel int
	Interval     int
	NextReview   time.Time
	ReviewedAt   time.Time
}

// CardPatch holds optional content changes. Nil fields are left untouched.
type CardPatch struct {
	Word           *string
	Translation    *string
	Language       *Language
	TargetLanguage *Language
	Category       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CardPatch) IsEmpty() bool {
	return p.Word == nil && p.Translation == nil && p.Language == nil &&
		p.TargetLanguage == nil && p.Category == nil
}
