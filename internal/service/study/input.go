package study

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// CreateCardInput holds the parameters for creating a flashcard.
type CreateCardInput struct {
	Word           string          `json:"word" validate:"required,max=200"`
	Translation    string          `json:"translation" validate:"required,max=500"`
	Language       domain.Language `json:"language" validate:"required,language"`
	TargetLanguage domain.Language `json:"targetLanguage" validate:"required,language"`
	Category       string          `json:"category" validate:"max=50"`
}

// Normalize cleans whitespace, lowercases language tags and defaults the category.
func (i *CreateCardInput) Normalize() {
	i.Word = domain.CleanText(i.Word)
	i.Translation = domain.CleanText(i.Translation)
	i.Language = domain.ParseLanguage(string(i.Language))
	i.TargetLanguage = domain.ParseLanguage(string(i.TargetLanguage))
	i.Category = domain.NormalizeCategory(i.Category)
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	return validateStruct(i)
}

// UpdateCardInput holds a partial content update. Nil fields are left untouched.
type UpdateCardInput struct {
	CardID         uuid.UUID        `json:"cardId" validate:"required"`
	Word           *string          `json:"word" validate:"omitnil,min=1,max=200"`
	Translation    *string          `json:"translation" validate:"omitnil,min=1,max=500"`
	Language       *domain.Language `json:"language" validate:"omitnil,language"`
	TargetLanguage *domain.Language `json:"targetLanguage" validate:"omitnil,language"`
	Category       *string          `json:"category" validate:"omitnil,max=50"`
}

// Normalize applies the same cleaning as card creation to the set fields.
func (i *UpdateCardInput) Normalize() {
	if i.Word != nil {
		*i.Word = domain.CleanText(*i.Word)
	}
	if i.Translation != nil {
		*i.Translation = domain.CleanText(*i.Translation)
	}
	if i.Language != nil {
		*i.Language = domain.ParseLanguage(string(*i.Language))
	}
	if i.TargetLanguage != nil {
		*i.TargetLanguage = domain.ParseLanguage(string(*i.TargetLanguage))
	}
	if i.Category != nil {
		*i.Category = domain.NormalizeCategory(*i.Category)
	}
}

// Patch converts the input to a store patch.
func (i *UpdateCardInput) Patch() domain.CardPatch {
	return domain.CardPatch{
		Word:           i.Word,
		Translation:    i.Translation,
		Language:       i.Language,
		TargetLanguage: i.TargetLanguage,
		Category:       i.Category,
	}
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	if err := validateStruct(i); err != nil {
		return err
	}
	if i.Patch().IsEmpty() {
		return domain.NewValidationError("body", "at least one field must be provided")
	}
	return nil
}

// CardFilterInput narrows card listings and due queues.
type CardFilterInput struct {
	Language       *domain.Language `json:"language" validate:"omitnil,language"`
	TargetLanguage *domain.Language `json:"targetLanguage" validate:"omitnil,language"`
	Category       *string          `json:"category" validate:"omitnil,min=1,max=50"`
	MasteryLevel   *int             `json:"masteryLevel" validate:"omitnil,min=0,max=5"`
	Limit          int              `json:"limit" validate:"min=0,max=500"`
}

// Validate checks all fields and collects all errors.
func (i *CardFilterInput) Validate() error {
	return validateStruct(i)
}

// Normalize lowercases language tags and cleans the category the same way
// they are cleaned on write.
func (i *CardFilterInput) Normalize() {
	if i.Language != nil {
		lang := domain.ParseLanguage(string(*i.Language))
		i.Language = &lang
	}
	if i.TargetLanguage != nil {
		lang := domain.ParseLanguage(string(*i.TargetLanguage))
		i.TargetLanguage = &lang
	}
	if i.Category != nil {
		c := domain.NormalizeCategory(*i.Category)
		i.Category = &c
	}
}

// Filter converts the input to a store filter.
func (i *CardFilterInput) Filter() domain.CardFilter {
	return domain.CardFilter{
		Language:       i.Language,
		TargetLanguage: i.TargetLanguage,
		Category:       i.Category,
		MasteryLevel:   i.MasteryLevel,
		Limit:          i.Limit,
	}
}

// CardHistoryInput holds the parameters for fetching a card's review history.
type CardHistoryInput struct {
	CardID uuid.UUID `json:"cardId" validate:"required"`
	Limit  int       `json:"limit" validate:"min=0,max=200"`
	Offset int       `json:"offset" validate:"min=0"`
}

// Validate checks all fields and collects all errors.
func (i *CardHistoryInput) Validate() error {
	return validateStruct(i)
}

// StartSessionInput holds the filters that select the session's due queue.
type StartSessionInput struct {
	Filter CardFilterInput `json:"filter"`
}

// Normalize cleans the filter.
func (i *StartSessionInput) Normalize() {
	i.Filter.Normalize()
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	return validateStruct(i)
}

// SubmitReviewInput holds one answer within a session.
type SubmitReviewInput struct {
	SessionID        uuid.UUID      `json:"sessionId" validate:"required"`
	CardID           uuid.UUID      `json:"cardId" validate:"required"`
	Outcome          domain.Outcome `json:"outcome"`
	TimeSpentSeconds int            `json:"timeSpentSeconds" validate:"min=0,max=86400"`
}

// Validate returns domain.ErrInvalidOutcome for an unknown outcome,
// otherwise collects field errors.
func (i *SubmitReviewInput) Validate() error {
	if !i.Outcome.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, i.Outcome)
	}
	return validateStruct(i)
}

// SessionInput identifies a review session.
type SessionInput struct {
	SessionID uuid.UUID `json:"sessionId" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i *SessionInput) Validate() error {
	return validateStruct(i)
}

// ListSummariesInput pages through finished sessions.
type ListSummariesInput struct {
	Limit  int `json:"limit" validate:"min=0,max=100"`
	Offset int `json:"offset" validate:"min=0"`
}

// Validate checks all fields and collects all errors.
func (i *ListSummariesInput) Validate() error {
	return validateStruct(i)
}
