package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/pkg/ctxutil"
)

// CreateCard creates a never-reviewed flashcard, due immediately.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Flashcard, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	now := s.now()
	card, err := s.cards.Create(ctx, domain.Flashcard{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Word:           input.Word,
		Translation:    input.Translation,
		Language:       input.Language,
		TargetLanguage: input.TargetLanguage,
		Category:       input.Category,
		NextReview:     now,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("owner_id", ownerID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("language", card.Language.String()),
		slog.String("target_language", card.TargetLanguage.String()),
	)

	return card, nil
}

// GetCard returns one of the caller's cards.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	card, err := s.cards.GetByID(ctx, ownerID, cardID)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// ListCards returns the caller's cards matching the filter, newest first.
func (s *Service) ListCards(ctx context.Context, input CardFilterInput) ([]domain.Flashcard, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, ownerID, input.Filter())
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// UpdateCard changes a card's content. Scheduling state is not touched.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (domain.Flashcard, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	card, err := s.cards.UpdateContent(ctx, ownerID, input.CardID, input.Patch())
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return card, nil
}

// ResetCard returns a card to the new state and records a reset marker in its history.
func (s *Service) ResetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	now := s.now()
	var card domain.Flashcard

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.cards.GetByID(txCtx, ownerID, cardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		card, err = s.cards.Reset(txCtx, ownerID, cardID, now)
		if err != nil {
			return fmt.Errorf("reset card: %w", err)
		}

		_, err = s.events.Append(txCtx, domain.ReviewEvent{
			ID:                 uuid.New(),
			CardID:             cardID,
			OwnerID:            ownerID,
			Kind:               domain.EventKindReset,
			MasteryLevelBefore: before.MasteryLevel,
			MasteryLevelAfter:  card.MasteryLevel,
			IntervalAfter:      card.Interval,
			ReviewedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("append reset event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Flashcard{}, err
	}

	s.log.InfoContext(ctx, "card reset",
		slog.String("owner_id", ownerID.String()),
		slog.String("card_id", cardID.String()),
	)

	return card, nil
}

// DeleteCard removes a card and its history.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cards.Delete(ctx, ownerID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("card_id", cardID.String()),
	)

	return nil
}

// CardHistory returns a card's review events oldest first.
func (s *Service) CardHistory(ctx context.Context, input CardHistoryInput) ([]domain.ReviewEvent, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Check ownership
	if _, err := s.cards.GetByID(ctx, ownerID, input.CardID); err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	events, err := s.events.ListByCard(ctx, ownerID, input.CardID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list review events: %w", err)
	}
	return events, nil
}

// PreviewCard returns what each outcome would do to the card if answered now.
func (s *Service) PreviewCard(ctx context.Context, cardID uuid.UUID) ([]srs.OutcomePreview, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	card, err := s.cards.GetByID(ctx, ownerID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return srs.Preview(s.params, card, s.now()), nil
}
