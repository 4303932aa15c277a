package study

import (
	"context"
	"fmt"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/pkg/ctxutil"
)

// ListDue returns the caller's cards with nextReview <= now, most overdue
// first, then lowest mastery, then id. The result is a read-only snapshot.
func (s *Service) ListDue(ctx context.Context, input CardFilterInput) ([]domain.Flashcard, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	due, err := s.cards.ListDue(ctx, ownerID, s.now(), input.Filter())
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}
	return due, nil
}
