package srs

import (
	"time"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// OutcomePreview describes what a single outcome would do to a card.
type OutcomePreview struct {
	Outcome      domain.Outcome
	MasteryLevel int
	Interval     int
	NextReview   time.Time
}

// Preview computes the result of every outcome for the card reviewed at now.
// Clients use it to label answer buttons.
func Preview(params Parameters, card domain.Flashcard, now time.Time) []OutcomePreview {
	outcomes := domain.AllOutcomes()
	previews := make([]OutcomePreview, 0, len(outcomes))
	for _, o := range outcomes {
		res, err := Schedule(params, card, Review{Outcome: o, ReviewedAt: now})
		if err != nil {
			continue
		}
		previews = append(previews, OutcomePreview{
			Outcome:      o,
			MasteryLevel: res.MasteryLevel,
			Interval:     res.Interval,
			NextReview:   res.NextReview,
		})
	}
	return previews
}
