package testhelper

import (
	"context"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlquery"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// NewFlashcard returns a valid never-reviewed card for ownerID, due now.
// Owners are plain UUIDs; the store keeps no user table.
func NewFlashcard(ownerID uuid.UUID) domain.Flashcard {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Flashcard{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Word:           "word-" + uuid.New().String()[:8],
		Translation:    "translation",
		Language:       "en",
		TargetLanguage: "si",
		Category:       domain.DefaultCategory,
		NextReview:     now,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SeedFlashcard inserts a card built by NewFlashcard after applying mutate.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, mutate ...func(*domain.Flashcard)) domain.Flashcard {
	t.Helper()

	card := NewFlashcard(ownerID)
	for _, m := range mutate {
		m(&card)
	}

	query, args, err := sqlquery.New(sq.Dollar).InsertCard(card)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard build: %v", err)
	}

	saved, err := sqlquery.ScanCard(pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard insert: %v", err)
	}
	return saved
}
