// Package flashcard implements the flashcard store using PostgreSQL.
package flashcard

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlquery"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const entity = "flashcard"

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	q    sqlquery.Builder
	now  func() time.Time
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, q: sqlquery.New(sq.Dollar), now: time.Now}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Flashcard, error) {
	query, args, err := r.q.GetCard(ownerID, id)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build get flashcard: %w", err)
	}
	return r.queryOne(ctx, id, query, args)
}

// List returns the owner's cards matching the filter, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.CardFilter) ([]domain.Flashcard, error) {
	query, args, err := r.q.ListCards(ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("build list flashcards: %w", err)
	}
	return r.queryMany(ctx, query, args)
}

// ListDue returns the owner's cards due at now matching the filter,
// ordered by next_review, mastery_level, id.
func (r *Repo) ListDue(ctx context.Context, ownerID uuid.UUID, now time.Time, filter domain.CardFilter) ([]domain.Flashcard, error) {
	query, args, err := r.q.ListDue(ownerID, now, filter)
	if err != nil {
		return nil, fmt.Errorf("build list due flashcards: %w", err)
	}
	return r.queryMany(ctx, query, args)
}

// CountStats returns total, per-stage and due counts in one aggregate query.
func (r *Repo) CountStats(ctx context.Context, ownerID uuid.UUID, now time.Time) (domain.CardCounts, error) {
	query, args, err := r.q.CountStats(ownerID, now)
	if err != nil {
		return domain.CardCounts{}, fmt.Errorf("build count stats: %w", err)
	}

	var c domain.CardCounts
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	if err := row.Scan(&c.Total, &c.New, &c.Learning, &c.Mastered, &c.Due); err != nil {
		return domain.CardCounts{}, fmt.Errorf("count flashcard stats: %w", err)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card. A nil ID is replaced by a new one.
func (r *Repo) Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	query, args, err := r.q.InsertCard(card)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build insert flashcard: %w", err)
	}
	return r.queryOne(ctx, card.ID, query, args)
}

// UpdateContent applies a content patch and bumps the version.
func (r *Repo) UpdateContent(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (domain.Flashcard, error) {
	query, args, err := r.q.UpdateContent(ownerID, id, patch, r.now())
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build update flashcard: %w", err)
	}
	return r.queryOne(ctx, id, query, args)
}

// UpdateSchedule stores a review result if the card is still at expectedVersion.
// Returns domain.ErrConflict when the card changed since it was read and
// domain.ErrNotFound when it no longer exists.
func (r *Repo) UpdateSchedule(ctx context.Context, ownerID, id uuid.UUID, expectedVersion int64, upd domain.ScheduleUpdate) (domain.Flashcard, error) {
	query, args, err := r.q.UpdateSchedule(ownerID, id, expectedVersion, upd, r.now())
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build update schedule: %w", err)
	}

	card, err := sqlquery.ScanCard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Flashcard{}, postgres.MapError(err, entity, id)
	}

	exists, err := r.exists(ctx, ownerID, id)
	if err != nil {
		return domain.Flashcard{}, err
	}
	if exists {
		return domain.Flashcard{}, fmt.Errorf("%s %s version %d: %w", entity, id, expectedVersion, domain.ErrConflict)
	}
	return domain.Flashcard{}, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}

// Reset returns the card to the new state, due at the given time.
func (r *Repo) Reset(ctx context.Context, ownerID, id uuid.UUID, at time.Time) (domain.Flashcard, error) {
	query, args, err := r.q.ResetCard(ownerID, id, at)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build reset flashcard: %w", err)
	}
	return r.queryOne(ctx, id, query, args)
}

// Delete removes the card; its review events are removed by cascade.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := r.q.DeleteCard(ownerID, id)
	if err != nil {
		return fmt.Errorf("build delete flashcard: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) exists(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	query, args, err := r.q.CardExists(ownerID, id)
	if err != nil {
		return false, fmt.Errorf("build flashcard exists: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return n > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, query string, args []any) (domain.Flashcard, error) {
	card, err := sqlquery.ScanCard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, entity, id)
	}
	return card, nil
}

func (r *Repo) queryMany(ctx context.Context, query string, args []any) ([]domain.Flashcard, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query flashcards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.Flashcard, 0)
	for rows.Next() {
		card, err := sqlquery.ScanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}
	return cards, nil
}
