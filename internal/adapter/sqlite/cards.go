package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlquery"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const cardEntity = "flashcard"

// CardRepo provides flashcard persistence backed by SQLite.
type CardRepo struct {
	db  *sql.DB
	q   sqlquery.Builder
	now func() time.Time
}

// NewCardRepo creates a new flashcard repository.
func NewCardRepo(db *sql.DB) *CardRepo {
	return &CardRepo{db: db, q: sqlquery.New(sq.Question), now: time.Now}
}

// GetByID returns a card owned by ownerID.
func (r *CardRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Flashcard, error) {
	query, args, err := r.q.GetCard(ownerID, id)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build get flashcard: %w", err)
	}
	return r.queryOne(ctx, id, query, args)
}

// List returns the owner's cards matching the filter, newest first.
func (r *CardRepo) List(ctx context.Context, ownerID uuid.UUID, filter domain.CardFilter) ([]domain.Flashcard, error) {
	query, args, err := r.q.ListCards(ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("build list flashcards: %w", err)
	}
	return r.queryMany(ctx, query, args)
}

// ListDue returns the owner's cards due at now matching the filter.
func (r *CardRepo) ListDue(ctx context.Context, ownerID uuid.UUID, now time.Time, filter domain.CardFilter) ([]domain.Flashcard, error) {
	query, args, err := r.q.ListDue(ownerID, now, filter)
	if err != nil {
		return nil, fmt.Errorf("build list due flashcards: %w", err)
	}
	return r.queryMany(ctx, query, args)
}

// CountStats returns total, per-stage and due counts.
func (r *CardRepo) CountStats(ctx context.Context, ownerID uuid.UUID, now time.Time) (domain.CardCounts, error) {
	query, args, err := r.q.CountStats(ownerID, now)
	if err != nil {
		return domain.CardCounts{}, fmt.Errorf("build count stats: %w", err)
	}

	var c domain.CardCounts
	row := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...)
	if err := row.Scan(&c.Total, &c.New, &c.Learning, &c.Mastered, &c.Due); err != nil {
		return domain.CardCounts{}, fmt.Errorf("count flashcard stats: %w", err)
	}
	return c, nil
}

// Create inserts a card. A nil ID is replaced by a new one.
func (r *CardRepo) Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
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
func (r *CardRepo) UpdateContent(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (domain.Flashcard, error) {
	query, args, err := r.q.UpdateContent(ownerID, id, patch, r.now())
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build update flashcard: %w", err)
	}
	return r.queryOne(ctx, id, query, args)
}

// UpdateSchedule stores a review result if the card is still at expectedVersion.
// Returns domain.ErrConflict for a stale version and domain.ErrNotFound for a missing card.
func (r *CardRepo) UpdateSchedule(ctx context.Context, ownerID, id uuid.UUID, expectedVersion int64, upd domain.ScheduleUpdate) (domain.Flashcard, error) {
	query, args, err := r.q.UpdateSchedule(ownerID, id, expectedVersion, upd, r.now())
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build update schedule: %w", err)
	}

	card, err := sqlquery.ScanCard(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Flashcard{}, MapError(err, cardEntity, id)
	}

	query, args, err = r.q.CardExists(ownerID, id)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build flashcard exists: %w", err)
	}
	var n int
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return domain.Flashcard{}, MapError(err, cardEntity, id)
	}
	if n > 0 {
		return domain.Flashcard{}, fmt.Errorf("%s %s version %d: %w", cardEntity, id, expectedVersion, domain.ErrConflict)
	}
	return domain.Flashcard{}, fmt.Errorf("%s %s: %w", cardEntity, id, domain.ErrNotFound)
}

// Reset returns the card to the new state, due at the given time.
func (r *CardRepo) Reset(ctx context.Context, ownerID, id uuid.UUID, at time.Time) (domain.Flashcard, error) {
	query, args, err := r.q.ResetCard(ownerID, id, at)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build reset flashcard: %w", err)
	}
	return r.queryOne(ctx, id, query, args)
}

// Delete removes the card; its review events are removed by cascade.
func (r *CardRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := r.q.DeleteCard(ownerID, id)
	if err != nil {
		return fmt.Errorf("build delete flashcard: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err, cardEntity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete flashcard rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", cardEntity, id, domain.ErrNotFound)
	}
	return nil
}

func (r *CardRepo) queryOne(ctx context.Context, id uuid.UUID, query string, args []any) (domain.Flashcard, error) {
	card, err := sqlquery.ScanCard(QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Flashcard{}, MapError(err, cardEntity, id)
	}
	return card, nil
}

func (r *CardRepo) queryMany(ctx context.Context, query string, args []any) ([]domain.Flashcard, error) {
	rows, err := QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
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
