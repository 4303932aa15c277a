// Package reviewevent implements the append-only review history store using PostgreSQL.
package reviewevent

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlquery"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const entity = "review_event"

// Repo provides review event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	q    sqlquery.Builder
}

// New creates a new review event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, q: sqlquery.New(sq.Dollar)}
}

// Append stores an event. A nil ID is replaced by a new one.
// A missing card yields domain.ErrNotFound via the foreign key.
func (r *Repo) Append(ctx context.Context, event domain.ReviewEvent) (domain.ReviewEvent, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	query, args, err := r.q.InsertEvent(event)
	if err != nil {
		return domain.ReviewEvent{}, fmt.Errorf("build insert review event: %w", err)
	}

	saved, err := sqlquery.ScanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ReviewEvent{}, postgres.MapError(err, entity, event.ID)
	}
	return saved, nil
}

// ListByCard returns a card's events oldest first. limit 0 means no limit.
func (r *Repo) ListByCard(ctx context.Context, ownerID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewEvent, error) {
	query, args, err := r.q.ListEvents(ownerID, cardID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("build list review events: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.ReviewEvent, 0)
	for rows.Next() {
		ev, err := sqlquery.ScanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review events: %w", err)
	}
	return events, nil
}

// CountSince counts the owner's review events (resets excluded) at or after since.
func (r *Repo) CountSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error) {
	query, args, err := r.q.CountReviewsSince(ownerID, since)
	if err != nil {
		return 0, fmt.Errorf("build count reviews: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviews since: %w", err)
	}
	return n, nil
}

// ReviewTimesSince returns the timestamps of the owner's reviews at or after since, oldest first.
func (r *Repo) ReviewTimesSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]time.Time, error) {
	query, args, err := r.q.ReviewTimesSince(ownerID, since)
	if err != nil {
		return nil, fmt.Errorf("build review times: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query review times: %w", err)
	}
	defer rows.Close()

	times := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan review time: %w", err)
		}
		times = append(times, t.UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review times: %w", err)
	}
	return times, nil
}
