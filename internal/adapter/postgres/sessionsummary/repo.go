// Package sessionsummary stores finished review session summaries in PostgreSQL.
package sessionsummary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlquery"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const entity = "session_summary"

// Repo provides session summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	q    sqlquery.Builder
}

// New creates a new session summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, q: sqlquery.New(sq.Dollar)}
}

// Create stores a summary. A second summary for the same session yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s domain.SessionSummary) error {
	query, args, err := r.q.InsertSummary(s)
	if err != nil {
		return fmt.Errorf("build insert session summary: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, s.SessionID)
	}
	return nil
}

// List returns the owner's summaries, most recently finished first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.SessionSummary, error) {
	query, args, err := r.q.ListSummaries(ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("build list session summaries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.SessionSummary, 0)
	for rows.Next() {
		s, err := sqlquery.ScanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return summaries, nil
}
