package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlquery"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const summaryEntity = "session_summary"

// SummaryRepo stores finished session summaries in SQLite.
type SummaryRepo struct {
	db *sql.DB
	q  sqlquery.Builder
}

// NewSummaryRepo creates a new session summary repository.
func NewSummaryRepo(db *sql.DB) *SummaryRepo {
	return &SummaryRepo{db: db, q: sqlquery.New(sq.Question)}
}

// Create stores a summary. A duplicate session yields domain.ErrAlreadyExists.
func (r *SummaryRepo) Create(ctx context.Context, s domain.SessionSummary) error {
	query, args, err := r.q.InsertSummary(s)
	if err != nil {
		return fmt.Errorf("build insert session summary: %w", err)
	}
	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return MapError(err, summaryEntity, s.SessionID)
	}
	return nil
}

// List returns the owner's summaries, most recently finished first.
func (r *SummaryRepo) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.SessionSummary, error) {
	query, args, err := r.q.ListSummaries(ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("build list session summaries: %w", err)
	}

	rows, err := QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
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
