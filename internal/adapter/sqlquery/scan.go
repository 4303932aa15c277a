package sqlquery

import (
	"time"

	"github.com/samber/lo"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// Row is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type Row interface {
	Scan(dest ...any) error
}

// ScanCard reads a row selected with CardColumns.
func ScanCard(row Row) (domain.Flashcard, error) {
	var (
		c    domain.Flashcard
		last *time.Time
	)
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Word, &c.Translation, &c.Language, &c.TargetLanguage, &c.Category,
		&c.MasteryLevel, &c.Interval, &c.NextReview, &last, &c.ReviewCount,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Flashcard{}, err
	}

	c.NextReview = c.NextReview.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	if last != nil {
		c.LastReviewedAt = lo.ToPtr(last.UTC())
	}
	return c, nil
}

// ScanEvent reads a row selected with EventColumns.
func ScanEvent(row Row) (domain.ReviewEvent, error) {
	var (
		e       domain.ReviewEvent
		kind    string
		outcome *string
	)
	err := row.Scan(
		&e.ID, &e.CardID, &e.OwnerID, &kind, &outcome, &e.TimeSpentSeconds,
		&e.MasteryLevelBefore, &e.MasteryLevelAfter, &e.IntervalAfter, &e.ReviewedAt,
	)
	if err != nil {
		return domain.ReviewEvent{}, err
	}

	e.Kind = domain.EventKind(kind)
	e.Outcome = domain.Outcome(lo.FromPtr(outcome))
	e.ReviewedAt = e.ReviewedAt.UTC()
	return e, nil
}

// ScanSummary reads a row selected with SummaryColumns.
func ScanSummary(row Row) (domain.SessionSummary, error) {
	var (
		s          domain.SessionSummary
		durationMs int64
	)
	err := row.Scan(
		&s.SessionID, &s.OwnerID, &s.TotalReviewed, &s.CorrectAnswers, &s.Skipped,
		&s.Accuracy, &s.Completed, &s.StartedAt, &s.FinishedAt, &durationMs,
	)
	if err != nil {
		return domain.SessionSummary{}, err
	}

	s.StartedAt = s.StartedAt.UTC()
	s.FinishedAt = s.FinishedAt.UTC()
	s.Duration = time.Duration(durationMs) * time.Millisecond
	return s, nil
}
