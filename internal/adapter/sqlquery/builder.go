// Package sqlquery builds the SQL statements shared by the PostgreSQL and
// SQLite stores. Statements differ between dialects only in placeholder format.
package sqlquery

import (
	"math"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const (
	TableFlashcards = "flashcards"
	TableEvents     = "review_events"
	TableSummaries  = "session_summaries"
)

// CardColumns is the column order expected by ScanCard.
var CardColumns = []string{
	"id", "owner_id", "word", "translation", "language", "target_language", "category",
	"mastery_level", "interval_days", "next_review", "last_reviewed_at", "review_count",
	"version", "created_at", "updated_at",
}

// EventColumns is the column order expected by ScanEvent.
var EventColumns = []string{
	"id", "card_id", "owner_id", "kind", "outcome", "time_spent_seconds",
	"mastery_before", "mastery_after", "interval_after", "reviewed_at",
}

// SummaryColumns is the column order expected by ScanSummary.
var SummaryColumns = []string{
	"session_id", "owner_id", "total_reviewed", "correct_answers", "skipped",
	"accuracy", "completed", "started_at", "finished_at", "duration_ms",
}

var (
	cardReturning    = "RETURNING " + strings.Join(CardColumns, ", ")
	eventReturning   = "RETURNING " + strings.Join(EventColumns, ", ")
	dueOrder         = []string{"next_review ASC", "mastery_level ASC", "id ASC"}
	listOrder        = []string{"created_at DESC", "id ASC"}
	historyOrder     = []string{"reviewed_at ASC", "id ASC"}
	summaryListOrder = []string{"finished_at DESC", "session_id ASC"}
)

// Builder produces statements for one placeholder dialect.
type Builder struct {
	sb sq.StatementBuilderType
}

// New returns a Builder using ph (sq.Dollar for PostgreSQL, sq.Question for SQLite).
func New(ph sq.PlaceholderFormat) Builder {
	return Builder{sb: sq.StatementBuilder.PlaceholderFormat(ph)}
}

// DBTime normalizes a timestamp to the precision both stores keep.
func DBTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// nullTime maps a nil timestamp to SQL NULL.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return DBTime(*t)
}

// ---------------------------------------------------------------------------
// Flashcards
// ---------------------------------------------------------------------------

func (b Builder) InsertCard(c domain.Flashcard) (string, []any, error) {
	return b.sb.Insert(TableFlashcards).
		Columns(CardColumns...).
		Values(
			c.ID, c.OwnerID, c.Word, c.Translation, string(c.Language), string(c.TargetLanguage), c.Category,
			c.MasteryLevel, c.Interval, DBTime(c.NextReview), nullTime(c.LastReviewedAt), c.ReviewCount,
			c.Version, DBTime(c.CreatedAt), DBTime(c.UpdatedAt),
		).
		Suffix(cardReturning).
		ToSql()
}

func (b Builder) GetCard(ownerID, id uuid.UUID) (string, []any, error) {
	return b.sb.Select(CardColumns...).
		From(TableFlashcards).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

func (b Builder) CardExists(ownerID, id uuid.UUID) (string, []any, error) {
	return b.sb.Select("COUNT(*)").
		From(TableFlashcards).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// ListCards selects the owner's cards matching f, newest first.
func (b Builder) ListCards(ownerID uuid.UUID, f domain.CardFilter) (string, []any, error) {
	q := b.sb.Select(CardColumns...).
		From(TableFlashcards).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy(listOrder...)
	return withLimit(applyFilter(q, f), f.Limit).ToSql()
}

// ListDue selects the owner's cards with next_review <= now matching f,
// most overdue first, then lowest mastery, then id.
func (b Builder) ListDue(ownerID uuid.UUID, now time.Time, f domain.CardFilter) (string, []any, error) {
	q := b.sb.Select(CardColumns...).
		From(TableFlashcards).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.LtOrEq{"next_review": DBTime(now)}).
		OrderBy(dueOrder...)
	return withLimit(applyFilter(q, f), f.Limit).ToSql()
}

func (b Builder) UpdateContent(ownerID, id uuid.UUID, p domain.CardPatch, now time.Time) (string, []any, error) {
	q := b.sb.Update(TableFlashcards)
	if p.Word != nil {
		q = q.Set("word", *p.Word)
	}
	if p.Translation != nil {
		q = q.Set("translation", *p.Translation)
	}
	if p.Language != nil {
		q = q.Set("language", string(*p.Language))
	}
	if p.TargetLanguage != nil {
		q = q.Set("target_language", string(*p.TargetLanguage))
	}
	if p.Category != nil {
		q = q.Set("category", *p.Category)
	}
	return q.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", DBTime(now)).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(cardReturning).
		ToSql()
}

// UpdateSchedule writes a review result only if the stored version still
// equals expectedVersion. No returned row means the card is gone or stale.
func (b Builder) UpdateSchedule(ownerID, id uuid.UUID, expectedVersion int64, u domain.ScheduleUpdate, now time.Time) (string, []any, error) {
	return b.sb.Update(TableFlashcards).
		Set("mastery_level", u.MasteryLevel).
		Set("interval_days", u.Interval).
		Set("next_review", DBTime(u.NextReview)).
		Set("last_reviewed_at", DBTime(u.ReviewedAt)).
		Set("review_count", sq.Expr("review_count + 1")).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", DBTime(now)).
		Where(sq.Eq{"id": id, "owner_id": ownerID, "version": expectedVersion}).
		Suffix(cardReturning).
		ToSql()
}

// ResetCard puts the card back to the new state, due at the given time.
// History and review count are kept.
func (b Builder) ResetCard(ownerID, id uuid.UUID, at time.Time) (string, []any, error) {
	return b.sb.Update(TableFlashcards).
		Set("mastery_level", 0).
		Set("interval_days", 0).
		Set("next_review", DBTime(at)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", DBTime(at)).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(cardReturning).
		ToSql()
}

func (b Builder) DeleteCard(ownerID, id uuid.UUID) (string, []any, error) {
	return b.sb.Delete(TableFlashcards).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// CountStats aggregates total, per-stage and due counts in a single pass.
func (b Builder) CountStats(ownerID uuid.UUID, now time.Time) (string, []any, error) {
	return b.sb.Select(
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN mastery_level = 0 THEN 1 ELSE 0 END), 0)",
		"COALESCE(SUM(CASE WHEN mastery_level BETWEEN 1 AND 3 THEN 1 ELSE 0 END), 0)",
		"COALESCE(SUM(CASE WHEN mastery_level >= 4 THEN 1 ELSE 0 END), 0)",
	).
		Column(sq.Expr("COALESCE(SUM(CASE WHEN next_review <= ? THEN 1 ELSE 0 END), 0)", DBTime(now))).
		From(TableFlashcards).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func applyFilter(q sq.SelectBuilder, f domain.CardFilter) sq.SelectBuilder {
	if f.Language != nil {
		q = q.Where(sq.Eq{"language": string(*f.Language)})
	}
	if f.TargetLanguage != nil {
		q = q.Where(sq.Eq{"target_language": string(*f.TargetLanguage)})
	}
	if f.Category != nil {
		q = q.Where(sq.Eq{"category": *f.Category})
	}
	if f.MasteryLevel != nil {
		q = q.Where(sq.Eq{"mastery_level": *f.MasteryLevel})
	}
	return q
}

func withLimit(q sq.SelectBuilder, limit int) sq.SelectBuilder {
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q
}

// page applies limit and offset. SQLite rejects OFFSET without LIMIT,
// so an unbounded page gets the largest limit instead.
func page(q sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if offset <= 0 {
		return withLimit(q, limit)
	}
	if limit <= 0 {
		q = q.Limit(math.MaxInt64)
	} else {
		q = q.Limit(uint64(limit))
	}
	return q.Offset(uint64(offset))
}

// ---------------------------------------------------------------------------
// Review events
// ---------------------------------------------------------------------------

func (b Builder) InsertEvent(e domain.ReviewEvent) (string, []any, error) {
	var outcome any
	if e.Outcome != "" {
		outcome = string(e.Outcome)
	}
	return b.sb.Insert(TableEvents).
		Columns(EventColumns...).
		Values(
			e.ID, e.CardID, e.OwnerID, string(e.Kind), outcome, e.TimeSpentSeconds,
			e.MasteryLevelBefore, e.MasteryLevelAfter, e.IntervalAfter, DBTime(e.ReviewedAt),
		).
		Suffix(eventReturning).
		ToSql()
}

// ListEvents returns a card's history in chronological order.
func (b Builder) ListEvents(ownerID, cardID uuid.UUID, limit, offset int) (string, []any, error) {
	q := b.sb.Select(EventColumns...).
		From(TableEvents).
		Where(sq.Eq{"card_id": cardID, "owner_id": ownerID}).
		OrderBy(historyOrder...)
	return page(q, limit, offset).ToSql()
}

func (b Builder) CountReviewsSince(ownerID uuid.UUID, since time.Time) (string, []any, error) {
	return b.sb.Select("COUNT(*)").
		From(TableEvents).
		Where(sq.Eq{"owner_id": ownerID, "kind": string(domain.EventKindReview)}).
		Where(sq.GtOrEq{"reviewed_at": DBTime(since)}).
		ToSql()
}

func (b Builder) ReviewTimesSince(ownerID uuid.UUID, since time.Time) (string, []any, error) {
	return b.sb.Select("reviewed_at").
		From(TableEvents).
		Where(sq.Eq{"owner_id": ownerID, "kind": string(domain.EventKindReview)}).
		Where(sq.GtOrEq{"reviewed_at": DBTime(since)}).
		OrderBy("reviewed_at ASC").
		ToSql()
}

// ---------------------------------------------------------------------------
// Session summaries
// ---------------------------------------------------------------------------

func (b Builder) InsertSummary(s domain.SessionSummary) (string, []any, error) {
	return b.sb.Insert(TableSummaries).
		Columns(SummaryColumns...).
		Values(
			s.SessionID, s.OwnerID, s.TotalReviewed, s.CorrectAnswers, s.Skipped,
			s.Accuracy, s.Completed, DBTime(s.StartedAt), DBTime(s.FinishedAt), s.Duration.Milliseconds(),
		).
		ToSql()
}

func (b Builder) ListSummaries(ownerID uuid.UUID, limit, offset int) (string, []any, error) {
	q := b.sb.Select(SummaryColumns...).
		From(TableSummaries).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy(summaryListOrder...)
	return page(q, limit, offset).ToSql()
}
