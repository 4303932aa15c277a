package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/pkg/ctxutil"
)

// StartSession captures the caller's current due queue and opens a session
// over it. Returns domain.ErrNoCardsDue when nothing is due.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (Session, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return Session{}, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return Session{}, err
	}

	filter := input.Filter.Filter()
	if filter.Limit == 0 || filter.Limit > s.queueLimit {
		filter.Limit = s.queueLimit
	}

	now := s.now()
	due, err := s.cards.ListDue(ctx, ownerID, now, filter)
	if err != nil {
		return Session{}, fmt.Errorf("list due cards: %w", err)
	}
	if len(due) == 0 {
		return Session{}, domain.ErrNoCardsDue
	}

	rs := &reviewSession{
		id:             uuid.New(),
		ownerID:        ownerID,
		filter:         filter,
		queue:          lo.Map(due, func(c domain.Flashcard, _ int) uuid.UUID { return c.ID }),
		startedAt:      now,
		lastActivityAt: now,
	}
	s.sessions.put(rs)

	s.log.InfoContext(ctx, "session started",
		slog.String("owner_id", ownerID.String()),
		slog.String("session_id", rs.id.String()),
		slog.Int("queue", len(rs.queue)),
	)

	return rs.snapshot(), nil
}

// GetSession returns the current state of one of the caller's sessions.
func (s *Service) GetSession(ctx context.Context, input SessionInput) (Session, error) {
	rs, err := s.lockSession(ctx, input)
	if err != nil {
		return Session{}, err
	}
	defer rs.mu.Unlock()

	return rs.snapshot(), nil
}

// NextCard returns the card at the head of the queue. Heads whose card was
// deleted since the session started are dropped and counted as skipped.
// The result's Card is nil once the queue is exhausted.
func (s *Service) NextCard(ctx context.Context, input SessionInput) (NextCardResult, error) {
	rs, err := s.lockSession(ctx, input)
	if err != nil {
		return NextCardResult{}, err
	}
	defer rs.mu.Unlock()

	var next *domain.Flashcard
	for len(rs.queue) > 0 {
		card, err := s.cards.GetByID(ctx, rs.ownerID, rs.queue[0])
		if errors.Is(err, domain.ErrNotFound) {
			rs.dropHead()
			continue
		}
		if err != nil {
			return NextCardResult{}, fmt.Errorf("get card: %w", err)
		}
		next = &card
		break
	}

	s.touch(rs)
	return NextCardResult{Card: next, Session: rs.snapshot()}, nil
}

// SubmitReview applies one answer to the card at the head of the queue.
//
// The card must be the queue head, otherwise domain.ErrOutOfSequence is
// returned and nothing changes. The schedule update and the review event are
// written in one transaction; the update only applies if the card was not
// modified since it was read (domain.ErrConflict otherwise, queue unchanged).
// A card deleted mid-session is dropped from the queue and reported as
// domain.ErrNotFound.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (ReviewResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return ReviewResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ReviewResult{}, err
	}

	rs, err := s.lockSession(ctx, SessionInput{SessionID: input.SessionID})
	if err != nil {
		return ReviewResult{}, err
	}
	defer rs.mu.Unlock()

	if len(rs.queue) == 0 || rs.queue[0] != input.CardID {
		return ReviewResult{}, fmt.Errorf("card %s: %w", input.CardID, domain.ErrOutOfSequence)
	}

	now := s.now()
	var (
		updated domain.Flashcard
		event   domain.ReviewEvent
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, ownerID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		result, err := srs.Schedule(s.params, card, srs.Review{
			Outcome:          input.Outcome,
			TimeSpentSeconds: input.TimeSpentSeconds,
			ReviewedAt:       now,
		})
		if err != nil {
			return err
		}

		updated, err = s.cards.UpdateSchedule(txCtx, ownerID, card.ID, card.Version, result.Update())
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}

		result.Event.ID = uuid.New()
		event, err = s.events.Append(txCtx, result.Event)
		if err != nil {
			return fmt.Errorf("append review event: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			rs.dropHead()
			s.touch(rs)
			s.log.InfoContext(ctx, "session card missing, skipped",
				slog.String("owner_id", ownerID.String()),
				slog.String("session_id", rs.id.String()),
				slog.String("card_id", input.CardID.String()),
			)
		}
		return ReviewResult{}, err
	}

	rs.queue = rs.queue[1:]
	rs.totalReviewed++
	if input.Outcome.IsCorrect() {
		rs.correctAnswers++
	}
	s.touch(rs)

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("owner_id", ownerID.String()),
		slog.String("session_id", rs.id.String()),
		slog.String("card_id", updated.ID.String()),
		slog.String("outcome", input.Outcome.String()),
		slog.Int("mastery", updated.MasteryLevel),
		slog.Int("interval", updated.Interval),
	)

	return ReviewResult{
		Card:      updated,
		Event:     event,
		Session:   rs.snapshot(),
		Completed: len(rs.queue) == 0,
		Accuracy:  domain.Accuracy(rs.correctAnswers, rs.totalReviewed),
	}, nil
}

// FinishSession closes the session and persists its summary.
// If the summary cannot be stored the session stays open.
func (s *Service) FinishSession(ctx context.Context, input SessionInput) (domain.SessionSummary, error) {
	rs, err := s.lockSession(ctx, input)
	if err != nil {
		return domain.SessionSummary{}, err
	}
	defer rs.mu.Unlock()

	now := s.now()
	summary := domain.SessionSummary{
		SessionID:      rs.id,
		OwnerID:        rs.ownerID,
		TotalReviewed:  rs.totalReviewed,
		CorrectAnswers: rs.correctAnswers,
		Skipped:        rs.skipped,
		Accuracy:       domain.Accuracy(rs.correctAnswers, rs.totalReviewed),
		Completed:      len(rs.queue) == 0,
		StartedAt:      rs.startedAt,
		FinishedAt:     now,
		Duration:       now.Sub(rs.startedAt),
	}

	if err := s.summaries.Create(ctx, summary); err != nil {
		return domain.SessionSummary{}, fmt.Errorf("save session summary: %w", err)
	}

	rs.closed = true
	s.sessions.remove(rs.id)

	s.log.InfoContext(ctx, "session finished",
		slog.String("owner_id", rs.ownerID.String()),
		slog.String("session_id", rs.id.String()),
		slog.Int("total_reviewed", summary.TotalReviewed),
		slog.Int("correct", summary.CorrectAnswers),
		slog.Int("skipped", summary.Skipped),
		slog.Bool("completed", summary.Completed),
	)

	return summary, nil
}

// AbandonSession discards the session without a summary. Abandoning an
// unknown or expired session is a no-op.
func (s *Service) AbandonSession(ctx context.Context, input SessionInput) error {
	rs, err := s.lockSession(ctx, input)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	defer rs.mu.Unlock()

	rs.closed = true
	s.sessions.remove(rs.id)

	s.log.InfoContext(ctx, "session abandoned",
		slog.String("owner_id", rs.ownerID.String()),
		slog.String("session_id", rs.id.String()),
		slog.Int("total_reviewed", rs.totalReviewed),
	)

	return nil
}

// ListSessionSummaries returns the caller's finished sessions, newest first.
func (s *Service) ListSessionSummaries(ctx context.Context, input ListSummariesInput) ([]domain.SessionSummary, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	summaries, err := s.summaries.List(ctx, ownerID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list session summaries: %w", err)
	}
	return summaries, nil
}

// lockSession resolves the caller's session and returns it locked.
// Sessions closed while the caller waited for the lock are not found.
func (s *Service) lockSession(ctx context.Context, input SessionInput) (*reviewSession, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rs, err := s.sessions.get(ownerID, input.SessionID)
	if err != nil {
		return nil, err
	}

	rs.mu.Lock()
	if rs.closed {
		rs.mu.Unlock()
		return nil, fmt.Errorf("session %s: %w", input.SessionID, domain.ErrNotFound)
	}
	return rs, nil
}

// touch records activity and restarts the session's inactivity timer.
// Caller holds rs.mu.
func (s *Service) touch(rs *reviewSession) {
	rs.lastActivityAt = s.now()
	s.sessions.put(rs)
}
