package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/pkg/ctxutil"
)

// streakLookbackDays bounds how far back the streak is searched.
const streakLookbackDays = 365

// GetStats returns card counts by stage, the due count, reviews done today
// and the current daily streak. Days are taken in the given IANA timezone
// (UTC when empty or unknown).
func (s *Service) GetStats(ctx context.Context, timezone string) (domain.Stats, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Stats{}, domain.ErrUnauthorized
	}

	now := s.now()
	tz := ParseTimezone(timezone)
	dayStart := DayStart(now, tz)

	counts, err := s.cards.CountStats(ctx, ownerID, now)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count cards: %w", err)
	}

	reviewedToday, err := s.events.CountSince(ctx, ownerID, dayStart)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count reviewed today: %w", err)
	}

	since := localDay(now, tz).AddDate(0, 0, -streakLookbackDays).UTC()
	times, err := s.events.ReviewTimesSince(ctx, ownerID, since)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("get review times: %w", err)
	}

	stats := domain.Stats{
		CardCounts:    counts,
		ReviewedToday: reviewedToday,
		Streak:        calculateStreak(reviewDays(times, tz), localDay(now, tz)),
	}

	s.log.InfoContext(ctx, "stats loaded",
		slog.String("owner_id", ownerID.String()),
		slog.Int("total", counts.Total),
		slog.Int("due", counts.Due),
		slog.Int("streak", stats.Streak),
	)

	return stats, nil
}

// reviewDays returns the distinct local days of times, most recent first.
// times must be sorted ascending.
func reviewDays(times []time.Time, tz *time.Location) []time.Time {
	days := make([]time.Time, 0)
	for i := len(times) - 1; i >= 0; i-- {
		d := localDay(times[i], tz)
		if len(days) == 0 || !days[len(days)-1].Equal(d) {
			days = append(days, d)
		}
	}
	return days
}

// calculateStreak counts consecutive review days ending today, or
// yesterday when nothing was reviewed yet today.
// days must be distinct local midnights sorted most recent first.
func calculateStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	expected := today
	if !days[0].Equal(today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if !d.Equal(expected) {
			break // gap
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
