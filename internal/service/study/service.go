package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
)

//go:generate moq -out card_repo_mock_test.go -pkg study . cardRepo
//go:generate moq -out event_repo_mock_test.go -pkg study . eventRepo
//go:generate moq -out summary_repo_mock_test.go -pkg study . summaryRepo
//go:generate moq -out tx_manager_mock_test.go -pkg study . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Flashcard, error)
	List(ctx context.Context, ownerID uuid.UUID, filter domain.CardFilter) ([]domain.Flashcard, error)
	ListDue(ctx context.Context, ownerID uuid.UUID, now time.Time, filter domain.CardFilter) ([]domain.Flashcard, error)
	CountStats(ctx context.Context, ownerID uuid.UUID, now time.Time) (domain.CardCounts, error)
	UpdateContent(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (domain.Flashcard, error)
	UpdateSchedule(ctx context.Context, ownerID, id uuid.UUID, expectedVersion int64, upd domain.ScheduleUpdate) (domain.Flashcard, error)
	Reset(ctx context.Context, ownerID, id uuid.UUID, at time.Time) (domain.Flashcard, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type eventRepo interface {
	Append(ctx context.Context, event domain.ReviewEvent) (domain.ReviewEvent, error)
	ListByCard(ctx context.Context, ownerID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewEvent, error)
	CountSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error)
	ReviewTimesSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]time.Time, error)
}

type summaryRepo interface {
	Create(ctx context.Context, s domain.SessionSummary) error
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.SessionSummary, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock abstracts the current time for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Options tunes the review session manager. Zero values select defaults.
type Options struct {
	SessionTTL  time.Duration
	MaxSessions int
	QueueLimit  int
	Clock       Clock
}

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 10_000
)

// Service implements flashcard management, due selection, review sessions and stats.
type Service struct {
	cards      cardRepo
	events     eventRepo
	summaries  summaryRepo
	tx         txManager
	sessions   *sessionRegistry
	log        *slog.Logger
	clock      Clock
	params     srs.Parameters
	queueLimit int
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	events eventRepo,
	summaries summaryRepo,
	tx txManager,
	params srs.Parameters,
	opts Options,
) (*Service, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid srs parameters: %w", err)
	}

	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = defaultMaxSessions
	}
	if opts.QueueLimit <= 0 || opts.QueueLimit > domain.MaxDueLimit {
		opts.QueueLimit = domain.MaxDueLimit
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}

	return &Service{
		cards:      cards,
		events:     events,
		summaries:  summaries,
		tx:         tx,
		sessions:   newSessionRegistry(opts.MaxSessions, opts.SessionTTL),
		log:        log.With("service", "study"),
		clock:      opts.Clock,
		params:     params,
		queueLimit: opts.QueueLimit,
	}, nil
}

// Parameters returns the scheduling parameters in effect.
func (s *Service) Parameters() srs.Parameters {
	return s.params
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}

// ActiveSessions returns the number of live review sessions across all owners.
func (s *Service) ActiveSessions() int {
	return s.sessions.count()
}
