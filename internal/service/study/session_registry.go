package study

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// reviewSession is the in-memory state of one learner's pass through a
// captured due queue. mu serializes every operation on the session.
type reviewSession struct {
	mu sync.Mutex

	id             uuid.UUID
	ownerID        uuid.UUID
	filter         domain.CardFilter
	queue          []uuid.UUID
	totalReviewed  int
	correctAnswers int
	skipped        int
	startedAt      time.Time
	lastActivityAt time.Time
	closed         bool
}

func (rs *reviewSession) snapshot() Session {
	return Session{
		ID:             rs.id,
		OwnerID:        rs.ownerID,
		Filter:         rs.filter,
		Queue:          append([]uuid.UUID(nil), rs.queue...),
		TotalReviewed:  rs.totalReviewed,
		CorrectAnswers: rs.correctAnswers,
		Skipped:        rs.skipped,
		StartedAt:      rs.startedAt,
		LastActivityAt: rs.lastActivityAt,
	}
}

// dropHead removes the queue head after its card turned out to be gone.
func (rs *reviewSession) dropHead() {
	rs.queue = rs.queue[1:]
	rs.skipped++
}

// sessionRegistry holds active sessions keyed by id. Entries expire after
// ttl without activity; the oldest entry is evicted beyond size.
type sessionRegistry struct {
	cache *expirable.LRU[uuid.UUID, *reviewSession]
}

func newSessionRegistry(size int, ttl time.Duration) *sessionRegistry {
	return &sessionRegistry{
		cache: expirable.NewLRU[uuid.UUID, *reviewSession](size, nil, ttl),
	}
}

// put stores the session and restarts its inactivity timer.
func (r *sessionRegistry) put(rs *reviewSession) {
	r.cache.Add(rs.id, rs)
}

// get returns the owner's session. Sessions of other owners are reported
// as not found.
func (r *sessionRegistry) get(ownerID, id uuid.UUID) (*reviewSession, error) {
	rs, ok := r.cache.Get(id)
	if !ok || rs.ownerID != ownerID {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return rs, nil
}

func (r *sessionRegistry) remove(id uuid.UUID) {
	r.cache.Remove(id)
}

func (r *sessionRegistry) count() int {
	return r.cache.Len()
}
