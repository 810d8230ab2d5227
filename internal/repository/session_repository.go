package repository

import (
	"time"

	"studiekompas/internal/models"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// SessionRepository keeps flow sessions in process memory. Entries expire after
// the configured idle TTL; every lookup slides the expiry forward.
type SessionRepository struct {
	store  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewSessionRepository(ttl, cleanupInterval time.Duration, logger *zap.Logger) *SessionRepository {
	store := cache.New(ttl, cleanupInterval)
	store.OnEvicted(func(key string, _ interface{}) {
		logger.Debug("Session expired", zap.String("session_id", key))
	})
	return &SessionRepository{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *SessionRepository) Create(session *models.Session) {
	r.store.Set(session.ID.String(), session, r.ttl)
}

// GetByID returns the session and refreshes its expiry.
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, bool) {
	v, ok := r.store.Get(id.String())
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.Session)
	if !ok {
		return nil, false
	}
	r.store.Set(id.String(), session, r.ttl)
	return session, true
}

func (r *SessionRepository) Delete(id uuid.UUID) {
	r.store.Delete(id.String())
}

func (r *SessionRepository) Count() int {
	return r.store.ItemCount()
}
