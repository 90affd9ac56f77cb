package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

type memoryItem struct {
	session   entity.Session
	expiresAt time.Time
}

// MemorySessionRepository keeps sessions in process memory with a ttl per entry.
// Expired entries are hidden on read and removed by RunJanitor.
type MemorySessionRepository struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (that *MemorySessionRepository) Save(_ context.Context, session *entity.Session) error {
	now := that.now()
	session.UpdatedAt = now.UTC()

	that.mu.Lock()
	defer that.mu.Unlock()

	that.items[session.Key()] = memoryItem{
		session:   *session,
		expiresAt: now.Add(that.ttl),
	}

	return nil
}

func (that *MemorySessionRepository) GetByID(_ context.Context, surface entity.Surface, id string) (*entity.Session, error) {
	key := entity.SessionKey(surface, id)

	that.mu.RLock()
	item, ok := that.items[key]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	if that.isExpired(item) {
		that.mu.Lock()
		if current, ok := that.items[key]; ok && that.isExpired(current) {
			delete(that.items, key)
		}
		that.mu.Unlock()

		return nil, apperror.ErrSessionNotFound
	}

	session := item.session

	return &session, nil
}

func (that *MemorySessionRepository) DeleteByID(_ context.Context, surface entity.Surface, id string) error {
	key := entity.SessionKey(surface, id)

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.items[key]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.items, key)

	return nil
}

// Len counts stored entries, expired ones included until they are evicted.
func (that *MemorySessionRepository) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.items)
}

// EvictExpired drops every expired entry and reports how many were removed.
func (that *MemorySessionRepository) EvictExpired() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	evicted := 0
	for key, item := range that.items {
		if that.isExpired(item) {
			delete(that.items, key)
			evicted++
		}
	}

	return evicted
}

// RunJanitor evicts expired sessions every interval until ctx is done.
func (that *MemorySessionRepository) RunJanitor(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	log := logger.With("method", "RunJanitor")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := that.EvictExpired(); evicted > 0 {
				log.Debug("evicted expired sessions", "count", evicted)
			}
		}
	}
}

func (that *MemorySessionRepository) isExpired(item memoryItem) bool {
	return !that.now().Before(item.expiresAt)
}
