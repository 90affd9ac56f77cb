package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, surface entity.Surface, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, surface entity.Surface, id string) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository stores sessions in Redis; every save refreshes the ttl.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSession) Save(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = time.Now().UTC()

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	err = that.client.Set(ctx, sessionKeyPrefix+session.Key(), sessionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, surface entity.Surface, id string) (*entity.Session, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+entity.SessionKey(surface, id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	var existingSession entity.Session
	if err = json.Unmarshal([]byte(response), &existingSession); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &existingSession, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, surface entity.Surface, id string) error {
	deleted, err := that.client.Del(ctx, sessionKeyPrefix+entity.SessionKey(surface, id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSessionNotFound
	}

	return nil
}
