package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// SessionRepository stores the serialized record of one browser session as an opaque blob.
type SessionRepository interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, blob []byte) error
	Delete(ctx context.Context, id string) error
}

type dbSession struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewSessionRepository stores blobs in Redis under keyPrefix+id. A zero ttl keeps them forever.
func NewSessionRepository(client *redis.Client, keyPrefix string, ttl time.Duration) SessionRepository {
	return &dbSession{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (that *dbSession) Load(ctx context.Context, id string) ([]byte, error) {
	response, err := that.client.Get(ctx, that.keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return response, nil
}

func (that *dbSession) Save(ctx context.Context, id string, blob []byte) error {
	if err := that.client.Set(ctx, that.keyPrefix+id, blob, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) Delete(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, that.keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
