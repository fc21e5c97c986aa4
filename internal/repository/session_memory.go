package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type memSession struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemorySessionRepository keeps blobs in process memory. Used for local runs and tests.
func NewMemorySessionRepository() SessionRepository {
	return &memSession{
		blobs: make(map[string][]byte),
	}
}

func (that *memSession) Load(_ context.Context, id string) ([]byte, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	blob, ok := that.blobs[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return append([]byte(nil), blob...), nil
}

func (that *memSession) Save(_ context.Context, id string, blob []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.blobs[id] = append([]byte(nil), blob...)

	return nil
}

func (that *memSession) Delete(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.blobs, id)

	return nil
}
