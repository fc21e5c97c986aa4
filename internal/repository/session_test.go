package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyPrefix = "ttt:session:"

func runRepositoryContract(t *testing.T, ctx context.Context, repo SessionRepository) {
	t.Helper()

	t.Run("Save then Load returns the blob", func(t *testing.T) {
		// Given: a stored blob
		blob := []byte(`{"players":[]}`)
		require.NoError(t, repo.Save(ctx, "s1", blob))

		// When: it is loaded
		loaded, err := repo.Load(ctx, "s1")

		// Then: the same bytes come back
		require.NoError(t, err)
		assert.Equal(t, blob, loaded)
	})

	t.Run("Save overwrites the previous blob", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s2", []byte(`{"v":1}`)))
		require.NoError(t, repo.Save(ctx, "s2", []byte(`{"v":2}`)))

		loaded, err := repo.Load(ctx, "s2")

		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(loaded))
	})

	t.Run("Load of unknown id returns ErrSessionNotFound", func(t *testing.T) {
		loaded, err := repo.Load(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, loaded)
	})

	t.Run("Delete removes the blob", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s3", []byte(`{}`)))

		require.NoError(t, repo.Delete(ctx, "s3"))

		_, err := repo.Load(ctx, "s3")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Delete of unknown id is not an error", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "never-saved"))
	})
}

func TestMemorySessionRepository(t *testing.T) {
	runRepositoryContract(t, context.Background(), NewMemorySessionRepository())
}

func TestMemorySessionRepository_CopiesBlobs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()

	blob := []byte(`{"a":1}`)
	require.NoError(t, repo.Save(ctx, "s", blob))
	blob[2] = 'b'

	loaded, err := repo.Load(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(loaded))
}

func TestRedisSessionRepository(t *testing.T) {
	ctx, st := suite.New(t)

	runRepositoryContract(t, ctx, NewSessionRepository(st.Storage, testKeyPrefix, 0))
}

func TestRedisSessionRepository_KeyAndTTL(t *testing.T) {
	ctx, st := suite.New(t)
	repo := NewSessionRepository(st.Storage, testKeyPrefix, time.Hour)

	// Given: a saved session
	require.NoError(t, repo.Save(ctx, "abc", []byte(`{}`)))

	// Then: it lives under the prefixed key with an expiry
	exists, err := st.Storage.Exists(ctx, testKeyPrefix+"abc").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	ttl, err := st.Storage.TTL(ctx, testKeyPrefix+"abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestPostgresSessionRepository(t *testing.T) {
	ctx, st := suite.NewPostgres(t)

	runRepositoryContract(t, ctx, NewPostgresSessionRepository(st.Postgres))
}
