package draftstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/infrastructure/draftstore"
)

func newTestClient(t *testing.T) *redis.Client {
	client, _ := newTestClientWithServer(t)
	return client
}

func newTestClientWithServer(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestRedisDraftStore_PutGet(t *testing.T) {
	store := draftstore.NewRedisDraftStore(newTestClient(t), 0)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-1", port.DraftKeyBasicInfo, []byte(`{"first_name":"Ada"}`)))

	raw, err := store.Get(ctx, "session-1", port.DraftKeyBasicInfo)
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"Ada"}`, string(raw))
}

func TestRedisDraftStore_MissingKey(t *testing.T) {
	store := draftstore.NewRedisDraftStore(newTestClient(t), 0)

	_, err := store.Get(context.Background(), "session-1", port.DraftKeyDocuments)
	assert.ErrorIs(t, err, port.ErrDraftKeyNotFound)
}

func TestRedisDraftStore_SessionsAreIsolated(t *testing.T) {
	store := draftstore.NewRedisDraftStore(newTestClient(t), 0)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-1", port.DraftKeyStagePointer, []byte("2")))

	_, err := store.Get(ctx, "session-2", port.DraftKeyStagePointer)
	assert.ErrorIs(t, err, port.ErrDraftKeyNotFound)
}

func TestRedisDraftStore_ClearRemovesEveryKey(t *testing.T) {
	store := draftstore.NewRedisDraftStore(newTestClient(t), 0)
	ctx := context.Background()

	for _, key := range port.AllDraftKeys {
		require.NoError(t, store.Put(ctx, "session-1", key, []byte("x")))
	}
	require.NoError(t, store.Put(ctx, "session-2", port.DraftKeyBasicInfo, []byte("y")))

	require.NoError(t, store.Clear(ctx, "session-1"))

	for _, key := range port.AllDraftKeys {
		_, err := store.Get(ctx, "session-1", key)
		assert.ErrorIs(t, err, port.ErrDraftKeyNotFound, "key %s must be gone", key)
	}
	// Other sessions are untouched.
	_, err := store.Get(ctx, "session-2", port.DraftKeyBasicInfo)
	assert.NoError(t, err)
}

func TestRedisDraftStore_AbandonedSessionExpires(t *testing.T) {
	client, mr := newTestClientWithServer(t)
	store := draftstore.NewRedisDraftStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-1", port.DraftKeyBasicInfo, []byte("x")))

	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "session-1", port.DraftKeyBasicInfo)
	assert.ErrorIs(t, err, port.ErrDraftKeyNotFound)
}

func TestRedisDraftStore_WriteRestartsExpiry(t *testing.T) {
	client, mr := newTestClientWithServer(t)
	store := draftstore.NewRedisDraftStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-1", port.DraftKeyBasicInfo, []byte("x")))
	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Put(ctx, "session-1", port.DraftKeyBasicInfo, []byte("y")))
	mr.FastForward(45 * time.Minute)

	raw, err := store.Get(ctx, "session-1", port.DraftKeyBasicInfo)
	require.NoError(t, err)
	assert.Equal(t, "y", string(raw))
}

func TestRedisChallengeStore_TakeIsDestructive(t *testing.T) {
	store := draftstore.NewRedisChallengeStore(newTestClient(t))
	ctx := context.Background()

	challenge, err := model.NewStepUpChallenge(
		"rec-1", "profile-1", "reviewer-1", "approve note", 5*time.Minute, time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, challenge))

	taken, err := store.Take(ctx, challenge.Token)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", taken.RecordID)
	assert.Equal(t, "approve note", taken.Note)

	_, err = store.Take(ctx, challenge.Token)
	assert.ErrorIs(t, err, port.ErrChallengeNotFound)
}

func TestRedisChallengeStore_UnknownToken(t *testing.T) {
	store := draftstore.NewRedisChallengeStore(newTestClient(t))

	_, err := store.Take(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, port.ErrChallengeNotFound)
}

func TestRedisChallengeStore_ExpiredChallengeRejectedOnPut(t *testing.T) {
	store := draftstore.NewRedisChallengeStore(newTestClient(t))

	challenge, err := model.NewStepUpChallenge(
		"rec-1", "profile-1", "reviewer-1", "note", time.Millisecond, time.Now().UTC().Add(-time.Second),
	)
	require.NoError(t, err)

	assert.Error(t, store.Put(context.Background(), challenge))
}
