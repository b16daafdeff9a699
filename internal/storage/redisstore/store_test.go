package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

func setupTestRedis(t *testing.T, prefix string) (*Store, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	store, err := New(context.Background(), "redis://"+s.Addr(), prefix)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, s
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(context.Background(), "redis://127.0.0.1:1", "")
	assert.Error(t, err)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(context.Background(), "not-a-url", "")
	assert.Error(t, err)
}

func TestStore_Workspace(t *testing.T) {
	store, s := setupTestRedis(t, "")
	ctx := context.Background()

	snap, err := store.LoadWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	assert.Nil(t, snap)

	ts := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, store.SaveWorkspace(ctx, "ws-1", []byte(`{"a":1}`), ts))

	// Ключи совпадают с форматом локального хранилища браузера
	raw, err := s.Get("workspace_ws-1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, raw)
	stamp, err := s.Get("workspace_ws-1_timestamp")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-03T04:05:06.000Z", stamp)

	snap, err = store.LoadWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, `{"a":1}`, string(snap.Data))
	assert.True(t, ts.Equal(snap.Timestamp))
}

func TestStore_WorkspaceMissingTimestamp(t *testing.T) {
	store, s := setupTestRedis(t, "")
	require.NoError(t, s.Set("workspace_ws-2", `{}`))

	snap, err := store.LoadWorkspace(context.Background(), "ws-2")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestStore_Prefix(t *testing.T) {
	store, s := setupTestRedis(t, "canvas:")
	require.NoError(t, store.SaveWorkspace(context.Background(), "w", []byte(`[]`), time.Now()))

	assert.True(t, s.Exists("canvas:workspace_w"))
	assert.True(t, s.Exists("canvas:workspace_w_timestamp"))
}

func TestStore_LastSyncTime(t *testing.T) {
	store, _ := setupTestRedis(t, "")
	ctx := context.Background()

	got, err := store.GetLastSyncTime(ctx, storage.PhasePush)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	want := time.Date(2026, 1, 1, 10, 0, 0, 42, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, storage.PhasePush, want))

	got, err = store.GetLastSyncTime(ctx, storage.PhasePush)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}
