package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

func TestSaveAndGetLastSyncTime(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально время не сохранено, ожидаем нулевое значение
	got, err := store.GetLastSyncTime(ctx, storage.PhasePull)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	want := time.Date(2026, 6, 1, 12, 0, 0, 500, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, storage.PhasePull, want))

	got, err = store.GetLastSyncTime(ctx, storage.PhasePull)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	// Фазы хранятся независимо
	push, err := store.GetLastSyncTime(ctx, storage.PhasePush)
	require.NoError(t, err)
	assert.True(t, push.IsZero())
}

func TestGetLastSyncTime_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastSyncTime(ctx, storage.PhasePull)
	assert.Error(t, err)
	assert.Error(t, store.SaveLastSyncTime(ctx, storage.PhasePull, time.Now()))
}
