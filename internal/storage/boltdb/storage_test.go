package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func syncedRecord(appID, remoteID string) *models.SyncRecord {
	r := models.NewSyncRecord(appID, models.EntityTypeBlock)
	_ = r.SetRemoteID(remoteID)
	r.MarkSynced(models.NewFields(models.F(models.FieldTitle, models.StringValue("A"))), 3)
	r.LastAppUpdate = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return r
}

func TestStorage_SaveAndGetRecord(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	rec := syncedRecord("app-1", "remote-1")
	require.NoError(t, store.SaveRecord(ctx, rec))

	got, err := store.GetRecord(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "remote-1", got.RemoteID)
	assert.Equal(t, models.SyncStatusSynced, got.Status)
	assert.Equal(t, int64(3), got.LastSyncedRevision)
	assert.True(t, rec.LastSyncedFields.Equal(got.LastSyncedFields))
	assert.True(t, rec.LastAppUpdate.Equal(got.LastAppUpdate))

	byRemote, err := store.GetRecordByRemoteID(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", byRemote.AppID)
}

func TestStorage_GetRecordNotFound(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetRecord(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	_, err = store.GetRecordByRemoteID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_SaveRecordRejectsInvalid(t *testing.T) {
	store := createTestStorage(t)

	rec := models.NewSyncRecord("app-1", models.EntityTypeBlock)
	rec.Status = models.SyncStatusConflict

	err := store.SaveRecord(context.Background(), rec)
	assert.ErrorIs(t, err, models.ErrInvalidSyncRecord)
}

func TestStorage_ConflictRecordRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	rec := syncedRecord("app-1", "remote-1")
	detected := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec.MarkConflict(
		models.NewFields(models.F(models.FieldTitle, models.StringValue("B"))),
		models.NewFields(models.F(models.FieldTitle, models.StringValue("C"))),
		detected, detected, 7,
	)
	require.NoError(t, store.SaveRecord(ctx, rec))

	got, err := store.GetRecord(ctx, "app-1")
	require.NoError(t, err)
	require.NotNil(t, got.ConflictData)
	require.NoError(t, got.Validate())

	app, _ := got.ConflictData.AppVersion.Get(models.FieldTitle)
	remote, _ := got.ConflictData.RemoteVersion.Get(models.FieldTitle)
	assert.Equal(t, "B", app.Str)
	assert.Equal(t, "C", remote.Str)
	assert.Equal(t, int64(7), got.ConflictData.Sequence)
	assert.True(t, detected.Equal(got.ConflictData.DetectedAt))
}

func TestStorage_ListRecords(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRecord(ctx, syncedRecord("b", "rb")))
	require.NoError(t, store.SaveRecord(ctx, syncedRecord("a", "ra")))
	pending := models.NewSyncRecord("c", models.EntityTypeRoadmapItem)
	require.NoError(t, store.SaveRecord(ctx, pending))

	all, err := store.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].AppID)
	assert.Equal(t, "b", all[1].AppID)
	assert.Equal(t, "c", all[2].AppID)

	synced, err := store.ListRecordsByStatus(ctx, models.SyncStatusSynced)
	require.NoError(t, err)
	assert.Len(t, synced, 2)

	errored, err := store.ListRecordsByStatus(ctx, models.SyncStatusError)
	require.NoError(t, err)
	assert.Empty(t, errored)
}

func TestStorage_DeleteRecord(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRecord(ctx, syncedRecord("app-1", "remote-1")))
	require.NoError(t, store.DeleteRecord(ctx, "app-1"))

	_, err := store.GetRecord(ctx, "app-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
	_, err = store.GetRecordByRemoteID(ctx, "remote-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, store.DeleteRecord(ctx, "app-1"))
}

func TestStorage_ClosedStorage(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	ctx := context.Background()
	assert.ErrorIs(t, store.SaveRecord(ctx, syncedRecord("a", "r")), storage.ErrStorageClosed)
	_, err = store.ListRecords(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = store.LoadWorkspace(ctx, "w")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	// Повторное закрытие безопасно
	assert.NoError(t, store.Close())
}
