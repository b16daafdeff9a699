package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/mapper"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

func TestPushEntities_CreateThenUpdate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	e := h.createBlock(t, "Launch plan")

	res, err := h.engine.PushEntities(ctx, []*models.Entity{e})
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Equal(t, 0, res.FailedCount)
	assert.False(t, res.Timestamp.IsZero())
	require.Len(t, h.remote.CreateRecordCalls(), 1)
	assert.Equal(t, testBlocksDB, h.remote.CreateRecordCalls()[0].DatabaseID)

	rec := h.record(t, e.ID)
	assert.Equal(t, models.SyncStatusSynced, rec.Status)
	assert.NotEmpty(t, rec.RemoteID)
	assert.True(t, rec.LastAppUpdate.Equal(e.LocalUpdatedAt))
	assert.False(t, h.store.IsDirty(e.ID))

	remoteRec := h.fake.get(t, rec.RemoteID)
	assert.Equal(t, "Launch plan", remoteRec.Properties["Name"].Text)
	assert.Equal(t, e.ID, mapper.AppID(remoteRec.Properties))

	// Повторная отправка обновляет ту же запись
	res, err = h.engine.PushEntities(ctx, []*models.Entity{e})
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Len(t, h.remote.CreateRecordCalls(), 1)
	require.Len(t, h.remote.UpdateRecordCalls(), 1)
	assert.Equal(t, rec.RemoteID, h.remote.UpdateRecordCalls()[0].RecordID)

	again := h.record(t, e.ID)
	assert.Equal(t, rec.RemoteID, again.RemoteID)
	assert.Equal(t, models.SyncStatusSynced, again.Status)
	assert.True(t, rec.LastSyncedFields.Equal(again.LastSyncedFields))
}

func TestPushEntities_PartialFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	e1 := h.createBlock(t, "one")
	e2 := h.createBlock(t, "two")
	e3 := h.createBlock(t, "three")

	create := h.remote.CreateRecordFunc
	h.remote.CreateRecordFunc = func(ctx context.Context, databaseID string, props remote.Properties) (*remote.Record, error) {
		if mapper.AppID(props) == e2.ID {
			return nil, &remote.APIError{Status: 401, Code: "unauthorized", Message: "API token is invalid."}
		}
		return create(ctx, databaseID, props)
	}

	res, err := h.engine.PushEntities(ctx, []*models.Entity{e1, e2, e3})
	require.NoError(t, err)
	assert.Equal(t, 2, res.SyncedCount)
	assert.Equal(t, 1, res.FailedCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, e2.ID, res.Errors[0].EntityID)
	assert.Len(t, h.remote.CreateRecordCalls(), 3)

	assert.Equal(t, models.SyncStatusSynced, h.record(t, e1.ID).Status)
	assert.Equal(t, models.SyncStatusSynced, h.record(t, e3.ID).Status)

	failed := h.record(t, e2.ID)
	assert.Equal(t, models.SyncStatusError, failed.Status)
	assert.Empty(t, failed.RemoteID)
	assert.Contains(t, failed.LastError, "API token is invalid")
	assert.True(t, h.store.IsDirty(e2.ID))
}

func TestPushEntities_ConcurrentEditKeepsDirty(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	e := h.createBlock(t, "draft")

	create := h.remote.CreateRecordFunc
	h.remote.CreateRecordFunc = func(ctx context.Context, databaseID string, props remote.Properties) (*remote.Record, error) {
		// Пользователь редактирует сущность, пока запрос в пути
		h.setTitle(t, e, "edited mid-flight")
		return create(ctx, databaseID, props)
	}

	res, err := h.engine.PushEntities(ctx, []*models.Entity{e})
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Equal(t, 1, res.RequeuedCount)

	rec := h.record(t, e.ID)
	assert.Equal(t, models.SyncStatusPending, rec.Status)
	assert.NotEmpty(t, rec.RemoteID)
	assert.Equal(t, int64(0), rec.LastSyncedRevision)
	assert.True(t, h.store.IsDirty(e.ID))

	// Следующий sync отправляет новое значение
	h.remote.CreateRecordFunc = create
	res, err = h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Equal(t, 0, res.RequeuedCount)
	assert.Equal(t, models.SyncStatusSynced, h.record(t, e.ID).Status)
	assert.False(t, h.store.IsDirty(e.ID))
	assert.Equal(t, "edited mid-flight", h.fake.get(t, rec.RemoteID).Properties["Name"].Text)
}

func TestPushEntities_SkipsConflicts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	e := h.createBlock(t, "contested")
	rec := models.NewSyncRecord(e.ID, e.Type)
	require.NoError(t, rec.SetRemoteID("page-x"))
	rec.MarkConflict(e.Fields, e.Fields, h.nowTime, h.nowTime, 1)
	require.NoError(t, h.db.SaveRecord(ctx, rec))

	res, err := h.engine.PushEntities(ctx, []*models.Entity{e})
	require.NoError(t, err)
	assert.Equal(t, 0, res.SyncedCount)
	assert.Equal(t, 1, res.SkippedCount)
	assert.Empty(t, h.remote.CreateRecordCalls())
	assert.Empty(t, h.remote.UpdateRecordCalls())
	assert.Equal(t, models.SyncStatusConflict, h.record(t, e.ID).Status)
	assert.True(t, h.store.IsDirty(e.ID))
}

func TestPushEntities_MissingDatabaseForKind(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.engine.Configure(Config{APIKey: testAPIKey, BlocksDatabaseID: testBlocksDB}))

	item, err := h.store.Create(models.EntityTypeRoadmapItem, models.NewFields(
		models.F(models.FieldTitle, models.StringValue("Q3 launch")),
	))
	require.NoError(t, err)

	res, err := h.engine.PushEntities(ctx, []*models.Entity{item})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, models.SyncStatusError, h.record(t, item.ID).Status)
	assert.Empty(t, h.remote.CreateRecordCalls())
}

func TestPushEntities_Progress(t *testing.T) {
	var events []Progress
	h := newHarness(t, WithProgress(func(p Progress) { events = append(events, p) }))

	a := h.createBlock(t, "A")
	b := h.createBlock(t, "B")

	_, err := h.engine.PushEntities(context.Background(), []*models.Entity{a, b})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, Progress{Phase: PhasePush, EntityID: a.ID, Title: "A", Status: models.SyncStatusSynced, Current: 1, Total: 2}, events[0])
	assert.Equal(t, Progress{Phase: PhasePush, EntityID: b.ID, Title: "B", Status: models.SyncStatusSynced, Current: 2, Total: 2}, events[1])
}

func TestPushEntities_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newHarness(t, WithProgress(func(p Progress) {
		if p.Current == 1 {
			cancel()
		}
	}))

	a := h.createBlock(t, "A")
	b := h.createBlock(t, "B")

	res, err := h.engine.PushEntities(ctx, []*models.Entity{a, b})
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Len(t, h.remote.CreateRecordCalls(), 1)
	assert.True(t, h.store.IsDirty(b.ID))
}

func TestSyncAll_DirtyAndRetrySet(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createBlock(t, "A")
	b := h.createBlock(t, "B")

	fail := true
	create := h.remote.CreateRecordFunc
	h.remote.CreateRecordFunc = func(ctx context.Context, databaseID string, props remote.Properties) (*remote.Record, error) {
		if fail && mapper.AppID(props) == b.ID {
			return nil, &remote.APIError{Status: 429, Code: "rate_limited", Message: "slow down"}
		}
		return create(ctx, databaseID, props)
	}

	res, err := h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, models.SyncStatusSynced, h.record(t, a.ID).Status)
	assert.Equal(t, models.SyncStatusError, h.record(t, b.ID).Status)

	// Повтор: отправляется только сущность с ошибкой
	fail = false
	res, err = h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Equal(t, 0, res.FailedCount)
	assert.Equal(t, models.SyncStatusSynced, h.record(t, b.ID).Status)
	assert.Empty(t, h.record(t, b.ID).LastError)
	assert.Len(t, h.remote.UpdateRecordCalls(), 0)

	// Ничего не изменилось, sync ничего не отправляет
	res, err = h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.SyncedCount)
	assert.Len(t, h.remote.CreateRecordCalls(), 3)
}

func TestSyncAll_DirtyOrder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createBlock(t, "A")
	b := h.createBlock(t, "B")
	_, err := h.engine.SyncAll(ctx)
	require.NoError(t, err)

	h.setTitle(t, b, "B2")
	h.setTitle(t, a, "A2")

	_, err = h.engine.SyncAll(ctx)
	require.NoError(t, err)

	calls := h.remote.UpdateRecordCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, h.record(t, b.ID).RemoteID, calls[0].RecordID)
	assert.Equal(t, h.record(t, a.ID).RemoteID, calls[1].RecordID)
}

func TestSyncAll_PushesDeletions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createBlock(t, "A")
	b := h.createBlock(t, "never synced")
	_, err := h.engine.PushEntities(ctx, []*models.Entity{a})
	require.NoError(t, err)
	remoteID := h.record(t, a.ID).RemoteID

	require.NoError(t, h.store.Delete(a.ID))
	require.NoError(t, h.store.Delete(b.ID))

	res, err := h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.DeletedCount)
	assert.Equal(t, 0, res.FailedCount)

	require.Len(t, h.remote.ArchiveRecordCalls(), 1)
	assert.Equal(t, remoteID, h.remote.ArchiveRecordCalls()[0].RecordID)
	assert.True(t, h.fake.get(t, remoteID).Archived)

	_, err = h.db.GetRecord(ctx, a.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
	assert.Empty(t, h.store.Deleted())
}

func TestPushDeletions_FailureKeepsTombstone(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createBlock(t, "A")
	_, err := h.engine.PushEntities(ctx, []*models.Entity{a})
	require.NoError(t, err)
	require.NoError(t, h.store.Delete(a.ID))

	h.remote.ArchiveRecordFunc = func(ctx context.Context, recordID string) error {
		return errors.New("connection reset")
	}

	res, err := h.engine.PushDeletions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, 0, res.DeletedCount)
	assert.True(t, h.store.IsDeleted(a.ID))
	assert.Equal(t, models.SyncStatusError, h.record(t, a.ID).Status)
}

func TestPushDeletions_RemoteAlreadyGone(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createBlock(t, "A")
	_, err := h.engine.PushEntities(ctx, []*models.Entity{a})
	require.NoError(t, err)
	require.NoError(t, h.store.Delete(a.ID))

	h.remote.ArchiveRecordFunc = func(ctx context.Context, recordID string) error {
		return notFound(recordID)
	}

	res, err := h.engine.PushDeletions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.DeletedCount)
	assert.False(t, h.store.IsDeleted(a.ID))
}
