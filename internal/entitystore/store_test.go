package entitystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

// fixedClock возвращает управляемые часы для тестов
func fixedClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func title(s string) models.Fields {
	return models.NewFields(models.F(models.FieldTitle, models.StringValue(s)))
}

func TestStore_CreateStartsAtRevisionZero(t *testing.T) {
	store := New()

	e, err := store.Create(models.EntityTypeBlock, title("Hero"))
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, int64(0), e.LocalRevision)
	assert.True(t, store.IsDirty(e.ID))
}

func TestStore_UpsertAlwaysIncrementsRevision(t *testing.T) {
	now, advance := fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	store := New(WithNow(now))

	e, err := store.Create(models.EntityTypeBlock, title("Hero"))
	require.NoError(t, err)

	advance(time.Minute)
	// Те же значения - ревизия всё равно растёт
	updated, err := store.Upsert(models.EntityTypeBlock, e.ID, title("Hero"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.LocalRevision)
	assert.Equal(t, now(), updated.LocalUpdatedAt)

	updated, err = store.Upsert(models.EntityTypeBlock, e.ID, models.NewFields(
		models.F(models.FieldStatus, models.SelectValue(models.BlockStatusLive)),
	))
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.LocalRevision)

	// Частичное обновление сохраняет остальные поля
	v, ok := updated.Fields.Get(models.FieldTitle)
	require.True(t, ok)
	assert.Equal(t, "Hero", v.Str)
}

func TestStore_UpsertCreatesMissing(t *testing.T) {
	store := New()

	e, err := store.Upsert(models.EntityTypeRoadmapItem, "r-1", title("Launch"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.LocalRevision)
	assert.Equal(t, models.EntityTypeRoadmapItem, e.Type)
	assert.True(t, store.IsDirty("r-1"))
}

func TestStore_UpsertTypeMismatch(t *testing.T) {
	store := New()
	_, err := store.Upsert(models.EntityTypeBlock, "x", title("A"))
	require.NoError(t, err)

	_, err = store.Upsert(models.EntityTypeRoadmapItem, "x", title("B"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = store.Upsert(models.EntityType("PAGE"), "y", title("B"))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestStore_ListDirtySince(t *testing.T) {
	store := New()

	a, _ := store.Upsert(models.EntityTypeBlock, "a", title("A"))
	b, _ := store.Upsert(models.EntityTypeBlock, "b", title("B"))
	marker := store.Marker()
	c, _ := store.Upsert(models.EntityTypeBlock, "c", title("C"))
	// Повторная мутация a переносит её в конец
	_, _ = store.Upsert(models.EntityTypeBlock, a.ID, title("A2"))

	all := store.ListDirtySince(0)
	require.Len(t, all, 3)
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, ids(all))

	since := store.ListDirtySince(marker)
	assert.Equal(t, []string{c.ID, a.ID}, ids(since))
}

func TestStore_ClearDirtyChecksRevision(t *testing.T) {
	store := New()
	e, _ := store.Upsert(models.EntityTypeBlock, "a", title("A"))

	// Ревизия ушла вперёд - флаг не снимается
	_, _ = store.Upsert(models.EntityTypeBlock, "a", title("B"))
	assert.False(t, store.ClearDirty("a", e.LocalRevision))
	assert.True(t, store.IsDirty("a"))

	assert.True(t, store.ClearDirty("a", e.LocalRevision+1))
	assert.False(t, store.IsDirty("a"))
	assert.Equal(t, 0, store.DirtyCount())
}

func TestStore_ImportAndApplyRemote(t *testing.T) {
	store := New()

	e, err := store.Import(models.EntityTypeBlock, "r", title("Remote"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.LocalRevision)
	assert.False(t, store.IsDirty("r"))

	_, err = store.Import(models.EntityTypeBlock, "r", title("Again"))
	assert.ErrorIs(t, err, ErrEntityExists)

	_, _ = store.Upsert(models.EntityTypeBlock, "r", title("Local"))
	require.True(t, store.IsDirty("r"))

	_, err = store.ApplyRemote("r", 0, title("Stale"))
	assert.ErrorIs(t, err, ErrRevisionChanged)
	assert.True(t, store.IsDirty("r"))

	applied, err := store.ApplyRemote("r", 1, title("Remote 2"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), applied.LocalRevision, "remote writes never bump the revision")
	assert.False(t, store.IsDirty("r"))
	assert.Equal(t, "Remote 2", applied.Title())

	_, err = store.ApplyRemote("missing", 0, title("x"))
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestStore_DeleteLeavesTombstone(t *testing.T) {
	store := New()
	e, _ := store.Upsert(models.EntityTypeRoadmapItem, "a", title("A"))

	require.NoError(t, store.Delete(e.ID))
	_, err := store.Get(e.ID)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.False(t, store.IsDirty(e.ID))

	tombs := store.Deleted()
	require.Len(t, tombs, 1)
	assert.Equal(t, e.ID, tombs[0].ID)
	assert.Equal(t, models.EntityTypeRoadmapItem, tombs[0].Type)

	store.ForgetDeleted(e.ID)
	assert.Empty(t, store.Deleted())

	assert.ErrorIs(t, store.Delete("missing"), ErrEntityNotFound)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := New()
	_, _ = store.Upsert(models.EntityTypeBlock, "a", title("A"))

	e, err := store.Get("a")
	require.NoError(t, err)
	e.Fields[0].Value.Str = "mutated"

	again, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Title())
}

func TestStore_Subscribe(t *testing.T) {
	store := New()
	var changes []Change
	store.Subscribe(func(c Change) { changes = append(changes, c) })

	e, _ := store.Upsert(models.EntityTypeBlock, "a", title("A"))
	_, _ = store.ApplyRemote("a", e.LocalRevision, title("B"))
	_ = store.Delete("a")

	require.Len(t, changes, 3)
	assert.Equal(t, ChangeLocal, changes[0].Kind)
	assert.Equal(t, ChangeRemote, changes[1].Kind)
	assert.Equal(t, ChangeDelete, changes[2].Kind)
	assert.Nil(t, changes[2].Entity)
}

func TestStore_RestoreAndMarkDirty(t *testing.T) {
	store := New()
	store.Restore([]*models.Entity{
		{ID: "a", Type: models.EntityTypeBlock, Fields: title("A"), LocalRevision: 4},
		{ID: "b", Type: models.EntityTypeBlock, Fields: title("B"), LocalRevision: 1},
	})

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 0, store.DirtyCount())

	require.NoError(t, store.MarkDirty("a"))
	assert.Equal(t, []string{"a"}, ids(store.ListDirtySince(0)))
	assert.ErrorIs(t, store.MarkDirty("zzz"), ErrEntityNotFound)

	all := store.All()
	assert.Equal(t, []string{"a", "b"}, ids(all))
}

func TestStore_RevisionNeverDecreases(t *testing.T) {
	store := New()
	var last int64 = -1
	for i := 0; i < 20; i++ {
		e, err := store.Upsert(models.EntityTypeBlock, "a", title("A"))
		require.NoError(t, err)
		assert.Greater(t, e.LocalRevision, last)
		last = e.LocalRevision

		if i%5 == 0 {
			_, err = store.ApplyRemote("a", e.LocalRevision, title("R"))
			require.NoError(t, err)
		}
	}
}

func ids(entities []*models.Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.ID)
	}
	return out
}

func TestStore_RestoreDeleted(t *testing.T) {
	store := New()
	store.Restore([]*models.Entity{{ID: "live", Type: models.EntityTypeBlock}})

	at := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	store.RestoreDeleted([]Tombstone{
		{ID: "gone", Type: models.EntityTypeRoadmapItem, DeletedAt: at},
		{ID: "live", Type: models.EntityTypeBlock, DeletedAt: at},
	})

	assert.True(t, store.IsDeleted("gone"))
	assert.False(t, store.IsDeleted("live"), "существующая сущность не становится надгробием")
	require.Len(t, store.Deleted(), 1)
	assert.Equal(t, models.EntityTypeRoadmapItem, store.Deleted()[0].Type)
}

func TestStore_RaiseRevision(t *testing.T) {
	store := New()
	store.Restore([]*models.Entity{{ID: "a", Type: models.EntityTypeBlock, Fields: title("A"), LocalRevision: 4}})

	e, err := store.RaiseRevision("a", 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), e.LocalRevision)

	e, err = store.RaiseRevision("a", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), e.LocalRevision)
	assert.False(t, store.IsDirty("a"))

	next, err := store.Upsert(models.EntityTypeBlock, "a", title("B"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), next.LocalRevision)

	_, err = store.RaiseRevision("missing", 1)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}
