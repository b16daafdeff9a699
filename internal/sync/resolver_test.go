package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
)

// conflicted pushes a block, edits it on both sides and pulls.
func (h *harness) conflicted(t *testing.T, base, local, remoteTitle string) (*models.Entity, string) {
	t.Helper()
	e, remoteID := h.pushed(t, base)
	h.setTitle(t, e, local)
	h.fake.edit(t, remoteID, "Name", remote.Title(remoteTitle))

	res, err := h.engine.PullFromRemote(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Conflicts, 1)
	require.Equal(t, models.SyncStatusConflict, h.record(t, e.ID).Status)
	return e, remoteID
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in      string
		want    Choice
		wantErr bool
	}{
		{in: "APP", want: ChoiceApp},
		{in: "REMOTE", want: ChoiceRemote},
		{in: "app", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChoice(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChoice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_App(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	resolver := NewResolver(h.engine)

	e, remoteID := h.conflicted(t, "Base", "Mine", "Theirs")

	require.NoError(t, resolver.Resolve(ctx, e.ID, ChoiceApp))

	rec := h.record(t, e.ID)
	assert.Equal(t, models.SyncStatusPending, rec.Status)
	assert.Nil(t, rec.ConflictData)
	assert.True(t, h.store.IsDirty(e.ID))
	assert.Equal(t, "Mine", h.title(t, e.ID))

	// Pull до отправки не возвращает конфликт
	res, err := h.engine.PullFromRemote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Conflicts)
	assert.Equal(t, models.SyncStatusPending, h.record(t, e.ID).Status)

	_, err = h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, h.record(t, e.ID).Status)
	assert.Equal(t, "Mine", h.fake.get(t, remoteID).Properties["Name"].Text)
	assert.False(t, h.store.IsDirty(e.ID))
}

func TestResolve_Remote(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	resolver := NewResolver(h.engine)

	e, _ := h.conflicted(t, "Base", "Mine", "Theirs")
	before, err := h.store.Get(e.ID)
	require.NoError(t, err)

	require.NoError(t, resolver.Resolve(ctx, e.ID, ChoiceRemote))

	rec := h.record(t, e.ID)
	assert.Equal(t, models.SyncStatusSynced, rec.Status)
	assert.Nil(t, rec.ConflictData)
	assert.Equal(t, before.LocalRevision, rec.LastSyncedRevision)

	after, err := h.store.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Theirs", after.Title())
	assert.Equal(t, before.LocalRevision, after.LocalRevision)
	assert.False(t, h.store.IsDirty(e.ID))

	// Обе стороны совпадают
	res, err := h.engine.PullFromRemote(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Unchanged)

	out, err := h.engine.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, out.SyncedCount)
}

func TestResolve_RemoteKeepsEditMadeDuringResolve(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	e, _ := h.conflicted(t, "Base", "Mine", "Theirs")
	racing := &editingStore{Store: h.store, target: e.ID, edit: func() {
		h.setTitle(t, e, "Mine again")
	}}
	resolver := NewResolver(h.newEngine(t, racing))

	err := resolver.Resolve(ctx, e.ID, ChoiceRemote)
	require.ErrorIs(t, err, entitystore.ErrRevisionChanged)

	assert.Equal(t, "Mine again", h.title(t, e.ID))
	assert.True(t, h.store.IsDirty(e.ID))
	assert.Equal(t, models.SyncStatusConflict, h.record(t, e.ID).Status)

	// Повторное решение применяет удалённую версию к свежей ревизии
	require.NoError(t, NewResolver(h.engine).Resolve(ctx, e.ID, ChoiceRemote))
	assert.Equal(t, "Theirs", h.title(t, e.ID))
	assert.False(t, h.store.IsDirty(e.ID))
}

func TestResolve_NotInConflict(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	resolver := NewResolver(h.engine)

	e, _ := h.pushed(t, "calm")

	assert.ErrorIs(t, resolver.Resolve(ctx, e.ID, ChoiceApp), ErrNoConflict)
	assert.ErrorIs(t, resolver.Resolve(ctx, "unknown", ChoiceRemote), ErrNoConflict)
	assert.ErrorIs(t, resolver.Resolve(ctx, e.ID, Choice("BOTH")), ErrInvalidChoice)
}

func TestResolveAll_OrderAndIsolation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	resolver := NewResolver(h.engine)

	first, _ := h.conflicted(t, "one", "one-local", "one-remote")
	second, _ := h.conflicted(t, "two", "two-local", "two-remote")
	third, _ := h.conflicted(t, "three", "three-local", "three-remote")

	views, err := resolver.Conflicts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{views[0].AppID, views[1].AppID, views[2].AppID})
	assert.Equal(t, "one-local", views[0].Title)
	require.NotEmpty(t, views[0].Diffs)
	assert.Equal(t, models.FieldTitle, views[0].Diffs[0].Field)

	// Вторая сущность удалена локально, её разрешение не удаётся
	require.NoError(t, h.store.Delete(second.ID))

	res, err := resolver.ResolveAll(ctx, ChoiceRemote)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Resolved)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, second.ID, res.Errors[0].EntityID)

	assert.Equal(t, "one-remote", h.title(t, first.ID))
	assert.Equal(t, "three-remote", h.title(t, third.ID))
	assert.Equal(t, models.SyncStatusSynced, h.record(t, first.ID).Status)
	assert.Equal(t, models.SyncStatusSynced, h.record(t, third.ID).Status)
	assert.Equal(t, models.SyncStatusConflict, h.record(t, second.ID).Status)
}

func TestResolveAll_InvalidChoice(t *testing.T) {
	h := newHarness(t)
	resolver := NewResolver(h.engine)

	_, err := resolver.ResolveAll(context.Background(), "LATEST")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestDiffFields(t *testing.T) {
	app := models.NewFields(
		models.F(models.FieldTitle, models.StringValue("Launch the pricing page")),
		models.F(models.FieldStatus, models.SelectValue(models.BlockStatusDraft)),
		models.F(models.FieldPublished, models.BoolValue(false)),
	)
	remoteFields := models.NewFields(
		models.F(models.FieldTitle, models.StringValue("Launch the new pricing page")),
		models.F(models.FieldStatus, models.SelectValue(models.BlockStatusLive)),
		models.F(models.FieldPublished, models.BoolValue(false)),
		models.F(models.FieldURL, models.URLValue("https://example.com")),
	)

	diffs := DiffFields(app, remoteFields)
	require.Len(t, diffs, 3)

	assert.Equal(t, models.FieldTitle, diffs[0].Field)
	assert.Equal(t, "Launch the {+new +}pricing page", diffs[0].Pretty())

	assert.Equal(t, models.FieldStatus, diffs[1].Field)
	assert.Empty(t, diffs[1].Changes)
	assert.Equal(t, "DRAFT -> LIVE", diffs[1].Pretty())

	assert.Equal(t, models.FieldURL, diffs[2].Field)
	assert.Equal(t, "https://example.com", diffs[2].Remote)
}
