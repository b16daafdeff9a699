package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
	"github.com/Brommah/contentfinal-sub002/internal/storage/boltdb"
)

const (
	testAPIKey     = "secret_0123456789abcdefghijklmnopqrstuv"
	testBlocksDB   = "0123456789abcdef0123456789abcdef"
	testRoadmapDB  = "fedcba9876543210fedcba9876543210"
	testPageMaxLen = 100
)

func testConfig() Config {
	return Config{
		APIKey:            testAPIKey,
		BlocksDatabaseID:  testBlocksDB,
		RoadmapDatabaseID: testRoadmapDB,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// noDelay returns a pacer that never sleeps but still honours cancellation.
func noDelay() *Pacer {
	return &Pacer{sleep: func(ctx context.Context, d time.Duration) error { return ctx.Err() }}
}

// fakeRemote is an in-memory remote record store.
type fakeRemote struct {
	records  map[string]*remote.Record
	database map[string]string
	now      time.Time
	nextID   int
	pageSize int
	mu       stdsync.Mutex
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		records:  make(map[string]*remote.Record),
		database: make(map[string]string),
		now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		pageSize: testPageMaxLen,
	}
}

func (f *fakeRemote) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func copyRecord(r *remote.Record) *remote.Record {
	out := *r
	out.Properties = make(remote.Properties, len(r.Properties))
	for k, v := range r.Properties {
		out.Properties[k] = v
	}
	return &out
}

func notFound(id string) error {
	return &remote.APIError{Status: 404, Code: "object_not_found", Message: id}
}

func (f *fakeRemote) mock() *remote.StoreMock {
	return &remote.StoreMock{
		CreateRecordFunc: func(ctx context.Context, databaseID string, props remote.Properties) (*remote.Record, error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			f.nextID++
			rec := &remote.Record{
				ID:             fmt.Sprintf("page-%03d", f.nextID),
				Properties:     remote.Properties{},
				LastEditedTime: f.tick(),
			}
			for k, v := range props {
				rec.Properties[k] = v
			}
			f.records[rec.ID] = rec
			f.database[rec.ID] = databaseID
			return copyRecord(rec), nil
		},
		UpdateRecordFunc: func(ctx context.Context, recordID string, props remote.Properties) (*remote.Record, error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			rec, ok := f.records[recordID]
			if !ok || rec.Archived {
				return nil, notFound(recordID)
			}
			for k, v := range props {
				rec.Properties[k] = v
			}
			rec.LastEditedTime = f.tick()
			return copyRecord(rec), nil
		},
		ArchiveRecordFunc: func(ctx context.Context, recordID string) error {
			f.mu.Lock()
			defer f.mu.Unlock()

			rec, ok := f.records[recordID]
			if !ok {
				return notFound(recordID)
			}
			rec.Archived = true
			rec.LastEditedTime = f.tick()
			return nil
		},
		QueryDatabaseFunc: func(ctx context.Context, databaseID string, query remote.Query) (*remote.Page, error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			var ids []string
			for id, db := range f.database {
				if db == databaseID {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)

			start := 0
			if query.StartCursor != "" {
				start = sort.SearchStrings(ids, query.StartCursor)
			}
			end := min(start+f.pageSize, len(ids))

			page := &remote.Page{}
			for _, id := range ids[start:end] {
				page.Results = append(page.Results, *copyRecord(f.records[id]))
			}
			if end < len(ids) {
				page.HasMore = true
				page.NextCursor = ids[end]
			}
			return page, nil
		},
	}
}

// edit changes one property as if a user edited the record remotely.
func (f *fakeRemote) edit(t *testing.T, recordID, property string, p remote.Property) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[recordID]
	require.True(t, ok, "remote record %s", recordID)
	rec.Properties[property] = p
	rec.LastEditedTime = f.tick()
}

// add inserts a record created remotely.
func (f *fakeRemote) add(databaseID string, props remote.Properties) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := fmt.Sprintf("page-%03d", f.nextID)
	f.records[id] = &remote.Record{ID: id, Properties: props, LastEditedTime: f.tick()}
	f.database[id] = databaseID
	return id
}

func (f *fakeRemote) get(t *testing.T, recordID string) *remote.Record {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[recordID]
	require.True(t, ok, "remote record %s", recordID)
	return copyRecord(rec)
}

type harness struct {
	store   *entitystore.Store
	db      *boltdb.Storage
	fake    *fakeRemote
	remote  *remote.StoreMock
	engine  *Engine
	nowTime time.Time
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	db, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	h := &harness{
		store:   entitystore.New(),
		db:      db,
		fake:    newFakeRemote(),
		nowTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	h.remote = h.fake.mock()
	h.engine = h.newEngine(t, h.store, opts...)
	return h
}

// newEngine builds a configured engine over entities sharing the harness
// storage and remote.
func (h *harness) newEngine(t *testing.T, entities EntityStore, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithRemoteFactory(func(Config) remote.Store { return h.remote }),
		WithPacer(noDelay()),
		WithNow(func() time.Time {
			h.nowTime = h.nowTime.Add(time.Second)
			return h.nowTime
		}),
	}
	engine := NewEngine(entities, h.db, h.db, testLogger(), append(base, opts...)...)
	require.NoError(t, engine.Configure(testConfig()))
	return engine
}

// editingStore runs edit once, right after the first Get of target
// returns, imitating a user edit racing with the engine.
type editingStore struct {
	*entitystore.Store
	target string
	edit   func()
	once   stdsync.Once
}

func (s *editingStore) Get(id string) (*models.Entity, error) {
	e, err := s.Store.Get(id)
	if id == s.target {
		s.once.Do(s.edit)
	}
	return e, err
}

func (h *harness) createBlock(t *testing.T, title string) *models.Entity {
	t.Helper()
	e, err := h.store.Create(models.EntityTypeBlock, models.NewFields(
		models.F(models.FieldTitle, models.StringValue(title)),
		models.F(models.FieldContent, models.StringValue("body of "+title)),
	))
	require.NoError(t, err)
	return e
}

func (h *harness) setTitle(t *testing.T, e *models.Entity, title string) *models.Entity {
	t.Helper()
	out, err := h.store.Upsert(e.Type, e.ID, models.NewFields(models.F(models.FieldTitle, models.StringValue(title))))
	require.NoError(t, err)
	return out
}

func (h *harness) record(t *testing.T, id string) *models.SyncRecord {
	t.Helper()
	rec, err := h.db.GetRecord(context.Background(), id)
	require.NoError(t, err)
	return rec
}

func (h *harness) title(t *testing.T, id string) string {
	t.Helper()
	e, err := h.store.Get(id)
	require.NoError(t, err)
	return e.Title()
}

func TestNewEngine_Defaults(t *testing.T) {
	store := entitystore.New()
	engine := NewEngine(store, nil, nil, nil)

	assert.NotNil(t, engine.logger)
	assert.Equal(t, DefaultItemDelay, engine.pacer.ItemDelay)
	assert.Equal(t, DefaultPageDelay, engine.pacer.PageDelay)
	assert.False(t, engine.IsConfigured())
	assert.Len(t, engine.mappers, 2)
}

func TestEngine_Configure(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		field   string
		wantErr bool
	}{
		{name: "valid", cfg: testConfig()},
		{name: "blocks only", cfg: Config{APIKey: testAPIKey, BlocksDatabaseID: testBlocksDB}},
		{name: "missing key", cfg: Config{BlocksDatabaseID: testBlocksDB}, field: "api_key", wantErr: true},
		{name: "no databases", cfg: Config{APIKey: testAPIKey}, field: "database_id", wantErr: true},
		{name: "bad database id", cfg: Config{APIKey: testAPIKey, BlocksDatabaseID: "nope"}, field: "blocks_database_id", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(entitystore.New(), nil, nil, testLogger(),
				WithRemoteFactory(func(Config) remote.Store { return &remote.StoreMock{} }))

			err := engine.Configure(tt.cfg)
			if tt.wantErr {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.field, cfgErr.Field)
				assert.ErrorIs(t, err, ErrNotConfigured)
				assert.False(t, engine.IsConfigured())
				return
			}
			require.NoError(t, err)
			assert.True(t, engine.IsConfigured())
			assert.True(t, engine.GetConfig().Enabled)
		})
	}
}

func TestEngine_NotConfiguredFailsBeforeNetwork(t *testing.T) {
	mock := &remote.StoreMock{}
	engine := NewEngine(entitystore.New(), nil, nil, testLogger(),
		WithRemoteFactory(func(Config) remote.Store { return mock }))
	ctx := context.Background()

	_, err := engine.PushEntities(ctx, []*models.Entity{{ID: "e1", Type: models.EntityTypeBlock}})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = engine.SyncAll(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = engine.PullFromRemote(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = engine.PushDeletions(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.Empty(t, mock.CreateRecordCalls())
	assert.Empty(t, mock.UpdateRecordCalls())
	assert.Empty(t, mock.QueryDatabaseCalls())
	assert.Empty(t, mock.ArchiveRecordCalls())
}

func TestEngine_DisableAutoSync(t *testing.T) {
	h := newHarness(t)
	h.createBlock(t, "A")

	h.engine.DisableAutoSync()
	assert.False(t, h.engine.IsConfigured())
	assert.False(t, h.engine.GetConfig().Enabled)

	_, err := h.engine.SyncAll(context.Background())
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, h.remote.CreateRecordCalls())

	require.NoError(t, h.engine.Configure(testConfig()))
	res, err := h.engine.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.SyncedCount)
}

func TestEngine_Status(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createBlock(t, "A")
	h.createBlock(t, "B")

	_, err := h.engine.PushEntities(ctx, []*models.Entity{a})
	require.NoError(t, err)

	report, err := h.engine.Status(ctx)
	require.NoError(t, err)
	assert.True(t, report.Configured)
	assert.Equal(t, 1, report.Counts[models.SyncStatusSynced])
	assert.Equal(t, 0, report.ConflictCount)
	assert.Equal(t, 1, report.DirtyCount)
	assert.False(t, report.LastPush.IsZero())
	assert.True(t, report.LastPull.IsZero())
}

func TestConfig_Redacted(t *testing.T) {
	cfg := testConfig().Redacted()
	assert.Equal(t, "secr…stuv", cfg.APIKey)
	assert.Equal(t, testBlocksDB, cfg.BlocksDatabaseID)

	assert.Equal(t, "…", Config{APIKey: "short"}.Redacted().APIKey)
	assert.Empty(t, Config{}.Redacted().APIKey)
}

func TestPacer_StopsOnCancel(t *testing.T) {
	p := NewPacer(time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Item(ctx), context.Canceled)
	assert.ErrorIs(t, p.Page(ctx), context.Canceled)
	assert.NoError(t, NewPacer(0, 0).Item(context.Background()))
}
