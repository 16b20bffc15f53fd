package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/internal/repository/redis/converter"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

type fakeStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setHits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeStore) set(ctx context.Context, key string, data []byte) error {
	f.setHits++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = data
	return nil
}

func (f *fakeStore) del(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newTestRepo(st store) *RecencyRepo {
	return &RecencyRepo{
		store:  st,
		conv:   converter.NewRecentEntryConverter(),
		cfg:    &cfg.RecencyCfg{Capacity: 10, KeyPrefix: "storefront:recently_viewed"},
		logger: logger.NewNop(),
		mem:    map[string][]domain.ProductSummary{},
	}
}

func summary(id int64, name string) domain.ProductSummary {
	return domain.NewProductSummary(id, "", name, "", 100)
}

func TestRecordPersistsAndLists(t *testing.T) {
	st := newFakeStore()
	repo := newTestRepo(st)
	ctx := context.Background()

	repo.Record(ctx, "sess-1", summary(1, "A"))
	repo.Record(ctx, "sess-1", summary(2, "B"))

	list := repo.List(ctx, "sess-1")
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)

	// список целиком сериализован под одним ключом сессии
	assert.Contains(t, st.data, "storefront:recently_viewed:sess-1")
}

func TestListSurvivesProcessRestart(t *testing.T) {
	st := newFakeStore()
	ctx := context.Background()

	first := newTestRepo(st)
	first.Record(ctx, "sess-1", summary(1, "A"))
	first.Record(ctx, "sess-1", summary(2, "B"))

	// новый репозиторий с тем же хранилищем: память пуста, читаем из Redis
	second := newTestRepo(st)
	list := second.List(ctx, "sess-1")
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
}

func TestStoreFailureKeepsMemoryState(t *testing.T) {
	st := newFakeStore()
	st.setErr = errors.New("redis: connection refused")
	repo := newTestRepo(st)
	ctx := context.Background()

	repo.Record(ctx, "sess-1", summary(1, "A"))
	repo.Record(ctx, "sess-1", summary(2, "B"))

	// запись в Redis падает, но текущая сессия видит свой список
	list := repo.List(ctx, "sess-1")
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, 2, st.setHits)
}

func TestCorruptPayloadTreatedAsEmpty(t *testing.T) {
	st := newFakeStore()
	st.data["storefront:recently_viewed:sess-1"] = []byte(`{not json`)
	repo := newTestRepo(st)

	list := repo.List(context.Background(), "sess-1")
	assert.Empty(t, list)
}

func TestGetFailureTreatedAsEmpty(t *testing.T) {
	st := newFakeStore()
	st.getErr = errors.New("redis: timeout")
	repo := newTestRepo(st)
	ctx := context.Background()

	assert.Empty(t, repo.List(ctx, "sess-1"))

	// просмотр при сбое чтения всё равно начинает новый список
	repo.Record(ctx, "sess-1", summary(1, "A"))
	// в память попало, несмотря на недоступный Redis
	repo.mu.Lock()
	assert.Len(t, repo.mem["sess-1"], 1)
	repo.mu.Unlock()
}

func TestCapacityEnforcedOnLoad(t *testing.T) {
	st := newFakeStore()
	repo := newTestRepo(st)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		repo.Record(ctx, "sess-1", summary(int64(i), "P"))
	}

	list := repo.List(ctx, "sess-1")
	require.Len(t, list, domain.RecencyCapacity)
	assert.Equal(t, int64(25), list[0].ID)
}

func TestClearRemovesEverywhere(t *testing.T) {
	st := newFakeStore()
	repo := newTestRepo(st)
	ctx := context.Background()

	repo.Record(ctx, "sess-1", summary(1, "A"))
	repo.Clear(ctx, "sess-1")

	assert.Empty(t, repo.List(ctx, "sess-1"))
	assert.NotContains(t, st.data, "storefront:recently_viewed:sess-1")
}

func TestSessionsAreIsolated(t *testing.T) {
	st := newFakeStore()
	repo := newTestRepo(st)
	ctx := context.Background()

	repo.Record(ctx, "sess-1", summary(1, "A"))
	repo.Record(ctx, "sess-2", summary(2, "B"))

	require.Len(t, repo.List(ctx, "sess-1"), 1)
	require.Len(t, repo.List(ctx, "sess-2"), 1)
	assert.Equal(t, int64(1), repo.List(ctx, "sess-1")[0].ID)
}
