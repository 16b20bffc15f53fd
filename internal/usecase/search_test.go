package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

const testDebounce = 25 * time.Millisecond

type fakeProductGateway struct {
	mu      sync.Mutex
	queries []string
	results map[string][]domain.ProductSummary
	gates   map[string]chan struct{} // запрос блокируется до закрытия канала
	err     error
}

func newFakeProductGateway() *fakeProductGateway {
	return &fakeProductGateway{
		results: map[string][]domain.ProductSummary{},
		gates:   map[string]chan struct{}{},
	}
}

func (f *fakeProductGateway) SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductSummary, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	gate := f.gates[query]
	err := f.err
	res := f.results[query]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (f *fakeProductGateway) ListProducts(ctx context.Context, page, limit int, categoryID int64) (*domain.ProductPage, error) {
	return &domain.ProductPage{Page: page, TotalPages: 1}, nil
}

func (f *fakeProductGateway) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return nil, e.ErrCategoryNotFound
}

func (f *fakeProductGateway) issued() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func newTestPipeline(gw ProductGateway) *SearchPipeline {
	return NewSearchPipeline("sess-1", gw, nil, &cfg.SearchCfg{Debounce: testDebounce, Limit: 8}, logger.NewNop())
}

func TestSearchDebounceCollapsesKeystrokes(t *testing.T) {
	gw := newFakeProductGateway()
	gw.results["abc"] = []domain.ProductSummary{{ID: 1, Name: "ABC Shirt"}}

	p := newTestPipeline(gw)
	defer p.Close()

	p.Input("a")
	p.Input("ab")
	p.Input("abc")

	require.Eventually(t, func() bool {
		return len(p.Snapshot().Results) == 1
	}, time.Second, 5*time.Millisecond)

	// в пределах окна успокоения уходит ровно один запрос — для последнего текста
	assert.Equal(t, []string{"abc"}, gw.issued())

	state := p.Snapshot()
	assert.Equal(t, "abc", state.Query)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
}

func TestSearchEmptyInputCancelsPendingTimer(t *testing.T) {
	gw := newFakeProductGateway()
	p := newTestPipeline(gw)
	defer p.Close()

	p.Input("ab")
	p.Input("")

	time.Sleep(4 * testDebounce)

	assert.Empty(t, gw.issued(), "no network call for cleared input")
	state := p.Snapshot()
	assert.Empty(t, state.Query)
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
}

func TestSearchEmptyInputDropsInFlightResponse(t *testing.T) {
	gw := newFakeProductGateway()
	gate := make(chan struct{})
	gw.gates["shoes"] = gate
	gw.results["shoes"] = []domain.ProductSummary{{ID: 2, Name: "Shoes"}}

	p := newTestPipeline(gw)
	defer p.Close()

	p.Input("shoes")
	require.Eventually(t, func() bool {
		return len(gw.issued()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, p.Snapshot().Loading)

	p.Input("")
	state := p.Snapshot()
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)

	close(gate)
	time.Sleep(4 * testDebounce)

	// поздний ответ вытесненного запроса не попадает в состояние
	assert.Empty(t, p.Snapshot().Results)
	assert.Equal(t, []string{"shoes"}, gw.issued())
}

func TestSearchTimerFiringAfterClearIssuesNoRequest(t *testing.T) {
	gw := newFakeProductGateway()
	gw.results["shoes"] = []domain.ProductSummary{{ID: 2, Name: "Shoes"}}

	// долгий период успокоения: настоящий таймер в тесте не срабатывает
	p := NewSearchPipeline("sess-1", gw, nil, &cfg.SearchCfg{Debounce: time.Minute, Limit: 8}, logger.NewNop())
	defer p.Close()

	p.Input("shoes")
	p.mu.Lock()
	seq := p.seq
	p.mu.Unlock()

	p.Input("")

	// колбэк таймера успел сработать до очистки, но захватил мьютекс
	// после неё: запрос не должен уйти в сеть вовсе
	p.fire(seq, "shoes")

	assert.Empty(t, gw.issued())
	state := p.Snapshot()
	assert.Empty(t, state.Query)
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
}

func TestSearchClearRacingTimerKeepsResultsEmpty(t *testing.T) {
	gw := newFakeProductGateway()
	gw.results["shoes"] = []domain.ProductSummary{{ID: 2, Name: "Shoes"}}

	p := newTestPipeline(gw)
	defer p.Close()

	// очистка приходит в тот же момент, когда срабатывает таймер;
	// при любом исходе гонки результаты после очистки остаются пустыми
	for i := 0; i < 10; i++ {
		p.Input("shoes")
		time.Sleep(testDebounce)
		p.Input("")
		time.Sleep(2 * testDebounce)

		state := p.Snapshot()
		assert.Empty(t, state.Query)
		assert.Empty(t, state.Results)
		assert.False(t, state.Loading)
	}
}

func TestSearchStaleResponseDiscarded(t *testing.T) {
	gw := newFakeProductGateway()
	slowGate := make(chan struct{})
	gw.gates["first"] = slowGate
	gw.results["first"] = []domain.ProductSummary{{ID: 1, Name: "First"}}
	gw.results["second"] = []domain.ProductSummary{{ID: 2, Name: "Second"}}

	p := newTestPipeline(gw)
	defer p.Close()

	p.Input("first")
	require.Eventually(t, func() bool {
		return len(gw.issued()) == 1
	}, time.Second, 5*time.Millisecond)

	p.Input("second")
	require.Eventually(t, func() bool {
		state := p.Snapshot()
		return len(state.Results) == 1 && state.Results[0].ID == 2
	}, time.Second, 5*time.Millisecond)

	// медленный ранний ответ приходит после позднего и отбрасывается
	close(slowGate)
	time.Sleep(4 * testDebounce)

	state := p.Snapshot()
	require.Len(t, state.Results, 1)
	assert.Equal(t, int64(2), state.Results[0].ID)
}

func TestSearchErrorClearsResults(t *testing.T) {
	gw := newFakeProductGateway()
	gw.results["ok"] = []domain.ProductSummary{{ID: 1}}

	p := newTestPipeline(gw)
	defer p.Close()

	p.Input("ok")
	require.Eventually(t, func() bool {
		return len(p.Snapshot().Results) == 1
	}, time.Second, 5*time.Millisecond)

	gw.mu.Lock()
	gw.err = e.NewRemoteError(500, "search backend down")
	gw.mu.Unlock()

	p.Input("fail")
	require.Eventually(t, func() bool {
		return p.Snapshot().Err != ""
	}, time.Second, 5*time.Millisecond)

	state := p.Snapshot()
	assert.Empty(t, state.Results)
	assert.Equal(t, "search backend down", state.Err)
	assert.False(t, state.Loading)
}

func TestSearchWhitespaceOnlyTreatedAsEmpty(t *testing.T) {
	gw := newFakeProductGateway()
	p := newTestPipeline(gw)
	defer p.Close()

	p.Input("   ")
	time.Sleep(4 * testDebounce)

	assert.Empty(t, gw.issued())
}
