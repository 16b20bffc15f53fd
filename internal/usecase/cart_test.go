package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

type fakeCartGateway struct {
	mu       sync.Mutex
	cart     domain.Cart
	err      error
	calls    int
	latency  time.Duration
	inFlight int32
	maxSeen  int32
}

func (f *fakeCartGateway) respond() (*domain.Cart, error) {
	current := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if current <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, current) {
			break
		}
	}

	f.mu.Lock()
	f.calls++
	err := f.err
	latency := f.latency
	cart := domain.Cart{Items: append([]domain.CartItem(nil), f.cart.Items...)}
	f.mu.Unlock()

	if latency > 0 {
		time.Sleep(latency)
	}
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (f *fakeCartGateway) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	return f.respond()
}

func (f *fakeCartGateway) UpdateItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	return f.respond()
}

func (f *fakeCartGateway) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	return f.respond()
}

func (f *fakeCartGateway) Clear(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return f.respond()
}

func (f *fakeCartGateway) setCart(cart domain.Cart) {
	f.mu.Lock()
	f.cart = cart
	f.mu.Unlock()
}

func (f *fakeCartGateway) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeCartGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestCartManager(gw CartGateway) *CartManager {
	return NewCartManager("sess-1", gw, nil, logger.NewNop())
}

func TestAddToCartReplacesStateWithServerResponse(t *testing.T) {
	gw := &fakeCartGateway{}
	gw.setCart(domain.Cart{Items: []domain.CartItem{
		{ProductID: 1, Name: "Shirt", Price: 500, Quantity: 2},
		{ProductID: 2, Name: "Hat", Price: 1000, Quantity: 1},
	}})

	m := newTestCartManager(gw)
	require.NoError(t, m.AddToCart(context.Background(), 1, 2))

	snap := m.Snapshot()
	assert.Equal(t, int64(2000), snap.Subtotal)
	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, "added to cart", snap.Status.Success)
	assert.Empty(t, snap.Status.Err)
	assert.False(t, snap.Status.Loading)
}

func TestAddToCartValidatesQuantity(t *testing.T) {
	gw := &fakeCartGateway{}
	m := newTestCartManager(gw)

	err := m.AddToCart(context.Background(), 1, 0)
	require.ErrorIs(t, err, e.ErrQuantityNotPositive)
	assert.Zero(t, gw.callCount(), "validation errors never reach the gateway")

	err = m.AddToCart(context.Background(), 0, 1)
	require.ErrorIs(t, err, e.ErrProductIDRequired)
	assert.Zero(t, gw.callCount())
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	gw := &fakeCartGateway{}
	m := newTestCartManager(gw)

	err := m.UpdateQuantity(context.Background(), 1, 0)
	require.ErrorIs(t, err, e.ErrQuantityNotPositive)

	err = m.UpdateQuantity(context.Background(), 1, -3)
	require.ErrorIs(t, err, e.ErrQuantityNotPositive)

	assert.Zero(t, gw.callCount())
}

func TestUpdateQuantityRequiresItemInCart(t *testing.T) {
	gw := &fakeCartGateway{}
	m := newTestCartManager(gw)

	err := m.UpdateQuantity(context.Background(), 7, 2)
	require.ErrorIs(t, err, e.ErrNotInCart)
	assert.Zero(t, gw.callCount(), "unknown items never reach the gateway")
}

func TestRemoveItemRequiresItemInCart(t *testing.T) {
	gw := &fakeCartGateway{}
	gw.setCart(domain.Cart{Items: []domain.CartItem{{ProductID: 1, Price: 500, Quantity: 1}}})

	m := newTestCartManager(gw)
	require.NoError(t, m.AddToCart(context.Background(), 1, 1))

	err := m.RemoveItem(context.Background(), 2)
	require.ErrorIs(t, err, e.ErrNotInCart)
	assert.Equal(t, 1, gw.callCount(), "only the add reached the gateway")

	require.NoError(t, m.RemoveItem(context.Background(), 1))
}

func TestFailedUpdateKeepsPriorState(t *testing.T) {
	gw := &fakeCartGateway{}
	gw.setCart(domain.Cart{Items: []domain.CartItem{{ProductID: 1, Price: 500, Quantity: 2}}})

	m := newTestCartManager(gw)
	require.NoError(t, m.AddToCart(context.Background(), 1, 2))

	gw.setErr(e.NewRemoteError(409, "not enough stock"))
	err := m.UpdateQuantity(context.Background(), 1, 50)
	require.Error(t, err)

	snap := m.Snapshot()
	item, ok := snap.Cart.Item(1)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity, "prior quantity intact")
	assert.Equal(t, "not enough stock", snap.Status.Err)
	assert.Empty(t, snap.Status.Success)
	assert.False(t, snap.Status.Loading)
}

func TestClearCartYieldsEmptyAuthoritativeState(t *testing.T) {
	gw := &fakeCartGateway{}
	gw.setCart(domain.Cart{Items: []domain.CartItem{{ProductID: 1, Price: 500, Quantity: 1}}})

	m := newTestCartManager(gw)
	require.NoError(t, m.AddToCart(context.Background(), 1, 1))

	gw.setCart(domain.Cart{})
	require.NoError(t, m.ClearCart(context.Background()))

	snap := m.Snapshot()
	assert.Empty(t, snap.Cart.Items)
	assert.Equal(t, int64(0), snap.Subtotal)
}

func TestErrorClearedOnNextSuccess(t *testing.T) {
	gw := &fakeCartGateway{}
	m := newTestCartManager(gw)

	gw.setErr(e.NewRemoteError(500, "boom"))
	require.Error(t, m.AddToCart(context.Background(), 1, 1))
	assert.Equal(t, "boom", m.Snapshot().Status.Err)

	gw.setErr(nil)
	require.NoError(t, m.AddToCart(context.Background(), 1, 1))

	snap := m.Snapshot()
	assert.Empty(t, snap.Status.Err)
	assert.Equal(t, "added to cart", snap.Status.Success)
}

// Мутации сериализованы: шлюз никогда не видит двух запросов одной корзины в полёте.
func TestMutationsSerialized(t *testing.T) {
	gw := &fakeCartGateway{latency: 5 * time.Millisecond}
	m := newTestCartManager(gw)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.AddToCart(context.Background(), 1, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, gw.callCount())
	assert.Equal(t, int32(1), atomic.LoadInt32(&gw.maxSeen))
}
