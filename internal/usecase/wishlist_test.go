package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// fakeWishlistGateway моделирует серверное множество записей.
type fakeWishlistGateway struct {
	mu        sync.Mutex
	entries   map[int64]domain.WishlistEntry
	addErr    error
	removeErr error
}

func newFakeWishlistGateway() *fakeWishlistGateway {
	return &fakeWishlistGateway{entries: map[int64]domain.WishlistEntry{}}
}

func (f *fakeWishlistGateway) snapshot() *domain.Wishlist {
	entries := make([]domain.WishlistEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		entries = append(entries, entry)
	}
	return &domain.Wishlist{Entries: entries}
}

func (f *fakeWishlistGateway) Add(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.entries[productID] = domain.WishlistEntry{ProductID: productID, AddedAt: time.Now()}
	return f.snapshot(), nil
}

func (f *fakeWishlistGateway) Remove(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return nil, f.removeErr
	}
	delete(f.entries, productID)
	return f.snapshot(), nil
}

func newTestWishlistManager(gw WishlistGateway) *WishlistManager {
	return NewWishlistManager("sess-1", gw, nil, logger.NewNop())
}

func TestWishlistAddAndContains(t *testing.T) {
	gw := newFakeWishlistGateway()
	m := newTestWishlistManager(gw)

	require.NoError(t, m.Add(context.Background(), 7))

	assert.True(t, m.Contains(7))
	assert.False(t, m.Contains(8))

	snap := m.Snapshot()
	assert.Equal(t, "added to wishlist", snap.Status.Success)
	require.Len(t, snap.Wishlist.Entries, 1)
}

func TestWishlistSetSemantics(t *testing.T) {
	gw := newFakeWishlistGateway()
	m := newTestWishlistManager(gw)

	require.NoError(t, m.Add(context.Background(), 7))
	require.NoError(t, m.Add(context.Background(), 7))

	assert.Len(t, m.Snapshot().Wishlist.Entries, 1)
}

func TestWishlistRemoveFailureKeepsState(t *testing.T) {
	gw := newFakeWishlistGateway()
	m := newTestWishlistManager(gw)
	require.NoError(t, m.Add(context.Background(), 7))

	gw.mu.Lock()
	gw.removeErr = e.NewRemoteError(500, "wishlist service down")
	gw.mu.Unlock()

	require.Error(t, m.Remove(context.Background(), 7))

	snap := m.Snapshot()
	assert.True(t, m.Contains(7), "entry retained after failed removal")
	assert.Equal(t, "wishlist service down", snap.Status.Err)
}

func TestMoveToCartSuccess(t *testing.T) {
	wishGw := newFakeWishlistGateway()
	cartGw := &fakeCartGateway{}
	cartGw.setCart(domain.Cart{Items: []domain.CartItem{{ProductID: 7, Price: 100, Quantity: 1}}})

	wish := newTestWishlistManager(wishGw)
	cart := newTestCartManager(cartGw)
	require.NoError(t, wish.Add(context.Background(), 7))

	res, err := wish.MoveToCart(context.Background(), cart, 7)
	require.NoError(t, err)
	assert.True(t, res.AddedToCart)
	assert.True(t, res.RemovedFromWishlist)

	assert.False(t, wish.Contains(7))
	_, inCart := cart.Snapshot().Cart.Item(7)
	assert.True(t, inCart)
}

func TestMoveToCartAddFailureLeavesWishlistIntact(t *testing.T) {
	wishGw := newFakeWishlistGateway()
	cartGw := &fakeCartGateway{}
	cartGw.setErr(e.NewRemoteError(409, "out of stock"))

	wish := newTestWishlistManager(wishGw)
	cart := newTestCartManager(cartGw)
	require.NoError(t, wish.Add(context.Background(), 7))

	res, err := wish.MoveToCart(context.Background(), cart, 7)
	require.Error(t, err)
	assert.False(t, res.AddedToCart)
	assert.False(t, res.RemovedFromWishlist)
	assert.True(t, wish.Contains(7))
}

// Частичный отказ: товар добавлен в корзину, удаление из списка желаний
// не прошло — товар остаётся в обоих местах.
func TestMoveToCartPartialFailureKeepsBoth(t *testing.T) {
	wishGw := newFakeWishlistGateway()
	cartGw := &fakeCartGateway{}
	cartGw.setCart(domain.Cart{Items: []domain.CartItem{{ProductID: 7, Price: 100, Quantity: 1}}})

	wish := newTestWishlistManager(wishGw)
	cart := newTestCartManager(cartGw)
	require.NoError(t, wish.Add(context.Background(), 7))

	wishGw.mu.Lock()
	wishGw.removeErr = e.NewRemoteError(500, "wishlist service down")
	wishGw.mu.Unlock()

	res, err := wish.MoveToCart(context.Background(), cart, 7)
	require.NoError(t, err)
	assert.True(t, res.AddedToCart)
	assert.False(t, res.RemovedFromWishlist)

	assert.True(t, wish.Contains(7))
	_, inCart := cart.Snapshot().Cart.Item(7)
	assert.True(t, inCart)
}

func TestMoveToCartUnknownProduct(t *testing.T) {
	wish := newTestWishlistManager(newFakeWishlistGateway())
	cart := newTestCartManager(&fakeCartGateway{})

	_, err := wish.MoveToCart(context.Background(), cart, 99)
	require.ErrorIs(t, err, e.ErrNotInWishlist)
}
