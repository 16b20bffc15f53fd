package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// WishlistManager хранит последнее подтверждённое сервером состояние списка
// желаний. Мутации сериализованы так же, как в CartManager.
type WishlistManager struct {
	gateway   WishlistGateway
	events    EventProducer
	logger    logger.Logger
	sessionID string

	opMu sync.Mutex
	mu   sync.RWMutex

	wishlist domain.Wishlist
	status   OpStatus
}

func NewWishlistManager(sessionID string, gateway WishlistGateway, events EventProducer, logger logger.Logger) *WishlistManager {
	return &WishlistManager{
		gateway:   gateway,
		events:    events,
		logger:    logger,
		sessionID: sessionID,
	}
}

// Snapshot возвращает снимок списка желаний.
func (m *WishlistManager) Snapshot() WishlistSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return WishlistSnapshot{
		Wishlist: domain.Wishlist{Entries: append([]domain.WishlistEntry(nil), m.wishlist.Entries...)},
		Status:   m.status,
	}
}

// Contains сообщает, есть ли продукт в списке желаний.
func (m *WishlistManager) Contains(productID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.wishlist.Contains(productID)
}

// Add добавляет продукт в список желаний (идемпотентно: сервер хранит множество).
func (m *WishlistManager) Add(ctx context.Context, productID int64) error {
	const op = "WishlistManager.Add"

	if productID == 0 {
		return e.ErrProductIDRequired
	}

	err := m.mutate(ctx, "added to wishlist", func(ctx context.Context) (*domain.Wishlist, error) {
		return m.gateway.Add(ctx, m.sessionID, productID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	m.publishWishlistEvent(productID)
	return nil
}

// Remove убирает продукт из списка желаний.
func (m *WishlistManager) Remove(ctx context.Context, productID int64) error {
	const op = "WishlistManager.Remove"

	if productID == 0 {
		return e.ErrProductIDRequired
	}

	err := m.mutate(ctx, "removed from wishlist", func(ctx context.Context) (*domain.Wishlist, error) {
		return m.gateway.Remove(ctx, m.sessionID, productID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	m.publishWishlistEvent(productID)
	return nil
}

// MoveToCart — составная операция: добавить в корзину и, только если это
// удалось, убрать из списка желаний. Частичный отказ (добавлено, удаление
// не прошло) оставляет товар в обоих местах — данные не теряются,
// исход каждой половины виден в результате.
func (m *WishlistManager) MoveToCart(ctx context.Context, cart *CartManager, productID int64) (*MoveToCartRes, error) {
	const op = "WishlistManager.MoveToCart"

	m.mu.RLock()
	_, ok := m.wishlist.Entry(productID)
	m.mu.RUnlock()
	if !ok {
		return nil, e.ErrNotInWishlist
	}

	res := &MoveToCartRes{}

	if err := cart.AddToCart(ctx, productID, 1); err != nil {
		return res, e.Wrap(op, err)
	}
	res.AddedToCart = true

	if err := m.Remove(ctx, productID); err != nil {
		// товар остаётся и в корзине, и в списке желаний
		m.logger.Warnf("Move to cart: wishlist removal failed, product %d kept in both: %v", productID, err)
		return res, nil
	}
	res.RemovedFromWishlist = true

	return res, nil
}

func (m *WishlistManager) mutate(ctx context.Context, successMsg string, call func(ctx context.Context) (*domain.Wishlist, error)) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	wishlist, err := call(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.status.Err = e.UserMessage(err)
		m.status.Success = ""
		return err
	}

	m.wishlist = *wishlist
	m.status.Err = ""
	m.status.Success = successMsg

	return nil
}

func (m *WishlistManager) setLoading(v bool) {
	m.mu.Lock()
	m.status.Loading = v
	m.mu.Unlock()
}

func (m *WishlistManager) publishWishlistEvent(productID int64) {
	publishAsync(m.events, m.logger, domain.InteractionEvent{
		EventID:    newEventID(),
		Type:       domain.EventWishlistUpdated,
		SessionID:  m.sessionID,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
	})
}
