package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// CartManager хранит последнее подтверждённое сервером состояние корзины
// и применяет мутации через удалённый шлюз. Мутации сериализованы: в полёте
// не более одной, конкурентные вызовы встают в очередь. При отказе шлюза
// прежнее состояние остаётся нетронутым, устанавливается сообщение об ошибке.
type CartManager struct {
	gateway   CartGateway
	events    EventProducer
	logger    logger.Logger
	sessionID string

	// opMu сериализует мутации, mu защищает состояние:
	// снимки читаются без ожидания сетевого вызова
	opMu sync.Mutex
	mu   sync.RWMutex

	cart   domain.Cart
	status OpStatus
}

func NewCartManager(sessionID string, gateway CartGateway, events EventProducer, logger logger.Logger) *CartManager {
	return &CartManager{
		gateway:   gateway,
		events:    events,
		logger:    logger,
		sessionID: sessionID,
	}
}

// Snapshot возвращает снимок последнего подтверждённого состояния
// с производными суммами.
func (m *CartManager) Snapshot() CartSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart := domain.Cart{Items: append([]domain.CartItem(nil), m.cart.Items...)}

	return CartSnapshot{
		Cart:      cart,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
		Status:    m.status,
	}
}

// AddToCart добавляет товар в корзину.
func (m *CartManager) AddToCart(ctx context.Context, productID int64, quantity int) error {
	const op = "CartManager.AddToCart"

	if productID == 0 {
		return e.ErrProductIDRequired
	}
	if quantity < 1 {
		return e.ErrQuantityNotPositive
	}

	err := m.mutate(ctx, "added to cart", func(ctx context.Context) (*domain.Cart, error) {
		return m.gateway.AddItem(ctx, m.sessionID, productID, quantity)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	m.publishCartEvent(productID, quantity)
	return nil
}

// UpdateQuantity меняет количество позиции. Значения ≤ 0 и позиции,
// отсутствующие в подтверждённой корзине, отклоняются до обращения
// к шлюзу и не считаются серверной ошибкой.
func (m *CartManager) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	const op = "CartManager.UpdateQuantity"

	if productID == 0 {
		return e.ErrProductIDRequired
	}
	if quantity <= 0 {
		return e.ErrQuantityNotPositive
	}
	if !m.inCart(productID) {
		return e.ErrNotInCart
	}

	err := m.mutate(ctx, "cart updated", func(ctx context.Context) (*domain.Cart, error) {
		return m.gateway.UpdateItem(ctx, m.sessionID, productID, quantity)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	m.publishCartEvent(productID, quantity)
	return nil
}

// RemoveItem убирает позицию из корзины.
func (m *CartManager) RemoveItem(ctx context.Context, productID int64) error {
	const op = "CartManager.RemoveItem"

	if productID == 0 {
		return e.ErrProductIDRequired
	}
	if !m.inCart(productID) {
		return e.ErrNotInCart
	}

	err := m.mutate(ctx, "removed from cart", func(ctx context.Context) (*domain.Cart, error) {
		return m.gateway.RemoveItem(ctx, m.sessionID, productID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	m.publishCartEvent(productID, 0)
	return nil
}

// ClearCart опустошает корзину.
func (m *CartManager) ClearCart(ctx context.Context) error {
	const op = "CartManager.ClearCart"

	err := m.mutate(ctx, "cart cleared", func(ctx context.Context) (*domain.Cart, error) {
		return m.gateway.Clear(ctx, m.sessionID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	m.publishCartEvent(0, 0)
	return nil
}

// mutate выполняет одну мутацию по машине состояний
// Idle → Pending → {Success | Failed} → Idle. Флаг загрузки снимается
// в любом исходе.
func (m *CartManager) mutate(ctx context.Context, successMsg string, call func(ctx context.Context) (*domain.Cart, error)) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	cart, err := call(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.status.Err = e.UserMessage(err)
		m.status.Success = ""
		return err
	}

	m.cart = *cart
	m.status.Err = ""
	m.status.Success = successMsg

	return nil
}

// inCart проверяет позицию по последнему подтверждённому состоянию,
// не обращаясь к шлюзу.
func (m *CartManager) inCart(productID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.cart.Item(productID)
	return ok
}

func (m *CartManager) setLoading(v bool) {
	m.mu.Lock()
	m.status.Loading = v
	m.mu.Unlock()
}

func (m *CartManager) publishCartEvent(productID int64, quantity int) {
	publishAsync(m.events, m.logger, domain.InteractionEvent{
		EventID:    newEventID(),
		Type:       domain.EventCartUpdated,
		SessionID:  m.sessionID,
		ProductID:  productID,
		Quantity:   quantity,
		OccurredAt: time.Now().UTC(),
	})
}
