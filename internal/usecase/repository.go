package usecase

import (
	"context"

	"github.com/posh-choice/storefront-core/internal/domain"
)

// ProductGateway — удалённый storefront API: продукты, поиск, категории.
type ProductGateway interface {
	SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductSummary, error)
	ListProducts(ctx context.Context, page, limit int, categoryID int64) (*domain.ProductPage, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CartGateway — мутации корзины. Каждая операция возвращает полное
// авторитетное состояние корзины с сервера.
type CartGateway interface {
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) (*domain.Cart, error)
}

// WishlistGateway — мутации списка желаний, семантика множества на стороне сервера.
type WishlistGateway interface {
	Add(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error)
	Remove(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error)
}

// OrderGateway — публичный статус заказа.
type OrderGateway interface {
	PublicStatus(ctx context.Context, orderNumber string) (*domain.OrderStatus, error)
}

// BlogGateway — записи блога витрины.
type BlogGateway interface {
	ListPosts(ctx context.Context, page, limit int) (*domain.PostPage, error)
}

// RecencyRepository — локальное долговременное хранилище списка недавно
// просмотренных. Запись и чтение отказоустойчивы: сбой хранилища логируется,
// наружу ошибка не выходит, состояние текущей сессии живёт в памяти.
type RecencyRepository interface {
	Record(ctx context.Context, sessionID string, entry domain.ProductSummary)
	List(ctx context.Context, sessionID string) []domain.ProductSummary
	Clear(ctx context.Context, sessionID string)
}
