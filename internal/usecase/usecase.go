package usecase

import (
	"context"

	"github.com/posh-choice/storefront-core/internal/domain"
)

// CatalogUC — операции просмотра каталога, выполняемые напрямую против удалённого API.
type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*domain.ProductPage, error)
	SearchOnce(ctx context.Context, query string, limit int) ([]domain.ProductSummary, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListPosts(ctx context.Context, page, limit int) (*domain.PostPage, error)
}

// OrderUC — публичная проверка статуса заказа по номеру (без аутентификации).
type OrderUC interface {
	PublicStatus(ctx context.Context, orderNumber string) (*domain.OrderStatus, error)
}

// RecencyUC — список недавно просмотренных товаров сессии.
// Операции отказоустойчивы: сбой хранилища не возвращается вызывающей стороне.
type RecencyUC interface {
	Record(ctx context.Context, sessionID string, entry domain.ProductSummary)
	List(ctx context.Context, sessionID string) []domain.ProductSummary
	Clear(ctx context.Context, sessionID string)
}
