package usecase

import "github.com/posh-choice/storefront-core/internal/domain"

// OpStatus — волатильное состояние последней операции менеджера:
// флаг загрузки и транзиентные сообщения об успехе/ошибке.
type OpStatus struct {
	Loading bool
	Err     string
	Success string
}

// SearchState — снимок состояния конвейера поиска.
type SearchState struct {
	Query   string
	Results []domain.ProductSummary
	Loading bool
	Err     string
}

// CartSnapshot — снимок последнего подтверждённого состояния корзины
// с производными суммами.
type CartSnapshot struct {
	Cart      domain.Cart
	Subtotal  int64
	ItemCount int
	Status    OpStatus
}

// WishlistSnapshot — снимок списка желаний.
type WishlistSnapshot struct {
	Wishlist domain.Wishlist
	Status   OpStatus
}

// ListProductsReq — запрос страницы каталога, опционально с фильтром по категории.
type ListProductsReq struct {
	Page       int
	Limit      int
	CategoryID int64
}

// MoveToCartRes — исход составной операции "переместить в корзину".
// Частичный отказ (добавлено, но не удалено из списка желаний) оставляет
// товар в обоих местах.
type MoveToCartRes struct {
	AddedToCart         bool
	RemovedFromWishlist bool
}

func NewListProductsReq(page, limit int, categoryID int64) *ListProductsReq {
	return &ListProductsReq{
		Page:       page,
		Limit:      limit,
		CategoryID: categoryID,
	}
}
