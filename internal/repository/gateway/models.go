package gateway

import (
	"time"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/money"
)

// Проводные модели удалённого API. Цены приходят числами в мажорных единицах
// и сразу конвертируются в минорные (int64), вся остальная кодовая база
// с float-ценами не работает.

type imageModel struct {
	URL string `json:"url"`
}

type productModel struct {
	ID            int64        `json:"id"`
	Slug          string       `json:"slug"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	OnSale        bool         `json:"on_sale"`
	DiscountPct   float64      `json:"discount_percentage"`
	SalePrice     float64      `json:"sale_price"`
	StockQuantity int          `json:"stock_quantity"`
	Images        []imageModel `json:"images"`
	CategoryID    int64        `json:"category_id"`
	CategorySlug  string       `json:"category_slug"`
	Rating        float64      `json:"rating"`
	NumReviews    int          `json:"num_reviews"`
}

func (m productModel) toDomain() domain.Product {
	images := make([]domain.Image, 0, len(m.Images))
	for _, img := range m.Images {
		images = append(images, domain.Image{URL: img.URL})
	}

	return domain.Product{
		ID:            m.ID,
		Slug:          m.Slug,
		Name:          m.Name,
		Price:         money.FromMajor(m.Price),
		OnSale:        m.OnSale,
		DiscountPct:   m.DiscountPct,
		SalePrice:     money.FromMajor(m.SalePrice),
		StockQuantity: m.StockQuantity,
		Images:        images,
		CategoryID:    m.CategoryID,
		CategorySlug:  m.CategorySlug,
		Rating:        m.Rating,
		NumReviews:    m.NumReviews,
	}
}

type productPageModel struct {
	Products   []productModel `json:"products"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func (m productPageModel) toDomain() *domain.ProductPage {
	products := make([]domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, p.toDomain())
	}

	return &domain.ProductPage{
		Products:   products,
		Page:       m.Page,
		TotalPages: m.TotalPages,
	}
}

type categoryModel struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func (m categoryModel) toDomain() *domain.Category {
	return domain.NewCategory(m.ID, m.Slug, m.Name)
}

type cartItemModel struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type cartModel struct {
	Items []cartItemModel `json:"items"`
}

func (m cartModel) toDomain() *domain.Cart {
	items := make([]domain.CartItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     money.FromMajor(item.Price),
			Quantity:  item.Quantity,
		})
	}

	return &domain.Cart{Items: items}
}

type wishlistEntryModel struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}

type wishlistModel struct {
	Items []wishlistEntryModel `json:"items"`
}

func (m wishlistModel) toDomain() *domain.Wishlist {
	entries := make([]domain.WishlistEntry, 0, len(m.Items))
	for _, item := range m.Items {
		entries = append(entries, domain.WishlistEntry{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     money.FromMajor(item.Price),
			AddedAt:   item.AddedAt,
		})
	}

	return &domain.Wishlist{Entries: entries}
}

type orderStatusModel struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placed_at"`
	Total       float64   `json:"total"`
}

func (m orderStatusModel) toDomain() *domain.OrderStatus {
	return &domain.OrderStatus{
		OrderNumber: m.OrderNumber,
		Status:      m.Status,
		PlacedAt:    m.PlacedAt,
		Total:       money.FromMajor(m.Total),
	}
}

type postModel struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
}

type postPageModel struct {
	Posts      []postModel `json:"posts"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}

func (m postPageModel) toDomain() *domain.PostPage {
	posts := make([]domain.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, domain.Post{
			ID:          p.ID,
			Slug:        p.Slug,
			Title:       p.Title,
			Excerpt:     p.Excerpt,
			ImageURL:    p.ImageURL,
			PublishedAt: p.PublishedAt,
		})
	}

	return &domain.PostPage{
		Posts:      posts,
		Page:       m.Page,
		TotalPages: m.TotalPages,
	}
}

type addCartItemReq struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartItemReq struct {
	Quantity int `json:"quantity"`
}

type addWishlistItemReq struct {
	ProductID int64 `json:"product_id"`
}
