package http

import (
	"time"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/internal/usecase"
	"github.com/posh-choice/storefront-core/pkg/money"
)

// Валюта витрины фиксирована; цены наружу отдаются в минорных единицах
// плюс готовая к показу строка.
const displayCurrency = "USD"

type productSummaryResponse struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
}

func toProductSummaryResponse(s domain.ProductSummary) productSummaryResponse {
	return productSummaryResponse{
		ID:           s.ID,
		Slug:         s.Slug,
		Name:         s.Name,
		ImageURL:     s.ImageURL,
		Price:        s.Price,
		PriceDisplay: money.Format(s.Price, displayCurrency),
	}
}

func toArrProductSummaryResponse(list []domain.ProductSummary) []productSummaryResponse {
	out := make([]productSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toProductSummaryResponse(s))
	}

	return out
}

type searchStateResponse struct {
	Query   string                   `json:"query"`
	Results []productSummaryResponse `json:"results"`
	Loading bool                     `json:"loading"`
	Error   string                   `json:"error,omitempty"`
}

func toSearchStateResponse(state usecase.SearchState) searchStateResponse {
	return searchStateResponse{
		Query:   state.Query,
		Results: toArrProductSummaryResponse(state.Results),
		Loading: state.Loading,
		Error:   state.Err,
	}
}

type cartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

type cartResponse struct {
	Items           []cartItemResponse `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	ItemCount       int                `json:"item_count"`
	Loading         bool               `json:"loading"`
	Error           string             `json:"error,omitempty"`
	Success         string             `json:"success,omitempty"`
}

func toCartResponse(snap usecase.CartSnapshot) cartResponse {
	items := make([]cartItemResponse, 0, len(snap.Cart.Items))
	for _, item := range snap.Cart.Items {
		items = append(items, cartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	return cartResponse{
		Items:           items,
		Subtotal:        snap.Subtotal,
		SubtotalDisplay: money.Format(snap.Subtotal, displayCurrency),
		ItemCount:       snap.ItemCount,
		Loading:         snap.Status.Loading,
		Error:           snap.Status.Err,
		Success:         snap.Status.Success,
	}
}

type wishlistEntryResponse struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Price     int64     `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}

type wishlistResponse struct {
	Entries []wishlistEntryResponse `json:"entries"`
	Loading bool                    `json:"loading"`
	Error   string                  `json:"error,omitempty"`
	Success string                  `json:"success,omitempty"`
}

func toWishlistResponse(snap usecase.WishlistSnapshot) wishlistResponse {
	entries := make([]wishlistEntryResponse, 0, len(snap.Wishlist.Entries))
	for _, entry := range snap.Wishlist.Entries {
		entries = append(entries, wishlistEntryResponse{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			ImageURL:  entry.ImageURL,
			Price:     entry.Price,
			AddedAt:   entry.AddedAt,
		})
	}

	return wishlistResponse{
		Entries: entries,
		Loading: snap.Status.Loading,
		Error:   snap.Status.Err,
		Success: snap.Status.Success,
	}
}

type moveToCartResponse struct {
	AddedToCart         bool `json:"added_to_cart"`
	RemovedFromWishlist bool `json:"removed_from_wishlist"`
}

type productResponse struct {
	ID            int64    `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OnSale        bool     `json:"on_sale"`
	DiscountPct   float64  `json:"discount_percentage,omitempty"`
	SalePrice     int64    `json:"sale_price,omitempty"`
	PriceDisplay  string   `json:"price_display"`
	StockQuantity int      `json:"stock_quantity"`
	Images        []string `json:"images"`
	CategoryID    int64    `json:"category_id"`
	CategorySlug  string   `json:"category_slug"`
	Rating        float64  `json:"rating"`
	NumReviews    int      `json:"num_reviews"`
}

type productPageResponse struct {
	Products   []productResponse `json:"products"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

func toProductPageResponse(page *domain.ProductPage) productPageResponse {
	products := make([]productResponse, 0, len(page.Products))
	for _, p := range page.Products {
		images := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			images = append(images, img.URL)
		}

		products = append(products, productResponse{
			ID:            p.ID,
			Slug:          p.Slug,
			Name:          p.Name,
			Price:         p.Price,
			OnSale:        p.OnSale,
			DiscountPct:   p.DiscountPct,
			SalePrice:     p.SalePrice,
			PriceDisplay:  money.Format(p.EffectivePrice(), displayCurrency),
			StockQuantity: p.StockQuantity,
			Images:        images,
			CategoryID:    p.CategoryID,
			CategorySlug:  p.CategorySlug,
			Rating:        p.Rating,
			NumReviews:    p.NumReviews,
		})
	}

	return productPageResponse{
		Products:   products,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type orderStatusResponse struct {
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	PlacedAt     time.Time `json:"placed_at"`
	Total        int64     `json:"total"`
	TotalDisplay string    `json:"total_display"`
}

type postResponse struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
}

type postPageResponse struct {
	Posts      []postResponse `json:"posts"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func toPostPageResponse(page *domain.PostPage) postPageResponse {
	posts := make([]postResponse, 0, len(page.Posts))
	for _, p := range page.Posts {
		posts = append(posts, postResponse{
			ID:          p.ID,
			Slug:        p.Slug,
			Title:       p.Title,
			Excerpt:     p.Excerpt,
			ImageURL:    p.ImageURL,
			PublishedAt: p.PublishedAt,
		})
	}

	return postPageResponse{
		Posts:      posts,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
}

type searchInputRequest struct {
	Text string `json:"text"`
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type addWishlistItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type recordViewRequest struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	// Price — цена в мажорных единицах, как её видит клиент ("5.99")
	Price string `json:"price"`
}
