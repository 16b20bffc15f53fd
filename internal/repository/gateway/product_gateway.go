package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
)

// ProductGateway — продукты, поиск и категории удалённого API.
type ProductGateway struct {
	client *Client
}

func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

// SearchProducts выполняет полнотекстовый поиск. Удалённый API отдаёт
// плоский массив продуктов без пагинации.
func (g *ProductGateway) SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductSummary, error) {
	const op = "ProductGateway.SearchProducts"

	params := url.Values{}
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(limit))

	var models []productModel
	if err := g.client.get(ctx, op, "/products", params, &models); err != nil {
		return nil, err
	}

	summaries := make([]domain.ProductSummary, 0, len(models))
	for _, m := range models {
		product := m.toDomain()
		summaries = append(summaries, product.Summary())
	}

	return summaries, nil
}

// ListProducts возвращает страницу каталога; categoryID=0 — без фильтра.
// Тот же путь /products, но без параметра search API отвечает
// пагинированным объектом вместо плоского массива.
func (g *ProductGateway) ListProducts(ctx context.Context, page, limit int, categoryID int64) (*domain.ProductPage, error) {
	const op = "ProductGateway.ListProducts"

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if categoryID > 0 {
		params.Set("category", strconv.FormatInt(categoryID, 10))
	}

	var model productPageModel
	if err := g.client.get(ctx, op, "/products", params, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

// GetCategoryBySlug возвращает категорию; 404 транслируется в ErrCategoryNotFound.
func (g *ProductGateway) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const op = "ProductGateway.GetCategoryBySlug"

	var model categoryModel
	if err := g.client.get(ctx, op, "/categories/slug/"+url.PathEscape(slug), nil, &model); err != nil {
		var remote *e.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return nil, e.ErrCategoryNotFound
		}
		return nil, err
	}

	return model.toDomain(), nil
}
