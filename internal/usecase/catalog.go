package usecase

import (
	"context"
	"strings"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

const defaultPageLimit = 12

// CatalogService — просмотр каталога и блога напрямую через удалённый API,
// без сессионного состояния.
type CatalogService struct {
	products ProductGateway
	blog     BlogGateway
	logger   logger.Logger
}

func NewCatalogService(products ProductGateway, blog BlogGateway, logger logger.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		blog:     blog,
		logger:   logger,
	}
}

// ListProducts возвращает страницу каталога, опционально по категории.
func (s *CatalogService) ListProducts(ctx context.Context, req *ListProductsReq) (*domain.ProductPage, error) {
	const op = "CatalogService.ListProducts"

	if req.Page <= 0 {
		return nil, e.ErrInvalidPage
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	page, err := s.products.ListProducts(ctx, req.Page, limit, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return page, nil
}

// SearchOnce выполняет одиночный (не дебаунсируемый) поиск; пустой запрос —
// ошибка валидации, сетевой вызов не выполняется.
func (s *CatalogService) SearchOnce(ctx context.Context, query string, limit int) ([]domain.ProductSummary, error) {
	const op = "CatalogService.SearchOnce"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, e.ErrEmptyQuery
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	results, err := s.products.SearchProducts(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return results, nil
}

// GetCategoryBySlug возвращает категорию по slug или ErrCategoryNotFound.
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const op = "CatalogService.GetCategoryBySlug"

	if strings.TrimSpace(slug) == "" {
		return nil, e.ErrCategoryNotFound
	}

	category, err := s.products.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// ListPosts возвращает страницу блога.
func (s *CatalogService) ListPosts(ctx context.Context, page, limit int) (*domain.PostPage, error) {
	const op = "CatalogService.ListPosts"

	if page <= 0 {
		return nil, e.ErrInvalidPage
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	posts, err := s.blog.ListPosts(ctx, page, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return posts, nil
}
