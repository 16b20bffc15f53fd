package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/posh-choice/storefront-core/internal/usecase"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
	"github.com/posh-choice/storefront-core/pkg/money"
)

// CatalogHandler — несессионный просмотр каталога и блога.
type CatalogHandler struct {
	catalog usecase.CatalogUC
	orders  usecase.OrderUC
	logger  logger.Logger
}

func NewCatalogHandler(catalog usecase.CatalogUC, orders usecase.OrderUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, orders: orders, logger: logger}
}

// listProducts
//
//	@Summary	Страница каталога
//	@Tags		catalog
//	@Produce	json
//	@Param		page		query		integer	false	"Номер страницы"
//	@Param		limit		query		integer	false	"Размер страницы"
//	@Param		category	query		integer	false	"Фильтр по категории"
//	@Success	200			{object}	productPageResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewListProductsReq(
		queryInt(r, "page", 1),
		queryInt(r, "limit", 0),
		queryInt64(r, "category"),
	)

	page, err := h.catalog.ListProducts(r.Context(), req)
	if err != nil {
		h.logger.Warnf("list products failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(page))
}

// searchProducts
//
//	@Summary	Одиночный поиск по каталогу
//	@Tags		catalog
//	@Produce	json
//	@Param		q		query		string	true	"Поисковый запрос"
//	@Param		limit	query		integer	false	"Лимит результатов"
//	@Success	200		{array}		productSummaryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products/search [get]
func (h *CatalogHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalog.SearchOnce(r.Context(), r.URL.Query().Get("q"), queryInt(r, "limit", 0))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductSummaryResponse(results))
}

func (h *CatalogHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalog.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, categoryResponse{
		ID:   category.ID,
		Slug: category.Slug,
		Name: category.Name,
	})
}

func (h *CatalogHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.ListPosts(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 0))
	if err != nil {
		h.logger.Warnf("list posts failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPostPageResponse(page))
}

// orderStatus
//
//	@Summary	Публичный статус заказа
//	@Tags		orders
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Номер заказа"
//	@Success	200			{object}	orderStatusResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/orders/{orderNumber}/status [get]
func (h *CatalogHandler) orderStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		WriteError(w, e.ErrOrderNotFound)
		return
	}

	status, err := h.orders.PublicStatus(r.Context(), orderNumber)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, orderStatusResponse{
		OrderNumber:  status.OrderNumber,
		Status:       status.Status,
		PlacedAt:     status.PlacedAt,
		Total:        status.Total,
		TotalDisplay: money.Format(status.Total, displayCurrency),
	})
}
