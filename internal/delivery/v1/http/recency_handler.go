package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/internal/usecase"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
	"github.com/posh-choice/storefront-core/pkg/money"
)

// RecencyHandler обслуживает список недавно просмотренных товаров сессии.
type RecencyHandler struct {
	recency usecase.RecencyUC
	logger  logger.Logger
}

func NewRecencyHandler(recency usecase.RecencyUC, logger logger.Logger) *RecencyHandler {
	return &RecencyHandler{recency: recency, logger: logger}
}

// recordView
//
//	@Summary		Зафиксировать просмотр товара
//	@Description	Товар встаёт в начало списка недавно просмотренных; список усечён до 10 записей
//	@Tags			recently-viewed
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Идентификатор сессии"
//	@Param			product		body		recordViewRequest	true	"Просмотренный товар"
//	@Success		200			{array}		productSummaryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/sessions/{sessionID}/viewed [post]
func (h *RecencyHandler) recordView(w http.ResponseWriter, r *http.Request) {
	var req recordViewRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.ID == 0 && req.Slug == "" {
		WriteError(w, e.ErrProductIDRequired)
		return
	}

	var price int64
	if req.Price != "" {
		var err error
		price, err = money.Parse(req.Price)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	sessionID := chi.URLParam(r, "sessionID")
	entry := domain.NewProductSummary(req.ID, req.Slug, req.Name, req.ImageURL, price)
	h.recency.Record(r.Context(), sessionID, entry)

	WriteSuccess(w, http.StatusOK, toArrProductSummaryResponse(h.recency.List(r.Context(), sessionID)))
}

// listViewed
//
//	@Summary	Недавно просмотренные товары
//	@Tags		recently-viewed
//	@Produce	json
//	@Param		sessionID	path	string	true	"Идентификатор сессии"
//	@Success	200			{array}	productSummaryResponse
//	@Router		/sessions/{sessionID}/viewed [get]
func (h *RecencyHandler) listViewed(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	WriteSuccess(w, http.StatusOK, toArrProductSummaryResponse(h.recency.List(r.Context(), sessionID)))
}

func (h *RecencyHandler) clearViewed(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	h.recency.Clear(r.Context(), sessionID)

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"cleared": true})
}
