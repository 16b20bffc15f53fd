package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/posh-choice/storefront-core/internal/usecase"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// SessionHandler обслуживает сессионное состояние: конвейер поиска,
// корзину и список желаний.
type SessionHandler struct {
	sessions *usecase.SessionManager
	logger   logger.Logger
}

func NewSessionHandler(sessions *usecase.SessionManager, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

func (h *SessionHandler) session(r *http.Request) *usecase.Session {
	return h.sessions.Get(chi.URLParam(r, "sessionID"))
}

// searchInput
//
//	@Summary		Ввод в строку поиска
//	@Description	Принимает очередное состояние текста поиска; сетевой запрос уйдёт после паузы в вводе
//	@Tags			search
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Идентификатор сессии"
//	@Param			input		body		searchInputRequest	true	"Текущий текст поиска"
//	@Success		202			{object}	searchStateResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/sessions/{sessionID}/search/input [post]
func (h *SessionHandler) searchInput(w http.ResponseWriter, r *http.Request) {
	var req searchInputRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	session.Search.Input(req.Text)

	WriteSuccess(w, http.StatusAccepted, toSearchStateResponse(session.Search.Snapshot()))
}

// searchState
//
//	@Summary	Текущее состояние поиска
//	@Tags		search
//	@Produce	json
//	@Param		sessionID	path		string	true	"Идентификатор сессии"
//	@Success	200			{object}	searchStateResponse
//	@Router		/sessions/{sessionID}/search [get]
func (h *SessionHandler) searchState(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	WriteSuccess(w, http.StatusOK, toSearchStateResponse(session.Search.Snapshot()))
}

// getCart
//
//	@Summary	Состояние корзины
//	@Tags		cart
//	@Produce	json
//	@Param		sessionID	path		string	true	"Идентификатор сессии"
//	@Success	200			{object}	cartResponse
//	@Router		/sessions/{sessionID}/cart [get]
func (h *SessionHandler) getCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	WriteSuccess(w, http.StatusOK, toCartResponse(session.Cart.Snapshot()))
}

// addCartItem
//
//	@Summary	Добавить товар в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		sessionID	path		string				true	"Идентификатор сессии"
//	@Param		item		body		addCartItemRequest	true	"Товар и количество"
//	@Success	200			{object}	cartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/sessions/{sessionID}/cart/items [post]
func (h *SessionHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	if err := session.Cart.AddToCart(r.Context(), req.ProductID, req.Quantity); err != nil {
		h.logger.Warnf("add to cart failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(session.Cart.Snapshot()))
}

func (h *SessionHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateCartItemRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	if err := session.Cart.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		h.logger.Warnf("update quantity failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(session.Cart.Snapshot()))
}

func (h *SessionHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	if err := session.Cart.RemoveItem(r.Context(), productID); err != nil {
		h.logger.Warnf("remove cart item failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(session.Cart.Snapshot()))
}

func (h *SessionHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	if err := session.Cart.ClearCart(r.Context()); err != nil {
		h.logger.Warnf("clear cart failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(session.Cart.Snapshot()))
}

// getWishlist
//
//	@Summary	Список желаний
//	@Tags		wishlist
//	@Produce	json
//	@Param		sessionID	path		string	true	"Идентификатор сессии"
//	@Success	200			{object}	wishlistResponse
//	@Router		/sessions/{sessionID}/wishlist [get]
func (h *SessionHandler) getWishlist(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	WriteSuccess(w, http.StatusOK, toWishlistResponse(session.Wishlist.Snapshot()))
}

func (h *SessionHandler) addWishlistItem(w http.ResponseWriter, r *http.Request) {
	var req addWishlistItemRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	if err := session.Wishlist.Add(r.Context(), req.ProductID); err != nil {
		h.logger.Warnf("add to wishlist failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWishlistResponse(session.Wishlist.Snapshot()))
}

func (h *SessionHandler) removeWishlistItem(w http.ResponseWriter, r *http.Request) {
	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	if err := session.Wishlist.Remove(r.Context(), productID); err != nil {
		h.logger.Warnf("remove from wishlist failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWishlistResponse(session.Wishlist.Snapshot()))
}

// moveToCart
//
//	@Summary		Переместить товар из списка желаний в корзину
//	@Description	Составная операция: при сбое удаления из списка желаний товар остаётся в обоих местах
//	@Tags			wishlist
//	@Produce		json
//	@Param			sessionID	path		string	true	"Идентификатор сессии"
//	@Param			productID	path		integer	true	"Идентификатор товара"
//	@Success		200			{object}	moveToCartResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/sessions/{sessionID}/wishlist/items/{productID}/move-to-cart [post]
func (h *SessionHandler) moveToCart(w http.ResponseWriter, r *http.Request) {
	productID, err := urlParamInt64(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	session := h.session(r)
	res, err := session.Wishlist.MoveToCart(r.Context(), session.Cart, productID)
	if err != nil {
		h.logger.Warnf("move to cart failed (session %s): %v", session.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, moveToCartResponse{
		AddedToCart:         res.AddedToCart,
		RemovedFromWishlist: res.RemovedFromWishlist,
	})
}
