package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/posh-choice/storefront-core/internal/domain"
)

// WishlistGateway — мутации списка желаний. Семантику множества обеспечивает
// сервер: повторное добавление того же продукта не создаёт дубликата.
type WishlistGateway struct {
	client *Client
}

func NewWishlistGateway(client *Client) *WishlistGateway {
	return &WishlistGateway{client: client}
}

func (g *WishlistGateway) Add(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error) {
	const op = "WishlistGateway.Add"

	req := addWishlistItemReq{ProductID: productID}

	var model wishlistModel
	if err := g.client.mutate(ctx, op, http.MethodPost, "/wishlist/items", sessionID, req, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

func (g *WishlistGateway) Remove(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error) {
	const op = "WishlistGateway.Remove"

	var model wishlistModel
	if err := g.client.mutate(ctx, op, http.MethodDelete, "/wishlist/items/"+strconv.FormatInt(productID, 10), sessionID, nil, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}
