package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/posh-choice/storefront-core/internal/domain"
)

// CartGateway — мутации корзины. Сервер хранит корзину по X-Session-ID
// и на каждую мутацию отвечает её полным актуальным состоянием.
type CartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

func (g *CartGateway) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	const op = "CartGateway.AddItem"

	req := addCartItemReq{ProductID: productID, Quantity: quantity}

	var model cartModel
	if err := g.client.mutate(ctx, op, http.MethodPost, "/cart/items", sessionID, req, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

func (g *CartGateway) UpdateItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	const op = "CartGateway.UpdateItem"

	req := updateCartItemReq{Quantity: quantity}

	var model cartModel
	if err := g.client.mutate(ctx, op, http.MethodPut, "/cart/items/"+strconv.FormatInt(productID, 10), sessionID, req, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

func (g *CartGateway) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	const op = "CartGateway.RemoveItem"

	var model cartModel
	if err := g.client.mutate(ctx, op, http.MethodDelete, "/cart/items/"+strconv.FormatInt(productID, 10), sessionID, nil, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

func (g *CartGateway) Clear(ctx context.Context, sessionID string) (*domain.Cart, error) {
	const op = "CartGateway.Clear"

	var model cartModel
	if err := g.client.mutate(ctx, op, http.MethodDelete, "/cart", sessionID, nil, &model); err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}
