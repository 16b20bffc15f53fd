package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
)

// OrderGateway — публичный статус заказа, без аутентификации.
type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

// PublicStatus возвращает статус заказа; 404 транслируется в ErrOrderNotFound.
func (g *OrderGateway) PublicStatus(ctx context.Context, orderNumber string) (*domain.OrderStatus, error) {
	const op = "OrderGateway.PublicStatus"

	var model orderStatusModel
	if err := g.client.get(ctx, op, "/orders/public-status/"+url.PathEscape(orderNumber), nil, &model); err != nil {
		var remote *e.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return nil, e.ErrOrderNotFound
		}
		return nil, err
	}

	return model.toDomain(), nil
}
