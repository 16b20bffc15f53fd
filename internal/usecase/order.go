package usecase

import (
	"context"
	"strings"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
)

// OrderService — публичная проверка статуса заказа.
type OrderService struct {
	gateway OrderGateway
}

func NewOrderService(gateway OrderGateway) *OrderService {
	return &OrderService{gateway: gateway}
}

// PublicStatus возвращает публичный статус заказа по его номеру
// или ErrOrderNotFound.
func (s *OrderService) PublicStatus(ctx context.Context, orderNumber string) (*domain.OrderStatus, error) {
	const op = "OrderService.PublicStatus"

	if strings.TrimSpace(orderNumber) == "" {
		return nil, e.ErrOrderNotFound
	}

	status, err := s.gateway.PublicStatus(ctx, orderNumber)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return status, nil
}
