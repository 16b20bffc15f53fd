package domain

import "time"

// OrderStatus — публичный статус заказа по его номеру (без аутентификации).
type OrderStatus struct {
	OrderNumber string
	Status      string
	PlacedAt    time.Time
	Total       int64
}
