package domain

import "time"

// Типы событий взаимодействия покупателя с витриной.
const (
	EventProductViewed   = "product_viewed"
	EventCartUpdated     = "cart_updated"
	EventWishlistUpdated = "wishlist_updated"
	EventSearchPerformed = "search_performed"
)

// InteractionEvent — событие взаимодействия, публикуемое в поток аналитики.
type InteractionEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	SessionID  string    `json:"session_id"`
	ProductID  int64     `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Query      string    `json:"query,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
