package domain

import "time"

// WishlistEntry — товар в списке желаний. Price — снимок цены на момент добавления.
type WishlistEntry struct {
	ProductID int64
	Name      string
	ImageURL  string
	Price     int64
	AddedAt   time.Time
}

// Wishlist — последнее подтверждённое сервером состояние списка желаний.
// Семантика множества: продукт встречается не более одного раза.
type Wishlist struct {
	Entries []WishlistEntry
}

// Contains проверяет наличие продукта. Линейный проход: списки короткие.
func (w Wishlist) Contains(productID int64) bool {
	for _, entry := range w.Entries {
		if entry.ProductID == productID {
			return true
		}
	}

	return false
}

// Entry находит запись по продукту.
func (w Wishlist) Entry(productID int64) (WishlistEntry, bool) {
	for _, entry := range w.Entries {
		if entry.ProductID == productID {
			return entry, true
		}
	}

	return WishlistEntry{}, false
}
