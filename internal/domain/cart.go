package domain

import "github.com/shopspring/decimal"

// CartItem — позиция корзины. Price — снимок цены на момент добавления,
// в минорных единицах.
type CartItem struct {
	ProductID int64
	Name      string
	ImageURL  string
	Price     int64
	Quantity  int
}

// LineTotal возвращает стоимость позиции (цена × количество).
func (i CartItem) LineTotal() int64 {
	return decimal.NewFromInt(i.Price).
		Mul(decimal.NewFromInt(int64(i.Quantity))).
		IntPart()
}

// Cart — последнее подтверждённое сервером состояние корзины.
type Cart struct {
	Items []CartItem
}

// Subtotal возвращает сумму по всем позициям; для пустой корзины — ровно 0.
func (c Cart) Subtotal() int64 {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(decimal.NewFromInt(item.LineTotal()))
	}

	return total.IntPart()
}

// ItemCount возвращает суммарное количество единиц товара в корзине.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Item находит позицию по продукту.
func (c Cart) Item(productID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}
