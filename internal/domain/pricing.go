package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SalePrice вычисляет цену со скидкой: price − price·discountPct/100,
// с округлением до минорной единицы. Функция тотальна и не валидирует вход:
// корректность discountPct (диапазон [0,100]) обеспечивает вызывающая сторона.
func SalePrice(price int64, discountPct float64) int64 {
	discount := decimal.NewFromInt(price).
		Mul(decimal.NewFromFloat(discountPct)).
		Div(decimal.NewFromInt(100))

	return decimal.NewFromInt(price).Sub(discount).Round(0).IntPart()
}

// ValidateSale проверяет инвариант продукта со скидкой:
// OnSale ⇒ DiscountPct > 0 и SalePrice согласован с формулой.
func ValidateSale(p *Product) error {
	if !p.OnSale {
		return nil
	}

	if p.DiscountPct <= 0 {
		return fmt.Errorf("product %d is on sale with discount %.2f", p.ID, p.DiscountPct)
	}

	if expected := SalePrice(p.Price, p.DiscountPct); p.SalePrice != expected {
		return fmt.Errorf("product %d sale price mismatch: got %d, expected %d", p.ID, p.SalePrice, expected)
	}

	return nil
}
