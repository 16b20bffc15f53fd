// Package money работает с денежными суммами в минорных единицах валюты (копейки/центы).
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/posh-choice/storefront-core/pkg/e"
)

// maxPriceCents — верхняя граница цены (1 млрд в мажорных единицах).
var maxPriceCents = decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))

// Format детерминировано форматирует сумму в минорных единицах как строку цены
// в заданной валюте. Сумма округляется до минорной единицы валюты.
func Format(cents int64, currency string) string {
	major := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)

	switch currency {
	case "USD":
		return "$" + major
	case "EUR":
		return "€" + major
	case "GBP":
		return "£" + major
	case "NGN":
		return "₦" + major
	default:
		return major + " " + currency
	}
}

// Parse конвертирует строку вида "599.99" или "600" в минорные единицы (int64).
// Возвращает ошибку, если:
// - формат некорректен
// - больше 2 знаков после запятой
// - значение отрицательное или превышает разумный предел
func Parse(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	cents := d.Mul(decimal.NewFromInt(100))
	if cents.GreaterThan(maxPriceCents) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return cents.Round(0).IntPart(), nil
}

// FromMajor конвертирует сумму в мажорных единицах (как её отдаёт удалённый API)
// в минорные единицы с округлением до минорной единицы.
func FromMajor(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ToMajor конвертирует минорные единицы обратно в мажорные для сериализации наружу.
func ToMajor(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// MustParse — Parse для констант в тестах и фикстурах; паникует при ошибке.
func MustParse(s string) int64 {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money: parse %q: %v", s, err))
	}

	return v
}
