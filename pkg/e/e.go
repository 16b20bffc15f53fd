package e

import (
	"errors"
	"fmt"
)

var (
	// Ошибки валидации (до любого сетевого вызова)
	ErrQuantityNotPositive = fmt.Errorf("quantity must be positive")
	ErrEmptyQuery          = fmt.Errorf("search query is empty")
	ErrProductIDRequired   = fmt.Errorf("product id is required")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPage         = fmt.Errorf("page must be positive")

	// Ошибки удалённого шлюза
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")

	// Ошибки состояния сессии
	ErrNotInWishlist = fmt.Errorf("product is not in the wishlist")
	ErrNotInCart     = fmt.Errorf("product is not in the cart")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400/500
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// RemoteError — структурированная ошибка, которую вернул удалённый API
// (4xx/5xx с телом {error} или {message}).
type RemoteError struct {
	StatusCode int
	Message    string
}

func (r *RemoteError) Error() string {
	return fmt.Sprintf("remote api error (%d): %s", r.StatusCode, r.Message)
}

// NewRemoteError создаёт RemoteError с запасным сообщением, если тело ответа пустое.
func NewRemoteError(status int, message string) *RemoteError {
	if message == "" {
		message = "the storefront api rejected the request"
	}

	return &RemoteError{StatusCode: status, Message: message}
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// UserMessage возвращает строку для показа пользователю: сообщение удалённого API,
// либо универсальный текст для транспортных ошибок.
func UserMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}

	switch {
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrQuantityNotPositive),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrNotInWishlist),
		errors.Is(err, ErrNotInCart):
		return err.Error()
	default:
		return "something went wrong, please try again"
	}
}
