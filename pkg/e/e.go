package e

import "fmt"

var (
	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidProductID = fmt.Errorf("product id must be positive")
	ErrKeywordRequired  = fmt.Errorf("keyword is required")
	ErrEmptyBody        = fmt.Errorf("product data is required")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be non-negative")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
