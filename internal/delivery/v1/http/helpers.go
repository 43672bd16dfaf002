package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/inventory-hub/go-backend/internal/usecase"
	"github.com/inventory-hub/go-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductCreateRequest — тело POST /products. Цена — десятичное число
// с не более чем двумя знаками после запятой.
type ProductCreateRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

// ProductUpdateRequest — тело PUT /products.
type ProductUpdateRequest struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

// ProductResponse — представление товара в ответах API.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidProductID),
		errors.Is(err, e.ErrKeywordRequired),
		errors.Is(err, e.ErrEmptyBody),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrInvalidQuantity),
		errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeBody разбирает JSON-тело запроса. Пустое тело — отдельная ошибка,
// чтобы граница отвечала 400 с внятным сообщением.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return e.ErrEmptyBody
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseProductID извлекает положительный идентификатор из строки пути.
func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidProductID
	}

	return id, nil
}

// priceToCents converts a decimal like 599.99 to int64 cents.
// Returns error if:
// - negative value
// - more than 2 decimal places
// - exceeds reasonable limit (10^9 currency units)
func priceToCents(d decimal.Decimal) (int64, error) {
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// centsToPrice представляет цену в минорных единицах как десятичное число.
func centsToPrice(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// toCreateReq проверяет форму входных данных и собирает запрос сервисного слоя.
func toCreateReq(body *ProductCreateRequest) (*usecase.AddProductReq, error) {
	cents, err := priceToCents(body.Price)
	if err != nil {
		return nil, err
	}

	if body.Quantity < 0 {
		return nil, e.ErrInvalidQuantity
	}

	return usecase.NewAddProductReq(body.Name, body.Category, cents, body.Quantity), nil
}

// toUpdateReq проверяет форму входных данных и собирает запрос сервисного слоя.
func toUpdateReq(body *ProductUpdateRequest) (*usecase.UpdateProductReq, error) {
	if body.ID <= 0 {
		return nil, e.ErrInvalidProductID
	}

	cents, err := priceToCents(body.Price)
	if err != nil {
		return nil, err
	}

	if body.Quantity < 0 {
		return nil, e.ErrInvalidQuantity
	}

	return usecase.NewUpdateProductReq(body.ID, body.Name, body.Category, cents, body.Quantity), nil
}

// toProductResponse проецирует DTO сервисного слоя в представление API.
func toProductResponse(res *usecase.ProductRes) ProductResponse {
	return ProductResponse{
		ID:       res.ID,
		Name:     res.Name,
		Category: res.Category,
		Price:    centsToPrice(res.Price),
		Quantity: res.Quantity,
	}
}

// toProductResponses проецирует список, сохраняя порядок.
func toProductResponses(list []usecase.ProductRes) []ProductResponse {
	result := make([]ProductResponse, 0, len(list))
	for i := range list {
		result = append(result, toProductResponse(&list[i]))
	}

	return result
}
