package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	v1Http "github.com/inventory-hub/go-backend/internal/delivery/v1/http"
	"github.com/inventory-hub/go-backend/internal/repository/memory"
	"github.com/inventory-hub/go-backend/internal/usecase"
	"github.com/inventory-hub/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	log := logger.NewSlogLogger()
	repo := memory.NewProductRepo()
	uc := usecase.NewProductUC(repo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(uc)

	return r
}

func doRequest(t *testing.T, router *chi.Mux, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// Сквозной сценарий: добавить, прочитать, удалить, убедиться в 404.
func TestProductLifecycle(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Pen","category":"Stationery","price":1.50,"quantity":100}`)
	require.Equal(t, http.StatusOK, w.Code)

	created := decodeJSON[map[string]int64](t, w)
	assert.Equal(t, int64(1), created["id"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	product := decodeJSON[v1Http.ProductResponse](t, w)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, "Pen", product.Name)
	assert.Equal(t, "Stationery", product.Category)
	assert.True(t, decimal.RequireFromString("1.50").Equal(product.Price))
	assert.Equal(t, int32(100), product.Quantity)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Повторное удаление не затрагивает ни одной строки
	w = doRequest(t, router, http.MethodDelete, "/api/v1/products/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Widget","category":"Tools","price":10,"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/v1/products",
		`{"id":1,"name":"Widget Pro","category":"Tools","price":12.99,"quantity":7}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	product := decodeJSON[v1Http.ProductResponse](t, w)
	assert.Equal(t, "Widget Pro", product.Name)
	assert.True(t, decimal.RequireFromString("12.99").Equal(product.Price))
	assert.Equal(t, int32(7), product.Quantity)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPut, "/api/v1/products",
		`{"id":42,"name":"X","category":"Y","price":1,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllProducts(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[[]v1Http.ProductResponse](t, w))

	doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Widget","category":"Tools","price":10,"quantity":5}`)
	doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Gadget","category":"Tools","price":20,"quantity":3}`)

	w = doRequest(t, router, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	products := decodeJSON[[]v1Http.ProductResponse](t, w)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Gadget", products[1].Name)
}

func TestSearchProducts(t *testing.T) {
	router := newTestRouter()

	doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Widget","category":"Tools","price":10,"quantity":5}`)
	doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Gadget","category":"Tools","price":20,"quantity":3}`)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products/search?keyword=tool", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]v1Http.ProductResponse](t, w), 2)

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/search?keyword=widg", "")
	require.Equal(t, http.StatusOK, w.Code)

	products := decodeJSON[[]v1Http.ProductResponse](t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestValidationErrors(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "empty create body", method: http.MethodPost, path: "/api/v1/products", body: ""},
		{name: "malformed create body", method: http.MethodPost, path: "/api/v1/products", body: `{"name":`},
		{name: "negative price", method: http.MethodPost, path: "/api/v1/products", body: `{"name":"X","category":"Y","price":-1,"quantity":1}`},
		{name: "price precision", method: http.MethodPost, path: "/api/v1/products", body: `{"name":"X","category":"Y","price":1.555,"quantity":1}`},
		{name: "negative quantity", method: http.MethodPost, path: "/api/v1/products", body: `{"name":"X","category":"Y","price":1,"quantity":-1}`},
		{name: "update id zero", method: http.MethodPut, path: "/api/v1/products", body: `{"id":0,"name":"X","category":"Y","price":1,"quantity":1}`},
		{name: "get id zero", method: http.MethodGet, path: "/api/v1/products/0", body: ""},
		{name: "delete id negative", method: http.MethodDelete, path: "/api/v1/products/-5", body: ""},
		{name: "blank keyword", method: http.MethodGet, path: "/api/v1/products/search?keyword=", body: ""},
		{name: "whitespace keyword", method: http.MethodGet, path: "/api/v1/products/search?keyword=%20%20", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			body := decodeJSON[v1Http.ErrorResponse](t, w)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/products", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
