package usecase

import "github.com/inventory-hub/go-backend/internal/domain"

// AddProductReq — запрос на добавление товара. Идентификатор назначает хранилище.
type AddProductReq struct {
	Name     string
	Category string
	Price    int64 // минорные единицы валюты
	Quantity int32
}

// UpdateProductReq — запрос на обновление всех изменяемых полей товара.
type UpdateProductReq struct {
	ID       int64
	Name     string
	Category string
	Price    int64
	Quantity int32
}

// ProductRes — DTO товара для внешнего использования.
// Служебные поля (is_active, created_date) наружу не отдаются.
type ProductRes struct {
	ID       int64
	Name     string
	Category string
	Price    int64
	Quantity int32
}

// MAPPERS

func NewAddProductReq(name string, category string, price int64, quantity int32) *AddProductReq {
	return &AddProductReq{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}
}

func NewUpdateProductReq(id int64, name string, category string, price int64, quantity int32) *UpdateProductReq {
	return &UpdateProductReq{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}
}

// NewProductRes проецирует сущность в ответ без потерь по пяти видимым полям.
func NewProductRes(product *domain.Product) ProductRes {
	return ProductRes{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
}
