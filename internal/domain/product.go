package domain

import "time"

// Product описывает товар складского каталога.
// Price хранится в минорных единицах валюты (копейках), чтобы избежать
// накопления ошибок двоичной плавающей точки.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       int64
	Quantity    int32
	IsActive    bool      // false означает мягко удаленную запись
	CreatedDate time.Time // назначается хранилищем при вставке, далее не меняется
}

func NewProduct(id int64, name string, category string, price int64, quantity int32) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}
}
