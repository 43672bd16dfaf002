package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Price       int64     `db:"price"`
	Quantity    int32     `db:"quantity"`
	IsActive    bool      `db:"is_active"`
	CreatedDate time.Time `db:"created_date"`
}
