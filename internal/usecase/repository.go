package usecase

import (
	"context"

	"github.com/inventory-hub/go-backend/internal/domain"
)

// ProductRepository — порт хранилища товаров.
// Реализации: internal/repository/pgdb (PostgreSQL) и
// internal/repository/memory (для тестов).
type ProductRepository interface {
	// Add вставляет новую запись с is_active=true и created_date от хранилища,
	// возвращает назначенный хранилищем идентификатор.
	Add(ctx context.Context, product *domain.Product) (int64, error)

	// Update перезаписывает name, category, price, quantity по id независимо
	// от is_active. Возвращает true, если затронута хотя бы одна строка.
	Update(ctx context.Context, product *domain.Product) (bool, error)

	// Delete выставляет is_active=false, строка физически не удаляется.
	// Повторное удаление той же записи возвращает false.
	Delete(ctx context.Context, id int64) (bool, error)

	// GetByID возвращает (nil, nil), если строки нет или она неактивна.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// GetAll возвращает активные записи в порядке вставки.
	GetAll(ctx context.Context) ([]domain.Product, error)

	// Search возвращает активные записи, у которых name или category содержит
	// keyword без учета регистра.
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
}
