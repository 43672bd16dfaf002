package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/inventory-hub/go-backend/internal/domain"
)

// ProductRepo — реализация usecase.ProductRepository в памяти,
// подменяющая живую базу в тестах.
// Семантика мягкого удаления и поиска совпадает с pgdb, за одним отличием:
// keyword трактуется буквально, без шаблонов ILIKE.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		products: make(map[int64]domain.Product),
	}
}

// Add назначает идентификатор, is_active=true и created_date, копируя
// поведение хранилища.
func (p *ProductRepo) Add(_ context.Context, product *domain.Product) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	stored := domain.Product{
		ID:          p.nextID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsActive:    true,
		CreatedDate: time.Now(),
	}
	p.products[stored.ID] = stored

	return stored.ID, nil
}

// Update перезаписывает изменяемые поля, не трогая is_active и created_date.
func (p *ProductRepo) Update(_ context.Context, product *domain.Product) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, ok := p.products[product.ID]
	if !ok {
		return false, nil
	}

	stored.Name = product.Name
	stored.Category = product.Category
	stored.Price = product.Price
	stored.Quantity = product.Quantity
	p.products[product.ID] = stored

	return true, nil
}

// Delete выставляет is_active=false; повторный вызов возвращает false.
func (p *ProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, ok := p.products[id]
	if !ok || !stored.IsActive {
		return false, nil
	}

	stored.IsActive = false
	p.products[id] = stored

	return true, nil
}

// GetByID возвращает (nil, nil) для отсутствующей или неактивной записи.
func (p *ProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stored, ok := p.products[id]
	if !ok || !stored.IsActive {
		return nil, nil
	}

	return &stored, nil
}

// GetAll возвращает активные записи в порядке вставки.
func (p *ProductRepo) GetAll(_ context.Context) ([]domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.collect(func(domain.Product) bool { return true }), nil
}

// Search возвращает активные записи с keyword в name или category без учета
// регистра.
func (p *ProductRepo) Search(_ context.Context, keyword string) ([]domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	needle := strings.ToLower(keyword)
	match := func(product domain.Product) bool {
		return strings.Contains(strings.ToLower(product.Name), needle) ||
			strings.Contains(strings.ToLower(product.Category), needle)
	}

	return p.collect(match), nil
}

// collect отбирает активные записи по предикату, сортируя по id.
func (p *ProductRepo) collect(match func(domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0, len(p.products))
	for _, product := range p.products {
		if product.IsActive && match(product) {
			result = append(result, product)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
