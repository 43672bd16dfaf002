package usecase

import (
	"context"

	"github.com/inventory-hub/go-backend/internal/domain"
	"github.com/inventory-hub/go-backend/pkg/e"
	"github.com/inventory-hub/go-backend/pkg/logger"
)

// ProductUseCase реализует сервисный слой каталога товаров.
// Бизнес-правил сверх копирования полей здесь нет: валидация формата входа
// живет на границе (delivery), ограничения данных — в хранилище.
type ProductUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddProduct собирает сущность из запроса и делегирует вставку репозиторию.
// Возвращает идентификатор, назначенный хранилищем.
func (p *ProductUseCase) AddProduct(ctx context.Context, req *AddProductReq) (int64, error) {
	const op = "ProductUseCase.AddProduct"

	id, err := p.productRepo.Add(ctx, domain.NewProduct(0, req.Name, req.Category, req.Price, req.Quantity))
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	p.logger.Infof("product added: %d", id)
	return id, nil
}

// UpdateProduct собирает сущность из запроса и делегирует обновление.
// Булев результат репозитория возвращается без изменений.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (bool, error) {
	const op = "ProductUseCase.UpdateProduct"

	updated, err := p.productRepo.Update(ctx, domain.NewProduct(req.ID, req.Name, req.Category, req.Price, req.Quantity))
	if err != nil {
		return false, e.Wrap(op, err)
	}

	p.logger.Infof("product updated: %d, affected: %t", req.ID, updated)
	return updated, nil
}

// DeleteProduct делегирует мягкое удаление репозиторию.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	const op = "ProductUseCase.DeleteProduct"

	deleted, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	p.logger.Infof("product deleted: %d, affected: %t", id, deleted)
	return deleted, nil
}

// GetProductByID возвращает (nil, nil), если товар отсутствует или неактивен,
// чтобы граница могла отдать 404 без разбора ошибок.
func (p *ProductUseCase) GetProductByID(ctx context.Context, id int64) (*ProductRes, error) {
	const op = "ProductUseCase.GetProductByID"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if product == nil {
		return nil, nil
	}

	res := NewProductRes(product)
	return &res, nil
}

// GetAllProducts возвращает все активные товары, сохраняя порядок хранилища.
func (p *ProductUseCase) GetAllProducts(ctx context.Context) ([]ProductRes, error) {
	const op = "ProductUseCase.GetAllProducts"

	products, err := p.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return p.toResponses(products), nil
}

// SearchProducts возвращает активные товары по подстроке в name или category.
func (p *ProductUseCase) SearchProducts(ctx context.Context, keyword string) ([]ProductRes, error) {
	const op = "ProductUseCase.SearchProducts"

	products, err := p.productRepo.Search(ctx, keyword)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Infof("search executed: %q, found: %d", keyword, len(products))
	return p.toResponses(products), nil
}

// toResponses проецирует сущности в ответы, сохраняя порядок.
func (p *ProductUseCase) toResponses(products []domain.Product) []ProductRes {
	result := make([]ProductRes, 0, len(products))
	for i := range products {
		result = append(result, NewProductRes(&products[i]))
	}

	return result
}
