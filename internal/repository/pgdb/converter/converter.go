package converter

import "github.com/inventory-hub/go-backend/internal/domain"

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Category:    entity.Category,
		Price:       entity.Price,
		Quantity:    entity.Quantity,
		IsActive:    entity.IsActive,
		CreatedDate: entity.CreatedDate,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Category:    model.Category,
		Price:       model.Price,
		Quantity:    model.Quantity,
		IsActive:    model.IsActive,
		CreatedDate: model.CreatedDate,
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}
