package usecase

import "context"

// ProductUC — контракт сервисного слоя, потребляемый delivery.
type ProductUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (int64, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (bool, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
	GetProductByID(ctx context.Context, id int64) (*ProductRes, error)
	GetAllProducts(ctx context.Context) ([]ProductRes, error)
	SearchProducts(ctx context.Context, keyword string) ([]ProductRes, error)
}
