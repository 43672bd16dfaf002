package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/inventory-hub/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/inventory-hub/go-backend/internal/usecase"
	"github.com/inventory-hub/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC) {
	r.router.Use(RequestID)
	r.router.Use(LogRequests(r.logger))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(prUC, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.addProduct)
		pr.Put("/", prHandler.updateProduct)
		pr.Get("/", prHandler.getAllProducts)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/{id}", prHandler.getProductByID)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}
