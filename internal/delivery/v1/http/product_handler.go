package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/inventory-hub/go-backend/internal/usecase"
	"github.com/inventory-hub/go-backend/pkg/e"
	"github.com/inventory-hub/go-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// addProduct
//
//	@Summary		Добавление товара
//	@Description	Создает новый товар и возвращает назначенный идентификатор
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductCreateRequest	true	"Данные товара"
//	@Success		200		{object}	map[string]int64		"Идентификатор нового товара"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var body ProductCreateRequest
	if err := decodeBody(r, &body); err != nil {
		p.logger.Warnf("addProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	req, err := toCreateReq(&body)
	if err != nil {
		p.logger.Warnf("addProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	id, err := p.productUsecase.AddProduct(r.Context(), req)
	if err != nil {
		p.logger.Errorf(err, "addProduct failed, name: %s", body.Name)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Перезаписывает изменяемые поля товара по идентификатору
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductUpdateRequest	true	"Данные товара"
//	@Success		200		{object}	map[string]bool
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/products [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var body ProductUpdateRequest
	if err := decodeBody(r, &body); err != nil {
		p.logger.Warnf("updateProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	req, err := toUpdateReq(&body)
	if err != nil {
		p.logger.Warnf("updateProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	updated, err := p.productUsecase.UpdateProduct(r.Context(), req)
	if err != nil {
		p.logger.Errorf(err, "updateProduct failed, id: %d", body.ID)
		WriteError(w, err)
		return
	}

	if !updated {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]bool{"updated": true})
}

// getProductByID
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден или неактивен"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("getProductByID: %s", err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.GetProductByID(r.Context(), id)
	if err != nil {
		p.logger.Errorf(err, "getProductByID failed, id: %d", id)
		WriteError(w, err)
		return
	}

	if product == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// getAllProducts
//
//	@Summary		Список всех активных товаров
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		ProductResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) getAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.GetAllProducts(r.Context())
	if err != nil {
		p.logger.Errorf(err, "getAllProducts failed")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// searchProducts
//
//	@Summary		Поиск товаров по подстроке
//	@Description	Ищет подстроку в name и category без учета регистра
//	@Tags			products
//	@Produce		json
//	@Param			keyword	query		string	true	"Подстрока поиска"
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Пустой keyword"
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if strings.TrimSpace(keyword) == "" {
		p.logger.Warnf("searchProducts: %s", e.ErrKeywordRequired.Error())
		WriteError(w, e.ErrKeywordRequired)
		return
	}

	products, err := p.productUsecase.SearchProducts(r.Context(), keyword)
	if err != nil {
		p.logger.Errorf(err, "searchProducts failed, keyword: %q", keyword)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// deleteProduct
//
//	@Summary		Мягкое удаление товара
//	@Description	Помечает товар неактивным, запись физически не удаляется
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	map[string]bool
//	@Failure		400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден или уже неактивен"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("deleteProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	deleted, err := p.productUsecase.DeleteProduct(r.Context(), id)
	if err != nil {
		p.logger.Errorf(err, "deleteProduct failed, id: %d", id)
		WriteError(w, err)
		return
	}

	if !deleted {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
