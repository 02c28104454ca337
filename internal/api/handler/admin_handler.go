package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

// AdminHandler 後台泛用列表  商品/分類的瀏覽建立與訂單瀏覽
type AdminHandler struct {
	productService service.IProductService
	orderService   service.IOrderService
}

func NewAdminHandler(productService service.IProductService, orderService service.IOrderService) *AdminHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &AdminHandler{
		productService: productService,
		orderService:   orderService,
	}
}

// @Summary list products
// @use filter by availability, created date range, keyword on name/description
// @Tags admin
// @Produce json
// @Param available query bool false "availability"
// @Param created_from query string false "RFC3339"
// @Param created_to query string false "RFC3339"
// @Param q query string false "keyword"
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} api.Response{data=dto.ProductListDTO} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Security     ApiKeyAuth
// @Router /admin/products [get]
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var filter db.ProductFilter
	if v := query.Get("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
			return
		}
		filter.Available = &available
	}
	if v := query.Get("created_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
			return
		}
		filter.CreatedFrom = &t
	}
	if v := query.Get("created_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
			return
		}
		filter.CreatedTo = &t
	}
	filter.Keyword = query.Get("q")

	page := constants.DefaultPaging
	pageSize := constants.DefaultPagingSize
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(query.Get("page_size")); err == nil && v > 0 {
		pageSize = v
	}

	products, total, err := h.productService.SearchProducts(ctx, filter, page, pageSize)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertProductListToDTO(products, total), nil)
}

// @Summary create product
// @Tags admin
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "product"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Security     ApiKeyAuth
// @Router /admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	price, err := createDTO.ParsePrice()
	if err != nil {
		api.ErrorJSON(w, int(er.InvalidArgumentCode), err, er.ErrStrMap[er.InvalidArgumentCode])
		return
	}

	product := &model.Product{
		Code:        createDTO.Code,
		Name:        createDTO.Name,
		Price:       price,
		Stock:       createDTO.Stock,
		Available:   createDTO.Available,
		CategoryID:  createDTO.CategoryID,
		Description: createDTO.Description,
	}

	if err := h.productService.CreateProduct(r.Context(), product); err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertProductToDTO(*product), nil)
}

// @Summary list categories
// @Tags admin
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.CategoryDTO} "success"
// @Security     ApiKeyAuth
// @Router /admin/categories [get]
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productService.GetAllCategories(r.Context())
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	categoryDTOs := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		categoryDTOs = append(categoryDTOs, dto.CategoryDTO{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Slug:       c.Slug,
		})
	}

	api.SuccessJSON(w, categoryDTOs, nil)
}

// @Summary create category
// @use slug auto-populated from name
// @Tags admin
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryDTO true "category"
// @Success 200 {object} api.Response{data=dto.CategoryDTO} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Security     ApiKeyAuth
// @Router /admin/categories [post]
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	category := &model.Category{Name: createDTO.Name}
	if err := h.productService.CreateCategory(r.Context(), category); err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, dto.CategoryDTO{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Slug:       category.Slug,
	}, nil)
}

// @Summary list orders
// @use all orders paginated, newest first
// @Tags admin
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} api.Response{data=dto.OrderListDTO} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Security     ApiKeyAuth
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := constants.DefaultPaging
	pageSize := constants.DefaultPagingSize
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(query.Get("page_size")); err == nil && v > 0 {
		pageSize = v
	}

	orders, total, err := h.orderService.ListOrders(r.Context(), page, pageSize)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	orderDTOs := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		orderDTOs = append(orderDTOs, convertOrderToDTO(&orders[i]))
	}

	api.SuccessJSON(w, dto.OrderListDTO{Orders: orderDTOs, Total: total}, nil)
}

func convertProductToDTO(p model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ProductID:   p.ProductID,
		Code:        p.Code,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		Available:   p.Available,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func convertProductListToDTO(products []model.Product, total int64) dto.ProductListDTO {
	productDTOs := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		productDTOs = append(productDTOs, convertProductToDTO(p))
	}
	return dto.ProductListDTO{
		Products: productDTOs,
		Total:    total,
	}
}
