package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// @Summary get cart
// @use current session cart with total price
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := util.GetCartSessionFromContext(ctx)

	cart, err := h.cartService.GetCart(ctx, sessionID)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertCartToDTO(cart), nil)
}

// @Summary add cart item
// @use add product to cart  price captured from catalog
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemDTO true "product id and quantity"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 462 {object} api.ResponseError{data=string} "DataNotExistsCode"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var addDTO dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()
	sessionID := util.GetCartSessionFromContext(ctx)

	err := h.cartService.AddItem(ctx, sessionID, addDTO.ProductID, addDTO.Quantity)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path int true "product id"
// @Param item body dto.UpdateCartItemDTO true "quantity"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 462 {object} api.ResponseError{data=string} "DataNotExistsCode"
// @Router /cart/items/{productID} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseUint(chi.URLParam(r, "productID"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()
	sessionID := util.GetCartSessionFromContext(ctx)

	err = h.cartService.UpdateQuantity(ctx, sessionID, uint(productID), updateDTO.Quantity)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary remove cart item
// @Tags cart
// @Produce json
// @Param productID path int true "product id"
// @Success 200 {object} api.Response{data=string} "success"
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseUint(chi.URLParam(r, "productID"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()
	sessionID := util.GetCartSessionFromContext(ctx)

	if err := h.cartService.RemoveItem(ctx, sessionID, uint(productID)); err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, nil, nil)
}

func convertCartToDTO(cart *model.Cart) dto.CartDTO {
	cartDTO := dto.CartDTO{
		Items:      []dto.CartItemDTO{},
		TotalPrice: cart.TotalPrice().StringFixed(2),
	}
	for _, item := range cart.Items {
		cartDTO.Items = append(cartDTO.Items, dto.CartItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.StringFixed(2),
		})
	}
	return cartDTO
}
