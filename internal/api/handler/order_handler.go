package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService    service.IOrderService
	cartService     service.ICartService
	checkoutService service.ICheckoutService
}

func NewOrderHandler(orderService service.IOrderService, cartService service.ICartService, checkoutService service.ICheckoutService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	return &OrderHandler{
		orderService:    orderService,
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// @Summary order create form
// @use empty order form template bound to the current cart
// @Tags orders
// @Produce json
// @Success 200 {object} api.Response{data=dto.OrderFormPageDTO} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /orders/create [get]
func (h *OrderHandler) OrderCreateForm(w http.ResponseWriter, r *http.Request) {
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

	api.SuccessJSON(w, dto.OrderFormPageDTO{
		Cart: convertCartToDTO(cart),
		Form: dto.OrderFormDTO{},
	}, nil)
}

// @Summary submit order
// @use persist order with items copied from cart, clear cart, send confirmation mail
// @Tags orders
// @Accept json
// @Produce json
// @Param orderForm body dto.OrderFormDTO true "contact and shipping fields"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 460 {object} api.ResponseError{data=map[string]string} "InvalidArgumentCode, field errors"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /orders/create [post]
func (h *OrderHandler) OrderCreate(w http.ResponseWriter, r *http.Request) {
	var formDTO dto.OrderFormDTO
	if err := json.NewDecoder(r.Body).Decode(&formDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()
	sessionID := util.GetCartSessionFromContext(ctx)

	// 有登入就掛user  沒登入走訪客下單
	var userID *uuid.UUID
	if payload := util.GetTokenPayloadFromContext(ctx); payload != nil {
		userID = &payload.UserId
	}

	order, err := h.orderService.PlaceOrder(ctx, sessionID, userID, &model.OrderForm{
		FirstName:  formDTO.FirstName,
		LastName:   formDTO.LastName,
		Email:      formDTO.Email,
		Address:    formDTO.Address,
		PostalCode: formDTO.PostalCode,
		City:       formDTO.City,
	})
	if err != nil {
		// 驗證失敗  回欄位對應錯誤  無任何副作用
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(int(er.InvalidArgumentCode))
			json.NewEncoder(w).Encode(map[string]any{
				"error":  validationErr.Error(),
				"fields": validationErr.Fields,
			})
			return
		}
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertOrderToDTO(order), nil)
}

// @Summary order history
// @use all orders of the authenticated user, newest first
// @Tags orders
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.OrderDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Security     ApiKeyAuth
// @Router /orders/history [get]
func (h *OrderHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// AuthMiddleware已擋掉未登入  這裡再驗一次payload
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), errors.New("unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	orders, err := h.orderService.GetOrderHistory(ctx, payload.UserId)
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

	api.SuccessJSON(w, orderDTOs, nil)
}

// @Summary create checkout session
// @use create hosted payment session from the current cart total
// @Tags orders
// @Produce json
// @Success 200 {object} dto.CheckoutSessionResponse "sessionId"
// @Failure 400 {object} map[string]string "error message"
// @Failure 500 {object} api.ResponseError{data=string} "InternalErrorCode"
// @Router /orders/create-checkout-session [post]
func (h *OrderHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := util.GetCartSessionFromContext(ctx)

	checkoutID, err := h.checkoutService.CreateCheckoutSession(ctx, sessionID, util.RequestOrigin(r))
	if err != nil {
		// 內部錯誤走標準envelope  前端約定的裸{"error": msg}只留給供應商拒絕與空車
		if anaErr, ok := err.(*er.AnaError); ok && anaErr.Code == er.InternalErrorCode {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CheckoutSessionResponse{SessionID: checkoutID})
}

// @Summary payment success landing
// @use static acknowledgment, no server-side verification
// @Tags orders
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Router /orders/success [get]
func (h *OrderHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, "payment completed, thank you for your purchase", nil)
}

// @Summary payment cancel landing
// @use static acknowledgment, no side effects
// @Tags orders
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Router /orders/cancel [get]
func (h *OrderHandler) PaymentCancel(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, "payment cancelled", nil)
}

func convertOrderToDTO(order *model.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, dto.OrderItemDTO{
			ProductID: item.ProductID,
			Price:     item.Price.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}
	return dto.OrderDTO{
		OrderID:   order.OrderID,
		Email:     order.Email,
		FirstName: order.FirstName,
		LastName:  order.LastName,
		Amount:    order.Amount.StringFixed(2),
		Paid:      order.Paid,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}
}
