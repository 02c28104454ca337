package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IOrderStore 訂單持久層介面  實作見infra/repository/db
type IOrderStore interface {
	// CreateOrderWithItems 單一事務寫入訂單與所有品項
	CreateOrderWithItems(ctx context.Context, order *model.Order, items []model.OrderItem) error
	GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
}

// ValidationError 表單驗證失敗  帶欄位對應錯誤訊息
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order form validation failed: %d field(s)", len(e.Fields))
}

type IOrderService interface {
	// PlaceOrder 下單流程:
	//  1. 驗證表單欄位
	//  2. 以單一事務寫入訂單與品項  品項逐筆複製購物車內容(含擷取價格)
	//  3. 清空購物車
	//  4. 寄送確認信  best-effort  寄信失敗不影響訂單結果
	//
	// userID為nil時為訪客下單
	//
	// 錯誤:
	//   - *ValidationError: 欄位驗證失敗  無任何副作用
	//   - er.InvalidArgumentCode 460: 空購物車
	//   - er.InternalErrorCode 500: 持久化失敗  整筆回滾
	PlaceOrder(ctx context.Context, sessionID string, userID *uuid.UUID, form *model.OrderForm) (*model.Order, error)
	// GetOrderHistory 取用戶所有訂單  新的在前
	// 呼叫端必須先完成認證  本方法不做授權檢查
	GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	// ListOrders 後台訂單瀏覽  全部訂單分頁  新的在前
	ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
}

type OrderService struct {
	orderStore  IOrderStore
	cartRepo    ICartRepo
	mailService IMailService
	logger      *zerolog.Logger
}

func NewOrderService(orderStore IOrderStore, cartRepo ICartRepo, mailService IMailService, logger *zerolog.Logger) IOrderService {
	if orderStore == nil {
		panic("order service initialization failed: orderStore cannot be nil")
	}
	if cartRepo == nil {
		panic("order service initialization failed: cartRepo cannot be nil")
	}
	if mailService == nil {
		panic("order service initialization failed: mailService cannot be nil")
	}
	return &OrderService{
		orderStore:  orderStore,
		cartRepo:    cartRepo,
		mailService: mailService,
		logger:      logger,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, sessionID string, userID *uuid.UUID, form *model.OrderForm) (*model.Order, error) {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if cart.IsEmpty() {
		return nil, er.New(er.InvalidArgumentCode, "cart is empty")
	}

	order := &model.Order{
		UserID:     userID,
		Email:      form.Email,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Address:    form.Address,
		PostalCode: form.PostalCode,
		City:       form.City,
		Amount:     cart.TotalPrice(),
	}

	// 品項逐筆複製購物車內容  價格用加入購物車時擷取的  不回頭查目錄
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: cartItem.ProductID,
			Price:     cartItem.Price,
			Quantity:  cartItem.Quantity,
		})
	}

	if err := s.orderStore.CreateOrderWithItems(ctx, order, items); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	// 訂單已落地  購物車無條件清空
	if err := s.cartRepo.Clear(ctx, sessionID); err != nil {
		// 清不掉只記log  訂單已成立
		s.logError(err, "failed to clear cart after order", order.OrderID)
	}

	// 確認信best-effort  任何錯誤吞掉記log  不回滾訂單
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.MailSendTimeout)
	defer cancel()
	if err := s.mailService.SendOrderConfirmation(mailCtx, order); err != nil {
		s.logError(err, "failed to send order confirmation email", order.OrderID)
	}

	return order, nil
}

func (s *OrderService) GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderStore.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return orders, nil
}

func (s *OrderService) ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	orders, total, err := s.orderStore.GetOrdersPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}
	return orders, total, nil
}

func (s *OrderService) logError(err error, msg string, orderID uint) {
	if s.logger == nil {
		return
	}
	s.logger.Error().
		Err(err).
		Uint("order_id", orderID).
		Time("at", time.Now().UTC()).
		Msg(msg)
}
