package service

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/payment"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/shopspring/decimal"
)

type ICheckoutService interface {
	// CreateCheckoutSession 以當前購物車總價建立託管付款會話
	// 金額換算為最小貨幣單位整數  兩位小數內換算必須精準
	// origin為當前請求的來源(scheme://host)  用來組success/cancel轉址
	//
	// 回傳供應商的session id  前端拿去轉址
	// 任何供應商錯誤不改變購物車與任何訂單狀態
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 空購物車
	//   - er.BadRequestCode: 供應商拒絕或呼叫失敗
	CreateCheckoutSession(ctx context.Context, sessionID string, origin string) (string, error)
}

type CheckoutService struct {
	cartRepo ICartRepo
	broker   payment.ISessionBroker
}

func NewCheckoutService(cartRepo ICartRepo, broker payment.ISessionBroker) ICheckoutService {
	if cartRepo == nil {
		panic("checkout service initialization failed: cartRepo cannot be nil")
	}
	if broker == nil {
		panic("checkout service initialization failed: broker cannot be nil")
	}
	return &CheckoutService{
		cartRepo: cartRepo,
		broker:   broker,
	}
}

func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, sessionID string, origin string) (string, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return "", er.New(er.InternalErrorCode, err.Error())
	}
	// 空車不建立$0會話
	if cart.IsEmpty() {
		return "", er.New(er.InvalidArgumentCode, "cart is empty")
	}

	amount := ToMinorUnits(cart.TotalPrice())

	brokerCtx, cancel := context.WithTimeout(ctx, constants.PaymentTimeout)
	defer cancel()

	checkoutID, err := s.broker.CreateSession(brokerCtx, payment.CreateSessionParams{
		Amount:      amount,
		Currency:    constants.PaymentCurrency,
		Description: constants.PaymentLineItemName,
		SuccessURL:  fmt.Sprintf("%s/api/v1/orders/success", origin),
		CancelURL:   fmt.Sprintf("%s/api/v1/orders/cancel", origin),
	})
	if err != nil {
		return "", er.New(er.BadRequestCode, err.Error())
	}

	return checkoutID, nil
}

// ToMinorUnits 十進位金額換算為最小貨幣單位
// decimal乘100後取整數部  兩位小數內無浮點誤差 ($0.01 → 1)
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}
