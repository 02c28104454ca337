package payment

import "context"

// CreateSessionParams 建立託管付款會話所需的參數
// 金額一律為最小貨幣單位的整數 (usd即為cents)
type CreateSessionParams struct {
	Amount      int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
}

// ISessionBroker 對外部託管結帳供應商的窄介面
// 會話的生命週期完全由供應商持有  本地不落地
type ISessionBroker interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (string, error)
}
