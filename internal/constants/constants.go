package constants

import "time"

const (
	//分頁
	DefaultPagingSize int = 10
	DefaultPaging     int = 1
)

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
	CartSessionKey          ContextKey = "cart_session"
)

type TokenDurationHour int

const (
	AccessTokenDuration  TokenDurationHour = 24
	RefreshTokenDuration TokenDurationHour = 72
)

const (
	// 購物車cookie名稱 與redis key的session id來源
	CartSessionCookie = "cart_session"
	// 購物車閒置多久後過期
	CartTTL = 7 * 24 * time.Hour
	// 確認信寄送的上限時間  寄不出去就放棄
	MailSendTimeout = 10 * time.Second
	// 對外部付款供應商呼叫的上限時間
	PaymentTimeout = 15 * time.Second
)

const (
	PaymentCurrency        = "usd"
	PaymentLineItemName    = "Order Payment"
	OrderConfirmationTitle = "Order Confirmation"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
