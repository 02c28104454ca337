package dto

import "time"

type CartItemDTO struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

type CartDTO struct {
	Items      []CartItemDTO `json:"items"`
	TotalPrice string        `json:"total_price"`
}

type AddCartItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

// OrderFormDTO 結帳表單  GET /orders/create回傳空模板  POST提交
type OrderFormDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// OrderFormPageDTO GET /orders/create的回應  表單模板綁當前購物車
type OrderFormPageDTO struct {
	Cart CartDTO      `json:"cart"`
	Form OrderFormDTO `json:"form"`
}

type OrderItemDTO struct {
	ProductID uint   `json:"product_id"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type OrderDTO struct {
	OrderID   uint           `json:"order_id"`
	Email     string         `json:"email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Amount    string         `json:"amount"`
	Paid      bool           `json:"paid"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []OrderItemDTO `json:"items"`
}

// OrderListDTO 後台訂單瀏覽的分頁回應
type OrderListDTO struct {
	Orders []OrderDTO `json:"orders"`
	Total  int64      `json:"total"`
}

// CheckoutSessionResponse 付款會話建立成功的回應
// 與前端約定欄位名為sessionId
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}
