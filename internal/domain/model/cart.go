package model

import (
	"github.com/shopspring/decimal"
)

// Cart 購物車  以session為範圍  只存在redis  不落db
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

type CartItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"` // 加入購物車當下的價格
}

// TotalPrice 總價 = Σ(數量 × 單價)
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// IsEmpty 是否為空車
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
