package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID    uint            `gorm:"primaryKey"`
	UserID     *uuid.UUID      `gorm:"null;type:uuid;index"` // 外鍵，關聯到 User  訪客下單為空
	Email      string          `gorm:"not null;type:varchar(100)"`
	FirstName  string          `gorm:"not null;type:varchar(50)"`
	LastName   string          `gorm:"not null;type:varchar(50)"`
	Address    string          `gorm:"not null;type:varchar(255)"`
	PostalCode string          `gorm:"not null;type:varchar(20)"`
	City       string          `gorm:"not null;type:varchar(100)"`
	Amount     decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Paid       bool            `gorm:"not null;default:false"`
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	BaseModel
}

type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey"` // 外鍵，關聯到 Order
	ProductID uint            `gorm:"primaryKey"` // 外鍵，關聯到 Product
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)"` // 下單當下的價格  不回頭查商品
	Quantity  int             `gorm:"not null"`
	BaseModel
}

// Cost 單一品項小計
func (i OrderItem) Cost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalCost 訂單所有品項加總  應與建單時送給付款供應商的金額一致
func (o Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.Cost())
	}
	return total
}
