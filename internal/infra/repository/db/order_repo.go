package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderWithItems 建立訂單與所有品項
// 單一事務  訂單或任一品項寫入失敗則整筆回滾  不會留下部分資料
func (s *OrderRepo) CreateOrderWithItems(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 品項由事務內逐筆寫入  不靠gorm association自動帶入
		order.OrderItems = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.OrderID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.OrderItems = items
		return nil
	})
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").First(&order, "order_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單  新的在前
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Update - 訂單付款狀態  由外部付款確認方呼叫
func (s *OrderRepo) MarkOrderPaid(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).Where("order_id = ?", id).Update("paid", true).Error
}

// 分頁查詢訂單
func (s *OrderRepo) GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	offset := (page - 1) * pageSize

	// 計算總數
	s.db.WithContext(ctx).Model(&model.Order{}).Count(&total)

	// 分頁查詢
	err := s.db.WithContext(ctx).Preload("OrderItems").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&orders).Error

	return orders, total, err
}
