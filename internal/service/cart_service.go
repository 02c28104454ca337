package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"gorm.io/gorm"
)

// ICartRepo 購物車儲存介面  實作見redis_repo
type ICartRepo interface {
	AddItem(ctx context.Context, sessionID string, item model.CartItem) error
	SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, productID uint) error
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// IProductReader 查商品目錄用  加入購物車時擷取當下價格
type IProductReader interface {
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
}

type ICartService interface {
	// GetCart 取當前session的購物車  不存在視為空車
	GetCart(ctx context.Context, sessionID string) (*model.Cart, error)
	// AddItem 加入商品到購物車
	// 價格由商品目錄於加入當下擷取  後續不隨目錄變動
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 數量小於1
	//   - er.DataNotExistsCode 462: 商品不存在或已下架
	//   - er.InternalErrorCode 500: 儲存錯誤
	AddItem(ctx context.Context, sessionID string, productID uint, quantity int) error
	// UpdateQuantity 覆寫購物車內商品數量
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 數量小於1
	//   - er.DataNotExistsCode 462: 商品不在購物車內
	UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, productID uint) error
	ClearCart(ctx context.Context, sessionID string) error
}

type CartService struct {
	cartRepo    ICartRepo
	productRepo IProductReader
}

func NewCartService(cartRepo ICartRepo, productRepo IProductReader) ICartService {
	if cartRepo == nil {
		panic("cart service initialization failed: cartRepo cannot be nil")
	}
	if productRepo == nil {
		panic("cart service initialization failed: productRepo cannot be nil")
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint, quantity int) error {
	if quantity < 1 {
		return er.New(er.InvalidArgumentCode, "quantity must be at least 1")
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return er.New(er.DataNotExistsCode, "product not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	if !product.Available {
		return er.New(er.DataNotExistsCode, "product is not available")
	}

	err = s.cartRepo.AddItem(ctx, sessionID, model.CartItem{
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price, // 擷取當下價格
	})
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error {
	if quantity < 1 {
		return er.New(er.InvalidArgumentCode, "quantity must be at least 1")
	}

	err := s.cartRepo.SetQuantity(ctx, sessionID, productID, quantity)
	if err != nil {
		if errors.Is(err, redis_repo.ErrItemNotFound) {
			return er.New(er.DataNotExistsCode, err.Error())
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) error {
	err := s.cartRepo.RemoveItem(ctx, sessionID, productID)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	err := s.cartRepo.Clear(ctx, sessionID)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
