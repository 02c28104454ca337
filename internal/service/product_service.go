package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

// IProductStore 商品/分類持久層介面  後台瀏覽用
type IProductStore interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	SearchProducts(ctx context.Context, filter db.ProductFilter, page, pageSize int) ([]model.Product, int64, error)
}

type ICategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetAllCategories(ctx context.Context) ([]model.Category, error)
}

// IProductService 後台商品瀏覽  泛用列表過濾
type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	// SearchProducts 依上架狀態/建立日期/關鍵字過濾加分頁
	SearchProducts(ctx context.Context, filter db.ProductFilter, page, pageSize int) ([]model.Product, int64, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	GetAllCategories(ctx context.Context) ([]model.Category, error)
}

type ProductService struct {
	productStore  IProductStore
	categoryStore ICategoryStore
}

func NewProductService(productStore IProductStore, categoryStore ICategoryStore) IProductService {
	if productStore == nil {
		panic("product service initialization failed: productStore cannot be nil")
	}
	if categoryStore == nil {
		panic("product service initialization failed: categoryStore cannot be nil")
	}
	return &ProductService{
		productStore:  productStore,
		categoryStore: categoryStore,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if product.Name == "" || product.Code == "" {
		return er.New(er.InvalidArgumentCode, "product name and code are required")
	}
	if err := s.productStore.CreateProduct(ctx, product); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ProductService) SearchProducts(ctx context.Context, filter db.ProductFilter, page, pageSize int) ([]model.Product, int64, error) {
	products, total, err := s.productStore.SearchProducts(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}
	return products, total, nil
}

func (s *ProductService) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return er.New(er.InvalidArgumentCode, "category name is required")
	}
	if err := s.categoryStore.CreateCategory(ctx, category); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryStore.GetAllCategories(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return categories, nil
}
