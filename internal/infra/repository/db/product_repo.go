package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/gosimple/slug"
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// ProductFilter 後台商品查詢條件  零值欄位不套用
type ProductFilter struct {
	Available   *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Keyword     string // 比對名稱與描述
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "product_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts 後台列表  依條件過濾加分頁
func (s *ProductRepo) SearchProducts(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Product{})

	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", kw, kw)
	}

	// 計算總數
	query.Count(&total)

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&products).Error

	return products, total, err
}

type CategoryRepo struct {
	db *DbDao
}

func NewCategoryRepo(db *DbDao) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create - 創建分類  slug由名稱自動產生
func (s *CategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}
	return s.db.WithContext(ctx).Create(category).Error
}

// Read - 查詢所有分類
func (s *CategoryRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}
