package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	products   []model.Product
	categories []model.Category
}

func (f *fakeProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductService) SearchProducts(ctx context.Context, filter db.ProductFilter, page, pageSize int) ([]model.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}

func (f *fakeProductService) CreateCategory(ctx context.Context, category *model.Category) error {
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeProductService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func TestAdminListOrders(t *testing.T) {
	var gotPage, gotPageSize int
	handler := NewAdminHandler(
		&fakeProductService{},
		&fakeOrderService{
			listFn: func(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
				gotPage, gotPageSize = page, pageSize
				return []model.Order{
					{OrderID: 9, Email: "b@example.com", Amount: decimal.RequireFromString("20.00")},
					{OrderID: 8, Email: "a@example.com", Amount: decimal.RequireFromString("10.00")},
				}, 5, nil
			},
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders?page=2&page_size=2", nil)
	rec := httptest.NewRecorder()

	handler.ListOrders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, gotPage)
	require.Equal(t, 2, gotPageSize)

	body := rec.Body.String()
	require.Contains(t, body, `"total":5`)
	require.Contains(t, body, `"order_id":9`)
	require.Contains(t, body, `"order_id":8`)
}

func TestAdminListOrdersDefaultPaging(t *testing.T) {
	var gotPage, gotPageSize int
	handler := NewAdminHandler(
		&fakeProductService{},
		&fakeOrderService{
			listFn: func(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
				gotPage, gotPageSize = page, pageSize
				return nil, 0, nil
			},
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	rec := httptest.NewRecorder()

	handler.ListOrders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, constants.DefaultPaging, gotPage)
	require.Equal(t, constants.DefaultPagingSize, gotPageSize)
}
