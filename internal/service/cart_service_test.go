package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProductReader struct {
	products map[uint]*model.Product
}

func (f *fakeProductReader) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func newFakeProductReader() *fakeProductReader {
	return &fakeProductReader{
		products: map[uint]*model.Product{
			1: {ProductID: 1, Code: "KB-01", Name: "Keyboard", Price: decimal.RequireFromString("19.99"), Available: true},
			2: {ProductID: 2, Code: "MS-01", Name: "Mouse", Price: decimal.RequireFromString("9.50"), Available: false},
		},
	}
}

func TestCartAddItem(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartService := NewCartService(cartRepo, newFakeProductReader())
	sessionID := "cart-session-1"

	err := cartService.AddItem(context.Background(), sessionID, 1, 2)
	require.NoError(t, err)

	cart, err := cartService.GetCart(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, "Keyboard", cart.Items[0].ProductName)
	require.Equal(t, 2, cart.Items[0].Quantity)
	// 價格擷取自商品目錄
	require.True(t, decimal.RequireFromString("19.99").Equal(cart.Items[0].Price))

	// 重複加入累加數量
	err = cartService.AddItem(context.Background(), sessionID, 1, 3)
	require.NoError(t, err)
	cart, err = cartService.GetCart(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddItemInvalidQuantity(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeProductReader())

	err := cartService.AddItem(context.Background(), "s1", 1, 0)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.InvalidArgumentCode, anaErr.Code)
}

func TestCartAddItemProductNotFound(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeProductReader())

	err := cartService.AddItem(context.Background(), "s1", 99, 1)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.DataNotExistsCode, anaErr.Code)
}

func TestCartAddItemProductUnavailable(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeProductReader())

	// 商品2已下架
	err := cartService.AddItem(context.Background(), "s1", 2, 1)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.DataNotExistsCode, anaErr.Code)
}

func TestCartUpdateQuantity(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartService := NewCartService(cartRepo, newFakeProductReader())
	sessionID := "cart-session-2"

	require.NoError(t, cartService.AddItem(context.Background(), sessionID, 1, 2))

	err := cartService.UpdateQuantity(context.Background(), sessionID, 1, 7)
	require.NoError(t, err)

	cart, err := cartService.GetCart(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, 7, cart.Items[0].Quantity)

	err = cartService.UpdateQuantity(context.Background(), sessionID, 1, 0)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.InvalidArgumentCode, anaErr.Code)
}

func TestCartRemoveItem(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartService := NewCartService(cartRepo, newFakeProductReader())
	sessionID := "cart-session-3"

	require.NoError(t, cartService.AddItem(context.Background(), sessionID, 1, 1))
	require.NoError(t, cartService.RemoveItem(context.Background(), sessionID, 1))

	cart, err := cartService.GetCart(context.Background(), sessionID)
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestCartGetUnknownSessionIsEmpty(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeProductReader())

	cart, err := cartService.GetCart(context.Background(), "never-seen")
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.True(t, cart.IsEmpty())
	require.True(t, decimal.Zero.Equal(cart.TotalPrice()))
}
