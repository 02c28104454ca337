package redis_repo

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testRedisAddr     = "localhost:6379"
	testRedisPassword = "password"
)

type CartRepoTestSuite struct {
	suite.Suite
	cartRepo *CartRepo
}

func setupTestRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     testRedisAddr,
		Password: testRedisPassword,
		DB:       1, // 用測試DB
	})
}

func (suite *CartRepoTestSuite) SetupTest() {
	rdb := setupTestRedis()
	rdb.FlushDB(context.Background())
	suite.cartRepo = NewCartRepo(rdb)
}

func TestCartRepoTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration tests in short mode")
	}
	suite.Run(t, new(CartRepoTestSuite))
}

func testCartItem(productID uint, quantity int, price string) model.CartItem {
	return model.CartItem{
		ProductID:   productID,
		ProductName: "Test Product",
		Quantity:    quantity,
		Price:       decimal.RequireFromString(price),
	}
}

func (suite *CartRepoTestSuite) TestAddAndGet() {
	ctx := context.Background()
	sessionID := "session-1"

	err := suite.cartRepo.AddItem(ctx, sessionID, testCartItem(1, 2, "19.99"))
	assert.NoError(suite.T(), err)

	cart, err := suite.cartRepo.Get(ctx, sessionID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), sessionID, cart.SessionID)
	require.Len(suite.T(), cart.Items, 1)
	assert.Equal(suite.T(), uint(1), cart.Items[0].ProductID)
	assert.Equal(suite.T(), 2, cart.Items[0].Quantity)
	assert.True(suite.T(), decimal.RequireFromString("19.99").Equal(cart.Items[0].Price))
}

func (suite *CartRepoTestSuite) TestAddAccumulatesQuantity() {
	ctx := context.Background()
	sessionID := "session-2"

	err := suite.cartRepo.AddItem(ctx, sessionID, testCartItem(1, 2, "19.99"))
	assert.NoError(suite.T(), err)

	// 再加同商品  數量累加  保留第一次的價格
	err = suite.cartRepo.AddItem(ctx, sessionID, testCartItem(1, 3, "25.00"))
	assert.NoError(suite.T(), err)

	cart, err := suite.cartRepo.Get(ctx, sessionID)
	assert.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 1)
	assert.Equal(suite.T(), 5, cart.Items[0].Quantity)
	assert.True(suite.T(), decimal.RequireFromString("19.99").Equal(cart.Items[0].Price))
}

func (suite *CartRepoTestSuite) TestAddInvalidQuantity() {
	err := suite.cartRepo.AddItem(context.Background(), "session-3", testCartItem(1, 0, "19.99"))
	assert.ErrorIs(suite.T(), err, ErrInvalidQuantity)
}

func (suite *CartRepoTestSuite) TestSetQuantity() {
	ctx := context.Background()
	sessionID := "session-4"

	err := suite.cartRepo.AddItem(ctx, sessionID, testCartItem(1, 2, "19.99"))
	assert.NoError(suite.T(), err)

	err = suite.cartRepo.SetQuantity(ctx, sessionID, 1, 7)
	assert.NoError(suite.T(), err)

	cart, err := suite.cartRepo.Get(ctx, sessionID)
	assert.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 1)
	assert.Equal(suite.T(), 7, cart.Items[0].Quantity)
}

func (suite *CartRepoTestSuite) TestSetQuantityItemNotFound() {
	err := suite.cartRepo.SetQuantity(context.Background(), "session-5", 99, 3)
	assert.ErrorIs(suite.T(), err, ErrItemNotFound)
}

func (suite *CartRepoTestSuite) TestRemoveItem() {
	ctx := context.Background()
	sessionID := "session-6"

	err := suite.cartRepo.AddItem(ctx, sessionID, testCartItem(1, 2, "19.99"))
	assert.NoError(suite.T(), err)
	err = suite.cartRepo.AddItem(ctx, sessionID, testCartItem(2, 1, "9.50"))
	assert.NoError(suite.T(), err)

	err = suite.cartRepo.RemoveItem(ctx, sessionID, 1)
	assert.NoError(suite.T(), err)

	cart, err := suite.cartRepo.Get(ctx, sessionID)
	assert.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 1)
	assert.Equal(suite.T(), uint(2), cart.Items[0].ProductID)
}

func (suite *CartRepoTestSuite) TestClear() {
	ctx := context.Background()
	sessionID := "session-7"

	err := suite.cartRepo.AddItem(ctx, sessionID, testCartItem(1, 2, "19.99"))
	assert.NoError(suite.T(), err)

	err = suite.cartRepo.Clear(ctx, sessionID)
	assert.NoError(suite.T(), err)

	cart, err := suite.cartRepo.Get(ctx, sessionID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), cart.IsEmpty())
}

func (suite *CartRepoTestSuite) TestGetUnknownSessionIsEmpty() {
	cart, err := suite.cartRepo.Get(context.Background(), "never-seen")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), cart.IsEmpty())
}

func (suite *CartRepoTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()

	err := suite.cartRepo.AddItem(ctx, "session-a", testCartItem(1, 2, "19.99"))
	assert.NoError(suite.T(), err)

	cart, err := suite.cartRepo.Get(ctx, "session-b")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), cart.IsEmpty())
}
