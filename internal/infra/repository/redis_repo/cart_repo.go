package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type CartRepoError error

var (
	ErrItemNotFound    CartRepoError = errors.New("cart item not found")
	ErrInvalidQuantity CartRepoError = errors.New("quantity must be at least 1")
)

// CartRepo 購物車只存在redis  以session id為key  不落db
type CartRepo struct {
	CartCache *redis.Client
}

func NewCartRepo(cartCache *redis.Client) *CartRepo {
	return &CartRepo{CartCache: cartCache}
}

func generateCartItemKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:items", sessionID)
}

// cartEntry hash內單一商品的儲存格式
type cartEntry struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"` // decimal以字串存  避免浮點
}

// AddItem 加入商品  已存在則數量累加  保留第一次加入時擷取的價格
// 使用 Lua 腳本確保原子性
func (r *CartRepo) AddItem(ctx context.Context, sessionID string, item model.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	itemsKey := generateCartItemKey(sessionID)

	entry, err := json.Marshal(cartEntry{
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Price:       item.Price.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode cart item: %w", err)
	}

	luaScript := `
		local key = KEYS[1]
		local field = ARGV[1]
		local incoming = cjson.decode(ARGV[2])

		local current = redis.call('HGET', key, field)
		if current then
			local entry = cjson.decode(current)
			entry.quantity = entry.quantity + incoming.quantity
			redis.call('HSET', key, field, cjson.encode(entry))
		else
			redis.call('HSET', key, field, ARGV[2])
		end
		redis.call('EXPIRE', key, ARGV[3])
		return 1
	`
	_, err = r.CartCache.Eval(ctx, luaScript, []string{itemsKey},
		fmt.Sprintf("%d", item.ProductID), string(entry), int(constants.CartTTL.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("failed to add item to cart: %w", err)
	}
	return nil
}

// SetQuantity 覆寫商品數量  商品不存在回傳錯誤
func (r *CartRepo) SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	itemsKey := generateCartItemKey(sessionID)

	luaScript := `
		local key = KEYS[1]
		local field = ARGV[1]
		local quantity = tonumber(ARGV[2])

		local current = redis.call('HGET', key, field)
		if not current then
			return -1
		end
		local entry = cjson.decode(current)
		entry.quantity = quantity
		redis.call('HSET', key, field, cjson.encode(entry))
		redis.call('EXPIRE', key, ARGV[3])
		return 1
	`
	result, err := r.CartCache.Eval(ctx, luaScript, []string{itemsKey},
		fmt.Sprintf("%d", productID), quantity, int(constants.CartTTL.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	if v, ok := result.(int64); ok && v == -1 {
		return fmt.Errorf("%w: product %d", ErrItemNotFound, productID)
	}
	return nil
}

// RemoveItem 從購物車中刪除指定商品
func (r *CartRepo) RemoveItem(ctx context.Context, sessionID string, productID uint) error {
	itemsKey := generateCartItemKey(sessionID)

	err := r.CartCache.HDel(ctx, itemsKey, fmt.Sprintf("%d", productID)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete item from cart: %w", err)
	}
	return nil
}

// Get 取整台購物車  不存在視為空車
func (r *CartRepo) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	itemsKey := generateCartItemKey(sessionID)

	fields, err := r.CartCache.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	cart := &model.Cart{SessionID: sessionID}
	for productIDStr, raw := range fields {
		var entry cartEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("invalid cart entry for product %s: %w", productIDStr, err)
		}
		if entry.Quantity < 1 {
			continue
		}
		var productID uint
		if _, err := fmt.Sscanf(productIDStr, "%d", &productID); err != nil {
			return nil, fmt.Errorf("invalid product id %s: %w", productIDStr, err)
		}
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for product %s: %w", productIDStr, err)
		}
		cart.Items = append(cart.Items, model.CartItem{
			ProductID:   productID,
			ProductName: entry.ProductName,
			Quantity:    entry.Quantity,
			Price:       price,
		})
	}

	return cart, nil
}

// Clear 清空購物車
func (r *CartRepo) Clear(ctx context.Context, sessionID string) error {
	itemsKey := generateCartItemKey(sessionID)

	err := r.CartCache.Del(ctx, itemsKey).Err()
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
