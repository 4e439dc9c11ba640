package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/port"
)

const (
	orderKeyPrefix = "order:"
	orderCacheTTL  = 15 * time.Minute
)

// RedisAdapter caches resolved orders for the confirmation view read path.
// Orders never change after creation, so a stale entry is impossible; the
// TTL only bounds memory.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	raw, err := r.client.Get(ctx, orderKeyPrefix+orderID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, port.ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode cached order: %w", err)
	}

	return &order, nil
}

func (r *RedisAdapter) Set(ctx context.Context, orderID string, order *domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	return r.client.Set(ctx, orderKeyPrefix+orderID, raw, orderCacheTTL).Err()
}

var _ port.OrderCache = (*RedisAdapter)(nil)
