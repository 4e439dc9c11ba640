package port

import (
	"context"
	"errors"

	"github.com/audiophile/storefront/internal/core/domain"
)

var ErrCacheMiss = errors.New("order not in cache")

type OrderCache interface {
	// Get returns a cached order or ErrCacheMiss.
	Get(ctx context.Context, orderID string) (*domain.Order, error)

	// Set stores an order under its business order id.
	Set(ctx context.Context, orderID string, order *domain.Order) error
}
