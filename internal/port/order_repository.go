package port

import (
	"context"
	"errors"

	"github.com/audiophile/storefront/internal/core/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	// Create appends a new order record with a storage-assigned internal id,
	// creation timestamp and confirmed status, and returns the internal id.
	Create(ctx context.Context, order domain.Order) (string, error)

	// GetByOrderID returns the first record matching the business order id,
	// or ErrOrderNotFound when no record matches.
	GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
}
