package port

import (
	"context"

	"github.com/audiophile/storefront/internal/core/domain"
)

type Notifier interface {
	// SendConfirmation renders and delivers a confirmation message for the
	// order in a single attempt. No retry, no queueing of failed sends.
	SendConfirmation(ctx context.Context, order domain.Order) error
}
