package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/port"
)

var ErrEmptyCart = errors.New("cart is empty")

const (
	// ShippingFlat is charged on every order regardless of contents.
	ShippingFlat = 50
	// TaxRatePercent is applied to the subtotal, rounded half-up.
	TaxRatePercent = 8
)

// CheckoutService is the single transactional boundary turning a cart plus
// form data into a persisted order. Persistence failure aborts the
// transaction; notification failure never does.
type CheckoutService struct {
	repo        port.OrderRepository
	notifyQueue chan domain.Order
}

func NewCheckoutService(repo port.OrderRepository, queueSize int) *CheckoutService {
	return &CheckoutService{
		repo:        repo,
		notifyQueue: make(chan domain.Order, queueSize),
	}
}

// Checkout runs the transaction: reject empty cart, validate the form,
// compute totals, persist, enqueue the confirmation send, clear the cart.
// On success it returns the business order id for the confirmation view.
func (s *CheckoutService) Checkout(ctx context.Context, cart *domain.Cart, form CheckoutForm) (string, error) {
	if cart.Len() == 0 {
		return "", ErrEmptyCart
	}

	if errs := form.Validate(); errs != nil {
		return "", errs
	}

	items := cart.Items()
	subtotal := cart.TotalPrice()
	tax := Tax(subtotal)
	total := subtotal + ShippingFlat + tax

	order := domain.Order{
		OrderID:       NewOrderID(),
		CustomerName:  form.Name,
		CustomerEmail: form.Email,
		CustomerPhone: form.Phone,
		ShippingAddress: domain.ShippingAddress{
			Street:  form.Address,
			City:    form.City,
			State:   form.State,
			ZipCode: form.ZipCode,
			Country: form.Country,
		},
		Items:    items,
		Subtotal: subtotal,
		Shipping: ShippingFlat,
		Tax:      tax,
		Total:    total,
	}

	internalID, err := s.repo.Create(ctx, order)
	if err != nil {
		// Cart stays intact so the buyer can resubmit.
		return "", fmt.Errorf("create order: %w", err)
	}
	order.InternalID = internalID
	order.Status = domain.OrderStatusConfirmed

	// Fire-and-forget: the order stands whether or not delivery happens.
	select {
	case s.notifyQueue <- order:
	default:
		log.Printf("notification queue full, dropping confirmation for order %s", order.OrderID)
	}

	cart.Clear()

	return order.OrderID, nil
}

// NotificationQueue exposes persisted orders awaiting a confirmation send.
func (s *CheckoutService) NotificationQueue() <-chan domain.Order {
	return s.notifyQueue
}

func (s *CheckoutService) Close() {
	close(s.notifyQueue)
}

// Tax returns round-half-up of subtotal * 8%, in whole currency units.
func Tax(subtotal int64) int64 {
	return (subtotal*TaxRatePercent + 50) / 100
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID produces an ORD-<epoch-millis>-<9 char base36> identifier.
// Uniqueness is best-effort here; the storage layer enforces it with a
// unique index on the order id.
func NewOrderID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not worth aborting a checkout over
		for i := range buf {
			buf[i] = byte(time.Now().UnixNano() >> (i * 7))
		}
	}
	for i, b := range buf {
		buf[i] = base36[int(b)%len(base36)]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), buf)
}
