package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/audiophile/storefront/internal/core/domain"
)

// Mock OrderRepository
type mockOrderRepo struct {
	created []domain.Order
	err     error
}

func (m *mockOrderRepo) Create(ctx context.Context, order domain.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.created = append(m.created, order)
	return "internal-1", nil
}

func (m *mockOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	for i := range m.created {
		if m.created[i].OrderID == orderID {
			return &m.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func eMoneyForm() CheckoutForm {
	form := validForm()
	form.PaymentMethod = PaymentEMoney
	form.EMoneyNumber = "123456789"
	form.EMoneyPin = "1234"
	return form
}

func TestCheckout_Success(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewCheckoutService(repo, 100)
	defer svc.Close()

	cart := domain.NewCart()
	cart.AddItem(domain.CartItem{ID: "item-1", Name: "Item", Price: 100, Quantity: 2})

	orderID, err := svc.Checkout(context.Background(), cart, eMoneyForm())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if orderID == "" {
		t.Fatal("expected non-empty order id")
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created order, got %d", len(repo.created))
	}
	order := repo.created[0]

	if order.Subtotal != 200 {
		t.Errorf("expected subtotal 200, got %d", order.Subtotal)
	}
	if order.Shipping != 50 {
		t.Errorf("expected shipping 50, got %d", order.Shipping)
	}
	if order.Tax != 16 {
		t.Errorf("expected tax 16, got %d", order.Tax)
	}
	if order.Total != 266 {
		t.Errorf("expected total 266, got %d", order.Total)
	}
	if order.Total != order.Subtotal+order.Shipping+order.Tax {
		t.Error("total must equal subtotal + shipping + tax")
	}
	if order.ShippingAddress.Street != "123 Main Street" {
		t.Errorf("unexpected street: %s", order.ShippingAddress.Street)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", order.Items)
	}

	if cart.Len() != 0 {
		t.Error("cart should be cleared after successful checkout")
	}
}

func TestCheckout_QueuesNotification(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewCheckoutService(repo, 100)
	defer svc.Close()

	cart := domain.NewCart()
	cart.AddItem(domain.CartItem{ID: "item-1", Price: 100, Quantity: 1})

	orderID, err := svc.Checkout(context.Background(), cart, eMoneyForm())
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	order := <-svc.NotificationQueue()
	if order.OrderID != orderID {
		t.Errorf("expected queued order %s, got %s", orderID, order.OrderID)
	}
	if order.Status != domain.OrderStatusConfirmed {
		t.Errorf("expected confirmed status, got %s", order.Status)
	}
	if order.CustomerEmail != "jordan@example.com" {
		t.Errorf("unexpected recipient: %s", order.CustomerEmail)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewCheckoutService(repo, 100)
	defer svc.Close()

	_, err := svc.Checkout(context.Background(), domain.NewCart(), eMoneyForm())
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got: %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("no order should be created from an empty cart")
	}
}

func TestCheckout_ValidationFailureHasNoSideEffects(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewCheckoutService(repo, 100)
	defer svc.Close()

	cart := domain.NewCart()
	cart.AddItem(domain.CartItem{ID: "item-1", Price: 100, Quantity: 1})

	form := eMoneyForm()
	form.EMoneyPin = "12" // wrong length

	_, err := svc.Checkout(context.Background(), cart, form)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got: %v", err)
	}
	if _, ok := verrs["eMoneyPin"]; !ok {
		t.Errorf("expected eMoneyPin violation, got: %v", verrs)
	}
	if len(repo.created) != 0 {
		t.Error("no order should be created on validation failure")
	}
	if cart.Len() != 1 {
		t.Error("cart must stay intact on validation failure")
	}
}

func TestCheckout_PersistFailureKeepsCart(t *testing.T) {
	repo := &mockOrderRepo{err: errors.New("storage unavailable")}
	svc := NewCheckoutService(repo, 100)
	defer svc.Close()

	cart := domain.NewCart()
	cart.AddItem(domain.CartItem{ID: "item-1", Price: 100, Quantity: 1})

	_, err := svc.Checkout(context.Background(), cart, eMoneyForm())
	if err == nil {
		t.Fatal("expected error when persistence fails")
	}

	if cart.Len() != 1 {
		t.Error("cart must not be cleared when persistence fails")
	}

	select {
	case <-svc.NotificationQueue():
		t.Error("no notification should be queued when persistence fails")
	default:
	}
}

func TestCheckout_FullNotificationQueueDoesNotBlock(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewCheckoutService(repo, 0) // nothing can ever be queued
	defer svc.Close()

	cart := domain.NewCart()
	cart.AddItem(domain.CartItem{ID: "item-1", Price: 100, Quantity: 1})

	orderID, err := svc.Checkout(context.Background(), cart, eMoneyForm())
	if err != nil {
		t.Fatalf("checkout must succeed even when the queue is full: %v", err)
	}
	if orderID == "" {
		t.Error("expected non-empty order id")
	}
}

func TestNewOrderID_Pattern(t *testing.T) {
	id := NewOrderID()

	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != "ORD" {
		t.Fatalf("unexpected id format: %s", id)
	}
	if len(parts[2]) != 9 {
		t.Errorf("expected 9-char suffix, got %q", parts[2])
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("suffix must be uppercase: %s", parts[2])
	}

	if NewOrderID() == id {
		t.Error("consecutive ids should differ")
	}
}

func TestTax_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{0, 0},
		{6, 0},    // 0.48 rounds down
		{7, 1},    // 0.56 rounds up
		{100, 8},  // exact
		{200, 16}, // exact
		{2999, 240},
	}

	for _, tt := range tests {
		if got := Tax(tt.subtotal); got != tt.want {
			t.Errorf("Tax(%d) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}
