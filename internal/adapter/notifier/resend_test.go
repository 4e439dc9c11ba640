package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiophile/storefront/internal/core/domain"
)

func confirmedOrder() domain.Order {
	return domain.Order{
		OrderID:       "ORD-1700000000000-A1B2C3D4E",
		CustomerName:  "Jordan Lee",
		CustomerEmail: "jordan@example.com",
		ShippingAddress: domain.ShippingAddress{
			Street:  "123 Main Street",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62704",
			Country: "US",
		},
		Items:    []domain.CartItem{{ID: "xx59-headphones", Name: "XX59 Headphones", Price: 899, Quantity: 2}},
		Subtotal: 1798,
		Shipping: 50,
		Tax:      144,
		Total:    1992,
		Status:   domain.OrderStatusConfirmed,
	}
}

func TestSendConfirmation_PostsRenderedEmail(t *testing.T) {
	var captured sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewResendClient("test-key", "Audiophile <orders@example.com>", "http://localhost:3000").
		WithEndpoint(srv.URL)

	err := client.SendConfirmation(context.Background(), confirmedOrder())
	require.NoError(t, err)

	assert.Equal(t, []string{"jordan@example.com"}, captured.To)
	assert.Equal(t, "Order Confirmation - ORD-1700000000000-A1B2C3D4E", captured.Subject)
	assert.Contains(t, captured.HTML, "Hi Jordan Lee,")
	assert.Contains(t, captured.HTML, "ORD-1700000000000-A1B2C3D4E")
	assert.Contains(t, captured.HTML, "XX59 Headphones")
	assert.Contains(t, captured.HTML, "$1992.00")
	assert.Contains(t, captured.HTML, "Springfield, IL 62704")
	assert.Contains(t, captured.HTML, "http://localhost:3000/order-confirmation/ORD-1700000000000-A1B2C3D4E")
}

func TestSendConfirmation_RejectsMalformedInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("transport must not be contacted for malformed input")
	}))
	defer srv.Close()

	client := NewResendClient("k", "from@example.com", "").WithEndpoint(srv.URL)

	tests := []struct {
		name   string
		mutate func(*domain.Order)
	}{
		{"missing recipient", func(o *domain.Order) { o.CustomerEmail = "" }},
		{"missing customer name", func(o *domain.Order) { o.CustomerName = "" }},
		{"missing order id", func(o *domain.Order) { o.OrderID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := confirmedOrder()
			tt.mutate(&order)

			err := client.SendConfirmation(context.Background(), order)
			assert.ErrorIs(t, err, ErrInvalidNotification)
		})
	}
}

func TestSendConfirmation_TransportRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewResendClient("bad-key", "from@example.com", "").WithEndpoint(srv.URL)

	err := client.SendConfirmation(context.Background(), confirmedOrder())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSendConfirmation_TransportUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewResendClient("k", "from@example.com", "").WithEndpoint(srv.URL)

	err := client.SendConfirmation(context.Background(), confirmedOrder())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestRenderConfirmation_EscapesHTML(t *testing.T) {
	order := confirmedOrder()
	order.CustomerName = `<script>alert("x")</script>`

	html, err := renderConfirmation(order, "http://localhost:3000")
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"))
}
