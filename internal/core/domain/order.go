package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// CartItem is a single line of a cart. Prices are whole currency units.
type CartItem struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Price    int64  `json:"price" bson:"price"`
	Quantity int    `json:"quantity" bson:"quantity"`
	Image    string `json:"image,omitempty" bson:"image,omitempty"`
}

type ShippingAddress struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

// Order is the persisted record of a completed checkout. InternalID is
// assigned by storage and never leaves the service; OrderID is the
// buyer-facing key used for all lookups.
type Order struct {
	InternalID      string          `json:"-" bson:"internal_id"`
	OrderID         string          `json:"orderId" bson:"order_id"`
	CustomerName    string          `json:"customerName" bson:"customer_name"`
	CustomerEmail   string          `json:"customerEmail" bson:"customer_email"`
	CustomerPhone   string          `json:"customerPhone" bson:"customer_phone"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shipping_address"`
	Items           []CartItem      `json:"items" bson:"items"`
	Subtotal        int64           `json:"subtotal" bson:"subtotal"`
	Shipping        int64           `json:"shipping" bson:"shipping"`
	Tax             int64           `json:"tax" bson:"tax"`
	Total           int64           `json:"total" bson:"total"`
	Status          OrderStatus     `json:"status" bson:"status"`
	CreatedAt       time.Time       `json:"createdAt" bson:"created_at"`
}
