package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/audiophile/storefront/internal/adapter/notifier"
	"github.com/audiophile/storefront/internal/catalog"
	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/core/service"
	"github.com/audiophile/storefront/internal/port"
)

type HTTPHandler struct {
	carts    *service.CartStore
	checkout *service.CheckoutService
	viewer   *service.ViewerService
	notifier port.Notifier
	catalog  *catalog.Catalog
}

func NewHTTPHandler(
	carts *service.CartStore,
	checkout *service.CheckoutService,
	viewer *service.ViewerService,
	n port.Notifier,
	c *catalog.Catalog,
) *HTTPHandler {
	return &HTTPHandler{
		carts:    carts,
		checkout: checkout,
		viewer:   viewer,
		notifier: n,
		catalog:  c,
	}
}

func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.HandleFunc("/api/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", h.GetProduct).Methods(http.MethodGet)

	r.HandleFunc("/api/cart/{session}", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/api/cart/{session}/items", h.AddCartItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/{session}/items/{id}", h.RemoveCartItem).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart/{session}", h.ClearCart).Methods(http.MethodDelete)

	r.HandleFunc("/api/checkout", h.Checkout).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{order_id}", h.GetOrder).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications", h.SendNotification).Methods(http.MethodPost)

	return r
}

type checkoutRequest struct {
	Session string `json:"session"`
	service.CheckoutForm
}

type checkoutResponse struct {
	OrderID string `json:"order_id"`
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Session == "" {
		writeError(w, http.StatusBadRequest, "session is required")
		return
	}

	cart := h.carts.Cart(req.Session)

	orderID, err := h.checkout.Checkout(r.Context(), cart, req.CheckoutForm)
	if err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "your cart is empty")
		default:
			// Cart is untouched; the buyer can resubmit as-is.
			writeError(w, http.StatusBadGateway, "failed to process your order, please try again")
		}
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{OrderID: orderID})
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var resolved *domain.Order
	found := false
	for view := range h.viewer.Observe(r.Context(), orderID) {
		switch view.State {
		case service.ViewFound:
			resolved = view.Order
			found = true
		case service.ViewNotFound:
			found = false
		}
	}

	if !found {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

type notificationRequest struct {
	To              string                 `json:"to"`
	CustomerName    string                 `json:"customerName"`
	OrderID         string                 `json:"orderId"`
	Items           []domain.CartItem      `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	Subtotal        int64                  `json:"subtotal"`
	Shipping        int64                  `json:"shipping"`
	Tax             int64                  `json:"tax"`
	Total           int64                  `json:"total"`
}

func (h *HTTPHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := domain.Order{
		OrderID:         req.OrderID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.To,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Total:           req.Total,
	}

	if err := h.notifier.SendConfirmation(r.Context(), order); err != nil {
		if errors.Is(err, notifier.ErrInvalidNotification) {
			writeError(w, http.StatusBadRequest, "missing required fields")
			return
		}
		writeError(w, http.StatusBadGateway, "failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.All())
}

func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.Lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
