package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/audiophile/storefront/internal/core/domain"
)

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total int64             `json:"total"`
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.carts.Cart(mux.Vars(r)["session"])
	writeJSON(w, http.StatusOK, cartResponse{
		Items: cart.Items(),
		Total: cart.TotalPrice(),
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem resolves the product from the catalog so clients cannot set
// their own prices.
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, ok := h.catalog.Lookup(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	cart := h.carts.Cart(mux.Vars(r)["session"])
	cart.AddItem(domain.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: req.Quantity,
		Image:    product.Image,
	})

	writeJSON(w, http.StatusOK, cartResponse{
		Items: cart.Items(),
		Total: cart.TotalPrice(),
	})
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart := h.carts.Cart(vars["session"])
	cart.RemoveItem(vars["id"])

	writeJSON(w, http.StatusOK, cartResponse{
		Items: cart.Items(),
		Total: cart.TotalPrice(),
	})
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.carts.Cart(mux.Vars(r)["session"])
	cart.Clear()

	writeJSON(w, http.StatusOK, cartResponse{Items: []domain.CartItem{}, Total: 0})
}
