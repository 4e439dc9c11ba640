package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem_MergesOnID(t *testing.T) {
	cart := NewCart()

	cart.AddItem(CartItem{ID: "xx59-headphones", Name: "XX59 Headphones", Price: 899, Quantity: 1})
	cart.AddItem(CartItem{ID: "xx59-headphones", Name: "XX59 Headphones", Price: 899, Quantity: 2})

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_AddItem_DefaultsQuantityToOne(t *testing.T) {
	cart := NewCart()

	cart.AddItem(CartItem{ID: "zx9-speaker", Price: 4500, Quantity: 0})
	cart.AddItem(CartItem{ID: "zx7-speaker", Price: 3500, Quantity: -2})

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: "a", Price: 100})
	cart.AddItem(CartItem{ID: "b", Price: 200})

	cart.RemoveItem("a")
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// removing an absent id is a no-op
	cart.RemoveItem("missing")
	assert.Equal(t, 1, cart.Len())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: "a", Price: 100})

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, int64(0), cart.TotalPrice())
}

func TestCart_TotalPrice(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, int64(0), cart.TotalPrice())

	cart.AddItem(CartItem{ID: "a", Price: 100, Quantity: 2})
	cart.AddItem(CartItem{ID: "b", Price: 899, Quantity: 1})

	assert.Equal(t, int64(1099), cart.TotalPrice())
}

func TestCart_ItemsIsSnapshot(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: "a", Price: 100, Quantity: 1})

	snapshot := cart.Items()
	cart.AddItem(CartItem{ID: "a", Price: 100, Quantity: 5})

	assert.Equal(t, 1, snapshot[0].Quantity)
}
