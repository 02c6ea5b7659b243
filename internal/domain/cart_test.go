package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, title, price string) Product {
	return Product{ID: id, Title: title, Price: decimal.RequireFromString(price), Category: "misc"}
}

func TestAddToCart_SumsQuantitiesForSameProduct(t *testing.T) {
	c := NewCart()
	p := product(1, "Mascara", "9.99")

	for _, q := range []int{1, 3, 2, 5} {
		c.AddToCart(p, q)
	}

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Product.ID)
	assert.Equal(t, 11, items[0].Quantity)
}

func TestAddToCart_AppendsInInsertionOrder(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(3, "c", "1"), 1)
	c.AddToCart(product(1, "a", "1"), 1)
	c.AddToCart(product(2, "b", "1"), 1)
	c.AddToCart(product(1, "a", "1"), 4)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{items[0].Product.ID, items[1].Product.ID, items[2].Product.ID})
	assert.Equal(t, 5, items[1].Quantity)
}

func TestAddToCart_KeepsFirstSnapshot(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(1, "old title", "1"), 1)
	c.AddToCart(product(1, "new title", "2"), 1)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "old title", items[0].Product.Title)
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(1, "a", "1"), 1)
	c.AddToCart(product(2, "b", "1"), 2)

	c.RemoveFromCart(1)
	after := c.Items()

	c.RemoveFromCart(1)
	assert.Equal(t, after, c.Items())
	require.Len(t, after, 1)
	assert.Equal(t, int64(2), after[0].Product.ID)
}

func TestRemoveFromCart_DoesNotAliasSnapshots(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(1, "a", "1"), 1)
	c.AddToCart(product(2, "b", "1"), 1)
	c.AddToCart(product(3, "c", "1"), 1)

	before := c.Items()
	c.RemoveFromCart(2)

	assert.Equal(t, int64(2), before[1].Product.ID)
	assert.Equal(t, 2, c.Len())
}

func TestUpdateQuantity(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(1, "a", "1"), 1)

	c.UpdateQuantity(1, 7)
	c.UpdateQuantity(42, 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantity_NoClamp(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(1, "a", "1"), 2)

	c.UpdateQuantity(1, 0)
	assert.Equal(t, 0, c.Items()[0].Quantity)
}

func TestClearCart(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		c := NewCart()
		c.ClearCart()
		assert.Empty(t, c.Items())
	})

	t.Run("filled cart", func(t *testing.T) {
		c := NewCart()
		c.AddToCart(product(1, "a", "1"), 1)
		c.AddToCart(product(2, "b", "1"), 3)
		c.ClearCart()
		assert.Empty(t, c.Items())
		assert.Zero(t, c.Len())
	})
}

func TestTotals(t *testing.T) {
	c := NewCart()
	c.AddToCart(product(1, "a", "9.99"), 2)
	c.AddToCart(product(2, "b", "0.01"), 3)

	assert.Equal(t, 5, c.TotalQuantity())
	assert.True(t, decimal.RequireFromString("20.01").Equal(c.Subtotal()), c.Subtotal().String())
}

func TestAddToCart_SaturatesAtMaxQuantity(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)

	cases := []struct {
		name  string
		adds  []int
		total int
	}{
		{"merge up to the limit", []int{MaxQuantity - 1, 1}, MaxQuantity},
		{"merge past the limit", []int{MaxQuantity, 2}, MaxQuantity},
		{"merge that would wrap int", []int{MaxQuantity, maxInt}, MaxQuantity},
		{"single oversized add", []int{maxInt}, MaxQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCart()
			p := product(1, "a", "9.99")
			for _, q := range tc.adds {
				c.AddToCart(p, q)
			}

			items := c.Items()
			require.Len(t, items, 1)
			assert.Equal(t, tc.total, items[0].Quantity)
			assert.Equal(t, tc.total, c.TotalQuantity())
			assert.True(t, c.Subtotal().IsPositive())
		})
	}
}
