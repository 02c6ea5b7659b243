package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// MaxQuantity — наибольшее количество одного товара в корзине.
const MaxQuantity = 9999

// CartItem — снимок товара и его количество в корзине
type CartItem struct {
	Product  Product
	Quantity int
}

// Total возвращает стоимость позиции.
func (i CartItem) Total() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart хранит позиции в порядке добавления, не более одной позиции на товар.
// Все операции атомарны относительно друг друга.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddToCart увеличивает количество существующей позиции или добавляет новую в конец.
// quantity >= 1 проверяет вызывающий. Количество позиции не превышает MaxQuantity.
func (c *Cart) AddToCart(product Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(product.ID); idx >= 0 {
		c.items[idx] = CartItem{
			Product:  c.items[idx].Product,
			Quantity: addQuantity(c.items[idx].Quantity, quantity),
		}
		return
	}

	c.items = append(c.items, CartItem{Product: product, Quantity: min(quantity, MaxQuantity)})
}

// RemoveFromCart удаляет позицию товара, если она есть.
func (c *Cart) RemoveFromCart(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}

	c.items = append(c.items[:idx:idx], c.items[idx+1:]...)
}

// UpdateQuantity заменяет количество позиции, если она есть. Значение не ограничивается.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(productID); idx >= 0 {
		c.items[idx].Quantity = quantity
	}
}

func (c *Cart) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// Items возвращает копию позиций.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}

	return total
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Total())
	}

	return subtotal
}

func (c *Cart) indexOf(productID int64) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}

	return -1
}

// addQuantity складывает количества с насыщением на MaxQuantity.
func addQuantity(current, delta int) int {
	if delta >= MaxQuantity-current {
		return MaxQuantity
	}

	return current + delta
}
