// Package cart is the client-side shopping cart and its local persistence.
//
// A cart is an ordered list of lines keyed by product id and size. It lives
// entirely on the client and is only sent to the API at checkout.
package cart

import (
	"strconv"

	"golden-thread/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultSize is used when neither the caller nor the product names a size
const DefaultSize = "M"

// LineKey identifies a cart line
func LineKey(productID int64, size string) string {
	return strconv.FormatInt(productID, 10) + ":" + size
}

// Cart holds the lines in insertion order
type Cart struct {
	Lines []domain.LineItem `json:"lines"`
}

// New returns an empty cart
func New() *Cart {
	return &Cart{Lines: []domain.LineItem{}}
}

// Add puts qty of the product in the given size into the cart. An empty size
// falls back to the product's first size. A line with the same key has its
// quantity increased; otherwise a new line is appended.
func (c *Cart) Add(p *domain.Product, size string, qty int) domain.LineItem {
	if size == "" {
		size = DefaultSize
		if len(p.Sizes) > 0 && p.Sizes[0] != "" {
			size = p.Sizes[0]
		}
	}
	if qty < 1 {
		qty = 1
	}

	key := LineKey(p.ID, size)
	for i := range c.Lines {
		if c.Lines[i].Key == key {
			c.Lines[i].Qty += qty
			return c.Lines[i]
		}
	}

	line := domain.LineItem{
		Key:       key,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Size:      size,
		Qty:       qty,
	}
	c.Lines = append(c.Lines, line)
	return line
}

// ChangeQty adjusts a line's quantity by delta, never below 1. It reports
// whether the key exists.
func (c *Cart) ChangeQty(key string, delta int) bool {
	for i := range c.Lines {
		if c.Lines[i].Key == key {
			c.Lines[i].Qty += delta
			if c.Lines[i].Qty < 1 {
				c.Lines[i].Qty = 1
			}
			return true
		}
	}
	return false
}

// Remove drops the line with the key, if any
func (c *Cart) Remove(key string) bool {
	for i := range c.Lines {
		if c.Lines[i].Key == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Lines = []domain.LineItem{}
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Count is the total quantity across lines
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// Totals prices the cart. Shipping is flat for any non-empty cart.
func (c *Cart) Totals() domain.Totals {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Qty))))
	}

	shipping := decimal.Zero
	if !c.Empty() {
		shipping = decimal.NewFromInt(domain.ShippingFlat)
	}

	return domain.Totals{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    subtotal.Add(shipping).InexactFloat64(),
	}
}
