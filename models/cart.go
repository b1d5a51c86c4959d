package models

import "time"

// CartItem is one line in a user's cart. Price is a snapshot taken when the
// item was added, not a live catalog value. ModelIndex records which variant
// was selected, if any.
type CartItem struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image,omitempty"`
	ModelIndex *int    `json:"modelIndex,omitempty"`
}

// Cart holds a user's staged purchase. Invariant: at most one item per
// ProductID; re-adding a product increments its quantity instead.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Find returns the line item for productID, or nil.
func (c *Cart) Find(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
