package models

// CartItem is a snapshot of a product plus a quantity. The snapshot keeps
// the price at the time the item was added, so a later catalog price
// change does not alter an already placed order.
type CartItem struct {
	ProductID string    `json:"productId" bson:"product_id"`
	Name      Localized `json:"name" bson:"name"`
	Price     float64   `json:"price" bson:"price"`
	ImageURL  string    `json:"imageUrl" bson:"image_url"`
	Stock     int       `json:"stock" bson:"stock"`
	Quantity  int       `json:"quantity" bson:"quantity"`
}

// Cart is the server-side shopping cart, stored in Redis keyed by cart ID.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// AddItem adds a product snapshot to the cart, merging with an existing
// line for the same product. The resulting quantity is clamped to the
// product's stock at snapshot time.
func (c *Cart) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i, item := range c.Items {
		if item.ProductID == p.ID.Hex() {
			c.Items[i].Quantity = clampQuantity(item.Quantity+quantity, p.Stock)
			c.Items[i].Stock = p.Stock
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID.Hex(),
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Stock:     p.Stock,
		Quantity:  clampQuantity(quantity, p.Stock),
	})
}

// SetQuantity sets the quantity of a cart line, clamped to the given
// stock. A quantity of zero (or less) removes the line.
func (c *Cart) SetQuantity(productID string, quantity, stock int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity = clampQuantity(quantity, stock)
			c.Items[i].Stock = stock
			return
		}
	}
}

// Remove deletes the line for the given product.
func (c *Cart) Remove(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal returns the sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func clampQuantity(quantity, stock int) int {
	if stock >= 0 && quantity > stock {
		return stock
	}
	return quantity
}
