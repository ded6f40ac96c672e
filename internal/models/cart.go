package models

// Cart is the whole-record cart document stored in the cart store, one per
// owner. Item order is insertion order and only matters for display.
type Cart struct {
	OwnerID string     `json:"owner_id"`
	Items   []CartItem `json:"items"`
}

// CartItem is a single cart line, identified within the cart by the
// (ProductID, Size, Color) variant triple. Price and DiscountPrice are
// snapshots taken at the last mutation touching the line; they are not
// re-read from the catalog afterwards, so they can go stale on purpose.
type CartItem struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	DiscountPrice *int64 `json:"discount_price,omitempty"`
	ImageURL      string `json:"image_url"`
	Quantity      int    `json:"quantity"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
}

// SameVariant reports whether the line matches the given variant triple.
// Empty size/color on both sides count as a match.
func (i *CartItem) SameVariant(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// EffectiveUnitAmount is the price actually charged for one unit: the
// discount price when one is set and strictly lower than the list price,
// otherwise the list price. A discount never increases the price.
func (i *CartItem) EffectiveUnitAmount() int64 {
	if i.DiscountPrice != nil && *i.DiscountPrice < i.Price {
		return *i.DiscountPrice
	}
	return i.Price
}
