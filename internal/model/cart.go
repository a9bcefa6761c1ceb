package model

// CartItem is a single line in a cart: a product reference and a quantity.
// Quantity is always at least 1; a line whose quantity drops to zero or below
// is removed from the cart instead.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is a snapshot of a cart with its derived totals. Total and ItemCount
// are computed from the current catalogue prices at snapshot time and are
// never persisted.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// CartAddRequest is the payload for adding a product to the cart.
type CartAddRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest is the payload for setting a cart line's quantity.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
