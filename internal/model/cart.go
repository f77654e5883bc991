package model

// CartEntry holds the chosen quantity and variant for a single product.
// Quantity is always >= 1 while the entry exists; an update that would drop
// it below 1 removes the entry instead.
type CartEntry struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Cart maps product id (string form) to the client's selection. It lives in
// session storage only and is never persisted to the database.
type Cart map[string]CartEntry

// Count returns the total number of items across all entries.
func (c Cart) Count() int {
	total := 0
	for _, entry := range c {
		total += entry.Quantity
	}
	return total
}

// CartViewItem is a cart entry joined with its live product record.
type CartViewItem struct {
	Product  Product
	Quantity int
	Size     string
	Color    string
	Subtotal float64
}

// CartView is the rendered projection of a cart: entries with product
// details, per-line subtotals and the running total. Entries whose product
// no longer exists are omitted.
type CartView struct {
	Items []CartViewItem
	Total float64
	Count int
}
