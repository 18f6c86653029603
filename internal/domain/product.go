package domain

// Product is a read-only catalog entry. Price is a whole currency amount, the
// same plain integer the backend uses on tab items.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Active      bool   `json:"active"`
	Stock       int    `json:"stock,omitempty"`
}
