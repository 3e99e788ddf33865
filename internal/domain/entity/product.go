package entity

import "time"

// Product is a catalog item owned by the manager who created it. Ownership
// (CreatedBy) scopes every manager-side mutation.
type Product struct {
	ID          string    // Storage identifier (ObjectID hex).
	Name        string    // Product name.
	Description string    // Free-form description.
	Price       float64   // Unit price.
	Category    string    // Optional category label.
	ImageURL    string    // Optional image URL.
	Stock       int       // Units available.
	CreatedBy   string    // Email of the manager who created the product.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// IsOwnedBy reports whether the product was created by the given email.
func (p *Product) IsOwnedBy(email string) bool {
	return p.CreatedBy == email
}
