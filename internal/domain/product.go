package domain

import (
	"strings"
	"time"
)

// DefaultRating is applied to products created without a rating
const DefaultRating = 4.6

// Product represents a product in the catalog
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Rating      float64   `json:"rating" db:"rating"`
	Image       string    `json:"image" db:"image"`
	Description string    `json:"description" db:"description"`
	Sizes       []string  `json:"sizes" db:"sizes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Category represents a product category. Products belong to a category when
// their Category field equals the category name, ignoring case.
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	Image     *string   `json:"image" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// JoinSizes encodes a size list into its stored comma-joined form.
func JoinSizes(sizes []string) string {
	return strings.Join(sizes, ",")
}

// SplitSizes decodes the stored comma-joined size list.
func SplitSizes(s string) []string {
	return strings.Split(s, ",")
}

// Matches reports whether the product belongs to the category.
func (c *Category) Matches(p *Product) bool {
	return strings.EqualFold(c.Name, p.Category)
}
