// Package apitypes holds the JSON request and response bodies shared by the
// HTTP handlers and the Go client.
package apitypes

import "golden-thread/internal/domain"

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateProductRequest represents an admin product creation payload. Sizes are
// stored comma-joined, so a size may not contain a comma.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Image       string   `json:"image" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Sizes       []string `json:"sizes" validate:"required,min=1,dive,required,excludes=0x2C"`
}

// CreateCategoryRequest represents an admin category creation payload
type CreateCategoryRequest struct {
	Name  string  `json:"name" validate:"required"`
	Slug  string  `json:"slug" validate:"required"`
	Image *string `json:"image,omitempty"`
}

// OrderTotals carries the client-computed money amounts. Fields are pointers so
// that an absent amount can be told apart from zero.
type OrderTotals struct {
	Subtotal *float64 `json:"subtotal"`
	Shipping *float64 `json:"shipping"`
	Total    *float64 `json:"total"`
}

// PlaceOrderRequest represents the checkout payload. Checks run in the order
// items, address, totals and are done by the order service.
type PlaceOrderRequest struct {
	Items         []domain.LineItem `json:"items"`
	Address       *domain.Address   `json:"address"`
	Totals        *OrderTotals      `json:"totals"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
}

// UpdateStatusRequest sets the stored status of an order
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ContactRequest represents the public contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CreateBlogRequest represents an admin blog post payload
type CreateBlogRequest struct {
	Title   string  `json:"title" validate:"required"`
	Slug    string  `json:"slug" validate:"required"`
	Excerpt string  `json:"excerpt" validate:"required"`
	Content string  `json:"content" validate:"required"`
	Image   *string `json:"image,omitempty"`
}

// CreateReviewRequest represents an admin testimonial payload
type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}
