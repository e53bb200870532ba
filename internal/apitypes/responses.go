package apitypes

import (
	"golden-thread/internal/domain"
)

// OKResponse acknowledges a write that returns no entity
type OKResponse struct {
	OK bool `json:"ok"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

// CategoryProducts is a category together with the products filed under it
type CategoryProducts struct {
	Category *domain.Category  `json:"category"`
	Products []*domain.Product `json:"products"`
}

// OrderCreated is returned by checkout
type OrderCreated struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	CreatedAt Timestamp          `json:"createdAt"`
}

// MyOrder is one row of the caller's order history
type MyOrder struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	Total     float64            `json:"total"`
	CreatedAt Timestamp          `json:"createdAt"`
}

// OrderDetail is the public tracking view of an order
type OrderDetail struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	CreatedAt Timestamp          `json:"createdAt"`
	Totals    domain.Totals      `json:"totals"`
	Address   domain.Address     `json:"address"`
	Items     []domain.LineItem  `json:"items"`
}

// Customer summarizes who placed an order
type Customer struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	City  string  `json:"city"`
	Email *string `json:"email"`
}

// AdminOrderSummary is one row of the admin order list. Status is derived
// from elapsed time, RawStatus is the stored value.
type AdminOrderSummary struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	RawStatus domain.OrderStatus `json:"rawStatus"`
	Total     float64            `json:"total"`
	Subtotal  float64            `json:"subtotal"`
	Shipping  float64            `json:"shipping"`
	CreatedAt Timestamp          `json:"createdAt"`
	Customer  Customer           `json:"customer"`
}

// AdminOrderDetail is OrderDetail plus the stored status
type AdminOrderDetail struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	RawStatus domain.OrderStatus `json:"rawStatus"`
	CreatedAt Timestamp          `json:"createdAt"`
	Totals    domain.Totals      `json:"totals"`
	Address   domain.Address     `json:"address"`
	Items     []domain.LineItem  `json:"items"`
}

// StatusUpdated acknowledges an admin status change
type StatusUpdated struct {
	OK     bool               `json:"ok"`
	ID     string             `json:"id"`
	Status domain.OrderStatus `json:"status"`
}

// NewMyOrder builds a history row with the given derived status.
func NewMyOrder(o *domain.Order, status domain.OrderStatus) MyOrder {
	return MyOrder{
		ID:        o.ID,
		Status:    status,
		Total:     o.Totals.Total,
		CreatedAt: NewTimestamp(o.CreatedAt),
	}
}

// NewOrderDetail builds the tracking view with the given derived status.
func NewOrderDetail(o *domain.Order, status domain.OrderStatus) OrderDetail {
	return OrderDetail{
		ID:        o.ID,
		Status:    status,
		CreatedAt: NewTimestamp(o.CreatedAt),
		Totals:    o.Totals,
		Address:   o.Address,
		Items:     itemsOrEmpty(o.Items),
	}
}

func NewAdminOrderSummary(o *domain.Order, status domain.OrderStatus) AdminOrderSummary {
	return AdminOrderSummary{
		ID:        o.ID,
		Status:    status,
		RawStatus: o.Status,
		Total:     o.Totals.Total,
		Subtotal:  o.Totals.Subtotal,
		Shipping:  o.Totals.Shipping,
		CreatedAt: NewTimestamp(o.CreatedAt),
		Customer: Customer{
			Name:  o.Address.Name,
			Phone: o.Address.Phone,
			City:  o.Address.City,
			Email: o.CustomerEmail,
		},
	}
}

func NewAdminOrderDetail(o *domain.Order, status domain.OrderStatus) AdminOrderDetail {
	return AdminOrderDetail{
		ID:        o.ID,
		Status:    status,
		RawStatus: o.Status,
		CreatedAt: NewTimestamp(o.CreatedAt),
		Totals:    o.Totals,
		Address:   o.Address,
		Items:     itemsOrEmpty(o.Items),
	}
}

func itemsOrEmpty(items []domain.LineItem) []domain.LineItem {
	if items == nil {
		return []domain.LineItem{}
	}
	return items
}
