package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golden-thread/internal/apperror"
	"golden-thread/internal/domain"
	"golden-thread/internal/metrics"
	"golden-thread/internal/repository"
)

const msgOrderNotFound = "Not found"

// PlaceOrderInput is a checkout as submitted by the client. Totals are stored
// verbatim; nil means the client left the amount out.
type PlaceOrderInput struct {
	Items    []domain.LineItem
	Address  *domain.Address
	Subtotal *float64
	Shipping *float64
	Total    *float64
}

// TrackedOrder pairs a stored order with the status derived from its age
type TrackedOrder struct {
	*domain.Order
	DerivedStatus domain.OrderStatus
}

// OrderService defines the interface for checkout and order tracking
type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, input PlaceOrderInput) (*domain.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]TrackedOrder, error)
	Track(ctx context.Context, id string) (TrackedOrder, error)
	ListAll(ctx context.Context) ([]TrackedOrder, error)
	UpdateStatus(ctx context.Context, id, status string) (string, domain.OrderStatus, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewOrderService creates a new instance of OrderService. A nil clock uses
// time.Now.
func NewOrderService(orderRepo repository.OrderRepository, now func() time.Time) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{
		orderRepo: orderRepo,
		now:       now,
	}
}

// PlaceOrder validates the checkout in a fixed order (items, address, totals)
// and stores it as Placed.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64, input PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.Validation("Cart is empty")
	}
	if input.Address == nil || !input.Address.Complete() {
		return nil, apperror.Validation("Missing address")
	}
	if input.Subtotal == nil || input.Shipping == nil || input.Total == nil {
		return nil, apperror.Validation("Missing totals")
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	order := &domain.Order{
		ID:     domain.NewOrderID(now),
		UserID: userID,
		Status: domain.StatusPlaced,
		Totals: domain.Totals{
			Subtotal: *input.Subtotal,
			Shipping: *input.Shipping,
			Total:    *input.Total,
		},
		Address:   *input.Address,
		Items:     input.Items,
		CreatedAt: now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.Internal(err)
	}
	metrics.OrdersPlaced.Inc()

	return order, nil
}

// MyOrders lists the user's orders, newest first, with derived status
func (s *orderService) MyOrders(ctx context.Context, userID int64) ([]TrackedOrder, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return s.track(orders), nil
}

// Track looks an order up by id, ignoring case. Anyone holding the id may
// track it.
func (s *orderService) Track(ctx context.Context, id string) (TrackedOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, domain.NormalizeOrderID(id))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return TrackedOrder{}, apperror.NotFound(msgOrderNotFound)
		}
		return TrackedOrder{}, apperror.Internal(err)
	}
	return TrackedOrder{Order: order, DerivedStatus: domain.DeriveStatus(order.CreatedAt, s.now())}, nil
}

// ListAll lists every order, newest first, for the admin panel
func (s *orderService) ListAll(ctx context.Context) ([]TrackedOrder, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return s.track(orders), nil
}

// UpdateStatus overwrites the stored status. The status literal is checked
// before the order is looked up. Any transition is allowed.
func (s *orderService) UpdateStatus(ctx context.Context, id, status string) (string, domain.OrderStatus, error) {
	newStatus, ok := domain.ParseOrderStatus(status)
	if !ok {
		return "", "", apperror.Validation("Invalid status")
	}

	id = domain.NormalizeOrderID(id)
	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return "", "", apperror.NotFound(msgOrderNotFound)
		}
		return "", "", apperror.Internal(fmt.Errorf("failed to update order %s: %w", id, err))
	}
	metrics.OrderStatusUpdates.WithLabelValues(string(newStatus)).Inc()

	return id, newStatus, nil
}

func (s *orderService) track(orders []*domain.Order) []TrackedOrder {
	now := s.now()
	tracked := make([]TrackedOrder, 0, len(orders))
	for _, o := range orders {
		tracked = append(tracked, TrackedOrder{Order: o, DerivedStatus: domain.DeriveStatus(o.CreatedAt, now)})
	}
	return tracked
}
