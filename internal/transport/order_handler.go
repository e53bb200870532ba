package transport

import (
	"net/http"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/middleware"
	"golden-thread/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler handles checkout, order history and public tracking
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers order routes. Tracking by id is public.
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware Middleware) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.PlaceOrder)
			r.Get("/my", h.MyOrders)
		})

		r.Get("/{id}", h.Track)
	})
}

// PlaceOrder handles checkout. The payment method is accepted and ignored.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "Missing token")
		return
	}

	var req apitypes.PlaceOrderRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	input := service.PlaceOrderInput{
		Items:   req.Items,
		Address: req.Address,
	}
	if req.Totals != nil {
		input.Subtotal = req.Totals.Subtotal
		input.Shipping = req.Totals.Shipping
		input.Total = req.Totals.Total
	}

	order, err := h.orderService.PlaceOrder(r.Context(), userID, input)
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("lines", len(order.Items)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, apitypes.OrderCreated{
		ID:        order.ID,
		Status:    order.Status,
		CreatedAt: apitypes.NewTimestamp(order.CreatedAt),
	})
}

// MyOrders lists the caller's orders with derived status
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "Missing token")
		return
	}

	orders, err := h.orderService.MyOrders(r.Context(), userID)
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	response := make([]apitypes.MyOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, apitypes.NewMyOrder(o.Order, o.DerivedStatus))
	}
	middleware.RespondWithJSON(w, http.StatusOK, response)
}

// Track handles GET /api/orders/{id}
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	tracked, err := h.orderService.Track(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, apitypes.NewOrderDetail(tracked.Order, tracked.DerivedStatus))
}
