package transport

import (
	"net/http"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/domain"
	"golden-thread/internal/middleware"
	"golden-thread/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves the admin panel. Every route requires an admin token.
type AdminHandler struct {
	orderService   service.OrderService
	catalogService service.CatalogService
	contentService service.ContentService
	logger         *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	orderService service.OrderService,
	catalogService service.CatalogService,
	contentService service.ContentService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		orderService:   orderService,
		catalogService: catalogService,
		contentService: contentService,
		logger:         logger,
	}
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware Middleware) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware, adminMiddleware)

		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Patch("/orders/{id}/status", h.UpdateOrderStatus)
		r.Get("/contact", h.ListContactMessages)
		r.Post("/categories", h.CreateCategory)
		r.Post("/blogs", h.CreateBlog)
		r.Post("/reviews", h.CreateReview)
	})
}

// ListOrders lists every order with both derived and stored status
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAll(r.Context())
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	response := make([]apitypes.AdminOrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, apitypes.NewAdminOrderSummary(o.Order, o.DerivedStatus))
	}
	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	tracked, err := h.orderService.Track(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, apitypes.NewAdminOrderDetail(tracked.Order, tracked.DerivedStatus))
}

// UpdateOrderStatus handles PATCH /api/admin/orders/{id}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req apitypes.UpdateStatusRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	id, status, err := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	adminID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", string(status)),
		zap.Int64("admin_id", adminID),
	)
	middleware.RespondWithJSON(w, http.StatusOK, apitypes.StatusUpdated{OK: true, ID: id, Status: status})
}

func (h *AdminHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contentService.ListContactMessages(r.Context())
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, messages)
}

// CreateCategory acknowledges with {ok:true}; the created row is not returned
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req apitypes.CreateCategoryRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	category, err := h.catalogService.CreateCategory(r.Context(), req.Name, req.Slug, req.Image)
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Category created", zap.String("slug", category.Slug))
	middleware.RespondWithJSON(w, http.StatusOK, apitypes.OKResponse{OK: true})
}

func (h *AdminHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req apitypes.CreateBlogRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	blog := &domain.Blog{
		Title:   req.Title,
		Slug:    req.Slug,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
	}
	if err := h.contentService.CreateBlog(r.Context(), blog); err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, blog)
}

func (h *AdminHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req apitypes.CreateReviewRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	review := &domain.Review{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.contentService.CreateReview(r.Context(), review); err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, review)
}
