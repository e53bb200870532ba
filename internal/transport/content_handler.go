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

// ContentHandler serves blogs, reviews, the contact form and the health check
type ContentHandler struct {
	contentService service.ContentService
	logger         *zap.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// RegisterRoutes registers content routes; the contact form is rate limited
func (h *ContentHandler) RegisterRoutes(r chi.Router, rateLimit Middleware) {
	r.Get("/api/health", h.Health)
	r.Get("/api/blogs", h.ListBlogs)
	r.Get("/api/blogs/{slug}", h.GetBlog)
	r.Get("/api/reviews", h.ListReviews)
	r.With(rateLimit).Post("/api/contact", h.SubmitContact)
}

func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, apitypes.OKResponse{OK: true})
}

func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.contentService.ListBlogs(r.Context())
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, blogs)
}

func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.contentService.GetBlog(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, blog)
}

// ListReviews returns the newest testimonials
func (h *ContentHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.contentService.ListReviews(r.Context())
	if err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, reviews)
}

// SubmitContact stores a contact form message
func (h *ContentHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req apitypes.ContactRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contentService.SubmitContact(r.Context(), msg); err != nil {
		middleware.RespondWithAppError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Contact message received", zap.Int64("message_id", msg.ID))
	middleware.RespondWithJSON(w, http.StatusOK, apitypes.OKResponse{OK: true})
}
