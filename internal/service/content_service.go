package service

import (
	"context"
	"errors"
	"time"

	"golden-thread/internal/apperror"
	"golden-thread/internal/domain"
	"golden-thread/internal/metrics"
	"golden-thread/internal/repository"
)

const (
	// ReviewLimit is the number of testimonials shown on the storefront
	ReviewLimit = 12
	// ContactLimit is the number of contact messages shown to admins
	ContactLimit = 200
)

// ContentService defines the interface for blogs, reviews and contact messages
type ContentService interface {
	ListBlogs(ctx context.Context) ([]*domain.BlogSummary, error)
	GetBlog(ctx context.Context, slug string) (*domain.Blog, error)
	CreateBlog(ctx context.Context, blog *domain.Blog) error
	ListReviews(ctx context.Context) ([]*domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) error
	SubmitContact(ctx context.Context, msg *domain.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error)
}

type contentService struct {
	blogRepo    repository.BlogRepository
	reviewRepo  repository.ReviewRepository
	contactRepo repository.ContactRepository
	now         func() time.Time
}

// NewContentService creates a new instance of ContentService
func NewContentService(
	blogRepo repository.BlogRepository,
	reviewRepo repository.ReviewRepository,
	contactRepo repository.ContactRepository,
) ContentService {
	return &contentService{
		blogRepo:    blogRepo,
		reviewRepo:  reviewRepo,
		contactRepo: contactRepo,
		now:         time.Now,
	}
}

func (s *contentService) ListBlogs(ctx context.Context) ([]*domain.BlogSummary, error) {
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return blogs, nil
}

func (s *contentService) GetBlog(ctx context.Context, slug string) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, apperror.NotFound("Not found")
		}
		return nil, apperror.Internal(err)
	}
	return blog, nil
}

// CreateBlog stores a post; the slug must be unused
func (s *contentService) CreateBlog(ctx context.Context, blog *domain.Blog) error {
	if blog.Image != nil && *blog.Image == "" {
		blog.Image = nil
	}
	blog.CreatedAt = s.stamp()

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogAlreadyExists) {
			return apperror.Conflict("Blog slug already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (s *contentService) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.ListRecent(ctx, ReviewLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}

func (s *contentService) CreateReview(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return apperror.Validation("Rating must be between 1 and 5")
	}
	review.CreatedAt = s.stamp()

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *contentService) SubmitContact(ctx context.Context, msg *domain.ContactMessage) error {
	msg.CreatedAt = s.stamp()

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return apperror.Internal(err)
	}
	metrics.ContactMessages.Inc()
	return nil
}

func (s *contentService) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.contactRepo.ListRecent(ctx, ContactLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

func (s *contentService) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
