package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golden-thread/internal/apperror"
	"golden-thread/internal/domain"
	"golden-thread/internal/repository"
)

// AllCategories is the catalog filter value that disables category filtering
const AllCategories = "All"

// NewProduct carries the fields of an admin-created product
type NewProduct struct {
	Name        string
	Category    string
	Price       float64
	Rating      *float64
	Image       string
	Description string
	Sizes       []string
}

// CatalogService defines the interface for product and category logic
type CatalogService interface {
	ListProducts(ctx context.Context, category, query, sort string) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, input NewProduct) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CategoryProducts(ctx context.Context, slug string) (*domain.Category, []*domain.Product, error)
	CreateCategory(ctx context.Context, name, slug string, image *string) (*domain.Category, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// ListProducts filters by exact category and a case-insensitive query, then
// sorts. Unknown sort values keep newest-first order.
func (s *catalogService) ListProducts(ctx context.Context, category, query, sort string) ([]*domain.Product, error) {
	if category == AllCategories {
		category = ""
	}

	products, err := s.productRepo.List(ctx, repository.ProductFilter{
		Category: category,
		Query:    query,
		Sort:     repository.ProductSort(sort),
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperror.NotFound("Not found")
		}
		return nil, apperror.Internal(err)
	}
	return product, nil
}

// CreateProduct stores a product. A missing rating defaults to DefaultRating.
func (s *catalogService) CreateProduct(ctx context.Context, input NewProduct) (*domain.Product, error) {
	rating := domain.DefaultRating
	if input.Rating != nil && *input.Rating != 0 {
		rating = *input.Rating
	}

	product := &domain.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Rating:      rating,
		Image:       input.Image,
		Description: input.Description,
		Sizes:       input.Sizes,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.Internal(err)
	}
	return product, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}

// CategoryProducts resolves a slug, ignoring case, and returns the products
// whose category equals the category name, ignoring case.
func (s *catalogService) CategoryProducts(ctx context.Context, slug string) (*domain.Category, []*domain.Product, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil, apperror.NotFound("Category not found")
		}
		return nil, nil, apperror.Internal(err)
	}

	products, err := s.productRepo.ListByCategoryName(ctx, category.Name)
	if err != nil {
		return nil, nil, apperror.Internal(fmt.Errorf("failed to list category products: %w", err))
	}
	return category, products, nil
}

// CreateCategory stores a category with a lower-cased slug
func (s *catalogService) CreateCategory(ctx context.Context, name, slug string, image *string) (*domain.Category, error) {
	if image != nil && *image == "" {
		image = nil
	}

	category := &domain.Category{
		Name:      name,
		Slug:      strings.ToLower(slug),
		Image:     image,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			return nil, apperror.Conflict("Category name/slug already exists")
		}
		return nil, apperror.Internal(err)
	}
	return category, nil
}
