package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golden-thread/internal/domain"
)

var (
	ErrBlogNotFound      = errors.New("blog not found")
	ErrBlogAlreadyExists = errors.New("blog with this slug already exists")
)

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	List(ctx context.Context) ([]*domain.BlogSummary, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Blog, error)
}

type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new instance of BlogRepository
func NewBlogRepository(db *sql.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (title, slug, excerpt, content, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.Image, blog.CreatedAt,
	).Scan(&blog.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrBlogAlreadyExists
		}
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// List retrieves blog summaries, newest first
func (r *blogRepository) List(ctx context.Context) ([]*domain.BlogSummary, error) {
	query := `
		SELECT id, title, slug, excerpt, image, created_at
		FROM blogs
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []*domain.BlogSummary{}
	for rows.Next() {
		b := &domain.BlogSummary{}
		var image sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &image, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		if image.Valid {
			b.Image = &image.String
		}
		b.CreatedAt = b.CreatedAt.UTC()
		blogs = append(blogs, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	query := `
		SELECT id, title, slug, excerpt, content, image, created_at
		FROM blogs
		WHERE slug = $1
	`

	b := &domain.Blog{}
	var image sql.NullString
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &image, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog by slug: %w", err)
	}
	if image.Valid {
		b.Image = &image.String
	}
	b.CreatedAt = b.CreatedAt.UTC()

	return b, nil
}
