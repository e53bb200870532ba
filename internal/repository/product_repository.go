package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golden-thread/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductSort selects the ordering of a product listing
type ProductSort string

const (
	SortDefault   ProductSort = ""
	SortPriceLow  ProductSort = "Price: Low"
	SortPriceHigh ProductSort = "Price: High"
	SortTopRated  ProductSort = "Top Rated"
)

// orderBy maps each sort to a fixed clause. Ties keep the default newest-first
// order. Unknown sorts fall back to the default.
func (s ProductSort) orderBy() string {
	switch s {
	case SortPriceLow:
		return "price ASC, id DESC"
	case SortPriceHigh:
		return "price DESC, id DESC"
	case SortTopRated:
		return "rating DESC, id DESC"
	default:
		return "id DESC"
	}
}

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	// Category must equal the stored category exactly.
	Category string
	// Query is matched case-insensitively against name, description and category.
	Query string
	Sort  ProductSort
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	ListByCategoryName(ctx context.Context, name string) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, category, price, rating, image, description, sizes, created_at`

// Create inserts a new product and sets its generated ID
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, category, price, rating, image, description, sizes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Category,
		product.Price,
		product.Rating,
		product.Image,
		product.Description,
		domain.JoinSizes(product.Sizes),
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID retrieves a product by ID
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// List retrieves products with optional category, text search and sorting
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if filter.Query != "" {
		args = append(args, containsPattern(filter.Query))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY %s`, productColumns, whereClause, filter.Sort.orderBy())

	return r.query(ctx, query, args...)
}

// ListByCategoryName retrieves products whose category equals name, ignoring case
func (r *productRepository) ListByCategoryName(ctx context.Context, name string) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(category) = LOWER($1) ORDER BY id DESC`
	return r.query(ctx, query, name)
}

func (r *productRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var sizes string
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Rating,
		&product.Image,
		&product.Description,
		&sizes,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	product.Sizes = domain.SplitSizes(sizes)
	product.CreatedAt = product.CreatedAt.UTC()
	return product, nil
}
