package service

import (
	"context"
	"errors"
	"sort"

	"golden-thread/internal/domain"
	"golden-thread/internal/repository"
)

var errDatabaseDown = errors.New("database down")

// Mock repositories for testing
type mockUserRepository struct {
	users  map[string]*domain.User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, exists := m.users[email]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type mockOrderRepository struct {
	orders map[string]*domain.Order
	err    error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if m.err != nil {
		return m.err
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	var orders []*domain.Order
	for _, o := range m.sorted() {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(), nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *mockOrderRepository) sorted() []*domain.Order {
	orders := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

type mockProductRepository struct {
	products   []*domain.Product
	lastFilter repository.ProductFilter
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = int64(len(m.products) + 1)
	m.products = append(m.products, product)
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	m.lastFilter = filter
	var products []*domain.Product
	for _, p := range m.products {
		if filter.Category == "" || p.Category == filter.Category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) ListByCategoryName(ctx context.Context, name string) ([]*domain.Product, error) {
	category := &domain.Category{Name: name}
	var products []*domain.Product
	for _, p := range m.products {
		if category.Matches(p) {
			products = append(products, p)
		}
	}
	return products, nil
}

type mockCategoryRepository struct {
	categories []*domain.Category
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	for _, c := range m.categories {
		if c.Name == category.Name || c.Slug == category.Slug {
			return repository.ErrCategoryAlreadyExists
		}
	}
	category.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, category)
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

type mockBlogRepository struct {
	blogs []*domain.Blog
}

func (m *mockBlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	for _, b := range m.blogs {
		if b.Slug == blog.Slug {
			return repository.ErrBlogAlreadyExists
		}
	}
	blog.ID = int64(len(m.blogs) + 1)
	m.blogs = append(m.blogs, blog)
	return nil
}

func (m *mockBlogRepository) List(ctx context.Context) ([]*domain.BlogSummary, error) {
	summaries := []*domain.BlogSummary{}
	for _, b := range m.blogs {
		summaries = append(summaries, &domain.BlogSummary{ID: b.ID, Title: b.Title, Slug: b.Slug, Excerpt: b.Excerpt, Image: b.Image, CreatedAt: b.CreatedAt})
	}
	return summaries, nil
}

func (m *mockBlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	for _, b := range m.blogs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, repository.ErrBlogNotFound
}

type mockReviewRepository struct {
	reviews   []*domain.Review
	lastLimit int
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	review.ID = int64(len(m.reviews) + 1)
	m.reviews = append(m.reviews, review)
	return nil
}

func (m *mockReviewRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Review, error) {
	m.lastLimit = limit
	if len(m.reviews) < limit {
		return m.reviews, nil
	}
	return m.reviews[:limit], nil
}

type mockContactRepository struct {
	messages  []*domain.ContactMessage
	lastLimit int
}

func (m *mockContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.ID = int64(len(m.messages) + 1)
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockContactRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ContactMessage, error) {
	m.lastLimit = limit
	return m.messages, nil
}
