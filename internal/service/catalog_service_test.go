package service

import (
	"context"
	"testing"

	"golden-thread/internal/apperror"
	"golden-thread/internal/domain"
	"golden-thread/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService() (CatalogService, *mockProductRepository, *mockCategoryRepository) {
	products := &mockProductRepository{}
	categories := &mockCategoryRepository{}
	return NewCatalogService(products, categories), products, categories
}

func TestListProducts_AllDisablesCategoryFilter(t *testing.T) {
	svc, products, _ := newTestCatalogService()
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, "All", "gold", "Price: Low")
	require.NoError(t, err)
	assert.Equal(t, repository.ProductFilter{Query: "gold", Sort: repository.SortPriceLow}, products.lastFilter)

	_, err = svc.ListProducts(ctx, "Men", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Men", products.lastFilter.Category)
}

func TestCreateProduct_DefaultRating(t *testing.T) {
	svc, _, _ := newTestCatalogService()
	ctx := context.Background()

	input := NewProduct{
		Name:        "Golden Aura Dress",
		Category:    "Women",
		Price:       199,
		Image:       "https://example.com/dress.jpg",
		Description: "Elegant flow with luxe finish.",
		Sizes:       []string{"XS", "S"},
	}

	product, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRating, product.Rating)
	assert.NotZero(t, product.ID)

	rating := 4.9
	input.Rating = &rating
	product, err = svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 4.9, product.Rating)

	fetched, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Same(t, product, fetched)

	_, err = svc.GetProduct(ctx, 999)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestCategoryProducts(t *testing.T) {
	svc, products, _ := newTestCatalogService()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "Hoodies", "HOODIES", nil)
	require.NoError(t, err)

	products.products = []*domain.Product{
		{ID: 1, Name: "Mini Explorer Hoodie", Category: "hoodies"},
		{ID: 2, Name: "Golden Aura Dress", Category: "Women"},
	}

	category, list, err := svc.CategoryProducts(ctx, "Hoodies")
	require.NoError(t, err)
	assert.Equal(t, "hoodies", category.Slug)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)

	_, _, err = svc.CategoryProducts(ctx, "unknown")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "Category not found", err.Error())
}

func TestCreateCategory_Conflict(t *testing.T) {
	svc, _, categories := newTestCatalogService()
	ctx := context.Background()

	image := ""
	created, err := svc.CreateCategory(ctx, "Men", "Men", &image)
	require.NoError(t, err)
	assert.Equal(t, "men", created.Slug)
	assert.Nil(t, created.Image)

	_, err = svc.CreateCategory(ctx, "Menswear", "MEN", nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Equal(t, "Category name/slug already exists", err.Error())
	assert.Len(t, categories.categories, 1)
}
