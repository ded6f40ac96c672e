package services

import (
	"testing"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() *models.Product {
	return &models.Product{
		Name:        "Classic Tee",
		Description: "A plain cotton tee",
		Price:       1999,
		Images:      []string{"https://img.example.com/tee.jpg"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"black", "white"},
		Stock:       20,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	product := validProduct()
	require.NoError(t, svc.CreateProduct(product))
	assert.NotEmpty(t, product.ID, "repository assigns an ID")

	fetched, err := svc.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classic Tee", fetched.Name)
}

func TestProductService_CreateProduct_ValidationFails(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	cases := map[string]func(p *models.Product){
		"short name":     func(p *models.Product) { p.Name = "ab" },
		"zero price":     func(p *models.Product) { p.Price = 0 },
		"negative stock": func(p *models.Product) { p.Stock = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			product := validProduct()
			mutate(product)
			assert.Error(t, svc.CreateProduct(product))
		})
	}
}

func TestProductService_DiscountMustUndercutListPrice(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	product := validProduct()
	discount := product.Price
	product.DiscountPrice = &discount
	assert.Error(t, svc.CreateProduct(product), "discount equal to list price is rejected")

	discount = product.Price - 500
	product.DiscountPrice = &discount
	assert.NoError(t, svc.CreateProduct(product))
}

func TestProductService_UpdateProduct(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	product := validProduct()
	require.NoError(t, svc.CreateProduct(product))

	product.Price = 2499
	require.NoError(t, svc.UpdateProduct(product))

	updated, err := svc.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2499), updated.Price)

	missing := validProduct()
	missing.ID = "7b6ec4c0-59c3-4e2a-a8de-3f2f9f0d3a10"
	err = svc.UpdateProduct(missing)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	product := validProduct()
	require.NoError(t, svc.CreateProduct(product))
	require.NoError(t, svc.DeleteProduct(product.ID))

	_, err := svc.GetProductByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(product.ID), repositories.ErrProductNotFound)
}

func TestProductService_GetFeaturedProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	featured := validProduct()
	featured.IsFeatured = true
	require.NoError(t, svc.CreateProduct(featured))
	require.NoError(t, svc.CreateProduct(validProduct()))

	products, err := svc.GetFeaturedProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, featured.ID, products[0].ID)
}

func TestProductService_SearchProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	tee := validProduct()
	require.NoError(t, svc.CreateProduct(tee))
	coat := validProduct()
	coat.Name = "Winter Coat"
	coat.Description = "A heavy wool overcoat"
	require.NoError(t, svc.CreateProduct(coat))

	// Case-insensitive name match.
	products, err := svc.SearchProducts("WINTER")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, coat.ID, products[0].ID)

	// Description matches too.
	products, err = svc.SearchProducts("wool")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, coat.ID, products[0].ID)

	// No hits is an empty result, not an error.
	products, err = svc.SearchProducts("sneaker")
	require.NoError(t, err)
	assert.Empty(t, products)

	// A blank query matches nothing rather than the whole catalog.
	products, err = svc.SearchProducts("   ")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_SearchProducts_CapsResults(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	for i := 0; i < repositories.SearchResultLimit+5; i++ {
		require.NoError(t, svc.CreateProduct(validProduct()))
	}

	products, err := svc.SearchProducts("classic")
	require.NoError(t, err)
	assert.Len(t, products, repositories.SearchResultLimit)
}

func TestProductService_GetLowStockProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := NewProductService(repo)

	low := validProduct()
	low.Stock = 2
	require.NoError(t, svc.CreateProduct(low))
	require.NoError(t, svc.CreateProduct(validProduct()))

	products, err := svc.GetLowStockProducts(5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}
