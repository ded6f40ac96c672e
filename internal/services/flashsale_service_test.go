package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFlashSaleRepo is an in-memory FlashSaleRepository for service tests.
type fakeFlashSaleRepo struct {
	sales map[string]models.FlashSale
	mu    sync.RWMutex
}

func newFakeFlashSaleRepo() *fakeFlashSaleRepo {
	return &fakeFlashSaleRepo{sales: make(map[string]models.FlashSale)}
}

func (r *fakeFlashSaleRepo) Create(sale *models.FlashSale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	r.sales[sale.ID] = *sale
	return nil
}

func (r *fakeFlashSaleRepo) GetByID(id string) (*models.FlashSale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sale, ok := r.sales[id]
	if !ok {
		return nil, fmt.Errorf("flash sale with ID %s: %w", id, repositories.ErrFlashSaleNotFound)
	}
	return &sale, nil
}

func (r *fakeFlashSaleRepo) GetAll() ([]models.FlashSale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sales := make([]models.FlashSale, 0, len(r.sales))
	for _, sale := range r.sales {
		sales = append(sales, sale)
	}
	return sales, nil
}

func (r *fakeFlashSaleRepo) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sale, ok := r.sales[id]
	if !ok {
		return fmt.Errorf("flash sale with ID %s: %w", id, repositories.ErrFlashSaleNotFound)
	}
	sale.IsActive = active
	r.sales[id] = sale
	return nil
}

func validFlashSale(pct int) *models.FlashSale {
	now := time.Now()
	return &models.FlashSale{
		Name:               "Summer Sale",
		StartDate:          now,
		EndDate:            now.Add(48 * time.Hour),
		DiscountPercentage: pct,
	}
}

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price int64
		pct   int
		want  int64
	}{
		{1000, 20, 800},
		{999, 10, 899},  // 899.1 rounds down
		{999, 15, 849},  // 849.15 rounds down
		{1001, 25, 751}, // 750.75 rounds up
		{1, 50, 1},      // 0.5 rounds up, never free
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DiscountedPrice(tc.price, tc.pct), "price=%d pct=%d", tc.price, tc.pct)
	}
}

func TestFlashSaleService_CreateFlashSale(t *testing.T) {
	saleRepo := newFakeFlashSaleRepo()
	productRepo := repositories.NewMockProductRepository()
	svc := NewFlashSaleService(saleRepo, productRepo)

	seedProduct(t, productRepo, "p1", 1000, nil)
	seedProduct(t, productRepo, "p2", 2000, nil)

	created, err := svc.CreateFlashSale(validFlashSale(20), []string{"p1", "p2"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	require.Len(t, created.Products, 2)
	assert.Equal(t, int64(800), created.Products[0].DiscountPrice)
	assert.Equal(t, int64(1600), created.Products[1].DiscountPrice)

	// The discount is stamped onto the catalog products.
	p1, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p1.DiscountPrice)
	assert.Equal(t, int64(800), *p1.DiscountPrice)
	assert.True(t, p1.IsSale)
	require.NotNil(t, p1.SaleEndDate)
	assert.WithinDuration(t, created.EndDate, *p1.SaleEndDate, time.Second)
}

func TestFlashSaleService_CreateFlashSale_UnknownProductFailsWhole(t *testing.T) {
	saleRepo := newFakeFlashSaleRepo()
	productRepo := repositories.NewMockProductRepository()
	svc := NewFlashSaleService(saleRepo, productRepo)

	seedProduct(t, productRepo, "p1", 1000, nil)

	_, err := svc.CreateFlashSale(validFlashSale(20), []string{"p1", "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	// Nothing was written: no sale, no product discount.
	sales, listErr := saleRepo.GetAll()
	require.NoError(t, listErr)
	assert.Empty(t, sales)
	p1, getErr := productRepo.GetByID("p1")
	require.NoError(t, getErr)
	assert.Nil(t, p1.DiscountPrice)
}

func TestFlashSaleService_CreateFlashSale_Validation(t *testing.T) {
	svc := NewFlashSaleService(newFakeFlashSaleRepo(), repositories.NewMockProductRepository())

	_, err := svc.CreateFlashSale(validFlashSale(100), []string{"p1"})
	assert.Error(t, err, "discount percentage is capped at 99")

	sale := validFlashSale(20)
	sale.EndDate = sale.StartDate.Add(-time.Hour)
	_, err = svc.CreateFlashSale(sale, []string{"p1"})
	assert.Error(t, err, "end date must follow start date")

	_, err = svc.CreateFlashSale(validFlashSale(20), nil)
	assert.Error(t, err, "a sale needs at least one product")
}

func TestFlashSaleService_DeactivateFlashSale(t *testing.T) {
	saleRepo := newFakeFlashSaleRepo()
	productRepo := repositories.NewMockProductRepository()
	svc := NewFlashSaleService(saleRepo, productRepo)

	seedProduct(t, productRepo, "p1", 1000, nil)
	created, err := svc.CreateFlashSale(validFlashSale(20), []string{"p1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateFlashSale(created.ID))

	sale, err := saleRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, sale.IsActive)

	p1, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	assert.Nil(t, p1.DiscountPrice)
	assert.False(t, p1.IsSale)
	assert.Nil(t, p1.SaleEndDate)
}

func TestFlashSaleService_DeactivateFlashSale_NotFound(t *testing.T) {
	svc := NewFlashSaleService(newFakeFlashSaleRepo(), repositories.NewMockProductRepository())
	err := svc.DeactivateFlashSale("missing")
	assert.ErrorIs(t, err, repositories.ErrFlashSaleNotFound)
}
