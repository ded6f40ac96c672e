package services

import (
	"fmt"
	"sync"
	"testing"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReviewRepo is an in-memory ReviewRepository for service tests.
type fakeReviewRepo struct {
	reviews map[string]models.Review
	mu      sync.RWMutex
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]models.Review)}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews[review.ID] = *review
	return nil
}

func (r *fakeReviewRepo) GetByProduct(productID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) GetByOwnerAndProduct(ownerID, productID string) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, review := range r.reviews {
		if review.OwnerID == ownerID && review.ProductID == productID {
			out := review
			return &out, nil
		}
	}
	return nil, fmt.Errorf("review by owner %s for product %s: %w", ownerID, productID, repositories.ErrReviewNotFound)
}

func TestReviewService_AddReview(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := repositories.NewMockProductRepository()
	svc := NewReviewService(reviewRepo, productRepo)

	seedProduct(t, productRepo, "p1", 1000, nil)

	review := &models.Review{ProductID: "p1", OwnerID: "owner-1", Rating: 4, Comment: "solid"}
	require.NoError(t, svc.AddReview(review))

	reviews, err := svc.GetProductReviews("p1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}

func TestReviewService_AddReview_DuplicateRejected(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := repositories.NewMockProductRepository()
	svc := NewReviewService(reviewRepo, productRepo)

	seedProduct(t, productRepo, "p1", 1000, nil)

	require.NoError(t, svc.AddReview(&models.Review{ProductID: "p1", OwnerID: "owner-1", Rating: 4}))
	err := svc.AddReview(&models.Review{ProductID: "p1", OwnerID: "owner-1", Rating: 2})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// A different owner may still review the product.
	assert.NoError(t, svc.AddReview(&models.Review{ProductID: "p1", OwnerID: "owner-2", Rating: 5}))
}

func TestReviewService_AddReview_Validation(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := repositories.NewMockProductRepository()
	svc := NewReviewService(reviewRepo, productRepo)

	seedProduct(t, productRepo, "p1", 1000, nil)

	assert.Error(t, svc.AddReview(&models.Review{ProductID: "p1", OwnerID: "owner-1", Rating: 6}), "rating above 5")
	assert.Error(t, svc.AddReview(&models.Review{ProductID: "p1", OwnerID: "owner-1", Rating: 0}), "rating below 1")
	assert.Error(t, svc.AddReview(&models.Review{ProductID: "p1", Rating: 3}), "missing owner")
}

func TestReviewService_AddReview_UnknownProduct(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), repositories.NewMockProductRepository())
	err := svc.AddReview(&models.Review{ProductID: "missing", OwnerID: "owner-1", Rating: 3})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
