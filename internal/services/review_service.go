package services

import (
	"errors"
	"fmt"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ReviewService handles product reviews: one review per (owner, product).
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		validate:    validator.New(),
	}
}

// AddReview validates and stores a new review. The product must exist and
// the owner must not have reviewed it before.
func (s *ReviewService) AddReview(review *models.Review) error {
	if err := s.validate.Struct(review); err != nil {
		return fmt.Errorf("review validation failed: %w", err)
	}

	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		return fmt.Errorf("cannot review product %s: %w", review.ProductID, err)
	}

	existing, err := s.reviewRepo.GetByOwnerAndProduct(review.OwnerID, review.ProductID)
	if err != nil && !errors.Is(err, repositories.ErrReviewNotFound) {
		return fmt.Errorf("failed to check for existing review: %w", err)
	}
	if existing != nil {
		return ErrDuplicateReview
	}

	return s.reviewRepo.Create(review)
}

// GetProductReviews retrieves all reviews for a product.
func (s *ReviewService) GetProductReviews(productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProduct(productID)
}
