package repositories

import (
	"errors"
	"fmt"

	"ecompro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByProduct(productID string) ([]models.Review, error)
	// GetByOwnerAndProduct returns ErrReviewNotFound when the owner has not
	// reviewed the product yet.
	GetByOwnerAndProduct(ownerID, productID string) (*models.Review, error)
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByProduct retrieves all reviews for a product, newest first.
func (r *GORMReviewRepository) GetByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ?", productID).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// GetByOwnerAndProduct retrieves the owner's review of a product, if any.
func (r *GORMReviewRepository) GetByOwnerAndProduct(ownerID, productID string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "owner_id = ? AND product_id = ?", ownerID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review by owner %s for product %s: %w", ownerID, productID, ErrReviewNotFound)
		}
		return nil, fmt.Errorf("failed to get review for product %s: %w", productID, err)
	}
	return &review, nil
}
