package repositories

import (
	"fmt"

	"ecompro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BannerRepository defines the interface for banner data access.
type BannerRepository interface {
	Create(banner *models.Banner) error
	GetAll() ([]models.Banner, error)
	Delete(id string) error
}

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{
		db: db,
	}
}

// Create creates a new banner in the database.
func (r *GORMBannerRepository) Create(banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// GetAll retrieves all banners, newest first.
func (r *GORMBannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Order("created_at desc").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get all banners: %w", err)
	}
	return banners, nil
}

// Delete deletes a banner by its ID.
func (r *GORMBannerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s for deletion: %w", id, ErrBannerNotFound)
	}
	return nil
}
