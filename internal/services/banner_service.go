package services

import (
	"fmt"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// BannerService handles storefront banners, a thin validated CRUD layer.
type BannerService struct {
	repo     repositories.BannerRepository
	validate *validator.Validate
}

// NewBannerService creates a new BannerService.
func NewBannerService(repo repositories.BannerRepository) *BannerService {
	return &BannerService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateBanner validates and creates a new banner.
func (s *BannerService) CreateBanner(banner *models.Banner) error {
	if err := s.validate.Struct(banner); err != nil {
		return fmt.Errorf("banner validation failed: %w", err)
	}
	return s.repo.Create(banner)
}

// GetAllBanners retrieves all banners.
func (s *BannerService) GetAllBanners() ([]models.Banner, error) {
	return s.repo.GetAll()
}

// DeleteBanner deletes a banner by its ID.
func (s *BannerService) DeleteBanner(id string) error {
	return s.repo.Delete(id)
}
