package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

type PlatformService struct {
	DB *gorm.DB
}

func NewPlatformService(db *gorm.DB) *PlatformService {
	return &PlatformService{DB: db}
}

func (s *PlatformService) GetAll() ([]models.BookingPlatform, error) {
	var platforms []models.BookingPlatform
	if err := s.DB.Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve platforms: %w", err)
	}
	return platforms, nil
}

func (s *PlatformService) Create(platform *models.BookingPlatform) error {
	platform.Name = strings.TrimSpace(platform.Name)
	if platform.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.DB.Create(platform).Error; err != nil {
		return fmt.Errorf("failed to create platform: %w", err)
	}
	return nil
}

// NameMap returns platform id → name, used by the revenue summaries.
func (s *PlatformService) NameMap() (map[uint]string, error) {
	platforms, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(platforms))
	for _, p := range platforms {
		names[p.ID] = p.Name
	}
	return names, nil
}
