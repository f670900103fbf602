package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve admins: %w", err)
	}
	return admins, nil
}

func (s *AdminService) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to retrieve admin %d: %w", id, err)
	}
	return &admin, nil
}

func (s *AdminService) Create(admin *models.Admin) error {
	admin.Name = strings.TrimSpace(admin.Name)
	if admin.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.DB.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (s *AdminService) Delete(id uint) error {
	result := s.DB.Delete(&models.Admin{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
