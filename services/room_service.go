package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// Resolve finds a room by its human-facing room number first, falling back
// to the numeric id. Front-end callers use either interchangeably.
func (s *RoomService) Resolve(ref string) (*models.Room, error) {
	ref = strings.TrimSpace(ref)

	var room models.Room
	err := s.DB.Where("room_number = ?", ref).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up room %q: %w", ref, err)
	}

	id, convErr := strconv.ParseUint(ref, 10, 64)
	if convErr != nil {
		return nil, ErrRoomNotFound
	}
	if err := s.DB.First(&room, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to look up room %q: %w", ref, err)
	}
	return &room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room_number is required", ErrValidation)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}

	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("%w: %s", ErrDuplicateRoomNumber, room.RoomNumber)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// CleaningRooms lists rooms currently waiting for housekeeping.
func (s *RoomService) CleaningRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("status = ?", models.RoomStatusCleaning).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cleaning rooms: %w", err)
	}
	return rooms, nil
}

// CompleteCleaning resets a serviced room to available and returns it.
func (s *RoomService) CompleteCleaning(ref string) (*models.Room, error) {
	room, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("status", models.RoomStatusAvailable).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d status: %w", room.ID, err)
	}
	room.Status = models.RoomStatusAvailable
	return room, nil
}
