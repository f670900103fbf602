package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

type NoteService struct {
	DB *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{DB: db}
}

// CreateNoteInput carries a raw room-note request. AdminRef accepts an admin
// id or an admin name; RoomRef accepts a room number or a numeric room id
// (stored as the room number either way).
type CreateNoteInput struct {
	RoomRef       string
	AdminRef      string
	NoteType      string
	Title         string
	Description   string
	ReservationID *uint
	Progress      *string
}

// List returns notes, optionally filtered by room number and by progress.
// progress semantics: nil means no filter, empty string selects notes with
// no progress recorded, any other value matches exactly.
func (s *NoteService) List(roomID string, progress *string) ([]models.RoomNote, error) {
	q := s.DB.Model(&models.RoomNote{})
	if roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	if progress != nil {
		if *progress == "" {
			q = q.Where("progress IS NULL")
		} else {
			q = q.Where("progress = ?", *progress)
		}
	}

	var notes []models.RoomNote
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve notes: %w", err)
	}
	return notes, nil
}

// Urgent returns pending urgent notes.
func (s *NoteService) Urgent() ([]models.RoomNote, error) {
	return s.pendingByType(models.NoteTypeUrgent, nil)
}

// AfterCheckout returns pending after-checkout notes.
func (s *NoteService) AfterCheckout() ([]models.RoomNote, error) {
	return s.pendingByType(models.NoteTypeAfterCheckout, nil)
}

// NoteAlerts is the combined staff alert feed: both pending queues plus a
// total, so the dashboard badge needs one request.
type NoteAlerts struct {
	Urgent        []models.RoomNote `json:"urgent_notes"`
	AfterCheckout []models.RoomNote `json:"after_checkout_notes"`
	TotalCount    int               `json:"total_count"`
}

// Alerts returns both pending queues, optionally narrowed by progress with
// the same tri-state semantics as List.
func (s *NoteService) Alerts(progress *string) (*NoteAlerts, error) {
	urgent, err := s.pendingByType(models.NoteTypeUrgent, progress)
	if err != nil {
		return nil, err
	}
	after, err := s.pendingByType(models.NoteTypeAfterCheckout, progress)
	if err != nil {
		return nil, err
	}
	return &NoteAlerts{
		Urgent:        urgent,
		AfterCheckout: after,
		TotalCount:    len(urgent) + len(after),
	}, nil
}

// Complete closes out a note regardless of its current progress.
func (s *NoteService) Complete(id uint) (*models.RoomNote, error) {
	return s.UpdateProgress(id, models.NoteProgressFinished)
}

func (s *NoteService) pendingByType(noteType string, progress *string) ([]models.RoomNote, error) {
	q := s.DB.Where("note_type = ? AND status = ?", noteType, models.NoteStatusPending)
	if progress != nil {
		if *progress == "" {
			q = q.Where("progress IS NULL")
		} else {
			q = q.Where("progress = ?", *progress)
		}
	}

	var notes []models.RoomNote
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve %s notes: %w", noteType, err)
	}
	return notes, nil
}

func (s *NoteService) Create(in CreateNoteInput) (*models.RoomNote, error) {
	if strings.TrimSpace(in.Title) == "" && strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: title or description is required", ErrValidation)
	}
	if in.NoteType != models.NoteTypeUrgent && in.NoteType != models.NoteTypeAfterCheckout {
		return nil, fmt.Errorf("%w: note_type must be %s or %s",
			ErrValidation, models.NoteTypeUrgent, models.NoteTypeAfterCheckout)
	}

	adminID, err := s.resolveAdmin(in.AdminRef)
	if err != nil {
		return nil, err
	}
	roomNumber, err := s.resolveRoomNumber(in.RoomRef)
	if err != nil {
		return nil, err
	}

	note := models.RoomNote{
		RoomID:        roomNumber,
		AdminID:       adminID,
		NoteType:      in.NoteType,
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Status:        models.NoteStatusPending,
		ReservationID: in.ReservationID,
		Progress:      in.Progress,
	}
	if err := s.DB.Create(&note).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

// UpdateProgress advances a note through the staff workflow. Reaching
// finished also completes the note and stamps completed_at.
func (s *NoteService) UpdateProgress(id uint, progress string) (*models.RoomNote, error) {
	switch progress {
	case models.NoteProgressConfirm, models.NoteProgressInProgress, models.NoteProgressFinished:
	default:
		return nil, fmt.Errorf("%w: progress %q", ErrValidation, progress)
	}

	var note models.RoomNote
	if err := s.DB.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to retrieve note %d: %w", id, err)
	}

	updates := map[string]interface{}{"progress": progress}
	if progress == models.NoteProgressFinished {
		now := time.Now().UTC()
		updates["status"] = models.NoteStatusCompleted
		updates["completed_at"] = now
	}
	if err := s.DB.Model(&note).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update note %d: %w", id, err)
	}

	if err := s.DB.First(&note, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload note %d: %w", id, err)
	}
	return &note, nil
}

// resolveAdmin accepts a numeric admin id or an admin name.
func (s *NoteService) resolveAdmin(ref string) (uint, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("%w: admin_id is required", ErrValidation)
	}

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		var admin models.Admin
		if err := s.DB.First(&admin, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrAdminNotFound
			}
			return 0, fmt.Errorf("failed to look up admin %q: %w", ref, err)
		}
		return admin.ID, nil
	}

	var admin models.Admin
	if err := s.DB.Where("name = ?", ref).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAdminNotFound
		}
		return 0, fmt.Errorf("failed to look up admin %q: %w", ref, err)
	}
	return admin.ID, nil
}

// resolveRoomNumber folds a numeric room id to its room number; a value
// that isn't a known id is taken as a room number verbatim.
func (s *NoteService) resolveRoomNumber(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: room_id is required", ErrValidation)
	}

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		var room models.Room
		if err := s.DB.First(&room, uint(id)).Error; err == nil {
			return room.RoomNumber, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("failed to look up room %q: %w", ref, err)
		}
	}
	return ref, nil
}
