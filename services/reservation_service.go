package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-management-backend/models"
	"hotel-management-backend/utils"
)

// ReservationService owns the reservation lifecycle: overlap-checked
// creation, the status state machine, and the coupled room-status writes.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// CreateReservationInput carries an already-parsed reservation request.
// Dates must be calendar dates (midnight UTC), see utils.ParseDate.
type CreateReservationInput struct {
	CustomerID       uint
	RoomID           uint
	PlatformID       uint
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	TotalPrice       float64
	BookingReference string
	Notes            string
	Status           string // optional, defaults to Reserved
}

// roomStatusFor is the reservation→room status projection. Checked out maps
// to cleaning: the room needs servicing before it can be sold again.
func roomStatusFor(status string) string {
	if status == models.StatusCheckedOut {
		return models.RoomStatusCleaning
	}
	return models.RoomStatusOccupied
}

// datesOverlap implements the interval test for [check_in, check_out]
// ranges. Inclusive on both ends: a checkout day equal to another
// reservation's check-in day counts as a conflict.
func datesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// HasConflict reports whether any active reservation on the room intersects
// [checkIn, checkOut]. excludeID, when non-nil, skips that reservation so an
// existing booking can be re-validated against its own dates. Rows whose raw
// status is the cancelled marker are ignored. Pure query, no side effects.
func (s *ReservationService) HasConflict(roomID uint, checkIn, checkOut time.Time, excludeID *uint) (bool, error) {
	return s.hasConflict(s.DB, roomID, checkIn, checkOut, excludeID)
}

func (s *ReservationService) hasConflict(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID *uint) (bool, error) {
	q := db.Where("room_id = ? AND status <> ?", roomID, models.StatusCancelled)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var candidates []models.Reservation
	if err := q.Find(&candidates).Error; err != nil {
		return false, fmt.Errorf("failed to load reservations for room %d: %w", roomID, err)
	}

	// Linear scan: per-room reservation volume is bounded by calendar-year
	// occupancy, so an interval structure buys nothing here.
	for _, r := range candidates {
		if datesOverlap(checkIn, checkOut, utils.DateOnly(r.CheckIn), utils.DateOnly(r.CheckOut)) {
			return true, nil
		}
	}
	return false, nil
}

// Create books a room. The overlap check, the reservation insert and the
// room-status write run in one transaction, so a failure cannot leave the
// room status stale relative to the reservation. Two concurrent creates can
// still both pass the overlap check before either commits; the store offers
// no compare-and-swap, and this check-then-act window is an accepted
// limitation of the design.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if strings.TrimSpace(in.BookingReference) == "" {
		return nil, fmt.Errorf("%w: booking_reference is required", ErrValidation)
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.StatusReserved
	}
	if !models.IsCanonicalStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	var cust models.Customer
	if err := s.DB.First(&cust, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, in.CustomerID)
		}
		return nil, fmt.Errorf("db error checking customer %d: %w", in.CustomerID, err)
	}
	var platform models.BookingPlatform
	if err := s.DB.First(&platform, in.PlatformID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPlatformNotFound, in.PlatformID)
		}
		return nil, fmt.Errorf("db error checking platform %d: %w", in.PlatformID, err)
	}

	var created models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrRoomNotFound, in.RoomID)
			}
			return fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
		}

		conflict, err := s.hasConflict(tx, in.RoomID, in.CheckIn, in.CheckOut, nil)
		if err != nil {
			return err
		}
		if conflict {
			return ErrRoomConflict
		}

		created = models.Reservation{
			CustomerID:       in.CustomerID,
			RoomID:           in.RoomID,
			PlatformID:       in.PlatformID,
			CheckIn:          utils.DateOnly(in.CheckIn),
			CheckOut:         utils.DateOnly(in.CheckOut),
			Guests:           in.Guests,
			TotalPrice:       in.TotalPrice,
			Status:           status,
			BookingReference: strings.TrimSpace(in.BookingReference),
			Notes:            strings.TrimSpace(in.Notes),
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", in.RoomID).
			Update("status", models.RoomStatusOccupied).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", in.RoomID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	created.Normalize()
	return &created, nil
}

// GetByID returns a single reservation with legacy fields normalized.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}
	r.Normalize()
	return &r, nil
}

// GetAll returns all reservations, newest first, normalized.
func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

// ForCustomer returns the reservation history of one customer, normalized.
func (s *ReservationService) ForCustomer(customerID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for customer %d: %w", customerID, err)
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

// SetStatus moves a reservation to one of the canonical statuses and writes
// the projected room status in the same transaction.
func (s *ReservationService) SetStatus(id uint, status string) (*models.Reservation, error) {
	status = strings.TrimSpace(status)
	if !models.IsCanonicalStatus(status) {
		return nil, fmt.Errorf("%w: %q must be one of %s, %s, %s",
			ErrInvalidStatus, status, models.StatusReserved, models.StatusCheckedIn, models.StatusCheckedOut)
	}

	var r models.Reservation
	if err := s.DB.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reservation{}).Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d status: %w", id, err)
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", r.RoomID).
			Update("status", roomStatusFor(status)).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", r.RoomID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(id)
}

// CheckIn transitions a reservation to Checked in. Repeat calls fail without
// touching state.
func (s *ReservationService) CheckIn(id uint) (*models.Reservation, error) {
	r, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r.Status == models.StatusCheckedIn {
		return nil, ErrAlreadyCheckedIn
	}
	return s.SetStatus(id, models.StatusCheckedIn)
}

// CheckOut transitions a reservation to Checked out, with the symmetric
// repeat-call guard.
func (s *ReservationService) CheckOut(id uint) (*models.Reservation, error) {
	r, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r.Status == models.StatusCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}
	return s.SetStatus(id, models.StatusCheckedOut)
}

// UpcomingSummary lists the check-ins and check-outs falling inside the next
// `days` days, today inclusive.
type UpcomingSummary struct {
	Days      int                  `json:"days"`
	CheckIns  []models.Reservation `json:"upcoming_checkins"`
	CheckOuts []models.Reservation `json:"upcoming_checkouts"`
}

func (s *ReservationService) Upcoming(days int) (*UpcomingSummary, error) {
	if days <= 0 {
		days = 7
	}
	list, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	today := utils.DateOnly(time.Now().UTC())
	end := today.AddDate(0, 0, days)

	out := &UpcomingSummary{
		Days:      days,
		CheckIns:  []models.Reservation{},
		CheckOuts: []models.Reservation{},
	}
	for _, r := range list {
		ci := utils.DateOnly(r.CheckIn)
		co := utils.DateOnly(r.CheckOut)

		if r.Status == models.StatusReserved && !ci.Before(today) && !ci.After(end) {
			out.CheckIns = append(out.CheckIns, r)
		}
		if (r.Status == models.StatusReserved || r.Status == models.StatusCheckedIn) &&
			!co.Before(today) && !co.After(end) {
			out.CheckOuts = append(out.CheckOuts, r)
		}
	}
	return out, nil
}
