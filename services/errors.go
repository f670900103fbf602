package services

import "errors"

// Service errors. Controllers match these with errors.Is to pick the HTTP
// status; no error below is retryable.
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrPlatformNotFound    = errors.New("platform not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrNoteNotFound        = errors.New("note not found")

	// ErrRoomConflict: an active reservation already intersects the
	// requested date range on that room.
	ErrRoomConflict = errors.New("room is already booked for the selected dates")

	ErrInvalidStatus     = errors.New("invalid status")
	ErrAlreadyCheckedIn  = errors.New("already checked in")
	ErrAlreadyCheckedOut = errors.New("already checked out")

	// ErrValidation wraps malformed or missing request fields.
	ErrValidation = errors.New("validation")

	ErrDuplicateRoomNumber = errors.New("room number already exists")
)
