package models

import (
	"fmt"
	"strings"
	"time"
)

// Canonical reservation statuses. These are the only values the transition
// API accepts; anything else found in the database is a legacy value and is
// normalized on read.
const (
	StatusReserved   = "Reserved"
	StatusCheckedIn  = "Checked in"
	StatusCheckedOut = "Checked out"
)

// StatusCancelled never results from any transition, but the overlap filter
// skips it so historical or imported rows carrying it don't block a room.
const StatusCancelled = "cancelled"

// legacyStatusMap folds raw status strings from older imports into the
// canonical set. Applied on every read path, never on write.
var legacyStatusMap = map[string]string{
	"confirmed":   StatusReserved,
	"Not Checked": StatusReserved,
	"checked_in":  StatusCheckedIn,
	"checked_out": StatusCheckedOut,
	"cancelled":   StatusReserved,
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id" gorm:"column:customer_id;index;not null"`
	RoomID     uint `json:"room_id" gorm:"column:room_id;index;not null"`
	PlatformID uint `json:"platform_id" gorm:"column:platform_id;index;not null"`

	CheckIn  time.Time `json:"check_in" gorm:"column:check_in;type:date;not null"`
	CheckOut time.Time `json:"check_out" gorm:"column:check_out;type:date;not null"`

	Guests           int     `json:"guests" gorm:"not null"`
	TotalPrice       float64 `json:"total_price" gorm:"column:total_price;not null"`
	Status           string  `json:"status" gorm:"size:50;default:Reserved"`
	BookingReference string  `json:"booking_reference" gorm:"column:booking_reference;size:255;not null"`
	Notes            string  `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`

	Customer Customer        `gorm:"foreignKey:CustomerID" json:"-"`
	Room     Room            `gorm:"foreignKey:RoomID" json:"-"`
	Platform BookingPlatform `gorm:"foreignKey:PlatformID" json:"-"`
}

// CanonicalStatus maps a raw status string to its canonical value. Empty and
// legacy values fold to Reserved; already-canonical values pass through.
func CanonicalStatus(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return StatusReserved
	}
	if mapped, ok := legacyStatusMap[s]; ok {
		return mapped
	}
	return s
}

// IsCanonicalStatus reports whether s is one of the three lifecycle statuses.
func IsCanonicalStatus(s string) bool {
	switch s {
	case StatusReserved, StatusCheckedIn, StatusCheckedOut:
		return true
	}
	return false
}

// Normalize rewrites legacy field values into canonical form for external
// consumption. It is the single normalization boundary between stored rows
// and API responses; the stored row is left untouched.
func (r *Reservation) Normalize() {
	r.Status = CanonicalStatus(r.Status)
	if strings.TrimSpace(r.BookingReference) == "" {
		r.BookingReference = fmt.Sprintf("REF-%d", r.ID)
	}
}
