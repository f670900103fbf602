package models

import "time"

// Room note kinds and states.
const (
	NoteTypeUrgent        = "urgent"
	NoteTypeAfterCheckout = "after_checkout"

	NoteStatusPending   = "pending"
	NoteStatusCompleted = "completed"

	NoteProgressConfirm    = "confirm"
	NoteProgressInProgress = "In progress"
	NoteProgressFinished   = "finished"
)

// RoomNote is a staff task attached to a room. RoomID stores the human-facing
// room number rather than the numeric key; housekeeping staff work off room
// numbers and notes must survive room re-creation.
type RoomNote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID      string `json:"room_id" gorm:"column:room_id;size:50;index;not null"`
	AdminID     uint   `json:"admin_id" gorm:"column:admin_id;index;not null"`
	NoteType    string `json:"note_type" gorm:"column:note_type;size:50;not null"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Status      string `json:"status" gorm:"size:50;default:pending"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"column:completed_at"`

	ReservationID *uint   `json:"reservation_id,omitempty" gorm:"column:reservation_id;index"`
	Progress      *string `json:"progress,omitempty" gorm:"size:50"`

	Admin Admin `gorm:"foreignKey:AdminID" json:"-"`
}

func (RoomNote) TableName() string { return "room_notes" }
