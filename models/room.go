package models

// Room statuses. The status column is a plain projection: it always holds
// the last value written by a reservation transition or a cleaning completion.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusCleaning    = "cleaning"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber    string  `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50);not null"`
	RoomType      string  `json:"room_type" gorm:"column:room_type;type:varchar(100);not null"`
	MaxGuests     int     `json:"max_guests" gorm:"column:max_guests;not null"`
	PricePerNight float64 `json:"price_per_night" gorm:"column:price_per_night;not null"`
	Status        string  `json:"status" gorm:"type:varchar(50);default:available"`
}
