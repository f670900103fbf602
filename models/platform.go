package models

import "gorm.io/datatypes"

// BookingPlatform is an external channel (Airbnb, Agoda, ...) whose
// confirmation codes end up as reservation booking references. Settings holds
// free-form per-channel configuration (webhook payload shapes, sync flags).
type BookingPlatform struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string         `json:"name" gorm:"size:100;not null"`
	APIKey     string         `json:"api_key,omitempty" gorm:"column:api_key;size:255"`
	WebhookURL string         `json:"webhook_url,omitempty" gorm:"column:webhook_url;size:500"`
	Settings   datatypes.JSON `json:"settings,omitempty" gorm:"column:settings"`
}

func (BookingPlatform) TableName() string { return "booking_platforms" }
