package models

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `json:"name" gorm:"size:255;not null"`
	Email       string `json:"email,omitempty" gorm:"size:255"`
	Phone       string `json:"phone,omitempty" gorm:"size:50"`
	Nationality string `json:"nationality,omitempty" gorm:"size:100"`
}
