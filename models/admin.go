package models

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `json:"name" gorm:"size:255;not null"`
	Email    string `json:"email,omitempty" gorm:"size:255"`
	Phone    string `json:"phone,omitempty" gorm:"size:50"`
	Role     string `json:"role,omitempty" gorm:"size:100"` // manager, staff
	IsActive bool   `json:"is_active" gorm:"column:is_active;default:true"`
}
