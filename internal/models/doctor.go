package models

import "time"

// Doctor represents the 'doctors' table. The email doubles as the login key.
type Doctor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Surname      string    `gorm:"size:100;not null" json:"surname"`
	Email        string    `gorm:"uniqueIndex;size:190;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	Phone        string    `gorm:"size:30" json:"phone"`
	CreatedAt    time.Time `json:"created_at"`

	Patients []Patient `gorm:"foreignKey:DoctorID" json:"patients,omitempty"`
}
