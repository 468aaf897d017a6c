package models

import "time"

type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// Patient represents the 'patients' table. Every patient is created with an
// assigned doctor; registration fails upstream when none resolves.
type Patient struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Surname      string    `gorm:"size:100;not null" json:"surname"`
	Email        string    `gorm:"uniqueIndex;size:190;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	DOB          string    `gorm:"size:10" json:"dob"` // yyyy-MM-dd
	Sex          Sex       `gorm:"size:10" json:"sex"`
	Phone        string    `gorm:"size:30" json:"phone"`
	DoctorID     uint      `gorm:"index;not null" json:"doctor_id"`
	CreatedAt    time.Time `json:"created_at"`

	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}
