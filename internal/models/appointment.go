package models

import "time"

// Appointment represents the 'appointments' table. The composite unique
// index on (doctor_id, datetime) is the authoritative guard against double
// booking a slot; the handler's availability pre-check is only an early exit.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DoctorID  uint      `gorm:"not null;uniqueIndex:idx_appointments_slot" json:"doctor_id"`
	PatientID uint      `gorm:"index;not null" json:"patient_id"`
	Datetime  string    `gorm:"size:30;not null;uniqueIndex:idx_appointments_slot" json:"datetime"` // ISO-8601
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
