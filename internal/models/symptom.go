package models

import "time"

// Symptom represents the 'symptoms' table. Timestamp is assigned by the
// server at insertion time, never taken from the client.
type Symptom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"index;not null" json:"patient_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Timestamp   string    `gorm:"size:30;not null" json:"timestamp"` // ISO-8601
	CreatedAt   time.Time `json:"created_at"`
}
