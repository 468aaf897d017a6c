package models

import "time"

type SenderRole string

const (
	RoleDoctor  SenderRole = "DOCTOR"
	RolePatient SenderRole = "PATIENT"
)

// Message represents the 'messages' table: one undifferentiated conversation
// channel per (doctor, patient) pair, ordered by timestamp then id.
type Message struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	DoctorID   uint       `gorm:"index;not null" json:"doctor_id"`
	PatientID  uint       `gorm:"index;not null" json:"patient_id"`
	SenderRole SenderRole `gorm:"column:sender_role;size:10;not null" json:"sender_role"`
	Timestamp  string     `gorm:"index;size:30;not null" json:"timestamp"` // ISO-8601
	Text       string     `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time  `json:"created_at"`
}
