package models

import "time"

type MeasurementType string

const (
	MeasurementECG MeasurementType = "ECG"
	MeasurementEDA MeasurementType = "EDA"
)

// Measurement represents the 'measurements' table. Only metadata lives here;
// the raw sample values are kept in the CSV file referenced by FilePath.
type Measurement struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	PatientID uint            `gorm:"index;not null" json:"patient_id"`
	Type      MeasurementType `gorm:"size:10;not null" json:"type"`
	StartedAt string          `gorm:"column:started_at;size:30;not null" json:"started_at"` // ISO-8601
	FilePath  string          `gorm:"column:file_path;size:255;not null" json:"file_path"`
	CreatedAt time.Time       `json:"created_at"`
}
