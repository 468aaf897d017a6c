package storage

import (
	"telecare-backend/internal/models"

	"gorm.io/gorm"
)

func CreateMeasurement(db *gorm.DB, m *models.Measurement) error {
	return db.Create(m).Error
}

func MeasurementByID(db *gorm.DB, id uint) (*models.Measurement, error) {
	var m models.Measurement
	if err := db.First(&m, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &m, nil
}

// ListMeasurementsByPatient returns a patient's measurement metadata,
// newest first by started_at with descending id as tie-break.
func ListMeasurementsByPatient(db *gorm.DB, patientID uint) ([]models.Measurement, error) {
	var out []models.Measurement
	err := db.Where("patient_id = ?", patientID).
		Order("started_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
