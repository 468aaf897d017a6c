package storage

import (
	"telecare-backend/internal/models"

	"gorm.io/gorm"
)

func CreateSymptom(db *gorm.DB, s *models.Symptom) error {
	return db.Create(s).Error
}

// ListSymptomsByPatient returns a patient's symptoms in insertion order.
func ListSymptomsByPatient(db *gorm.DB, patientID uint) ([]models.Symptom, error) {
	var out []models.Symptom
	err := db.Where("patient_id = ?", patientID).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
