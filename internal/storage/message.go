package storage

import (
	"telecare-backend/internal/models"

	"gorm.io/gorm"
)

func CreateMessage(db *gorm.DB, m *models.Message) error {
	return db.Create(m).Error
}

// ListConversation returns every message between a doctor and a patient in
// stable chat order: timestamp ascending, ties broken by ascending id.
func ListConversation(db *gorm.DB, doctorID, patientID uint) ([]models.Message, error) {
	var out []models.Message
	err := db.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
