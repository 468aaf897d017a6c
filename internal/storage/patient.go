package storage

import (
	"telecare-backend/internal/models"

	"gorm.io/gorm"
)

// CreatePatient inserts a patient row. A duplicate email comes back as
// ErrDuplicateEmail.
func CreatePatient(db *gorm.DB, p *models.Patient) error {
	return translateDuplicate(db.Create(p).Error, ErrDuplicateEmail)
}

// PatientByID loads a patient with its assigned doctor.
func PatientByID(db *gorm.DB, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := db.Preload("Doctor").First(&p, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &p, nil
}

func PatientByEmail(db *gorm.DB, email string) (*models.Patient, error) {
	var p models.Patient
	if err := db.Preload("Doctor").Where("email = ?", email).First(&p).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &p, nil
}

// ValidatePatientLogin matches a pre-hashed credential against the stored
// hash and loads the assigned doctor for the login profile.
func ValidatePatientLogin(db *gorm.DB, email, passwordHash string) (*models.Patient, error) {
	var p models.Patient
	err := db.Preload("Doctor").Where("email = ? AND password = ?", email, passwordHash).First(&p).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &p, nil
}

// ListPatientsByDoctor returns the patients whose stored doctor reference
// equals doctorID, oldest registration first.
func ListPatientsByDoctor(db *gorm.DB, doctorID uint) ([]models.Patient, error) {
	var out []models.Patient
	if err := db.Where("doctor_id = ?", doctorID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
