package storage

import (
	"telecare-backend/internal/models"

	"gorm.io/gorm"
)

// CreateDoctor inserts a doctor row. A duplicate email comes back as
// ErrDuplicateEmail.
func CreateDoctor(db *gorm.DB, d *models.Doctor) error {
	return translateDuplicate(db.Create(d).Error, ErrDuplicateEmail)
}

func DoctorByID(db *gorm.DB, id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := db.First(&d, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &d, nil
}

func DoctorByEmail(db *gorm.DB, email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := db.Where("email = ?", email).First(&d).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &d, nil
}

func DoctorByName(db *gorm.DB, name string) (*models.Doctor, error) {
	var d models.Doctor
	if err := db.Where("name = ?", name).First(&d).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &d, nil
}

// ValidateDoctorLogin matches a pre-hashed credential against the stored
// hash. ErrNotFound covers both unknown email and wrong password; the
// caller must not tell the two apart.
func ValidateDoctorLogin(db *gorm.DB, email, passwordHash string) (*models.Doctor, error) {
	var d models.Doctor
	err := db.Where("email = ? AND password = ?", email, passwordHash).First(&d).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &d, nil
}

func ListDoctors(db *gorm.DB) ([]models.Doctor, error) {
	var out []models.Doctor
	if err := db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
