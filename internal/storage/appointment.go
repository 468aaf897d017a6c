package storage

import (
	"telecare-backend/internal/models"

	"gorm.io/gorm"
)

// SlotTaken reports whether any appointment already occupies the exact
// (doctor, datetime) pair. This is only an early exit: two concurrent
// requests can both see a free slot, so CreateAppointment relies on the
// unique index as the authoritative guard.
func SlotTaken(db *gorm.DB, doctorID uint, datetime string) (bool, error) {
	var n int64
	err := db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND datetime = ?", doctorID, datetime).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateAppointment inserts an appointment row. A slot collision rejected
// by the unique index comes back as ErrSlotTaken.
func CreateAppointment(db *gorm.DB, a *models.Appointment) error {
	return translateDuplicate(db.Create(a).Error, ErrSlotTaken)
}

// ListAppointmentsByDoctor returns a doctor's appointments, newest first.
// Ties on datetime break by descending id so the order stays deterministic.
func ListAppointmentsByDoctor(db *gorm.DB, doctorID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	err := db.Where("doctor_id = ?", doctorID).
		Order("datetime DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAppointmentsByPatient returns a patient's appointments, newest first.
func ListAppointmentsByPatient(db *gorm.DB, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	err := db.Where("patient_id = ?", patientID).
		Order("datetime DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
