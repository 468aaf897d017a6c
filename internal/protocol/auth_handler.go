package protocol

import (
	"errors"
	"log"
	"strings"

	"telecare-backend/internal/models"
	"telecare-backend/internal/storage"
	"telecare-backend/pkg/utils"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// resolveDoctor finds the doctor a patient registration refers to, trying
// doctorId, then doctorEmail, then doctorName. Returns nil when none match.
func (r *Router) resolveDoctor(p map[string]any) *models.Doctor {
	if id := getInt(p, "doctorId", -1); id > 0 {
		if d, err := storage.DoctorByID(r.db, uint(id)); err == nil {
			return d
		}
	}
	if email := getString(p, "doctorEmail", ""); !isBlank(email) {
		if d, err := storage.DoctorByEmail(r.db, email); err == nil {
			return d
		}
	}
	if name := getString(p, "doctorName", ""); !isBlank(name) {
		if d, err := storage.DoctorByName(r.db, name); err == nil {
			return d
		}
	}
	return nil
}

func (r *Router) registerPatient(requestID string, p map[string]any) Response {
	name := getString(p, "name", "")
	surname := getString(p, "surname", "")
	email := getString(p, "email", "")
	password := getString(p, "password", "")
	dob := getString(p, "dob", "")
	sex := getString(p, "sex", "")
	phone := getString(p, "phone", "")

	if isBlank(name) || isBlank(surname) || isBlank(email) || isBlank(password) {
		return errorResponse(ActionRegisterPatient, requestID, "Missing required fields (name, surname, email, password)")
	}

	doctor := r.resolveDoctor(p)
	if doctor == nil {
		log.Printf("[DB] Doctor not found for patient registration (email=%s)", email)
		return errorResponse(ActionRegisterPatient, requestID, "Doctor not found")
	}

	patient := &models.Patient{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		DOB:          dob,
		Sex:          models.Sex(sex),
		Phone:        phone,
		DoctorID:     doctor.ID,
	}
	if err := storage.CreatePatient(r.db, patient); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return errorResponse(ActionRegisterPatient, requestID, "Register failed (maybe duplicated email)")
		}
		return errorResponse(ActionRegisterPatient, requestID, "DB error while registering patient")
	}

	// Flattened projection so the client can build its local model without
	// a follow-up round trip.
	return okResponse(ActionRegisterPatient, requestID, "Patient registered successfully", map[string]any{
		"patientId": patient.ID,
		"name":      patient.Name,
		"surname":   patient.Surname,
		"email":     patient.Email,
		"dob":       patient.DOB,
		"sex":       string(patient.Sex),
		"phone":     patient.Phone,
		"doctorId":  doctor.ID,
	})
}

func (r *Router) registerDoctor(requestID string, p map[string]any) Response {
	name := getString(p, "name", "")
	surname := getString(p, "surname", "")
	email := getString(p, "email", "")
	password := getString(p, "password", "")
	phone := getString(p, "phone", "")

	if isBlank(name) || isBlank(surname) || isBlank(email) || isBlank(password) {
		return errorResponse(ActionRegisterDoctor, requestID, "Missing required fields (name, surname, email, password)")
	}

	doctor := &models.Doctor{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Phone:        phone,
	}
	if err := storage.CreateDoctor(r.db, doctor); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return errorResponse(ActionRegisterDoctor, requestID, "Register failed (maybe duplicated email)")
		}
		return errorResponse(ActionRegisterDoctor, requestID, "DB error while registering doctor")
	}

	return okResponse(ActionRegisterDoctor, requestID, "Doctor registered successfully", map[string]any{
		"doctorId": doctor.ID,
		"name":     doctor.Name,
		"surname":  doctor.Surname,
		"email":    doctor.Email,
		"phone":    doctor.Phone,
	})
}

// login probes the patient credential store first, then the doctor store.
// Both failure causes collapse into one generic message on purpose: the
// caller must not learn whether the email exists.
func (r *Router) login(requestID string, p map[string]any) Response {
	username := getString(p, "username", "")
	password := getString(p, "password", "")

	if isBlank(username) || isBlank(password) {
		return errorResponse(ActionLogin, requestID, "Missing username or password")
	}

	passwordHash := utils.HashPassword(password)

	if patient, err := storage.ValidatePatientLogin(r.db, username, passwordHash); err == nil {
		payload := map[string]any{
			"userId":  patient.ID,
			"role":    string(models.RolePatient),
			"token":   "session-" + username,
			"name":    patient.Name,
			"surname": patient.Surname,
			"email":   patient.Email,
			"dob":     patient.DOB,
			"sex":     string(patient.Sex),
			"phone":   patient.Phone,
		}
		if patient.Doctor != nil {
			payload["doctor_id"] = patient.Doctor.ID
			payload["doctorName"] = patient.Doctor.Name
			payload["doctorSurname"] = patient.Doctor.Surname
			payload["doctorEmail"] = patient.Doctor.Email
			payload["doctorPhone"] = patient.Doctor.Phone
		}
		return okResponse(ActionLogin, requestID, "Login successful (Patient)", payload)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return errorResponse(ActionLogin, requestID, "DB error during login")
	}

	if doctor, err := storage.ValidateDoctorLogin(r.db, username, passwordHash); err == nil {
		return okResponse(ActionLogin, requestID, "Login successful (Doctor)", map[string]any{
			"userId":  doctor.ID,
			"role":    string(models.RoleDoctor),
			"token":   "session-" + username,
			"name":    doctor.Name,
			"surname": doctor.Surname,
			"email":   doctor.Email,
			"phone":   doctor.Phone,
		})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return errorResponse(ActionLogin, requestID, "DB error during login")
	}

	return errorResponse(ActionLogin, requestID, "Invalid username or password")
}
