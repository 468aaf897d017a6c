package protocol

import (
	"errors"

	"telecare-backend/internal/models"
	"telecare-backend/internal/storage"
)

func (r *Router) requestAppointment(requestID string, p map[string]any) Response {
	doctorID := getInt(p, "doctorId", -1)
	patientID := getInt(p, "patientId", -1)
	datetime := getString(p, "datetime", "")
	message := getString(p, "message", "")

	if doctorID <= 0 || patientID <= 0 || isBlank(datetime) {
		return errorResponse(ActionRequestAppointment, requestID, "Missing or invalid doctorId / patientId / datetime")
	}

	// Early exit when the slot is visibly taken. The unique index on
	// (doctor_id, datetime) still backs this up: a concurrent booking that
	// slips past the check is rejected at insert and reported the same way.
	taken, err := storage.SlotTaken(r.db, uint(doctorID), datetime)
	if err != nil {
		return errorResponse(ActionRequestAppointment, requestID, "DB error while checking availability")
	}
	if taken {
		return errorResponse(ActionRequestAppointment, requestID, "Appointment slot already taken. Please choose another date or time.")
	}

	appt := &models.Appointment{
		DoctorID:  uint(doctorID),
		PatientID: uint(patientID),
		Datetime:  datetime,
		Message:   message,
	}
	if err := storage.CreateAppointment(r.db, appt); err != nil {
		if errors.Is(err, storage.ErrSlotTaken) {
			return errorResponse(ActionRequestAppointment, requestID, "Appointment slot already taken. Please choose another date or time.")
		}
		return errorResponse(ActionRequestAppointment, requestID, "DB insert failed (appointment)")
	}

	return okResponse(ActionRequestAppointment, requestID, "Appointment created", map[string]any{
		"appointmentId": appt.ID,
	})
}

// listAppointments accepts doctorId or patientId; doctorId wins when both
// are present.
func (r *Router) listAppointments(requestID string, p map[string]any) Response {
	doctorID := getInt(p, "doctorId", -1)
	patientID := getInt(p, "patientId", -1)

	var (
		appointments []models.Appointment
		scope        string
		err          error
	)
	switch {
	case doctorID > 0:
		appointments, err = storage.ListAppointmentsByDoctor(r.db, uint(doctorID))
		scope = "DOCTOR"
	case patientID > 0:
		appointments, err = storage.ListAppointmentsByPatient(r.db, uint(patientID))
		scope = "PATIENT"
	default:
		return errorResponse(ActionListAppointments, requestID, "You must provide doctorId or patientId in payload")
	}
	if err != nil {
		return errorResponse(ActionListAppointments, requestID, "DB error while listing appointments")
	}

	arr := make([]map[string]any, 0, len(appointments))
	for _, a := range appointments {
		arr = append(arr, map[string]any{
			"id":        a.ID,
			"doctorId":  a.DoctorID,
			"patientId": a.PatientID,
			"datetime":  a.Datetime,
			"message":   a.Message,
		})
	}
	return okResponse(ActionListAppointments, requestID, "Appointments retrieved for "+scope, map[string]any{
		"appointments": arr,
	})
}
