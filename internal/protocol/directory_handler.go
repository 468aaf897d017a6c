package protocol

import "telecare-backend/internal/storage"

// listDoctors needs no input; the password hash is never projected.
func (r *Router) listDoctors(requestID string, _ map[string]any) Response {
	doctors, err := storage.ListDoctors(r.db)
	if err != nil {
		return errorResponse(ActionListDoctors, requestID, "DB error while listing doctors")
	}

	arr := make([]map[string]any, 0, len(doctors))
	for _, d := range doctors {
		arr = append(arr, map[string]any{
			"doctorId": d.ID,
			"name":     d.Name,
			"surname":  d.Surname,
			"email":    d.Email,
		})
	}
	return okResponse(ActionListDoctors, requestID, "Doctors retrieved successfully", map[string]any{
		"doctors": arr,
	})
}

// listPatients projects a flat view of a doctor's patients; nested
// appointments/measurements stay out to avoid reference cycles.
func (r *Router) listPatients(requestID string, p map[string]any) Response {
	doctorID := getInt(p, "doctorId", -1)
	if doctorID <= 0 {
		return errorResponse(ActionListPatients, requestID, "Missing or invalid doctorId.")
	}

	patients, err := storage.ListPatientsByDoctor(r.db, uint(doctorID))
	if err != nil {
		return errorResponse(ActionListPatients, requestID, "DB error while listing patients")
	}

	arr := make([]map[string]any, 0, len(patients))
	for _, pt := range patients {
		arr = append(arr, map[string]any{
			"id":      pt.ID,
			"name":    pt.Name,
			"surname": pt.Surname,
			"email":   pt.Email,
			"phone":   pt.Phone,
			"dob":     pt.DOB,
			"sex":     string(pt.Sex),
		})
	}
	return okResponse(ActionListPatients, requestID, "Patients retrieved", map[string]any{
		"patients": arr,
	})
}
