package protocol

import (
	"telecare-backend/internal/models"
	"telecare-backend/internal/storage"
	"telecare-backend/pkg/utils"
)

func (r *Router) sendSymptoms(requestID string, p map[string]any) Response {
	patientID := getInt(p, "patientId", -1)
	description := getString(p, "description", "")
	// The optional "hour" field is advisory only; the persisted timestamp
	// is always assigned here, at insertion time.

	if patientID <= 0 || isBlank(description) {
		return errorResponse(ActionSendSymptoms, requestID, "Missing patientId or description")
	}

	symptom := &models.Symptom{
		PatientID:   uint(patientID),
		Description: description,
		Timestamp:   utils.TimestampNow(),
	}
	if err := storage.CreateSymptom(r.db, symptom); err != nil {
		return errorResponse(ActionSendSymptoms, requestID, "DB error while inserting symptom")
	}

	return okResponse(ActionSendSymptoms, requestID, "Symptoms stored", map[string]any{
		"symptomsId": symptom.ID,
	})
}

func (r *Router) listSymptoms(requestID string, p map[string]any) Response {
	patientID := getInt(p, "patientId", -1)
	if patientID <= 0 {
		return errorResponse(ActionListSymptoms, requestID, "Missing or invalid patientId.")
	}

	symptoms, err := storage.ListSymptomsByPatient(r.db, uint(patientID))
	if err != nil {
		return errorResponse(ActionListSymptoms, requestID, "DB error while listing symptoms")
	}

	arr := make([]map[string]any, 0, len(symptoms))
	for _, s := range symptoms {
		arr = append(arr, map[string]any{
			"symptomsId":  s.ID,
			"description": s.Description,
			"timestamp":   s.Timestamp,
		})
	}
	return okResponse(ActionListSymptoms, requestID, "Symptoms retrieved", map[string]any{
		"symptoms": arr,
	})
}
