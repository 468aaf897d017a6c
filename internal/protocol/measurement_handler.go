package protocol

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"telecare-backend/internal/models"
	"telecare-backend/internal/storage"
)

// sendMeasurement is the one operation writing to both substrates: sample
// rows go to the patient's daily CSV, then a metadata row referencing the
// file is inserted. If the insert fails the appended rows are discarded so
// the file does not accumulate orphaned samples.
func (r *Router) sendMeasurement(requestID string, p map[string]any) Response {
	patientID := getInt(p, "patientId", -1)
	typeStr := getString(p, "type", "")
	dateStr := getString(p, "date", "")
	values := getIntSlice(p, "values")

	if patientID <= 0 || isBlank(typeStr) || isBlank(dateStr) || len(values) == 0 {
		return errorResponse(ActionSendMeasurement, requestID, "Missing patientId/type/date/values")
	}

	// Synthetic rows: 0-based index, sample value, placeholder for the
	// channel not collected in this flow.
	rows := make([]string, len(values))
	for i, v := range values {
		rows[i] = fmt.Sprintf("%d,%d,-", i, v)
	}

	folder := fmt.Sprintf("patient_%d", patientID)
	res, err := r.files.AppendRows(folder, rows)
	if err != nil {
		return errorResponse(ActionSendMeasurement, requestID, "CSV write failed")
	}

	m := &models.Measurement{
		PatientID: uint(patientID),
		Type:      models.MeasurementType(typeStr),
		StartedAt: dateStr,
		FilePath:  res.Path,
	}
	if err := storage.CreateMeasurement(r.db, m); err != nil {
		if derr := r.files.Discard(res); derr != nil {
			log.Printf("[CSV] Could not discard rows after failed meta insert: %v", derr)
		}
		return errorResponse(ActionSendMeasurement, requestID, "DB insert failed (measurement meta)")
	}

	return okResponse(ActionSendMeasurement, requestID, "Measurement stored", map[string]any{
		"measurementId": m.ID,
	})
}

func (r *Router) getMeasurementValues(requestID string, p map[string]any) Response {
	measurementID := getInt(p, "measurementId", -1)
	if measurementID <= 0 {
		return errorResponse(ActionGetMeasurementValues, requestID, "Missing or invalid measurementId.")
	}

	meta, err := storage.MeasurementByID(r.db, uint(measurementID))
	if err != nil {
		return errorResponse(ActionGetMeasurementValues, requestID, "Measurement not found.")
	}

	file, err := r.files.LoadByPath(meta.FilePath)
	if err != nil || file == nil {
		return errorResponse(ActionGetMeasurementValues, requestID, "CSV file not found or empty.")
	}

	// Second column holds the value; malformed rows are skipped.
	values := make([]int, 0, len(file.Rows))
	for _, row := range file.Rows {
		parts := strings.Split(row, ",")
		if len(parts) < 2 {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			values = append(values, v)
		}
	}

	return okResponse(ActionGetMeasurementValues, requestID, "Values loaded", map[string]any{
		"measurementId": meta.ID,
		"type":          string(meta.Type),
		"date":          meta.StartedAt,
		"values":        values,
	})
}

func (r *Router) listMeasurements(requestID string, p map[string]any) Response {
	patientID := getInt(p, "patientId", -1)
	if patientID <= 0 {
		return errorResponse(ActionListMeasurements, requestID, "Missing or invalid patientId.")
	}

	measurements, err := storage.ListMeasurementsByPatient(r.db, uint(patientID))
	if err != nil {
		return errorResponse(ActionListMeasurements, requestID, "DB error while listing measurements")
	}

	arr := make([]map[string]any, 0, len(measurements))
	for _, m := range measurements {
		arr = append(arr, map[string]any{
			"id":       m.ID,
			"type":     string(m.Type),
			"date":     m.StartedAt,
			"filePath": m.FilePath,
		})
	}
	return okResponse(ActionListMeasurements, requestID, "Measurements retrieved", map[string]any{
		"measurements": arr,
	})
}
