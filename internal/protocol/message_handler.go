package protocol

import (
	"telecare-backend/internal/models"
	"telecare-backend/internal/storage"
	"telecare-backend/pkg/utils"
)

func (r *Router) sendMessage(requestID string, p map[string]any) Response {
	doctorID := getInt(p, "doctorId", -1)
	patientID := getInt(p, "patientId", -1)
	senderRole := getString(p, "senderRole", "")
	text := getString(p, "text", "")

	if doctorID <= 0 || patientID <= 0 {
		return errorResponse(ActionSendMessage, requestID, "Missing or invalid doctorId / patientId")
	}
	role := models.SenderRole(senderRole)
	if role != models.RoleDoctor && role != models.RolePatient {
		return errorResponse(ActionSendMessage, requestID, "senderRole must be 'DOCTOR' or 'PATIENT'")
	}
	if isBlank(text) {
		return errorResponse(ActionSendMessage, requestID, "Message text cannot be empty")
	}

	msg := &models.Message{
		DoctorID:   uint(doctorID),
		PatientID:  uint(patientID),
		SenderRole: role,
		Timestamp:  utils.TimestampNow(),
		Text:       text,
	}
	if err := storage.CreateMessage(r.db, msg); err != nil {
		return errorResponse(ActionSendMessage, requestID, "DB insert failed (message)")
	}

	return okResponse(ActionSendMessage, requestID, "Message stored", map[string]any{
		"messageId": msg.ID,
		"timestamp": msg.Timestamp,
	})
}

func (r *Router) listMessages(requestID string, p map[string]any) Response {
	doctorID := getInt(p, "doctorId", -1)
	patientID := getInt(p, "patientId", -1)

	if doctorID <= 0 || patientID <= 0 {
		return errorResponse(ActionListMessages, requestID, "You must provide doctorId and patientId in payload")
	}

	msgs, err := storage.ListConversation(r.db, uint(doctorID), uint(patientID))
	if err != nil {
		return errorResponse(ActionListMessages, requestID, "DB error while listing messages")
	}

	arr := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		arr = append(arr, map[string]any{
			"messageId":  m.ID,
			"doctorId":   m.DoctorID,
			"patientId":  m.PatientID,
			"senderRole": string(m.SenderRole),
			"timestamp":  m.Timestamp,
			"text":       m.Text,
		})
	}
	return okResponse(ActionListMessages, requestID, "Conversation messages retrieved", map[string]any{
		"messages": arr,
	})
}
