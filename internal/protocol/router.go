// Package protocol implements the request router: it decodes one JSON line,
// dispatches it to the handler registered for its action, and encodes the
// uniform response envelope. No failure inside a handler ever reaches the
// connection loop as anything but an ERROR envelope.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"telecare-backend/internal/signalfiles"

	"gorm.io/gorm"
)

// Action names accepted on the wire.
const (
	ActionRegisterPatient      = "REGISTER_PATIENT"
	ActionRegisterDoctor       = "REGISTER_DOCTOR"
	ActionLogin                = "LOGIN"
	ActionSendSymptoms         = "SEND_SYMPTOMS"
	ActionSendMeasurement      = "SEND_MEASUREMENT"
	ActionGetMeasurementValues = "GET_MEASUREMENT_VALUES"
	ActionListPatients         = "LIST_PATIENTS"
	ActionRequestAppointment   = "REQUEST_APPOINTMENT"
	ActionListAppointments     = "LIST_APPOINTMENTS"
	ActionListMeasurements     = "LIST_MEASUREMENTS"
	ActionListSymptoms         = "LIST_SYMPTOMS"
	ActionListDoctors          = "LIST_DOCTORS"
	ActionSendMessage          = "SEND_MESSAGE"
	ActionListMessages         = "LIST_MESSAGES"
)

type handlerFunc func(requestID string, payload map[string]any) Response

// Router dispatches decoded requests to their handlers and coordinates the
// relational store with the signal file store.
type Router struct {
	db       *gorm.DB
	files    *signalfiles.Store
	handlers map[string]handlerFunc
}

func NewRouter(db *gorm.DB, files *signalfiles.Store) *Router {
	r := &Router{db: db, files: files}
	r.handlers = map[string]handlerFunc{
		ActionRegisterPatient:      r.registerPatient,
		ActionRegisterDoctor:       r.registerDoctor,
		ActionLogin:                r.login,
		ActionSendSymptoms:         r.sendSymptoms,
		ActionSendMeasurement:      r.sendMeasurement,
		ActionGetMeasurementValues: r.getMeasurementValues,
		ActionListPatients:         r.listPatients,
		ActionRequestAppointment:   r.requestAppointment,
		ActionListAppointments:     r.listAppointments,
		ActionListMeasurements:     r.listMeasurements,
		ActionListSymptoms:         r.listSymptoms,
		ActionListDoctors:          r.listDoctors,
		ActionSendMessage:          r.sendMessage,
		ActionListMessages:         r.listMessages,
	}
	return r
}

// Process takes one raw request line and returns one raw response line.
func (r *Router) Process(line string) string {
	if strings.TrimSpace(line) == "" {
		return marshal(errorResponse(actionUnknown, "", "Empty message"))
	}

	var req request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return marshal(errorResponse(actionUnknown, "", "Invalid JSON: "+err.Error()))
	}
	if req.Action == "" {
		return marshal(errorResponse(actionUnknown, req.RequestID, "Missing 'action' field"))
	}

	h, ok := r.handlers[req.Action]
	if !ok {
		return marshal(errorResponse(req.Action, req.RequestID, "Unknown action: "+req.Action))
	}
	return marshal(r.dispatch(h, req))
}

// dispatch runs a handler with panic containment: whatever escapes becomes
// an ERROR envelope instead of killing the serving worker.
func (r *Router) dispatch(h handlerFunc, req request) (resp Response) {
	defer func() {
		if v := recover(); v != nil {
			resp = errorResponse(req.Action, req.RequestID, fmt.Sprintf("Internal error: %v", v))
		}
	}()

	payload := req.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return h(req.RequestID, payload)
}
