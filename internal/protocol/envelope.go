package protocol

import "encoding/json"

// request is the inbound envelope: one JSON object per line.
type request struct {
	Action    string         `json:"action"`
	RequestID string         `json:"requestId"`
	Payload   map[string]any `json:"payload"`
}

// Response is the uniform outbound envelope. Payload is always present,
// an empty object on error, so clients never branch on its absence.
type Response struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	RequestID string `json:"requestId,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Payload   any    `json:"payload"`
}

const (
	statusOK    = "OK"
	statusError = "ERROR"

	// actionUnknown is the action echoed when the request was too broken
	// to carry one.
	actionUnknown = "UNKNOWN"
)

func okResponse(action, requestID, message string, payload any) Response {
	if payload == nil {
		payload = map[string]any{}
	}
	return Response{
		Type:      "RESPONSE",
		Action:    action,
		RequestID: requestID,
		Status:    statusOK,
		Message:   message,
		Payload:   payload,
	}
}

func errorResponse(action, requestID, message string) Response {
	if action == "" {
		action = actionUnknown
	}
	return Response{
		Type:      "RESPONSE",
		Action:    action,
		RequestID: requestID,
		Status:    statusError,
		Message:   message,
		Payload:   map[string]any{},
	}
}

func marshal(resp Response) string {
	out, err := json.Marshal(resp)
	if err != nil {
		// Response structs marshal unless a handler put something exotic in
		// the payload; report rather than drop the line.
		return `{"type":"RESPONSE","action":"UNKNOWN","status":"ERROR","message":"Internal error: response encoding failed","payload":{}}`
	}
	return string(out)
}
