package zoom

import "encoding/json"

// CreateMeetingRequest represents a Zoom meeting to create. Duration is in
// minutes and defaults to 60; Type is 1 (instant) or 2 (scheduled, default).
type CreateMeetingRequest struct {
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  *int   `json:"duration,omitempty"`
	Type      *int   `json:"type,omitempty"`
}

// CreateMeetingResponse echoes Zoom's own meeting payload
type CreateMeetingResponse struct {
	Message string          `json:"message"`
	Meeting json.RawMessage `json:"meeting" swaggertype:"object"`
}
