package http

import "time"

type EventPayload struct {
	Timestamp string         `json:"timestamp" binding:"required"`
	Fields    map[string]any `json:"fields"`
}

type EventsRequest struct {
	Events []EventPayload `json:"events" binding:"required,min=1,dive"`
}

type BatchParametersRequest struct {
	Events []EventPayload `json:"events" binding:"dive"`
}

type BatchDurationsRequest struct {
	Events    []EventPayload `json:"events" binding:"dive"`
	Parameter string         `json:"parameter" binding:"required"`
	From      string         `json:"from"`
	To        string         `json:"to"`
}

type ParameterResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	ValueKind   string `json:"value_kind"`
	Known       bool   `json:"known"`
}

type ParametersResponse struct {
	Parameters []ParameterResponse `json:"parameters"`
}

type StateDurationResponse struct {
	Value         string    `json:"value"`
	TotalDuration string    `json:"total_duration"`
	TotalSeconds  float64   `json:"total_seconds"`
	Percentage    float64   `json:"percentage"`
	Occurrences   int       `json:"occurrences"`
	FirstSeen     time.Time `json:"first_seen"`
	LastSeen      time.Time `json:"last_seen"`
	Color         string    `json:"color"`
}

type DurationReportResponse struct {
	AnalysisID        string                  `json:"analysis_id"`
	DeviceID          string                  `json:"device_id,omitempty"`
	Parameter         ParameterResponse       `json:"parameter"`
	WindowStart       *time.Time              `json:"window_start,omitempty"`
	WindowEnd         *time.Time              `json:"window_end,omitempty"`
	EventCount        int                     `json:"event_count"`
	UnknownPercentage float64                 `json:"unknown_percentage"`
	States            []StateDurationResponse `json:"states"`
}

type DurationReportsResponse struct {
	Reports []DurationReportResponse `json:"reports"`
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}
