package http

import (
	"fmt"
	"supertag/internal/core/domain"
	"supertag/internal/core/ports"
	"supertag/pkg/utils"
	"time"
)

func toEvents(payloads []EventPayload) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(payloads))
	for i, p := range payloads {
		ts, err := utils.ParseTimestamp(p.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		events = append(events, domain.Event{Timestamp: ts, Fields: p.Fields})
	}
	return events, nil
}

// parseWindow reads optional from/to bounds; empty strings stay open.
func parseWindow(from, to string) (domain.AnalysisWindow, error) {
	var w domain.AnalysisWindow
	var err error
	if from != "" {
		if w.Start, err = utils.ParseTimestamp(from); err != nil {
			return w, fmt.Errorf("from: %w", err)
		}
	}
	if to != "" {
		if w.End, err = utils.ParseTimestamp(to); err != nil {
			return w, fmt.Errorf("to: %w", err)
		}
	}
	return w, nil
}

func toParameterResponse(p domain.ParameterDescriptor) ParameterResponse {
	return ParameterResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		ValueKind:   string(p.ValueKind),
		Known:       p.Known,
	}
}

func toParametersResponse(params []domain.ParameterDescriptor) ParametersResponse {
	out := ParametersResponse{Parameters: make([]ParameterResponse, 0, len(params))}
	for _, p := range params {
		out.Parameters = append(out.Parameters, toParameterResponse(p))
	}
	return out
}

func toReportResponse(r *ports.DurationReport) DurationReportResponse {
	resp := DurationReportResponse{
		AnalysisID:        r.AnalysisID,
		DeviceID:          r.DeviceID,
		Parameter:         toParameterResponse(r.Parameter),
		EventCount:        r.EventCount,
		UnknownPercentage: r.UnknownPercentage,
		States:            make([]StateDurationResponse, 0, len(r.States)),
	}
	if !r.Window.Start.IsZero() {
		resp.WindowStart = timePtr(r.Window.Start)
	}
	if !r.Window.End.IsZero() {
		resp.WindowEnd = timePtr(r.Window.End)
	}
	for _, s := range r.States {
		resp.States = append(resp.States, StateDurationResponse{
			Value:         s.Value,
			TotalDuration: s.TotalDuration.String(),
			TotalSeconds:  s.TotalDuration.Seconds(),
			Percentage:    s.Percentage,
			Occurrences:   s.Occurrences,
			FirstSeen:     s.FirstSeen,
			LastSeen:      s.LastSeen,
			Color:         s.Color,
		})
	}
	return resp
}

func timePtr(t time.Time) *time.Time {
	return &t
}
