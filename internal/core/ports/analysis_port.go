package ports

import (
	"context"
	"supertag/internal/core/domain"
	"time"
)

// DurationReport is the outcome of one segmentation request.
type DurationReport struct {
	AnalysisID        string
	DeviceID          string
	Parameter         domain.ParameterDescriptor
	Window            domain.AnalysisWindow
	EventCount        int
	States            []domain.StateDuration
	UnknownPercentage float64
}

// AnalysisService is the main port used by the HTTP layer.
type AnalysisService interface {
	RecordEvents(ctx context.Context, deviceID string, events []domain.Event) error
	ListParameters(ctx context.Context, deviceID string, window domain.AnalysisWindow) ([]domain.ParameterDescriptor, error)
	AnalyzeParameter(ctx context.Context, deviceID, parameterID string, window domain.AnalysisWindow) (*DurationReport, error)
	AnalyzeParameters(ctx context.Context, deviceID string, parameterIDs []string, window domain.AnalysisWindow) ([]DurationReport, error)
	DiscoverBatch(events []domain.Event) []domain.ParameterDescriptor
	SegmentBatch(events []domain.Event, parameterID string, window domain.AnalysisWindow) (*DurationReport, error)
}

// EventRepository is the event source used by the service.
// Events returns the events with from <= timestamp <= to; zero bounds are open.
type EventRepository interface {
	Append(ctx context.Context, deviceID string, events []domain.Event) error
	Events(ctx context.Context, deviceID string, from, to time.Time) ([]domain.Event, error)
}
