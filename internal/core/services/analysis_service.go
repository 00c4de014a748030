package services

import (
	"context"
	"supertag/internal/core/domain"
	coreerrors "supertag/internal/core/errors"
	"supertag/internal/core/ports"
	"supertag/internal/metrics"
	"supertag/pkg/utils"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultLookback is how far before the window start events are fetched to
// find the state active at the start.
const DefaultLookback = 24 * time.Hour

// AnalysisServiceImpl is the default implementation of AnalysisService.
type AnalysisServiceImpl struct {
	repo     ports.EventRepository
	lookback time.Duration
}

// NewAnalysisService constructs a new AnalysisServiceImpl.
func NewAnalysisService(repo ports.EventRepository, lookback time.Duration) *AnalysisServiceImpl {
	if lookback < 0 {
		lookback = 0
	}
	return &AnalysisServiceImpl{repo: repo, lookback: lookback}
}

// RecordEvents appends a batch of events for a device.
func (s *AnalysisServiceImpl) RecordEvents(ctx context.Context, deviceID string, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := s.repo.Append(ctx, deviceID, events); err != nil {
		return err
	}
	metrics.EventsIngested.Add(float64(len(events)))
	return nil
}

// ListParameters proposes the parameters that can be analyzed for a device.
func (s *AnalysisServiceImpl) ListParameters(ctx context.Context, deviceID string, window domain.AnalysisWindow) (params []domain.ParameterDescriptor, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAnalysis("discover", start, err) }()

	if !window.Valid() {
		return nil, coreerrors.ErrInvalidWindow
	}
	events, err := s.repo.Events(ctx, deviceID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	return DiscoverParameters(events), nil
}

func (s *AnalysisServiceImpl) AnalyzeParameter(ctx context.Context, deviceID, parameterID string, window domain.AnalysisWindow) (*ports.DurationReport, error) {
	reports, err := s.AnalyzeParameters(ctx, deviceID, []string{parameterID}, window)
	if err != nil {
		return nil, err
	}
	return &reports[0], nil
}

// AnalyzeParameters fetches the device events once and segments every
// parameter over them concurrently. Reports keep the order of parameterIDs.
func (s *AnalysisServiceImpl) AnalyzeParameters(ctx context.Context, deviceID string, parameterIDs []string, window domain.AnalysisWindow) ([]ports.DurationReport, error) {
	if len(parameterIDs) == 0 {
		return nil, coreerrors.ErrInvalidParameter
	}
	for _, id := range parameterIDs {
		if !utils.IsParameterPath(id) {
			return nil, coreerrors.ErrInvalidParameter
		}
	}
	if !window.Valid() {
		return nil, coreerrors.ErrInvalidWindow
	}

	from := window.Start
	if !from.IsZero() {
		from = from.Add(-s.lookback)
	}
	events, err := s.repo.Events(ctx, deviceID, from, window.End)
	if err != nil {
		return nil, err
	}

	reports := make([]ports.DurationReport, len(parameterIDs))
	g, _ := errgroup.WithContext(ctx)
	for i, id := range parameterIDs {
		i, id := i, id
		g.Go(func() error {
			r, err := s.segment(deviceID, events, id, window)
			if err != nil {
				return err
			}
			reports[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// DiscoverBatch runs parameter discovery over caller provided events.
func (s *AnalysisServiceImpl) DiscoverBatch(events []domain.Event) []domain.ParameterDescriptor {
	start := time.Now()
	defer metrics.ObserveAnalysis("discover", start, nil)
	return DiscoverParameters(events)
}

// SegmentBatch runs segmentation over caller provided events.
func (s *AnalysisServiceImpl) SegmentBatch(events []domain.Event, parameterID string, window domain.AnalysisWindow) (*ports.DurationReport, error) {
	if !utils.IsParameterPath(parameterID) {
		return nil, coreerrors.ErrInvalidParameter
	}
	return s.segment("", events, parameterID, window)
}

func (s *AnalysisServiceImpl) segment(deviceID string, events []domain.Event, parameterID string, window domain.AnalysisWindow) (report *ports.DurationReport, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAnalysis("segment", start, err) }()

	param := describe(events, parameterID)
	states, err := SegmentDurations(events, param, window)
	if err != nil {
		return nil, err
	}

	report = &ports.DurationReport{
		AnalysisID: uuid.NewString(),
		DeviceID:   deviceID,
		Parameter:  param,
		Window:     window,
		EventCount: len(events),
		States:     states,
	}
	if len(events) > 0 {
		report.Window = ResolveWindow(window, events)
	}
	for _, st := range states {
		if st.Value == domain.UnknownValue {
			report.UnknownPercentage = st.Percentage
		}
	}
	if param.Known {
		metrics.UnknownStateRatio.WithLabelValues(param.ID).Set(report.UnknownPercentage / 100)
	}
	return report, nil
}

// describe returns the known descriptor for id, or one whose kind comes from
// the first event carrying a value at that path.
func describe(events []domain.Event, id string) domain.ParameterDescriptor {
	if p, ok := domain.KnownParameter(id); ok {
		return p
	}
	kind := domain.ValueKindString
	for _, e := range events {
		if v := e.Lookup(id); v.Present {
			kind = v.Kind
			break
		}
	}
	return domain.NewParameterDescriptor(id, kind)
}
