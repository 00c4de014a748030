package services

import (
	"sort"
	"supertag/internal/core/domain"
	coreerrors "supertag/internal/core/errors"
	"time"
)

type stateAccumulator struct {
	value       string
	total       time.Duration
	occurrences int
	firstSeen   time.Time
	lastSeen    time.Time
}

// SegmentDurations computes how long the device held each value of the
// parameter inside the window. Events are not modified.
//
// Events at or before window.Start only establish the state active at the
// start. Events after window.End are ignored. When no event establishes the
// state at the start, the leading span is attributed to domain.UnknownValue so
// the durations always add up to the window length.
func SegmentDurations(events []domain.Event, param domain.ParameterDescriptor, window domain.AnalysisWindow) ([]domain.StateDuration, error) {
	if !window.Valid() {
		return nil, coreerrors.ErrInvalidWindow
	}
	if len(events) == 0 {
		return []domain.StateDuration{}, nil
	}

	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	window = ResolveWindow(window, sorted)
	if window.Start.After(window.End) {
		return nil, coreerrors.ErrInvalidWindow
	}

	states := make(map[string]*stateAccumulator)
	var order []*stateAccumulator
	get := func(value string) *stateAccumulator {
		acc, ok := states[value]
		if !ok {
			acc = &stateAccumulator{value: value}
			states[value] = acc
			order = append(order, acc)
		}
		return acc
	}

	// state active at window start
	current := domain.UnknownValue
	i := 0
	for ; i < len(sorted) && !sorted[i].Timestamp.After(window.Start); i++ {
		current = sorted[i].Lookup(param.ID).String()
	}
	runStart := window.Start
	acc := get(current)
	acc.occurrences++
	acc.firstSeen = window.Start

	for ; i < len(sorted); i++ {
		e := sorted[i]
		if e.Timestamp.After(window.End) {
			break
		}
		value := e.Lookup(param.ID).String()
		if value == current {
			continue
		}

		acc.total += e.Timestamp.Sub(runStart)
		acc.lastSeen = e.Timestamp

		acc = get(value)
		if acc.occurrences == 0 {
			acc.firstSeen = e.Timestamp
		}
		acc.occurrences++
		current = value
		runStart = e.Timestamp
	}

	acc.total += window.End.Sub(runStart)
	acc.lastSeen = window.End

	return summarize(order, window), nil
}

// ResolveWindow fills open bounds with the earliest and latest event timestamp.
func ResolveWindow(window domain.AnalysisWindow, events []domain.Event) domain.AnalysisWindow {
	if len(events) == 0 {
		return window
	}
	first, last := events[0].Timestamp, events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}
	if window.Start.IsZero() {
		window.Start = first
	}
	if window.End.IsZero() {
		window.End = last
	}
	return window
}

func summarize(order []*stateAccumulator, window domain.AnalysisWindow) []domain.StateDuration {
	length := window.Length()

	out := make([]domain.StateDuration, 0, len(order))
	for _, acc := range order {
		out = append(out, domain.StateDuration{
			Value:         acc.value,
			TotalDuration: acc.total,
			Percentage:    percentage(acc.total, length),
			Occurrences:   acc.occurrences,
			FirstSeen:     acc.firstSeen,
			LastSeen:      acc.lastSeen,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalDuration != out[j].TotalDuration {
			return out[i].TotalDuration > out[j].TotalDuration
		}
		return out[i].Value < out[j].Value
	})
	for i := range out {
		out[i].Color = domain.StateColor(out[i].Value, i)
	}
	return out
}

func percentage(d, window time.Duration) float64 {
	if window <= 0 {
		return 0
	}
	p := float64(d) / float64(window) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
