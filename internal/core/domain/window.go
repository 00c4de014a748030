package domain

import "time"

// AnalysisWindow bounds a computation. Zero Start or End means "derive from the events".
type AnalysisWindow struct {
	Start time.Time
	End   time.Time
}

// Length is End - Start.
func (w AnalysisWindow) Length() time.Duration {
	return w.End.Sub(w.Start)
}

// Valid reports whether start <= end. Open bounds are always valid.
func (w AnalysisWindow) Valid() bool {
	if w.Start.IsZero() || w.End.IsZero() {
		return true
	}
	return !w.Start.After(w.End)
}
