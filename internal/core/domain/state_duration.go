package domain

import "time"

// StateDuration holds how long a parameter kept one value inside a window.
type StateDuration struct {
	Value         string
	TotalDuration time.Duration
	Percentage    float64
	Occurrences   int
	FirstSeen     time.Time
	LastSeen      time.Time
	Color         string
}
