package domain

import "strings"

var stateColors = map[string]string{
	"true":        "#16a34a",
	"false":       "#dc2626",
	"1":           "#16a34a",
	"0":           "#dc2626",
	"charging":    "#2563eb",
	"discharging": "#f59e0b",
	"charged":     "#16a34a",
	"ok":          "#16a34a",
	"normal":      "#16a34a",
	"low":         "#dc2626",
	"critical":    "#7f1d1d",
	"moving":      "#2563eb",
	"stationary":  "#64748b",
	"dry":         "#16a34a",
	"wet":         "#0891b2",
	UnknownValue:  "#9ca3af",
}

var fallbackPalette = []string{
	"#3b82f6",
	"#10b981",
	"#f97316",
	"#8b5cf6",
	"#ec4899",
	"#14b8a6",
	"#eab308",
	"#6366f1",
	"#84cc16",
	"#ef4444",
}

// StateColor returns the presentation color of a value. rank is the position
// of the value in the sorted result list and selects the fallback color.
func StateColor(value string, rank int) string {
	if c, ok := stateColors[strings.ToLower(value)]; ok {
		return c
	}
	if rank < 0 {
		rank = -rank
	}
	return fallbackPalette[rank%len(fallbackPalette)]
}
