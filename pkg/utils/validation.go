package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	macIDRe    = regexp.MustCompile(`^[0-9a-fA-F]{2}(?:-[0-9a-fA-F]{2}){5}$`)
	nodeAddrRe = regexp.MustCompile(`^\$[0-9]{3}\$[0-9a-fA-F]-[0-9a-fA-F]-[0-9a-fA-F]-[0-9a-fA-F]{3,12}$`)
	pathRe     = regexp.MustCompile(`^[A-Za-z0-9_\-]+(?:\.[A-Za-z0-9_\-]+)*$`)
)

// IsId accepts MAC style ids (aa-bb-cc-dd-ee-ff) and node addresses ($301$0-0-0-030001234).
func IsId(id string) bool {
	return macIDRe.MatchString(id) || nodeAddrRe.MatchString(id)
}

// IsParameterPath reports whether p is a dotted field path such as metadata.props.motionState.
func IsParameterPath(p string) bool {
	return pathRe.MatchString(p)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an RFC3339 timestamp. Timestamps without an offset are
// taken as UTC. The result is always in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
