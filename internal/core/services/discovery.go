package services

import (
	"sort"
	"supertag/internal/core/domain"
)

// A field is promoted only when it shows between MinDistinctValues and
// MaxDistinctValues distinct values across the batch.
const (
	MinDistinctValues = 2
	MaxDistinctValues = 10
)

type fieldCandidate struct {
	path     string
	kind     domain.ValueKind
	values   map[string]struct{}
	overflow bool
}

// DiscoverParameters returns the known descriptors followed by enum-like
// fields found in the batch, in first-seen order.
func DiscoverParameters(events []domain.Event) []domain.ParameterDescriptor {
	out := domain.KnownParameters()

	claimed := make(map[string]struct{}, len(out))
	for _, p := range out {
		claimed[p.ID] = struct{}{}
	}

	byPath := make(map[string]*fieldCandidate)
	var order []*fieldCandidate

	for _, e := range events {
		walkFields("", e.Fields, func(path string, v domain.Value) {
			if _, ok := claimed[path]; ok {
				return
			}
			c, ok := byPath[path]
			if !ok {
				c = &fieldCandidate{path: path, kind: v.Kind, values: make(map[string]struct{})}
				byPath[path] = c
				order = append(order, c)
			}
			if c.overflow {
				return
			}
			c.values[v.Raw] = struct{}{}
			if len(c.values) > MaxDistinctValues {
				// no need to keep counting, the field can never qualify
				c.overflow = true
				c.values = nil
			}
		})
	}

	for _, c := range order {
		if c.overflow || len(c.values) < MinDistinctValues {
			continue
		}
		out = append(out, domain.NewParameterDescriptor(c.path, c.kind))
	}
	return out
}

// walkFields visits every scalar leaf under fields. Keys are visited in
// lexical order so discovery order does not depend on map iteration.
func walkFields(prefix string, fields map[string]any, visit func(path string, v domain.Value)) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch child := fields[k].(type) {
		case map[string]any:
			walkFields(path, child, visit)
		default:
			if v := domain.ScalarValue(child); v.Present {
				visit(path, v)
			}
		}
	}
}
