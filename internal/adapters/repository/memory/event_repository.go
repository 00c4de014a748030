package memory

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"supertag/internal/core/domain"
	coreerrors "supertag/internal/core/errors"
	"supertag/pkg/utils"
	"sync"
	"time"
)

type EventRepository struct {
	mu     sync.RWMutex
	events map[string][]domain.Event
}

// NewEventRepository creates an empty in-memory EventRepository.
func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[string][]domain.Event),
	}
}

// LoadFromCSV seeds the repository from a CSV file.
// Expected format: header line "device_id,timestamp,fields", where fields is a
// JSON object holding the event payload.
func (r *EventRepository) LoadFromCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return err
	}

	for i, row := range records {
		if i == 0 {
			// skip header
			continue
		}
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		if len(row) < 2 {
			return fmt.Errorf("line %d: expected device_id,timestamp[,fields]", i+1)
		}
		ts, err := utils.ParseTimestamp(row[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		var fields map[string]any
		if len(row) > 2 && row[2] != "" {
			if fields, err = decodeFields(row[2]); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		r.add(row[0], domain.Event{Timestamp: ts, Fields: fields})
	}
	return nil
}

func decodeFields(raw string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

func (r *EventRepository) add(id string, events ...domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[id] = append(r.events[id], events...)
}

// Count returns the number of devices with at least one event.
func (r *EventRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

func (r *EventRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.events[id]
	return ok
}

// Append stores events for a device, creating the device on first use.
func (r *EventRepository) Append(_ context.Context, deviceID string, events []domain.Event) error {
	r.add(deviceID, events...)
	return nil
}

// Events returns a copy of the device events with from <= timestamp <= to, in
// insertion order. Events are never mutated after ingestion so payload maps
// are shared with the caller.
func (r *EventRepository) Events(_ context.Context, deviceID string, from, to time.Time) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.events[deviceID]
	if !ok {
		return nil, coreerrors.ErrDeviceNotFound
	}

	out := make([]domain.Event, 0, len(stored))
	for _, e := range stored {
		if !from.IsZero() && e.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && e.Timestamp.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
