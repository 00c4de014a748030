package influx

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"supertag/internal/config"
	"supertag/internal/core/domain"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

const deviceTag = "deviceId"

// EventRepository stores one point per event. Payload leaves become fields
// keyed by their dotted path; the device id is a tag.
type EventRepository struct {
	client      influxdb2.Client
	queryAPI    api.QueryAPI
	writeAPI    api.WriteAPIBlocking
	bucket      string
	measurement string
}

func NewEventRepository(cfg config.InfluxConfig) *EventRepository {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &EventRepository{
		client:      client,
		queryAPI:    client.QueryAPI(cfg.Org),
		writeAPI:    client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		bucket:      cfg.Bucket,
		measurement: cfg.Measurement,
	}
}

func (r *EventRepository) Close() {
	if r != nil && r.client != nil {
		r.client.Close()
	}
}

// Append writes the events of a device. Events without scalar leaves carry
// no field and are skipped, InfluxDB rejects field-less points.
func (r *EventRepository) Append(ctx context.Context, deviceID string, events []domain.Event) error {
	points := make([]*write.Point, 0, len(events))
	for _, e := range events {
		if p := r.buildPoint(deviceID, e); p != nil {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil
	}
	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("influx write: %w", err)
	}
	return nil
}

func (r *EventRepository) buildPoint(deviceID string, e domain.Event) *write.Point {
	fields := make(map[string]interface{})
	flatten("", e.Fields, fields)
	if len(fields) == 0 {
		return nil
	}
	return write.NewPoint(r.measurement, map[string]string{deviceTag: deviceID}, fields, e.Timestamp)
}

// Events queries the device events in [from, to]. An unknown device yields an
// empty batch.
func (r *EventRepository) Events(ctx context.Context, deviceID string, from, to time.Time) ([]domain.Event, error) {
	result, err := r.queryAPI.Query(ctx, r.buildQuery(deviceID, from, to))
	if err != nil {
		return nil, fmt.Errorf("influx query: %w", err)
	}
	defer result.Close()

	var events []domain.Event
	for result.Next() {
		rec := result.Record()
		flat := make(map[string]interface{})
		for k, v := range rec.Values() {
			if isMetaColumn(k) || v == nil {
				continue
			}
			flat[k] = v
		}
		events = append(events, domain.Event{Timestamp: rec.Time().UTC(), Fields: unflatten(flat)})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("influx query: %w", err)
	}
	return events, nil
}

func (r *EventRepository) buildQuery(deviceID string, from, to time.Time) string {
	start := "0"
	if !from.IsZero() {
		start = from.UTC().Format(time.RFC3339Nano)
	}
	stop := "now()"
	if !to.IsZero() {
		// range stop is exclusive
		stop = to.Add(time.Nanosecond).UTC().Format(time.RFC3339Nano)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "from(bucket: %q)\n", r.bucket)
	fmt.Fprintf(&b, "  |> range(start: %s, stop: %s)\n", start, stop)
	fmt.Fprintf(&b, "  |> filter(fn: (r) => r._measurement == %q and r.%s == %q)\n", r.measurement, deviceTag, deviceID)
	b.WriteString("  |> pivot(rowKey: [\"_time\"], columnKey: [\"_field\"], valueColumn: \"_value\")\n")
	b.WriteString("  |> group()\n")
	b.WriteString("  |> sort(columns: [\"_time\"])\n")
	return b.String()
}

func isMetaColumn(k string) bool {
	return strings.HasPrefix(k, "_") || k == "result" || k == "table" || k == deviceTag
}

// flatten keeps scalar leaves only, keyed by dotted path.
func flatten(prefix string, fields map[string]any, out map[string]interface{}) {
	for k, v := range fields {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flatten(key, x, out)
		case bool, string, float64, float32, int, int64, int32, uint64, uint32:
			out[key] = x
		}
	}
}

// unflatten rebuilds nested maps from dotted keys. A key that collides with a
// scalar on the way down is kept flat.
func unflatten(flat map[string]interface{}) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	// prefixes sort first, so a scalar "a" is placed before "a.b" is seen
	sort.Strings(keys)

	out := make(map[string]any, len(flat))
	for _, k := range keys {
		parts := strings.Split(k, ".")
		cur := out
		for _, p := range parts[:len(parts)-1] {
			next, exists := cur[p]
			if !exists {
				m := make(map[string]any)
				cur[p] = m
				cur = m
				continue
			}
			m, isMap := next.(map[string]any)
			if !isMap {
				cur = nil
				break
			}
			cur = m
		}
		if cur == nil {
			out[k] = flat[k]
			continue
		}
		cur[parts[len(parts)-1]] = flat[k]
	}
	return out
}
