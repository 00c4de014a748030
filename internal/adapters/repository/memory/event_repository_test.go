package memory

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"supertag/internal/core/domain"
	coreerrors "supertag/internal/core/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "events-*.csv")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	if _, err = f.WriteString(content); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	if err = f.Close(); err != nil {
		t.Fatalf("failed to close temp csv: %v", err)
	}
	return f.Name()
}

// -----------------------------------------------------------------------------
// Tests for LoadFromCSV
// -----------------------------------------------------------------------------

func TestLoadFromCSV_Success(t *testing.T) {
	content := "device_id,timestamp,fields\n" +
		`dev-1,2025-01-01T10:00:00Z,"{""metadata"":{""props"":{""motionState"":true}}}"` + "\n" +
		`dev-1,2025-01-01T10:05:00,"{""metadata"":{""props"":{""motionState"":false}}}"` + "\n" +
		"dev-2,2025-01-01T11:00:00+01:00,\n"

	repo := NewEventRepository()
	if err := repo.LoadFromCSV(writeTempCSV(t, content)); err != nil {
		t.Fatalf("LoadFromCSV returned error: %v", err)
	}

	if got := repo.Count(); got != 2 {
		t.Fatalf("expected 2 devices loaded, got %d", got)
	}

	events, err := repo.Events(context.Background(), "dev-1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for dev-1, got %d", len(events))
	}
	if v := events[1].Lookup(domain.ParamMotionState); v.String() != "false" {
		t.Errorf("expected motionState=false, got %q", v.String())
	}
	// no offset means UTC
	if want := time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC); !events[1].Timestamp.Equal(want) {
		t.Errorf("expected %v, got %v", want, events[1].Timestamp)
	}

	dev2, _ := repo.Events(context.Background(), "dev-2", time.Time{}, time.Time{})
	if want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC); len(dev2) != 1 || !dev2[0].Timestamp.Equal(want) {
		t.Errorf("expected one dev-2 event at %v, got %+v", want, dev2)
	}
}

func TestLoadFromCSV_FileNotFoundReturnsError(t *testing.T) {
	repo := NewEventRepository()
	if err := repo.LoadFromCSV("does-not-exist.csv"); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

func TestLoadFromCSV_BadTimestampReturnsError(t *testing.T) {
	repo := NewEventRepository()
	err := repo.LoadFromCSV(writeTempCSV(t, "device_id,timestamp,fields\ndev-1,yesterday,{}\n"))
	if err == nil {
		t.Fatalf("expected error for invalid timestamp, got nil")
	}
}

func TestLoadFromCSV_BadFieldsReturnsError(t *testing.T) {
	repo := NewEventRepository()
	err := repo.LoadFromCSV(writeTempCSV(t, "device_id,timestamp,fields\ndev-1,2025-01-01T10:00:00Z,not-json\n"))
	if err == nil {
		t.Fatalf("expected error for invalid fields, got nil")
	}
}

// -----------------------------------------------------------------------------
// Tests for Append / Events
// -----------------------------------------------------------------------------

func TestAppend_CreatesDevice(t *testing.T) {
	repo := NewEventRepository()
	id := "dev-1"

	if repo.Exists(id) {
		t.Fatalf("expected Exists(%q) to be false before any append", id)
	}
	if err := repo.Append(context.Background(), id, []domain.Event{{Timestamp: time.Now()}}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if !repo.Exists(id) {
		t.Fatalf("expected Exists(%q) to be true after Append", id)
	}
}

func TestEvents_UnknownDeviceReturnsErrDeviceNotFound(t *testing.T) {
	repo := NewEventRepository()

	events, err := repo.Events(context.Background(), "missing-id", time.Time{}, time.Time{})
	if !errors.Is(err, coreerrors.ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	if events != nil {
		t.Fatalf("expected nil events when error is returned, got %+v", events)
	}
}

func TestEvents_FiltersInclusiveRange(t *testing.T) {
	repo := NewEventRepository()
	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	var batch []domain.Event
	for i := 0; i < 5; i++ {
		batch = append(batch, domain.Event{Timestamp: t0.Add(time.Duration(i) * time.Minute)})
	}
	_ = repo.Append(context.Background(), "dev-1", batch)

	got, err := repo.Events(context.Background(), "dev-1", t0.Add(time.Minute), t0.Add(3*time.Minute))
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events in [1m, 3m], got %d", len(got))
	}
}

func TestEvents_ReturnsCopyNotOriginal(t *testing.T) {
	repo := NewEventRepository()
	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	_ = repo.Append(context.Background(), "dev-1", []domain.Event{{Timestamp: t0}})

	first, _ := repo.Events(context.Background(), "dev-1", time.Time{}, time.Time{})
	first[0].Timestamp = t0.Add(time.Hour)

	second, _ := repo.Events(context.Background(), "dev-1", time.Time{}, time.Time{})
	if !second[0].Timestamp.Equal(t0) {
		t.Fatalf("expected stored timestamp to remain %v, got %v", t0, second[0].Timestamp)
	}
}
