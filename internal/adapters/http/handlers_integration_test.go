package http

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"supertag/internal/adapters/repository/memory"
	"supertag/internal/core/domain"
	"supertag/internal/core/services"
)

// newIntegrationServer wires the real memory repository, real service and
// real routes together into a Gin engine for integration testing.
func newIntegrationServer(t *testing.T) (*gin.Engine, *memory.EventRepository) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	repo := memory.NewEventRepository()
	svc := services.NewAnalysisService(repo, time.Hour)

	r := gin.New()
	RegisterRoutes(r, svc)

	return r, repo
}

const integrationDeviceID = "60-6b-44-84-dc-64"

// four events: false, true, true, false at 10:00, 10:10, 10:20, 10:30
const integrationEvents = `{"events":[
	{"timestamp":"2025-11-09T10:00:00Z","fields":{"metadata":{"props":{"motionState":false,"msgType":"heartbeat"}},"gps":{"fix":"none"}}},
	{"timestamp":"2025-11-09T10:10:00Z","fields":{"metadata":{"props":{"motionState":true,"msgType":"location"}},"gps":{"fix":"3d"}}},
	{"timestamp":"2025-11-09T10:20:00Z","fields":{"metadata":{"props":{"motionState":true,"msgType":"location"}},"gps":{"fix":"3d"}}},
	{"timestamp":"2025-11-09T10:30:00Z","fields":{"metadata":{"props":{"motionState":false,"msgType":"heartbeat"}},"gps":{"fix":"none"}}}
]}`

func ingest(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/devices/"+integrationDeviceID+"/events", []byte(integrationEvents))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 from ingest, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestIntegration_Ingest_CreatesDevice(t *testing.T) {
	r, repo := newIntegrationServer(t)

	ingest(t, r)

	if repo.Count() != 1 || !repo.Exists(integrationDeviceID) {
		t.Fatalf("expected the device to be stored, count=%d", repo.Count())
	}
}

func TestIntegration_Parameters_FullFlow(t *testing.T) {
	r, _ := newIntegrationServer(t)
	ingest(t, r)

	w := do(r, http.MethodGet, "/api/v1/devices/"+integrationDeviceID+"/parameters", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp ParametersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	last := resp.Parameters[len(resp.Parameters)-1]
	if last.ID != "gps.fix" || last.Known || last.DisplayName != "Fix" {
		t.Fatalf("expected gps.fix to be discovered last, got %+v", last)
	}
}

func TestIntegration_Durations_FullFlow(t *testing.T) {
	r, _ := newIntegrationServer(t)
	ingest(t, r)

	path := "/api/v1/devices/" + integrationDeviceID + "/parameters/metadata.props.motionState/durations" +
		"?from=2025-11-09T10:00:00Z&to=2025-11-09T10:45:00Z"
	w := do(r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp DurationReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.States) != 2 {
		t.Fatalf("expected two states, got %+v", resp.States)
	}

	byValue := map[string]StateDurationResponse{}
	var pct float64
	for _, s := range resp.States {
		byValue[s.Value] = s
		pct += s.Percentage
	}
	if f := byValue["false"]; f.TotalDuration != "25m0s" || f.Occurrences != 2 {
		t.Fatalf("expected false 25m0s x2, got %+v", f)
	}
	if tr := byValue["true"]; tr.TotalDuration != "20m0s" || tr.Occurrences != 1 {
		t.Fatalf("expected true 20m0s x1, got %+v", tr)
	}
	if math.Abs(pct-100) > 0.0001 {
		t.Fatalf("expected percentages to add up to 100, got %f", pct)
	}
}

func TestIntegration_Durations_MultipleParameters(t *testing.T) {
	r, _ := newIntegrationServer(t)
	ingest(t, r)

	w := do(r, http.MethodGet, "/api/v1/devices/"+integrationDeviceID+"/durations?parameter=metadata.props.msgType&parameter=gps.fix", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp DurationReportsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Reports) != 2 || resp.Reports[0].Parameter.ID != domain.ParamMessageType || resp.Reports[1].Parameter.ID != "gps.fix" {
		t.Fatalf("unexpected reports %+v", resp.Reports)
	}
	// default window 10:00 - 10:30, "3d" from 10:10 to 10:30
	if top := resp.Reports[1].States[0]; top.Value != "3d" || top.TotalSeconds != 1200 {
		t.Fatalf("expected 3d to lead with 1200s, got %+v", top)
	}
}

func TestIntegration_Durations_UnknownDeviceReturns404(t *testing.T) {
	r, _ := newIntegrationServer(t)

	w := do(r, http.MethodGet, "/api/v1/devices/aa-bb-cc-11-22-33/parameters/metadata.props.motionState/durations", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown device, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestIntegration_Durations_InvertedWindowReturns400(t *testing.T) {
	r, _ := newIntegrationServer(t)
	ingest(t, r)

	path := "/api/v1/devices/" + integrationDeviceID + "/parameters/metadata.props.motionState/durations" +
		"?from=2025-11-09T11:00:00Z&to=2025-11-09T10:00:00Z"
	w := do(r, http.MethodGet, path, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for inverted window, got %d", w.Code)
	}
}

func TestIntegration_BatchDurations_NarrowWindow(t *testing.T) {
	r, _ := newIntegrationServer(t)

	body := []byte(`{"parameter":"metadata.props.motionState","from":"2025-11-09T10:05:00Z","to":"2025-11-09T10:25:00Z",` + integrationEvents[1:])
	w := do(r, "POST", "/api/v1/analysis/durations", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp DurationReportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	var total float64
	for _, s := range resp.States {
		total += s.TotalSeconds
	}
	if total != 1200 {
		t.Fatalf("expected 20 minutes accounted, got %fs", total)
	}
	if resp.DeviceID != "" {
		t.Fatalf("expected no device id for batch analysis, got %q", resp.DeviceID)
	}
}
