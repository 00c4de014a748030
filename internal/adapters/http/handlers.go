package http

import (
	"errors"
	"net/http"
	coreerrors "supertag/internal/core/errors"
	"supertag/internal/core/ports"
	"supertag/pkg/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	analysisSvc ports.AnalysisService
}

// NewHandler constructs a handler that depends on the AnalysisService interface.
func NewHandler(svc ports.AnalysisService) *Handler {
	return &Handler{analysisSvc: svc}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coreerrors.ErrInvalidWindow), errors.Is(err, coreerrors.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: err.Error()})
	case errors.Is(err, coreerrors.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Msg: "device not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "internal error"})
	}
}

// deviceID returns the validated device_id path parameter, or writes a 400.
func deviceID(c *gin.Context) (string, bool) {
	id := c.Param("device_id")
	if !utils.IsId(id) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Invalid device ID"})
		return "", false
	}
	return id, true
}

// PostEvents godoc
// @Summary Ingest device events
// @Description Append a batch of timestamped events for a device. Timestamps without an offset are taken as UTC.
// @Tags devices
// @Accept json
// @Produce json
// @Param device_id path string true "Device ID"
// @Param request body EventsRequest true "Events payload"
// @Success 204 "no content"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /devices/{device_id}/events [post]
func (h *Handler) PostEvents(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}

	var req EventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Msg: "invalid payload: " + err.Error(),
		})
		return
	}
	events, err := toEvents(req.Events)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}

	if err := h.analysisSvc.RecordEvents(c.Request.Context(), id, events); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetParameters godoc
// @Summary List analyzable parameters
// @Description Known parameters followed by enum-like fields discovered in the device events.
// @Tags analysis
// @Produce json
// @Param device_id path string true "Device ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {object} ParametersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /devices/{device_id}/parameters [get]
func (h *Handler) GetParameters(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	window, err := parseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid window: " + err.Error()})
		return
	}

	params, err := h.analysisSvc.ListParameters(c.Request.Context(), id, window)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toParametersResponse(params))
}

// GetParameterDurations godoc
// @Summary Time spent in each state of one parameter
// @Tags analysis
// @Produce json
// @Param device_id path string true "Device ID"
// @Param parameter_id path string true "Parameter path, e.g. metadata.props.motionState"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {object} DurationReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /devices/{device_id}/parameters/{parameter_id}/durations [get]
func (h *Handler) GetParameterDurations(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	window, err := parseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid window: " + err.Error()})
		return
	}

	report, err := h.analysisSvc.AnalyzeParameter(c.Request.Context(), id, c.Param("parameter_id"), window)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

// GetDurations godoc
// @Summary Time spent in each state of several parameters
// @Tags analysis
// @Produce json
// @Param device_id path string true "Device ID"
// @Param parameter query []string true "Parameter paths" collectionFormat(multi)
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {object} DurationReportsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /devices/{device_id}/durations [get]
func (h *Handler) GetDurations(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	window, err := parseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid window: " + err.Error()})
		return
	}

	reports, err := h.analysisSvc.AnalyzeParameters(c.Request.Context(), id, c.QueryArray("parameter"), window)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := DurationReportsResponse{Reports: make([]DurationReportResponse, 0, len(reports))}
	for i := range reports {
		resp.Reports = append(resp.Reports, toReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// PostBatchParameters godoc
// @Summary Discover parameters in a caller provided batch
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body BatchParametersRequest true "Events"
// @Success 200 {object} ParametersResponse
// @Failure 400 {object} ErrorResponse
// @Router /analysis/parameters [post]
func (h *Handler) PostBatchParameters(c *gin.Context) {
	var req BatchParametersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}
	events, err := toEvents(req.Events)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, toParametersResponse(h.analysisSvc.DiscoverBatch(events)))
}

// PostBatchDurations godoc
// @Summary Segment a caller provided batch
// @Description Computes the time spent in each state of one parameter. An omitted window is derived from the events.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body BatchDurationsRequest true "Events, parameter and window"
// @Success 200 {object} DurationReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analysis/durations [post]
func (h *Handler) PostBatchDurations(c *gin.Context) {
	var req BatchDurationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}
	events, err := toEvents(req.Events)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}
	window, err := parseWindow(req.From, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid window: " + err.Error()})
		return
	}

	report, err := h.analysisSvc.SegmentBatch(events, req.Parameter, window)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}
