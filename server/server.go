// Package server hosts the view binder behind a small JSON HTTP API.
// Handlers only forward input events to the binder queue and return the
// ChartSpecs it produces.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spektr-org/launchdash/binder"
	"github.com/spektr-org/launchdash/dataset"
	"github.com/spektr-org/launchdash/engine"
	"github.com/spektr-org/launchdash/internal/config"
	"github.com/spektr-org/launchdash/internal/logging"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SiteOption is one entry of the site selector.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ControlsResponse describes how to populate both controls.
type ControlsResponse struct {
	Sites        []SiteOption        `json:"sites"`
	Slider       config.SliderConfig `json:"slider"`
	DefaultRange engine.PayloadRange `json:"defaultRange"`
	Stats        engine.Stats        `json:"stats"`
	Summary      string              `json:"summary"`
}

// SiteRequest is the body of POST /api/site.
type SiteRequest struct {
	Value string `json:"value" binding:"required"`
}

// RangeRequest is the body of POST /api/payload-range.
type RangeRequest struct {
	Range *engine.PayloadRange `json:"range" binding:"required"`
}

// Handlers serves the dashboard API.
type Handlers struct {
	queue    *binder.Queue
	hub      *Hub
	controls ControlsResponse
	logger   *slog.Logger
}

// NewHandlers builds handlers over a running queue. The controls payload is
// derived once from ds, which never changes. hub may be nil, in which case
// /api/stream is not served; otherwise it must be an observer of the binder
// behind q.
func NewHandlers(q *binder.Queue, ds *dataset.Dataset, slider config.SliderConfig, hub *Hub) *Handlers {
	sites := []SiteOption{{Label: "All Sites", Value: engine.AllSites}}
	for _, s := range ds.Sites() {
		sites = append(sites, SiteOption{Label: s, Value: s})
	}
	lo, hi := ds.Bounds()
	stats := engine.Summarize(ds)

	return &Handlers{
		queue: q,
		hub:   hub,
		controls: ControlsResponse{
			Sites:        sites,
			Slider:       slider,
			DefaultRange: engine.PayloadRange{Lo: lo, Hi: hi},
			Stats:        stats,
			Summary:      engine.FormatStats(stats),
		},
		logger: logging.New("server"),
	}
}

// Router returns a gin engine with every route registered.
func (h *Handlers) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/controls", h.HandleControls)
	api.GET("/views", h.HandleViews)
	api.POST("/site", h.HandleSite)
	api.POST("/payload-range", h.HandlePayloadRange)
	if h.hub != nil {
		api.GET("/stream", h.HandleStream)
	}
	return r
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleControls handles GET /api/controls.
func (h *Handlers) HandleControls(c *gin.Context) {
	c.JSON(http.StatusOK, h.controls)
}

// HandleViews handles GET /api/views.
func (h *Handlers) HandleViews(c *gin.Context) {
	res, err := h.queue.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "HandleViews", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleSite handles POST /api/site.
//
// Request Body:
//
//	SiteRequest
//
// Response:
//
//	200 OK: binder.Result (Recomputed is empty when the site was ignored)
//	400 Bad Request: malformed body
//	503 Service Unavailable: queue stopped
func (h *Handlers) HandleSite(c *gin.Context) {
	logger := h.logger.With("handler", "HandleSite")

	var req SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	res, err := h.queue.Submit(c.Request.Context(), binder.SiteChanged(req.Value))
	if err != nil {
		h.fail(c, "HandleSite", err)
		return
	}
	logger.Info("site changed", "site", req.Value, "recomputed", res.Recomputed)
	c.JSON(http.StatusOK, res)
}

// HandlePayloadRange handles POST /api/payload-range.
//
// Request Body:
//
//	RangeRequest, e.g. {"range": [0, 5000]}
//
// Response:
//
//	200 OK: binder.Result with the applied (clamped) range in State
//	400 Bad Request: malformed body
//	503 Service Unavailable: queue stopped
func (h *Handlers) HandlePayloadRange(c *gin.Context) {
	logger := h.logger.With("handler", "HandlePayloadRange")

	var req RangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	ev := binder.PayloadRangeChanged(req.Range.Lo, req.Range.Hi)
	res, err := h.queue.Submit(c.Request.Context(), ev)
	if err != nil {
		h.fail(c, "HandlePayloadRange", err)
		return
	}
	logger.Info("payload range changed",
		"requested", req.Range.String(),
		"applied", res.State.PayloadRange.String(),
		"recomputed", res.Recomputed)
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) fail(c *gin.Context, handler string, err error) {
	status := http.StatusServiceUnavailable
	code := "UNAVAILABLE"
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
		code = "TIMEOUT"
	}
	h.logger.Error("event not handled", "handler", handler, "error", err)
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
