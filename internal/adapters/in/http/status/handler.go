// Package status implements the HTTP adapter for the healthcheck, status
// and systemcheck endpoints.
package status

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/adapters/dto"
	"github.com/wyc-thg/broker/internal/boundaries/in"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/status.html"))

// Paths are the mount points of the three endpoints.
type Paths struct {
	Healthcheck string
	Status      string
	Systemcheck string
}

// DefaultPaths returns the standard mount points.
func DefaultPaths() Paths {
	return Paths{
		Healthcheck: "/healthcheck",
		Status:      "/status",
		Systemcheck: "/systemcheck",
	}
}

// Router is the subset of the web server the handler registers on.
type Router interface {
	Handle(method, path string, h http.Handler)
}

// Handler implements the HTTP handler for the status endpoints.
type Handler struct {
	statusSvc in.StatusService
	log       zerolog.Logger
}

// NewHandler creates a new status HTTP handler.
func NewHandler(statusSvc in.StatusService, log zerolog.Logger) *Handler {
	return &Handler{
		statusSvc: statusSvc,
		log:       logging.Adapter(log, "http.status"),
	}
}

// RegisterRoutes mounts the endpoints on r. wrap, if non-nil, is applied to
// the systemcheck handler only (each call triggers an outbound request).
func (h *Handler) RegisterRoutes(r Router, paths Paths, wrap func(http.Handler) http.Handler) {
	systemcheck := http.Handler(http.HandlerFunc(h.handleSystemcheck))
	if wrap != nil {
		systemcheck = wrap(systemcheck)
	}

	r.Handle(http.MethodGet, paths.Healthcheck, http.HandlerFunc(h.handleHealthcheck))
	r.Handle(http.MethodGet, paths.Status, http.HandlerFunc(h.handleStatus))
	r.Handle(http.MethodGet, paths.Systemcheck, systemcheck)
}

func (h *Handler) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	snapshot := h.statusSvc.Liveness(r.Context())

	status := http.StatusOK
	if !snapshot.OK {
		status = http.StatusInternalServerError
	}
	h.sendJSON(w, status, snapshot)
}

func (h *Handler) handleSystemcheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.statusSvc.Systemcheck(r.Context())
	if err != nil {
		if !errors.Is(err, domain.ErrProbeUnavailable) {
			h.log.Error().Err(err).Msg("unexpected systemcheck error")
		}
		h.sendJSON(w, http.StatusInternalServerError, dto.SystemcheckErrorResponse{
			OK:     false,
			Error:  err.Error(),
			Config: result.ValidationConfig,
		})
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	page := h.statusSvc.StatusPage(r.Context())

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		h.log.Error().Err(err).Msg("failed to render status page")
		h.sendError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, dto.ErrorResponse{Error: message})
}
