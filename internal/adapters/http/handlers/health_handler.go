package handlers

import (
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// readinessResponse is the body of GET /health/ready. Failing lists the
// names of unhealthy checks in sorted order.
type readinessResponse struct {
	Status        string            `json:"status"`
	SchemaVersion int               `json:"schema_version"`
	Checks        map[string]string `json:"checks"`
	Failing       []string          `json:"failing,omitempty"`
}

// HealthHandler serves liveness and readiness for the checklist service.
type HealthHandler struct {
	registry      ports.HealthRegistry
	schemaVersion int
}

// NewHealthHandler creates a HealthHandler. schemaVersion is the checklist
// store schema the process was started against and is echoed by readiness.
func NewHealthHandler(registry ports.HealthRegistry, schemaVersion int) *HealthHandler {
	return &HealthHandler{registry: registry, schemaVersion: schemaVersion}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 503 while any registered
// check, such as the checklist store, is failing.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := readinessResponse{
		Status:        statusReady,
		SchemaVersion: h.schemaVersion,
		Checks:        make(map[string]string),
	}

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Failing = append(resp.Failing, name)
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if len(resp.Failing) > 0 {
		slices.Sort(resp.Failing)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
