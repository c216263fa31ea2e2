package handlers

import (
	"github.com/gofiber/fiber/v3"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/widget"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	table    *catalog.Table
	registry *widget.Registry
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(table *catalog.Table, registry *widget.Registry) *ProbeHandler {
	return &ProbeHandler{table: table, registry: registry}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK while the lookup table is loaded and widgets can be served.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.table.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "lookup table empty",
		})
	}
	if !h.registry.Open() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "shutting down",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"foods":  h.table.Len(),
	})
}
