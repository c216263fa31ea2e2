package api

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"nutrisearch/internal/config"
	"nutrisearch/internal/middleware"
	"nutrisearch/internal/models"
	"nutrisearch/internal/widget"
)

// SearchHandler drives the session's lookup widget via JSON API.
type SearchHandler struct {
	cfg *config.Config
}

// NewSearchHandler creates a new API search handler.
func NewSearchHandler(cfg *config.Config) *SearchHandler {
	return &SearchHandler{cfg: cfg}
}

// Submit starts a lookup. Blank queries leave the state unchanged.
// With ?wait=true the response is sent once the lookup resolves.
func (h *SearchHandler) Submit(c fiber.Ctx) error {
	w := middleware.WidgetFrom(c)
	if w == nil {
		return jsonError(c, fiber.StatusInternalServerError, "lookup widget unavailable")
	}

	var body models.SearchRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	st := w.Search(body.Query)
	if c.Query("wait") == "true" {
		return h.await(c, w)
	}
	return jsonSuccess(c, st)
}

// State returns the current state, optionally waiting for a pending lookup.
func (h *SearchHandler) State(c fiber.Ctx) error {
	w := middleware.WidgetFrom(c)
	if w == nil {
		return jsonError(c, fiber.StatusInternalServerError, "lookup widget unavailable")
	}

	if c.Query("wait") == "true" {
		return h.await(c, w)
	}
	return jsonSuccess(c, w.State())
}

// Reset clears the widget back to idle.
func (h *SearchHandler) Reset(c fiber.Ctx) error {
	w := middleware.WidgetFrom(c)
	if w == nil {
		return jsonError(c, fiber.StatusInternalServerError, "lookup widget unavailable")
	}
	return jsonSuccess(c, w.Reset())
}

func (h *SearchHandler) await(c fiber.Ctx, w *widget.Widget) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.AwaitTimeout())
	defer cancel()

	st, err := w.Await(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusGatewayTimeout, "lookup did not resolve in time")
	}
	return jsonSuccess(c, st)
}
