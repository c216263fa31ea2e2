package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"nutrisearch/internal/config"
	"nutrisearch/internal/middleware"
	"nutrisearch/internal/widget"
)

// widgetFrom returns the session's widget or a 500 if the middleware is missing.
func widgetFrom(c fiber.Ctx) (*widget.Widget, error) {
	w := middleware.WidgetFrom(c)
	if w == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "lookup widget unavailable")
	}
	return w, nil
}

// awaitContext bounds a long-poll by the configured await timeout.
func awaitContext(c fiber.Ctx, cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), cfg.AwaitTimeout())
}
