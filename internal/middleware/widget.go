package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"nutrisearch/internal/widget"
)

const (
	widgetSessionKey = "widget_id"
	localsWidget     = "widget"
)

// WidgetMiddleware binds each browser session to its own lookup widget.
type WidgetMiddleware struct {
	registry *widget.Registry
}

// NewWidgetMiddleware creates a new widget middleware instance.
func NewWidgetMiddleware(registry *widget.Registry) *WidgetMiddleware {
	return &WidgetMiddleware{registry: registry}
}

// Attach loads the session's widget into Locals, creating one on first visit.
// Requires the session middleware to run first.
func (m *WidgetMiddleware) Attach(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	id, _ := sess.Get(widgetSessionKey).(string)
	if id == "" {
		id = uuid.NewString()
		sess.Set(widgetSessionKey, id)
	}

	w, err := m.registry.Get(id)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "server is shutting down")
	}

	SetWidget(c, w)
	return c.Next()
}

// SetWidget attaches w to the request.
func SetWidget(c fiber.Ctx, w *widget.Widget) {
	c.Locals(localsWidget, w)
}

// WidgetFrom returns the widget attached by Attach, or nil.
func WidgetFrom(c fiber.Ctx) *widget.Widget {
	w, _ := c.Locals(localsWidget).(*widget.Widget)
	return w
}
