package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/config"
	"nutrisearch/internal/models"
)

// WidgetHandler serves the landing page and the HTMX lookup widget.
type WidgetHandler struct {
	table   *catalog.Table
	cfg     *config.Config
	landing *config.LandingConfig
}

// NewWidgetHandler creates a new widget handler.
func NewWidgetHandler(table *catalog.Table, cfg *config.Config, landing *config.LandingConfig) *WidgetHandler {
	return &WidgetHandler{table: table, cfg: cfg, landing: landing}
}

// Index renders the landing page with the session's widget.
func (h *WidgetHandler) Index(c fiber.Ctx) error {
	w, err := widgetFrom(c)
	if err != nil {
		return err
	}
	return c.Render("index", h.viewData(w.State()))
}

// Search submits the form query. Blank input re-renders the current state.
func (h *WidgetHandler) Search(c fiber.Ctx) error {
	w, err := widgetFrom(c)
	if err != nil {
		return err
	}
	return h.renderWidget(c, w.Search(c.FormValue("q")))
}

// Quick submits one of the preset quick searches by position.
func (h *WidgetHandler) Quick(c fiber.Ctx) error {
	w, err := widgetFrom(c)
	if err != nil {
		return err
	}

	presets := h.table.QuickSearches()
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil || i < 0 || i >= len(presets) {
		return fiber.NewError(fiber.StatusNotFound, "unknown quick search")
	}

	return h.renderWidget(c, w.Search(presets[i]))
}

// Result long-polls the pending query named by ?id= and renders the outcome.
// If that query is no longer current the current state is rendered instead.
func (h *WidgetHandler) Result(c fiber.Ctx) error {
	w, err := widgetFrom(c)
	if err != nil {
		return err
	}

	st := w.State()
	if st.IsPending() && st.ID.String() == c.Query("id") {
		ctx, cancel := awaitContext(c, h.cfg)
		defer cancel()
		// On timeout the still-pending partial is returned and polls again.
		st, _ = w.Await(ctx)
	}

	return h.renderWidget(c, st)
}

// Reset clears the widget back to idle.
func (h *WidgetHandler) Reset(c fiber.Ctx) error {
	w, err := widgetFrom(c)
	if err != nil {
		return err
	}
	return h.renderWidget(c, w.Reset())
}

func (h *WidgetHandler) renderWidget(c fiber.Ctx, st models.QueryState) error {
	return c.Render("partials/widget", h.viewData(st), "")
}

func (h *WidgetHandler) viewData(st models.QueryState) fiber.Map {
	return MergeBranding(fiber.Map{
		"State":         st,
		"Landing":       h.landing,
		"QuickSearches": h.table.QuickSearches(),
	}, h.cfg)
}
