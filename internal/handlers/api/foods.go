package api

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/models"
	"nutrisearch/internal/validation"
)

// FoodHandler exposes the lookup table via JSON API.
type FoodHandler struct {
	table *catalog.Table
}

// NewFoodHandler creates a new API food handler.
func NewFoodHandler(table *catalog.Table) *FoodHandler {
	return &FoodHandler{table: table}
}

// List returns every food in table order.
func (h *FoodHandler) List(c fiber.Ctx) error {
	entries := h.table.Entries()
	items := make([]models.FoodListItem, len(entries))
	for i, e := range entries {
		items[i] = models.FoodListItem{Key: e.Key, Record: e.Record}
	}
	return jsonSuccess(c, items)
}

// Get resolves a food name immediately, without the simulated delay.
func (h *FoodHandler) Get(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid food name")
	}
	if validation.IsBlank(name) {
		return jsonError(c, fiber.StatusBadRequest, "food name is required")
	}

	rec, key, err := h.table.Lookup(name)
	if err != nil {
		if errors.Is(err, catalog.ErrFoodNotFound) {
			return jsonError(c, fiber.StatusNotFound, h.table.NotFoundMessage(name))
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to look up food")
	}

	return jsonSuccess(c, models.LookupResponse{
		Query:  name,
		Key:    key,
		Record: rec,
	})
}
