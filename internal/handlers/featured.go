package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafistore/internal/services"
	"github.com/example/shafistore/internal/utils"
)

const defaultHighlightLimit = 8

// FeaturedHandler serves the cross-category landing-page listings.
type FeaturedHandler struct {
	svc *services.FeaturedService
}

// NewFeaturedHandler constructs FeaturedHandler.
func NewFeaturedHandler(svc *services.FeaturedService) *FeaturedHandler {
	return &FeaturedHandler{svc: svc}
}

// Featured returns a shuffled sample of top-rated products across categories.
func (h *FeaturedHandler) Featured(c *fiber.Ctx) error {
	items, err := h.svc.Featured(utils.ParseLimit(c, defaultHighlightLimit))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Bestsellers returns the most recent products per category in fixed order.
func (h *FeaturedHandler) Bestsellers(c *fiber.Ctx) error {
	items, err := h.svc.Bestsellers(utils.ParseLimit(c, defaultHighlightLimit))
	if err != nil {
		return err
	}
	return c.JSON(items)
}
