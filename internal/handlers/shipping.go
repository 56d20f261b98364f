package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shafistore/internal/content"
	"github.com/example/shafistore/internal/models"
	"github.com/example/shafistore/internal/utils"
)

// ShippingHandler manages delivery zones and the shipping-page singleton.
type ShippingHandler struct {
	db *gorm.DB
}

// NewShippingHandler constructs ShippingHandler.
func NewShippingHandler(db *gorm.DB) *ShippingHandler {
	return &ShippingHandler{db: db}
}

var (
	zoneFields = []string{
		"zoneName", "cities", "deliveryTime",
		"shippingCost", "freeShippingMinimum", "isActive",
	}
	shippingContentFields = []string{
		"pageTitle", "introText",
		"freeShippingEnabled", "freeShippingMinimum", "freeShippingText",
		"shippingCompanies",
		"returnPolicy", "exchangePolicy", "packagingInfo", "shippingSupport",
	}
)

// GetContent returns the shipping page copy, creating defaults on first read.
func (h *ShippingHandler) GetContent(c *fiber.Ctx) error {
	doc, err := content.GetOrCreate(h.db, models.ShippingSingletonKey, models.ShippingContentDefaults)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// UpdateContent applies supplied fields to the shipping page copy.
func (h *ShippingHandler) UpdateContent(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	doc, err := content.Update(h.db, models.ShippingSingletonKey, models.ShippingContentDefaults,
		pickUpdates(payload, shippingContentFields))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Content updated successfully",
		"content": doc,
	})
}

// ListZones returns active zones, cheapest first.
func (h *ShippingHandler) ListZones(c *fiber.Ctx) error {
	zones := []models.ShippingZone{}
	if err := h.db.Where("is_active = ?", true).
		Order("shipping_cost asc").Find(&zones).Error; err != nil {
		return err
	}
	return c.JSON(zones)
}

// ListZonesAdmin returns every zone, cheapest first.
func (h *ShippingHandler) ListZonesAdmin(c *fiber.Ctx) error {
	zones := []models.ShippingZone{}
	if err := h.db.Order("shipping_cost asc").Find(&zones).Error; err != nil {
		return err
	}
	return c.JSON(zones)
}

// CreateZone persists a new delivery zone.
func (h *ShippingHandler) CreateZone(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if missing := utils.MissingFields(payload, []string{"zoneName"}); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Zone name is required")
	}
	if cost := numberField(payload, "shippingCost", 0); cost < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Shipping cost must not be negative")
	}

	zone := models.ShippingZone{
		ZoneName:            stringField(payload, "zoneName"),
		Cities:              stringField(payload, "cities"),
		DeliveryTime:        models.DefaultDeliveryTime,
		ShippingCost:        numberField(payload, "shippingCost", 0),
		FreeShippingMinimum: numberField(payload, "freeShippingMinimum", 0),
		IsActive:            boolField(payload, "isActive", true),
	}
	if deliveryTime := stringField(payload, "deliveryTime"); deliveryTime != "" {
		zone.DeliveryTime = deliveryTime
	}

	if err := h.db.Create(&zone).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Zone created successfully",
		"zone":    zone,
	})
}

// UpdateZone applies a partial payload to a zone.
func (h *ShippingHandler) UpdateZone(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if cost, ok := payload["shippingCost"].(float64); ok && cost < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Shipping cost must not be negative")
	}

	var zone models.ShippingZone
	if err := h.db.First(&zone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Zone not found")
		}
		return err
	}

	updates := pickUpdates(payload, zoneFields)
	if len(updates) > 0 {
		if err := h.db.Model(&zone).Updates(updates).Error; err != nil {
			return err
		}
		if err := h.db.First(&zone, "id = ?", id).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"message": "Zone updated successfully",
		"zone":    zone,
	})
}

// DeleteZone removes a zone by id.
func (h *ShippingHandler) DeleteZone(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result := h.db.Delete(&models.ShippingZone{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Zone not found")
	}
	return c.JSON(fiber.Map{"message": "Zone deleted successfully"})
}
