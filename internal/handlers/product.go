package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shafistore/internal/catalog"
	"github.com/example/shafistore/internal/models"
	"github.com/example/shafistore/internal/utils"
)

// ProductHandler implements the generic per-category product CRUD. One
// handler serves all four categories; the catalog descriptor resolved from
// the route decides required fields, classifier values and descriptive copy.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

func (h *ProductHandler) descriptor(c *fiber.Ctx) (catalog.Descriptor, error) {
	desc, ok := catalog.Lookup(c.Params("category"))
	if !ok {
		return catalog.Descriptor{}, fiber.NewError(fiber.StatusNotFound, "Category not found")
	}
	return desc, nil
}

func (h *ProductHandler) scope(desc catalog.Descriptor) *gorm.DB {
	return h.db.Where("category = ?", desc.Slug)
}

// List returns the active products of one category, newest first.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	desc, err := h.descriptor(c)
	if err != nil {
		return err
	}

	products := []models.Product{}
	if err := h.scope(desc).Where("is_active = ?", true).
		Order("created_at desc").Find(&products).Error; err != nil {
		return err
	}
	return c.JSON(products)
}

// ListAdmin returns every product of one category regardless of visibility.
func (h *ProductHandler) ListAdmin(c *fiber.Ctx) error {
	desc, err := h.descriptor(c)
	if err != nil {
		return err
	}

	products := []models.Product{}
	if err := h.scope(desc).Order("created_at desc").Find(&products).Error; err != nil {
		return err
	}
	return c.JSON(products)
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	desc, err := h.descriptor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.scope(desc).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}
	return c.JSON(product)
}

// Create validates the payload against the category descriptor and persists a
// new product. Defaults: stock 0, rating 5, active, empty descriptive copy.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	desc, err := h.descriptor(c)
	if err != nil {
		return err
	}
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if missing := utils.MissingFields(payload, desc.RequiredFields()); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
	}
	if err := h.validatePayload(desc, payload); err != nil {
		return err
	}

	product := models.Product{
		Category:  desc.Slug,
		Title:     stringField(payload, "title"),
		Price:     numberField(payload, "price", 0),
		ImagePath: stringField(payload, "imagePath"),
		Stock:     int(numberField(payload, "stock", 0)),
		Rating:    numberField(payload, "rating", 5),
		IsActive:  boolField(payload, "isActive", true),
	}
	if desc.ClassifierField == "origin" {
		product.Origin = stringField(payload, "origin")
	} else {
		product.Type = stringField(payload, "type")
	}
	if desc.RequiresWeight {
		product.Weight = stringField(payload, "weight")
	}
	for _, field := range desc.DescriptiveFields {
		setDescriptive(&product, field, stringField(payload, field))
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// Update applies a partial payload to an existing product. Fields absent from
// the payload keep their stored values.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	desc, err := h.descriptor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}
	if err := h.validatePayload(desc, payload); err != nil {
		return err
	}

	var product models.Product
	if err := h.scope(desc).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	updates := pickUpdates(payload, desc.MutableFields())
	if len(updates) > 0 {
		if err := h.db.Model(&product).Updates(updates).Error; err != nil {
			return err
		}
		if err := h.scope(desc).First(&product, "id = ?", id).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// Delete removes a product by id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	desc, err := h.descriptor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result := h.scope(desc).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// validatePayload checks the fields shared by create and update: image path
// shape, classifier membership, price and rating ranges. Each check only runs
// when the field is present, so partial updates stay partial.
func (h *ProductHandler) validatePayload(desc catalog.Descriptor, payload map[string]interface{}) error {
	if value, present := payload["imagePath"]; present {
		path, _ := value.(string)
		if !utils.IsValidImagePath(path) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid image path format")
		}
	}
	if value, present := payload[desc.ClassifierField]; present {
		classifier, _ := value.(string)
		if !desc.AllowsClassifier(classifier) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Invalid %s value", desc.ClassifierField))
		}
	}
	if price, ok := payload["price"].(float64); ok && price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Price must not be negative")
	}
	if rating, ok := payload["rating"].(float64); ok && (rating < 0 || rating > 5) {
		return fiber.NewError(fiber.StatusBadRequest, "Rating must be between 0 and 5")
	}
	if stock, ok := payload["stock"].(float64); ok && stock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Stock must not be negative")
	}
	return nil
}

func setDescriptive(p *models.Product, field, value string) {
	switch field {
	case "luxuryDescription":
		p.LuxuryDescription = value
	case "healthBenefits":
		p.HealthBenefits = value
	case "scentProfile":
		p.ScentProfile = value
	case "ingredients":
		p.Ingredients = value
	case "usageDescription":
		p.UsageDescription = value
	}
}
