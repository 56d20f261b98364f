package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shafistore/internal/models"
	"github.com/example/shafistore/internal/utils"
)

// HeroHandler manages the landing-page carousel slides.
type HeroHandler struct {
	db *gorm.DB
}

// NewHeroHandler constructs HeroHandler.
func NewHeroHandler(db *gorm.DB) *HeroHandler {
	return &HeroHandler{db: db}
}

var heroFields = []string{"imagePath", "titleArabic", "subtitleArabic", "link", "order", "isActive"}

// List returns active slides in display order.
func (h *HeroHandler) List(c *fiber.Ctx) error {
	slides := []models.HeroSlide{}
	if err := h.db.Where("is_active = ?", true).
		Order("display_order asc").Find(&slides).Error; err != nil {
		return err
	}
	return c.JSON(slides)
}

// ListAdmin returns all slides, inactive included, in display order.
func (h *HeroHandler) ListAdmin(c *fiber.Ctx) error {
	slides := []models.HeroSlide{}
	if err := h.db.Order("display_order asc").Find(&slides).Error; err != nil {
		return err
	}
	return c.JSON(slides)
}

// Create persists a new slide.
func (h *HeroHandler) Create(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if missing := utils.MissingFields(payload, []string{"imagePath", "titleArabic"}); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Image path and Arabic title are required")
	}
	if !utils.IsValidImagePath(stringField(payload, "imagePath")) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid image path format")
	}

	slide := models.HeroSlide{
		ImagePath:      stringField(payload, "imagePath"),
		TitleArabic:    stringField(payload, "titleArabic"),
		SubtitleArabic: stringField(payload, "subtitleArabic"),
		Link:           "/",
		Order:          int(numberField(payload, "order", 0)),
		IsActive:       boolField(payload, "isActive", true),
	}
	if link := stringField(payload, "link"); link != "" {
		slide.Link = link
	}

	if err := h.db.Create(&slide).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Slide created successfully",
		"slide":   slide,
	})
}

// Update applies a partial payload to a slide.
func (h *HeroHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if value, present := payload["imagePath"]; present {
		path, _ := value.(string)
		if !utils.IsValidImagePath(path) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid image path format")
		}
	}

	var slide models.HeroSlide
	if err := h.db.First(&slide, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Slide not found")
		}
		return err
	}

	updates := pickUpdates(payload, heroFields)
	if len(updates) > 0 {
		if err := h.db.Model(&slide).Updates(updates).Error; err != nil {
			return err
		}
		if err := h.db.First(&slide, "id = ?", id).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"message": "Slide updated successfully",
		"slide":   slide,
	})
}

// Delete removes a slide by id.
func (h *HeroHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result := h.db.Delete(&models.HeroSlide{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Slide not found")
	}
	return c.JSON(fiber.Map{"message": "Slide deleted successfully"})
}
