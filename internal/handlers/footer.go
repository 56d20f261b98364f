package handlers

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shafistore/internal/content"
	"github.com/example/shafistore/internal/models"
)

// FooterHandler manages the footer-content singleton.
type FooterHandler struct {
	db *gorm.DB
}

// NewFooterHandler constructs FooterHandler.
func NewFooterHandler(db *gorm.DB) *FooterHandler {
	return &FooterHandler{db: db}
}

var footerFields = []string{
	"email", "phone", "whatsapp",
	"instagram", "twitter", "tiktok", "snapchat",
	"aboutText", "address", "workingHours",
}

// Get returns the footer content, creating the default document on first read.
func (h *FooterHandler) Get(c *fiber.Ctx) error {
	footer, err := content.GetOrCreate(h.db, models.FooterSingletonKey, models.FooterDefaults)
	if err != nil {
		return err
	}
	return c.JSON(footer)
}

// Update applies supplied fields to the footer, creating it if absent.
func (h *FooterHandler) Update(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if email := stringField(payload, "email"); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
		}
	}

	footer, err := content.Update(h.db, models.FooterSingletonKey, models.FooterDefaults,
		pickUpdates(payload, footerFields))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Footer updated successfully",
		"footer":  footer,
	})
}
