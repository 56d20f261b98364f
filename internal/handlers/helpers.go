package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorHandler renders every error as the {message, error?} JSON body the API
// contract uses. fiber.Error carries an intentional status; anything else is
// an unexpected store or storage failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server Error",
		"error":   err.Error(),
	})
}

// columnFor maps JSON payload field names to store column names. Updates are
// parsed into maps so partial payloads only touch the fields they carry; this
// table keeps the JSON surface decoupled from column naming.
var columnFor = map[string]string{
	// products
	"title":             "title",
	"type":              "type",
	"origin":            "origin",
	"weight":            "weight",
	"price":             "price",
	"imagePath":         "image_path",
	"stock":             "stock",
	"isActive":          "is_active",
	"rating":            "rating",
	"luxuryDescription": "luxury_description",
	"healthBenefits":    "health_benefits",
	"scentProfile":      "scent_profile",
	"ingredients":       "ingredients",
	"usageDescription":  "usage_description",

	// hero slides
	"titleArabic":    "title_arabic",
	"subtitleArabic": "subtitle_arabic",
	"link":           "link",
	"order":          "display_order",

	// footer
	"email":        "email",
	"phone":        "phone",
	"whatsapp":     "whatsapp",
	"instagram":    "instagram",
	"twitter":      "twitter",
	"tiktok":       "tiktok",
	"snapchat":     "snapchat",
	"aboutText":    "about_text",
	"address":      "address",
	"workingHours": "working_hours",

	// shipping
	"zoneName":            "zone_name",
	"cities":              "cities",
	"deliveryTime":        "delivery_time",
	"shippingCost":        "shipping_cost",
	"freeShippingMinimum": "free_shipping_minimum",
	"pageTitle":           "page_title",
	"introText":           "intro_text",
	"freeShippingEnabled": "free_shipping_enabled",
	"freeShippingText":    "free_shipping_text",
	"shippingCompanies":   "shipping_companies",
	"returnPolicy":        "return_policy",
	"exchangePolicy":      "exchange_policy",
	"packagingInfo":       "packaging_info",
	"shippingSupport":     "shipping_support",
}

// parsePayload decodes a JSON body into a field map so handlers can tell
// absent fields from zero values.
func parsePayload(c *fiber.Ctx) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return payload, nil
}

// pickUpdates converts the allowed JSON fields present in payload into a
// column update map. Unknown and disallowed fields are dropped.
func pickUpdates(payload map[string]interface{}, allowed []string) map[string]interface{} {
	updates := map[string]interface{}{}
	for _, field := range allowed {
		value, present := payload[field]
		if !present {
			continue
		}
		if column, known := columnFor[field]; known {
			updates[column] = value
		}
	}
	return updates
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func stringField(payload map[string]interface{}, name string) string {
	s, _ := payload[name].(string)
	return s
}

func numberField(payload map[string]interface{}, name string, fallback float64) float64 {
	if f, ok := payload[name].(float64); ok {
		return f
	}
	return fallback
}

func boolField(payload map[string]interface{}, name string, fallback bool) bool {
	if b, ok := payload[name].(bool); ok {
		return b
	}
	return fallback
}
