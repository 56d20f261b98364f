package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseLimit reads the limit query param, falling back when absent or not a
// positive integer.
func ParseLimit(c *fiber.Ctx, fallback int) int {
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		return parsed
	}
	return fallback
}
