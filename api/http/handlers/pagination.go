package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parsePageLimit reads page/limit query params. Missing or malformed values
// fall back to the defaults; bound clamping happens in the use cases.
func parsePageLimit(c *fiber.Ctx, defPage, defLimit int) (page, limit int) {
	page = defPage
	limit = defLimit
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	return page, limit
}
