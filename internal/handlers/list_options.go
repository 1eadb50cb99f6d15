package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Stashed/internal/repository"
)

const defaultListLimit = 50

// parseListOptions reads the shared list query parameters. Unknown sort
// fields fall through to the repository allow-list default.
func parseListOptions(c *fiber.Ctx) repository.ListOptions {
	opts := repository.ListOptions{
		NameContains: c.Query("name"),
		SortBy:       c.Query("sort", "created_at"),
		SortDesc:     c.Query("order", "asc") == "desc",
		Limit:        c.QueryInt("limit", defaultListLimit),
		Offset:       c.QueryInt("skip", 0),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			opts.CategoryID = &categoryID
		}
	}
	if raw := c.Query("container_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			containerID := uint(id)
			opts.ContainerID = &containerID
		}
	}
	if raw := c.Query("is_in"); raw != "" {
		if isIn, err := strconv.ParseBool(raw); err == nil {
			opts.IsIn = &isIn
		}
	}
	return opts
}
