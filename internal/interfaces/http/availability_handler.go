package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// AvailabilityHandler proxies availability searches to the booking platform.
type AvailabilityHandler struct {
	availability domain.AvailabilitySearch
}

// NewAvailabilityHandler creates a new availability handler.
func NewAvailabilityHandler(availability domain.AvailabilitySearch) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// Search returns the hotels available for the requested stay.
func (h *AvailabilityHandler) Search(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "city is required",
		})
	}

	checkIn, err := time.Parse("2006-01-02", c.Query("checkIn"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid checkIn format, use YYYY-MM-DD",
		})
	}

	checkOut, err := time.Parse("2006-01-02", c.Query("checkOut"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid checkOut format, use YYYY-MM-DD",
		})
	}

	occupancy, err := strconv.Atoi(c.Query("occupancy", "1"))
	if err != nil || occupancy < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "occupancy must be a number of at least 1",
		})
	}

	result, err := h.availability.SearchAvailability(c.Context(), credentialFrom(c), city, checkIn, checkOut, occupancy)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}
