package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// writeError maps a service error onto an HTTP response. Every user-visible
// failure stays scoped to the action's own alert; payment cancellation is
// reported as informational rather than an error banner.
func writeError(c *fiber.Ctx, err error) error {
	var (
		validation *domain.ValidationError
		auth       *domain.AuthorizationError
		payFailed  *domain.PaymentFailedError
		cancelled  *domain.PaymentCancelledError
		remote     *domain.RemoteError
	)

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validation.Message,
			"rule":  validation.Rule,
		})
	case errors.As(err, &auth):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": auth.Error(),
		})
	case errors.As(err, &payFailed):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":     payFailed.Error(),
			"retryable": true,
		})
	case errors.As(err, &cancelled):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"info": cancelled.Error(),
		})
	case errors.As(err, &remote):
		status := remote.StatusCode
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": remote.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
