package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"Stashed/internal/apperrors"
	"Stashed/internal/middleware"
)

// validate checks request-body shape at the boundary; field semantics
// (trimming, lengths, references) stay with the services.
var validate = validator.New()

// writeError maps the core's typed outcomes onto wire responses. Anything
// unmapped is an unexpected fault: logged with operation context, surfaced
// as a bare 500.
func writeError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	}
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	}
	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		body := fiber.Map{
			"error":  conflictErr.Error(),
			"reason": conflictErr.Reason,
		}
		if conflictErr.Name != "" {
			body["name"] = conflictErr.Name
		}
		if conflictErr.Count > 0 {
			body["count"] = conflictErr.Count
		}
		return c.Status(http.StatusConflict).JSON(body)
	}
	var referenceErr *apperrors.InvalidReferenceError
	if errors.As(err, &referenceErr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": referenceErr.Error(),
			"field": referenceErr.Field,
		})
	}

	log.WithFields(logrus.Fields{
		"owner_id": middleware.OwnerID(c),
		"method":   c.Method(),
		"path":     c.Path(),
	}).WithError(err).Error("request failed")
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": message})
}
