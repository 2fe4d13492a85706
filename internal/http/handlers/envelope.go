package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"grocery/internal/domain"
	applog "grocery/internal/log"
	"grocery/internal/validate"
)

// envelope is the uniform body of every /api response except health.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Data: data})
}

func done(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Message: msg})
}

// fail maps service errors: validation 400, not found 404, anything else 500.
// The error text is always surfaced.
func fail(c *fiber.Ctx, action string, err error, fields map[string]any) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.Status(fiber.StatusBadRequest)
		applog.Security(c, action+".invalid", err, fields)
	case errors.Is(err, domain.ErrNotFound):
		c.Status(fiber.StatusNotFound)
		applog.Info(c, action+".missing", fields)
	default:
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, action+".fail", err, fields)
	}
	return c.JSON(envelope{Error: err.Error()})
}

// pathID reads :id; anything but a positive integer is treated as not found.
func pathID(c *fiber.Ctx, what string) (int64, error) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return 0, domain.NotFound("%s not found", what)
	}
	return id, nil
}

// bind decodes a JSON body regardless of Content-Type.
func bind(c *fiber.Ctx, v any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return domain.Invalid("Invalid request body")
	}
	return nil
}
