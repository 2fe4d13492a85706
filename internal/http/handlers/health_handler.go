package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	applog "grocery/internal/log"
)

type HealthHandler struct {
	DB *sqlx.DB
}

// GET /api/health always answers 200; a failed ping only degrades the status.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status, dbStatus := "healthy", "healthy"
	if err := h.DB.PingContext(c.UserContext()); err != nil {
		status, dbStatus = "degraded", "unhealthy"
		applog.Error(c, "health.db", err, nil)
	}
	return c.JSON(fiber.Map{
		"status":   status,
		"message":  "Grocery Management API is running",
		"database": dbStatus,
	})
}
