package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"grocery/internal/config"
	applog "grocery/internal/log"
)

// NewApp builds the Fiber app with middleware and every /api route.
func NewApp(cfg config.Config, db *sqlx.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "grocery",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/api/health"
			},
			LimitReached: func(c *fiber.Ctx) error {
				c.Status(fiber.StatusTooManyRequests)
				applog.Security(c, "rate.limited", nil, nil)
				return c.JSON(envelope{Error: "Too many requests"})
			},
		}))
	}

	deps := NewDeps(db)
	api := app.Group("/api")

	api.Get("/health", deps.HealthHandler.Check)

	api.Get("/uoms", deps.UomHandler.List)
	api.Post("/uoms", deps.UomHandler.Create)
	api.Delete("/uoms/:id<int>", deps.UomHandler.Delete)

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id<int>", deps.ProductHandler.Get)
	api.Post("/products", deps.ProductHandler.Create)
	api.Put("/products/:id<int>", deps.ProductHandler.Update)
	api.Delete("/products/:id<int>", deps.ProductHandler.Delete)

	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/:id<int>", deps.OrderHandler.Get)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Delete("/orders/:id<int>", deps.OrderHandler.Delete)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(envelope{Error: "Not found"})
	})
	return app
}

// errorHandler renders errors that escape handlers (panics, oversize
// bodies, framework errors) in the envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	c.Status(code)
	applog.Error(c, "server.error", err, nil)
	return c.JSON(envelope{Error: err.Error()})
}
