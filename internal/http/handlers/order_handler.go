package handlers

import (
	"github.com/gofiber/fiber/v2"

	"grocery/internal/domain"
	applog "grocery/internal/log"
	"grocery/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.List(c.UserContext())
	if err != nil {
		return fail(c, "order.list", err, nil)
	}
	return ok(c, fiber.StatusOK, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "Order")
	if err != nil {
		return fail(c, "order.get", err, nil)
	}
	o, err := h.Orders.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "order.get", err, map[string]any{"order_id": id})
	}
	return ok(c, fiber.StatusOK, o)
}

// POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in domain.OrderInput
	if err := bind(c, &in); err != nil {
		return fail(c, "order.create", err, nil)
	}
	id, err := h.Orders.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "order.create", err, map[string]any{"customer": in.CustomerName, "items": len(in.Items)})
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "order.create", map[string]any{"order_id": id, "items": len(in.Items)})
	return ok(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Order")
	if err != nil {
		return fail(c, "order.delete", err, nil)
	}
	if err := h.Orders.Delete(c.UserContext(), id); err != nil {
		return fail(c, "order.delete", err, map[string]any{"order_id": id})
	}
	applog.Audit(c, "order.delete", map[string]any{"order_id": id})
	return done(c, "Order deleted")
}
