package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "grocery/internal/log"
	"grocery/internal/services"
)

type UomHandler struct {
	Uoms *services.UomService
}

// GET /api/uoms
func (h *UomHandler) List(c *fiber.Ctx) error {
	uoms, err := h.Uoms.List(c.UserContext())
	if err != nil {
		return fail(c, "uom.list", err, nil)
	}
	return ok(c, fiber.StatusOK, uoms)
}

// POST /api/uoms
func (h *UomHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := bind(c, &in); err != nil {
		return fail(c, "uom.create", err, nil)
	}
	id, err := h.Uoms.Create(c.UserContext(), in.Name)
	if err != nil {
		return fail(c, "uom.create", err, map[string]any{"name": in.Name})
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "uom.create", map[string]any{"uom_id": id, "name": in.Name})
	return ok(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// DELETE /api/uoms/:id
func (h *UomHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "UOM")
	if err != nil {
		return fail(c, "uom.delete", err, nil)
	}
	if err := h.Uoms.Delete(c.UserContext(), id); err != nil {
		return fail(c, "uom.delete", err, map[string]any{"uom_id": id})
	}
	applog.Audit(c, "uom.delete", map[string]any{"uom_id": id})
	return done(c, "UOM deleted")
}
