package handlers

import (
	"github.com/gofiber/fiber/v2"

	"grocery/internal/domain"
	applog "grocery/internal/log"
	"grocery/internal/services"
)

type ProductHandler struct {
	Products *services.ProductService
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List(c.UserContext())
	if err != nil {
		return fail(c, "product.list", err, nil)
	}
	return ok(c, fiber.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "Product")
	if err != nil {
		return fail(c, "product.get", err, nil)
	}
	p, err := h.Products.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "product.get", err, map[string]any{"product_id": id})
	}
	return ok(c, fiber.StatusOK, p)
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.ProductInput
	if err := bind(c, &in); err != nil {
		return fail(c, "product.create", err, nil)
	}
	id, err := h.Products.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "product.create", err, map[string]any{"name": in.Name})
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "product.create", map[string]any{"product_id": id, "name": in.Name})
	return ok(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Product")
	if err != nil {
		return fail(c, "product.update", err, nil)
	}
	var in domain.ProductInput
	if err := bind(c, &in); err != nil {
		return fail(c, "product.update", err, map[string]any{"product_id": id})
	}
	if err := h.Products.Update(c.UserContext(), id, in); err != nil {
		return fail(c, "product.update", err, map[string]any{"product_id": id})
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return done(c, "Product updated")
}

// DELETE /api/products/:id (soft delete)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Product")
	if err != nil {
		return fail(c, "product.delete", err, nil)
	}
	if err := h.Products.Delete(c.UserContext(), id); err != nil {
		return fail(c, "product.delete", err, map[string]any{"product_id": id})
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return done(c, "Product deleted")
}
