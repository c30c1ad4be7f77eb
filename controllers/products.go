package controllers

import (
	"errors"

	"tokopos/catalog"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Catalog *catalog.Service
}

func (ct *ProductController) List(c *fiber.Ctx) error {
	products, err := ct.Catalog.Products()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"products": products})
}

func (ct *ProductController) Get(c *fiber.Ctx) error {
	p, err := ct.Catalog.Product(c.Params("product_id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(p)
}

func (ct *ProductController) Create(c *fiber.Ctx) error {
	var input catalog.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	p, err := ct.Catalog.Create(input)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"product": p,
	})
}

func (ct *ProductController) Update(c *fiber.Ctx) error {
	var input catalog.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	p, err := ct.Catalog.Update(c.Params("product_id"), input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		case errors.Is(err, catalog.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Product updated",
		"product": p,
	})
}

func (ct *ProductController) Delete(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if err := ct.Catalog.Delete(productID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":   "Product deleted",
		"productID": productID,
	})
}
