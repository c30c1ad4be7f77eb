package controllers

import (
	"errors"

	"tokopos/auth"
	"tokopos/cart"
	"tokopos/catalog"
	"tokopos/checkout"

	"github.com/gofiber/fiber/v2"
)

type CartController struct {
	Cart     *cart.Service
	Checkout *checkout.Orchestrator
	Auth     *auth.Service
	Catalog  *catalog.Service
}

func (ct *CartController) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": ct.Cart.Items(),
		"total": ct.Cart.Total(),
	})
}

// Add puts one unit of the requested product in the cart.
func (ct *CartController) Add(c *fiber.Ctx) error {
	var input struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id is required"})
	}

	p, err := ct.Catalog.Product(input.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ct.Cart.AddOne(*p); err != nil {
		return cartError(c, err)
	}
	return ct.Get(c)
}

// UpdateQuantity moves a line by the signed change amount; an optional
// wholesale field overrides the derived tier flag.
func (ct *CartController) UpdateQuantity(c *fiber.Ctx) error {
	var input struct {
		Change    int   `json:"change"`
		Wholesale *bool `json:"wholesale"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := ct.Cart.AdjustQuantity(c.Params("product_id"), input.Change, input.Wholesale); err != nil {
		return cartError(c, err)
	}
	return ct.Get(c)
}

func (ct *CartController) Clear(c *fiber.Ctx) error {
	if err := ct.Cart.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

// DoCheckout runs the checkout for the active session and returns the
// transaction for the receipt view.
func (ct *CartController) DoCheckout(c *fiber.Ctx) error {
	session, err := ct.Auth.CurrentSession()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	trx, err := ct.Checkout.Checkout(session)
	if err != nil {
		var stockErr *cart.StockError
		var notFound *checkout.NotFoundError
		switch {
		case errors.Is(err, checkout.ErrNotAuthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, checkout.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &notFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Sale completed",
		"transaction": trx,
	})
}

// cartError maps cart mutation failures: stock ceilings are a conflict the
// screens show as a notice, persistence problems are server errors.
func cartError(c *fiber.Ctx, err error) error {
	var stockErr *cart.StockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
