package routes

import (
	"tokopos/controllers"
	"tokopos/middleware"
	"tokopos/models"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, ctrl *controllers.Set) {
	jwt := middleware.JWTMiddleware
	managers := middleware.RequireRoles(ctrl.Auth, models.RoleOwner, models.RoleStoreManager)
	ownerOnly := middleware.RequireRoles(ctrl.Auth, models.RoleOwner)

	// session
	app.Post("/login", ctrl.Users.Login)
	app.Post("/logout", jwt, ctrl.Users.Logout)

	// catalog
	app.Get("/products", jwt, ctrl.Products.List)
	app.Get("/products/:product_id", jwt, ctrl.Products.Get)
	app.Post("/products", jwt, managers, ctrl.Products.Create)
	app.Put("/products/:product_id", jwt, managers, ctrl.Products.Update)
	app.Delete("/products/:product_id", jwt, managers, ctrl.Products.Delete)

	// pos
	app.Get("/cart", jwt, ctrl.Cart.Get)
	app.Post("/cart/items", jwt, ctrl.Cart.Add)
	app.Patch("/cart/items/:product_id", jwt, ctrl.Cart.UpdateQuantity)
	app.Delete("/cart", jwt, ctrl.Cart.Clear)
	app.Post("/checkout", jwt, ctrl.Cart.DoCheckout)

	// sales
	app.Get("/sales/report", jwt, managers, ctrl.Sales.Report)
	app.Get("/sales/journal", jwt, managers, ctrl.Sales.Journal)
	app.Get("/sales/journal/export", jwt, managers, ctrl.Sales.ExportCSV)

	// employees
	app.Get("/employees", jwt, ownerOnly, ctrl.Users.List)
	app.Post("/employees", jwt, ownerOnly, ctrl.Users.Create)
	app.Put("/employees/:employee_id", jwt, ownerOnly, ctrl.Users.Update)
	app.Patch("/employees/:employee_id/active", jwt, ownerOnly, ctrl.Users.ToggleActive)
}
