package controllers

import (
	"errors"
	"fmt"

	"tokopos/auth"
	"tokopos/cart"
	"tokopos/models"
	"tokopos/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Auth *auth.Service
	Cart *cart.Service
}

func (ct *UserController) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}

	emp, err := ct.Auth.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// New identity, new cart.
	if err := ct.Cart.SwitchUser(emp.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := utils.GenerateJWTToken(emp.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}
	utils.SetJWTCookie(c, token)

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome, %s", emp.Name),
		"employee": fiber.Map{
			"id":   emp.ID,
			"name": emp.Name,
			"role": emp.Role,
		},
		"token": token,
	})
}

func (ct *UserController) Logout(c *fiber.Ctx) error {
	if err := ct.Auth.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ct.Cart.SwitchUser(""); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (ct *UserController) List(c *fiber.Ctx) error {
	employees, err := ct.Auth.Employees()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(employees)
}

func (ct *UserController) Create(c *fiber.Ctx) error {
	var input auth.EmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	emp, err := ct.Auth.CreateEmployee(input)
	if err != nil {
		return employeeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Employee created",
		"employee_id": emp.ID,
	})
}

func (ct *UserController) Update(c *fiber.Ctx) error {
	var input auth.EmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	emp, err := ct.Auth.UpdateEmployee(c.Params("employee_id"), input)
	if err != nil {
		return employeeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Employee updated successfully",
		"employee": emp,
	})
}

// ToggleActive flips an employee's active flag; the session's own record
// is rejected so nobody locks themselves out.
func (ct *UserController) ToggleActive(c *fiber.Ctx) error {
	session, err := ct.Auth.CurrentSession()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	emp, err := ct.Auth.ToggleActive(c.Params("employee_id"), session)
	if err != nil {
		return employeeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Employee status updated",
		"employee": emp,
	})
}

func employeeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrSelfDeactivate):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
