package models

import "time"

type Role string

const (
	RoleOwner        Role = "owner"
	RoleStoreManager Role = "store_manager"
	RoleShopkeeper   Role = "shopkeeper"
)

// Valid reports whether r is one of the three store roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleStoreManager, RoleShopkeeper:
		return true
	}
	return false
}

type Employee struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"` // bcrypt hash
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy with the credential blanked, for responses and
// for the cashier snapshot embedded in transactions.
func (e Employee) Sanitized() Employee {
	e.Password = ""
	return e
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
