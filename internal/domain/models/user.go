package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleAgent    = "agent"
	RoleCustomer = "customer"
)

// Roles lists the selectable account roles in signup order.
var Roles = []string{RoleAdmin, RoleAgent, RoleCustomer}

// ValidRole reports whether role is one of the account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never rendered
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
