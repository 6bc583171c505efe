package authz

import "hrportal/internal/shared/apperror"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleEmployee, RoleHR, RoleAdmin:
		return Role(value), nil
	}
	return "", apperror.Validation("role", "must be one of employee, hr, admin")
}

// Session is the caller's identity and role, threaded explicitly through
// service calls rather than held in a global.
type Session struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
}
