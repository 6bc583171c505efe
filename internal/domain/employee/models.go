package employee

import "time"

type Employee struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Department     string    `json:"department"`
	Title          string    `json:"title"`
	StartDate      string    `json:"startDate"`
	Status         string    `json:"status,omitempty"`
	EmploymentType string    `json:"employmentType,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewInput carries the fields of an employee record minus the store-assigned
// id. Status and EmploymentType may be empty; an empty status flags the
// record for HR follow-up.
type NewInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Title          string `json:"title"`
	StartDate      string `json:"startDate"`
	Status         string `json:"status"`
	EmploymentType string `json:"employmentType"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Department     *string `json:"department"`
	Title          *string `json:"title"`
	StartDate      *string `json:"startDate"`
	Status         *string `json:"status"`
	EmploymentType *string `json:"employmentType"`
}
