package support

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

// RequestTypes is the fixed set of service request categories.
var RequestTypes = []string{
	"Update Personal Info",
	"HR Support",
	"IT Support",
	"Payroll Inquiry",
	"Benefits Question",
	"Training Request",
	"Equipment Request",
	"Other",
}

type ServiceRequest struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	RequestType  string    `json:"requestType"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SubmitInput struct {
	EmployeeID  string `json:"employeeId"`
	RequestType string `json:"requestType"`
	Description string `json:"description"`
}
