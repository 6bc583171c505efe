package employee

import (
	"sort"
	"strings"

	"hrportal/internal/shared/apperror"
)

var Statuses = []string{
	"Probationary",
	"Active",
	"On Leave",
	"Suspended",
	"Resigned",
	"Terminated",
	"Retired",
}

var EmploymentTypes = []string{
	"Full-Time",
	"Part-Time",
	"Contractor",
	"Intern",
}

func ValidStatus(status string) bool {
	if status == "" {
		return true
	}
	for _, candidate := range Statuses {
		if candidate == status {
			return true
		}
	}
	return false
}

func ValidEmploymentType(employmentType string) bool {
	if employmentType == "" {
		return true
	}
	for _, candidate := range EmploymentTypes {
		if candidate == employmentType {
			return true
		}
	}
	return false
}

// NeedsAttention reports whether the record lacks an assigned employment
// status, which floats it to the top of HR listings.
func NeedsAttention(e Employee) bool {
	return strings.TrimSpace(e.Status) == ""
}

func ValidateNew(input NewInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperror.Validation("name", "name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return apperror.Validation("email", "email is required")
	}
	if !ValidStatus(input.Status) {
		return apperror.Validation("status", "unknown employment status")
	}
	if !ValidEmploymentType(input.EmploymentType) {
		return apperror.Validation("employmentType", "unknown employment type")
	}
	return nil
}

func ValidateUpdate(input UpdateInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return apperror.Validation("name", "name is required")
	}
	if input.Email != nil && strings.TrimSpace(*input.Email) == "" {
		return apperror.Validation("email", "email is required")
	}
	if input.Status != nil && !ValidStatus(*input.Status) {
		return apperror.Validation("status", "unknown employment status")
	}
	if input.EmploymentType != nil && !ValidEmploymentType(*input.EmploymentType) {
		return apperror.Validation("employmentType", "unknown employment type")
	}
	return nil
}

// SortBy returns a sorted copy. Records needing attention sort first
// regardless of the active key; the comparator then applies within each
// partition. Ties keep the original collection order.
func SortBy(employees []Employee, key, direction string) []Employee {
	out := make([]Employee, len(employees))
	copy(out, employees)

	desc := direction == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := NeedsAttention(out[i]), NeedsAttention(out[j])
		if ai != aj {
			return ai
		}
		vi, vj := sortValue(out[i], key), sortValue(out[j], key)
		if vi == vj {
			return false
		}
		if desc {
			return vi > vj
		}
		return vi < vj
	})
	return out
}

func sortValue(e Employee, key string) string {
	switch key {
	case "email":
		return e.Email
	case "department":
		return e.Department
	case "title":
		return e.Title
	case "startDate":
		return e.StartDate
	case "status":
		return e.Status
	case "employmentType":
		return e.EmploymentType
	default:
		return e.Name
	}
}
