package support

import (
	"sort"
	"strings"

	"hrportal/internal/shared/apperror"
)

// transitions are monotonic: pending may skip straight to resolved, and
// nothing moves out of resolved.
var transitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusResolved},
	StatusInProgress: {StatusResolved},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidRequestType(requestType string) bool {
	for _, candidate := range RequestTypes {
		if candidate == requestType {
			return true
		}
	}
	return false
}

func ValidateSubmission(input SubmitInput) error {
	if strings.TrimSpace(input.RequestType) == "" {
		return apperror.Validation("requestType", "request type is required")
	}
	if !ValidRequestType(input.RequestType) {
		return apperror.Validation("requestType", "unknown request type")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apperror.Validation("description", "description is required")
	}
	return nil
}

func CountByStatus(requests []ServiceRequest) map[string]int {
	counts := make(map[string]int, 3)
	for _, req := range requests {
		counts[req.Status]++
	}
	return counts
}

type Filter struct {
	Status      string
	RequestType string
	EmployeeID  string
}

func Apply(requests []ServiceRequest, f Filter) []ServiceRequest {
	out := make([]ServiceRequest, 0, len(requests))
	for _, req := range requests {
		if f.Status != "" && f.Status != "all" && req.Status != f.Status {
			continue
		}
		if f.RequestType != "" && f.RequestType != "all" && req.RequestType != f.RequestType {
			continue
		}
		if f.EmployeeID != "" && f.EmployeeID != "all" && req.EmployeeID != f.EmployeeID {
			continue
		}
		out = append(out, req)
	}
	return out
}

// SortBy returns a stably sorted copy; ties keep original collection order.
func SortBy(requests []ServiceRequest, key, direction string) []ServiceRequest {
	out := make([]ServiceRequest, len(requests))
	copy(out, requests)

	desc := direction == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		less, equal := compare(out[i], out[j], key)
		if equal {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

func compare(a, b ServiceRequest, key string) (less, equal bool) {
	switch key {
	case "employeeName":
		return a.EmployeeName < b.EmployeeName, a.EmployeeName == b.EmployeeName
	case "requestType":
		return a.RequestType < b.RequestType, a.RequestType == b.RequestType
	case "status":
		return a.Status < b.Status, a.Status == b.Status
	case "id":
		return a.ID < b.ID, a.ID == b.ID
	default:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	}
}
