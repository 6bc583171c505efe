package leave

import (
	"sort"
	"time"

	"hrportal/internal/shared/apperror"
)

// MaxSpanDays caps the calendar-day difference between start and end of a
// single leave request.
const MaxSpanDays = 30

// transitions lists the legal status moves. Approved and denied are terminal.
var transitions = map[string][]string{
	StatusPending: {StatusApproved, StatusDenied},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateSubmission checks the date rules against the submission day:
// start no earlier than tomorrow (local calendar day), end no earlier than
// start, and end at most MaxSpanDays days after start.
func ValidateSubmission(today, start, end time.Time) error {
	tomorrow := truncateDay(today).AddDate(0, 0, 1)
	if truncateDay(start).Before(tomorrow) {
		return apperror.Validation("startDate", "start date must be tomorrow or later")
	}
	if truncateDay(end).Before(truncateDay(start)) {
		return apperror.Validation("endDate", "end date must be on or after the start date")
	}
	if truncateDay(end).After(truncateDay(start).AddDate(0, 0, MaxSpanDays)) {
		return apperror.Validation("endDate", "leave may not span more than 30 days")
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func CountByStatus(requests []LeaveRequest) map[string]int {
	counts := make(map[string]int, 3)
	for _, req := range requests {
		counts[req.Status]++
	}
	return counts
}

// Filter is an exact-match predicate set; an empty or "all" field applies no
// constraint.
type Filter struct {
	Status     string
	EmployeeID string
}

func Apply(requests []LeaveRequest, f Filter) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(requests))
	for _, req := range requests {
		if f.Status != "" && f.Status != "all" && req.Status != f.Status {
			continue
		}
		if f.EmployeeID != "" && f.EmployeeID != "all" && req.EmployeeID != f.EmployeeID {
			continue
		}
		out = append(out, req)
	}
	return out
}

// SortBy returns a stably sorted copy: equal keys keep the original
// collection order.
func SortBy(requests []LeaveRequest, key, direction string) []LeaveRequest {
	out := make([]LeaveRequest, len(requests))
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

func compare(a, b LeaveRequest, key string) (less, equal bool) {
	switch key {
	case "startDate":
		return a.StartDate.Before(b.StartDate), a.StartDate.Equal(b.StartDate)
	case "endDate":
		return a.EndDate.Before(b.EndDate), a.EndDate.Equal(b.EndDate)
	case "employeeId":
		return a.EmployeeID < b.EmployeeID, a.EmployeeID == b.EmployeeID
	case "status":
		return a.Status < b.Status, a.Status == b.Status
	case "id":
		return a.ID < b.ID, a.ID == b.ID
	default:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	}
}
