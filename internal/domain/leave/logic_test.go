package leave

import (
	"testing"
	"time"

	"hrportal/internal/shared/apperror"
)

func day(offset int) time.Time {
	base := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

func TestValidateSubmission(t *testing.T) {
	today := day(0)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantField string
	}{
		{
			name:  "tomorrow single day",
			start: day(1),
			end:   day(1),
		},
		{
			name:  "short range",
			start: day(1),
			end:   day(3),
		},
		{
			name:  "exactly thirty days apart",
			start: day(1),
			end:   day(31),
		},
		{
			name:      "starts today",
			start:     day(0),
			end:       day(2),
			wantField: "startDate",
		},
		{
			name:      "starts in the past",
			start:     day(-1),
			end:       day(2),
			wantField: "startDate",
		},
		{
			name:      "end before start",
			start:     day(5),
			end:       day(3),
			wantField: "endDate",
		},
		{
			name:      "thirty one days apart",
			start:     day(1),
			end:       day(32),
			wantField: "endDate",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSubmission(today, tc.start, tc.end)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr := apperror.From(err)
			if appErr.Code != apperror.CodeValidation {
				t.Fatalf("expected validation code, got %q", appErr.Code)
			}
			if appErr.Field != tc.wantField {
				t.Fatalf("expected field %q, got %q", tc.wantField, appErr.Field)
			}
		})
	}
}

func TestValidateSubmissionIgnoresTimeOfDay(t *testing.T) {
	// A request submitted at 23:59 for tomorrow morning is still valid.
	today := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)
	start := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.Local)
	if err := ValidateSubmission(today, start, start); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusDenied, true},
		{StatusApproved, StatusDenied, false},
		{StatusApproved, StatusPending, false},
		{StatusDenied, StatusApproved, false},
		{StatusDenied, StatusPending, false},
		{StatusPending, StatusPending, false},
		{"bogus", StatusApproved, false},
	}

	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestApplyFilter(t *testing.T) {
	requests := []LeaveRequest{
		{ID: "1", EmployeeID: "a", Status: StatusPending},
		{ID: "2", EmployeeID: "b", Status: StatusApproved},
		{ID: "3", EmployeeID: "a", Status: StatusDenied},
	}

	if got := Apply(requests, Filter{}); len(got) != 3 {
		t.Fatalf("empty filter should pass everything, got %d", len(got))
	}
	if got := Apply(requests, Filter{Status: "all", EmployeeID: "all"}); len(got) != 3 {
		t.Fatalf("all filter should pass everything, got %d", len(got))
	}

	got := Apply(requests, Filter{Status: StatusPending})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("status filter returned %+v", got)
	}

	got = Apply(requests, Filter{EmployeeID: "a"})
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("employee filter returned %+v", got)
	}
}

func TestSortByStable(t *testing.T) {
	requests := []LeaveRequest{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusApproved},
		{ID: "3", Status: StatusPending},
		{ID: "4", Status: StatusApproved},
	}

	sorted := SortBy(requests, "status", "asc")
	wantOrder := []string{"2", "4", "1", "3"}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("position %d: got %q, want %q (order %+v)", i, sorted[i].ID, want, sorted)
		}
	}

	// Equal keys keep collection order under desc too.
	sorted = SortBy(requests, "status", "desc")
	wantOrder = []string{"1", "3", "2", "4"}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("desc position %d: got %q, want %q", i, sorted[i].ID, want)
		}
	}

	// Input is never mutated.
	if requests[0].ID != "1" || requests[3].ID != "4" {
		t.Fatal("SortBy mutated its input")
	}
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]LeaveRequest{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusApproved},
	})
	if counts[StatusPending] != 2 || counts[StatusApproved] != 1 || counts[StatusDenied] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
