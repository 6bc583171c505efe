package employee

import (
	"testing"

	"hrportal/internal/shared/apperror"
)

func TestNeedsAttention(t *testing.T) {
	if !NeedsAttention(Employee{Status: ""}) {
		t.Error("blank status should need attention")
	}
	if !NeedsAttention(Employee{Status: "   "}) {
		t.Error("whitespace status should need attention")
	}
	if NeedsAttention(Employee{Status: "Active"}) {
		t.Error("assigned status should not need attention")
	}
}

func TestValidateNew(t *testing.T) {
	valid := NewInput{Name: "Dana Cruz", Email: "dana@company.com", Status: "Active", EmploymentType: "Full-Time"}
	if err := ValidateNew(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*NewInput)
		wantField string
	}{
		{"blank name", func(in *NewInput) { in.Name = " " }, "name"},
		{"blank email", func(in *NewInput) { in.Email = "" }, "email"},
		{"unknown status", func(in *NewInput) { in.Status = "Vacationing" }, "status"},
		{"unknown employment type", func(in *NewInput) { in.EmploymentType = "Freelance" }, "employmentType"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			appErr := apperror.From(ValidateNew(input))
			if appErr.Code != apperror.CodeValidation || appErr.Field != tc.wantField {
				t.Fatalf("expected validation on %q, got %+v", tc.wantField, appErr)
			}
		})
	}

	// Empty status and employment type are allowed; the record is just
	// flagged for follow-up.
	open := NewInput{Name: "Dana Cruz", Email: "dana@company.com"}
	if err := ValidateNew(open); err != nil {
		t.Fatalf("unexpected error for open status: %v", err)
	}
}

func TestValidateUpdate(t *testing.T) {
	blank := " "
	unknown := "Vacationing"
	good := "Active"

	if err := ValidateUpdate(UpdateInput{Status: &good}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateUpdate(UpdateInput{}); err != nil {
		t.Fatalf("empty update should be valid: %v", err)
	}
	if err := ValidateUpdate(UpdateInput{Name: &blank}); err == nil {
		t.Fatal("blank name should be rejected")
	}
	if err := ValidateUpdate(UpdateInput{Status: &unknown}); err == nil {
		t.Fatal("unknown status should be rejected")
	}
}

func TestSortByPartitionsNeedsAttentionFirst(t *testing.T) {
	employees := []Employee{
		{ID: "1", Name: "Zoe", Status: "Active"},
		{ID: "2", Name: "Yuri", Status: ""},
		{ID: "3", Name: "Abe", Status: "Active"},
		{ID: "4", Name: "Bea", Status: ""},
	}

	sorted := SortBy(employees, "name", "asc")
	wantOrder := []string{"4", "2", "3", "1"}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("position %d: got %q, want %q (order %+v)", i, sorted[i].ID, want, sorted)
		}
	}

	// Needing attention still floats first when sorting descending.
	sorted = SortBy(employees, "name", "desc")
	wantOrder = []string{"2", "4", "1", "3"}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("desc position %d: got %q, want %q", i, sorted[i].ID, want)
		}
	}
}

func TestSortByTiesKeepOrder(t *testing.T) {
	employees := []Employee{
		{ID: "1", Name: "Same", Status: "Active"},
		{ID: "2", Name: "Same", Status: "Active"},
		{ID: "3", Name: "Same", Status: "Active"},
	}
	sorted := SortBy(employees, "name", "asc")
	for i, want := range []string{"1", "2", "3"} {
		if sorted[i].ID != want {
			t.Fatalf("tie order broken at %d: got %q", i, sorted[i].ID)
		}
	}
}
