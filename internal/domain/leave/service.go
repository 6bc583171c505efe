package leave

import (
	"context"
	"strings"
	"time"

	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/shared/apperror"
)

type Service struct {
	Store     *Store
	Employees *employee.Store
}

func NewService(store *Store, employees *employee.Store) *Service {
	return &Service{Store: store, Employees: employees}
}

// Submit creates a pending request for the calling employee. Validation
// failures never reach the store.
func (s *Service) Submit(ctx context.Context, session authz.Session, input SubmitInput) (LeaveRequest, error) {
	if !authz.Authorize(authz.OpLeaveSubmit, session.Role) {
		return LeaveRequest{}, apperror.Forbidden("employee role required")
	}
	if session.EmployeeID != input.EmployeeID {
		return LeaveRequest{}, apperror.Forbidden("leave may only be requested for yourself")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return LeaveRequest{}, apperror.Validation("reason", "reason is required")
	}
	if err := ValidateSubmission(time.Now(), input.StartDate, input.EndDate); err != nil {
		return LeaveRequest{}, err
	}
	if _, err := s.Employees.Get(ctx, input.EmployeeID); err != nil {
		return LeaveRequest{}, err
	}
	return s.Store.Create(ctx, input.EmployeeID, input.StartDate, input.EndDate, input.Reason)
}

func (s *Service) Approve(ctx context.Context, session authz.Session, id string) (LeaveRequest, error) {
	return s.decide(ctx, session, id, StatusApproved)
}

func (s *Service) Deny(ctx context.Context, session authz.Session, id string) (LeaveRequest, error) {
	return s.decide(ctx, session, id, StatusDenied)
}

func (s *Service) decide(ctx context.Context, session authz.Session, id, to string) (LeaveRequest, error) {
	if !authz.Authorize(authz.OpLeaveDecide, session.Role) {
		return LeaveRequest{}, apperror.Forbidden("hr or admin role required")
	}

	req, err := s.Store.Get(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if !CanTransition(req.Status, to) {
		return LeaveRequest{}, apperror.InvalidState("leave request is already " + req.Status)
	}

	moved, err := s.Store.UpdateStatus(ctx, id, req.Status, to)
	if err != nil {
		return LeaveRequest{}, err
	}
	if !moved {
		// Lost a race with another decision; the stored status wins.
		return LeaveRequest{}, apperror.InvalidState("leave request changed state, re-fetch and retry")
	}

	req.Status = to
	return req, nil
}

// List returns a filtered, sorted snapshot. Employees see only their own
// requests; hr and admin see all.
func (s *Service) List(ctx context.Context, session authz.Session, f Filter, sortKey, direction string) ([]LeaveRequest, error) {
	if !authz.Authorize(authz.OpLeaveList, session.Role) {
		return nil, apperror.Forbidden("insufficient role")
	}
	if session.Role == authz.RoleEmployee {
		f.EmployeeID = session.EmployeeID
	}

	requests, err := s.Store.List(ctx, f.EmployeeID)
	if err != nil {
		return nil, err
	}
	f.EmployeeID = ""
	return SortBy(Apply(requests, f), sortKey, direction), nil
}
