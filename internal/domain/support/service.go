package support

import (
	"context"

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

// Submit creates a pending request and snapshots the employee's name so the
// HR queue stays readable even after the employee record changes.
func (s *Service) Submit(ctx context.Context, session authz.Session, input SubmitInput) (ServiceRequest, error) {
	if !authz.Authorize(authz.OpServiceSubmit, session.Role) {
		return ServiceRequest{}, apperror.Forbidden("employee role required")
	}
	if session.EmployeeID != input.EmployeeID {
		return ServiceRequest{}, apperror.Forbidden("service requests may only be raised for yourself")
	}
	if err := ValidateSubmission(input); err != nil {
		return ServiceRequest{}, err
	}
	emp, err := s.Employees.Get(ctx, input.EmployeeID)
	if err != nil {
		return ServiceRequest{}, err
	}
	return s.Store.Create(ctx, emp.ID, emp.Name, input.RequestType, input.Description)
}

func (s *Service) Start(ctx context.Context, session authz.Session, id string) (ServiceRequest, error) {
	return s.advance(ctx, session, id, StatusInProgress)
}

func (s *Service) Resolve(ctx context.Context, session authz.Session, id string) (ServiceRequest, error) {
	return s.advance(ctx, session, id, StatusResolved)
}

func (s *Service) advance(ctx context.Context, session authz.Session, id, to string) (ServiceRequest, error) {
	if !authz.Authorize(authz.OpServiceAdvance, session.Role) {
		return ServiceRequest{}, apperror.Forbidden("hr or admin role required")
	}

	req, err := s.Store.Get(ctx, id)
	if err != nil {
		return ServiceRequest{}, err
	}
	if !CanTransition(req.Status, to) {
		return ServiceRequest{}, apperror.InvalidState("service request is " + req.Status)
	}

	moved, err := s.Store.UpdateStatus(ctx, id, req.Status, to)
	if err != nil {
		return ServiceRequest{}, err
	}
	if !moved {
		return ServiceRequest{}, apperror.InvalidState("service request changed state, re-fetch and retry")
	}

	req.Status = to
	return req, nil
}

func (s *Service) List(ctx context.Context, session authz.Session, f Filter, sortKey, direction string) ([]ServiceRequest, error) {
	if !authz.Authorize(authz.OpServiceList, session.Role) {
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
