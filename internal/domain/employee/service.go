package employee

import (
	"context"

	"hrportal/internal/domain/authz"
	"hrportal/internal/shared/apperror"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context, session authz.Session) ([]Employee, error) {
	if !authz.Authorize(authz.OpEmployeesList, session.Role) {
		return nil, apperror.Forbidden("hr or admin role required")
	}
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, session authz.Session, id string) (Employee, error) {
	if !authz.Authorize(authz.OpEmployeesRead, session.Role) {
		return Employee{}, apperror.Forbidden("insufficient role")
	}
	if session.Role == authz.RoleEmployee && session.EmployeeID != id {
		return Employee{}, apperror.Forbidden("employees may only view their own record")
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, session authz.Session, email string) (Employee, error) {
	if !authz.Authorize(authz.OpEmployeesList, session.Role) {
		return Employee{}, apperror.Forbidden("hr or admin role required")
	}
	return s.Store.FindByEmail(ctx, email)
}

func (s *Service) Create(ctx context.Context, session authz.Session, input NewInput) (Employee, error) {
	if !authz.Authorize(authz.OpEmployeesCreate, session.Role) {
		return Employee{}, apperror.Forbidden("hr or admin role required")
	}
	if err := ValidateNew(input); err != nil {
		return Employee{}, err
	}
	return s.Store.Create(ctx, input)
}

// Signup creates an employee record without an authenticated session; the
// login flow is what later binds the record to a role.
func (s *Service) Signup(ctx context.Context, input NewInput) (Employee, error) {
	if err := ValidateNew(input); err != nil {
		return Employee{}, err
	}
	return s.Store.Create(ctx, input)
}

// Update applies a partial edit. HR and admin may change any field; an
// employee may edit only name, email, and phone on their own record.
func (s *Service) Update(ctx context.Context, session authz.Session, id string, input UpdateInput) (Employee, error) {
	if !authz.Authorize(authz.OpEmployeesUpdate, session.Role) {
		return Employee{}, apperror.Forbidden("insufficient role")
	}
	if session.Role == authz.RoleEmployee {
		if session.EmployeeID != id {
			return Employee{}, apperror.Forbidden("employees may only edit their own record")
		}
		if input.Department != nil || input.Title != nil || input.StartDate != nil ||
			input.Status != nil || input.EmploymentType != nil {
			return Employee{}, apperror.Forbidden("employees may only edit name, email, and phone")
		}
	}
	if err := ValidateUpdate(input); err != nil {
		return Employee{}, err
	}
	return s.Store.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, session authz.Session, id string) error {
	if !authz.Authorize(authz.OpEmployeesDelete, session.Role) {
		return apperror.Forbidden("hr or admin role required")
	}
	return s.Store.Delete(ctx, id)
}
