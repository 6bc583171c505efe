package reports

import (
	"context"
	"time"

	"hrportal/internal/domain/activity"
	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/support"
	"hrportal/internal/shared/apperror"
)

type Service struct {
	Employees *employee.Store
	Leave     *leave.Store
	Support   *support.Store
	Activity  *activity.Service
}

func NewService(employees *employee.Store, leaveStore *leave.Store, supportStore *support.Store, activitySvc *activity.Service) *Service {
	return &Service{Employees: employees, Leave: leaveStore, Support: supportStore, Activity: activitySvc}
}

type AdminOverview struct {
	TotalEmployees     int `json:"totalEmployees"`
	TotalLeaveRequests int `json:"totalLeaveRequests"`
	PendingRequests    int `json:"pendingRequests"`
	ApprovedRequests   int `json:"approvedRequests"`
	DeniedRequests     int `json:"deniedRequests"`
}

type HROverview struct {
	TotalEmployees         int `json:"totalEmployees"`
	ActiveEmployees        int `json:"activeEmployees"`
	PendingLeaveRequests   int `json:"pendingLeaveRequests"`
	PendingServiceRequests int `json:"pendingServiceRequests"`
	NeedsAttention         int `json:"needsAttention"`
}

func (s *Service) AdminOverview(ctx context.Context, session authz.Session) (AdminOverview, error) {
	if !authz.Authorize(authz.OpReportsAdmin, session.Role) {
		return AdminOverview{}, apperror.Forbidden("admin role required")
	}

	employees, err := s.Employees.List(ctx)
	if err != nil {
		return AdminOverview{}, err
	}
	requests, err := s.Leave.List(ctx, "")
	if err != nil {
		return AdminOverview{}, err
	}

	counts := leave.CountByStatus(requests)
	return AdminOverview{
		TotalEmployees:     len(employees),
		TotalLeaveRequests: len(requests),
		PendingRequests:    counts[leave.StatusPending],
		ApprovedRequests:   counts[leave.StatusApproved],
		DeniedRequests:     counts[leave.StatusDenied],
	}, nil
}

func (s *Service) HROverview(ctx context.Context, session authz.Session) (HROverview, error) {
	if !authz.Authorize(authz.OpReportsHR, session.Role) {
		return HROverview{}, apperror.Forbidden("hr or admin role required")
	}

	employees, err := s.Employees.List(ctx)
	if err != nil {
		return HROverview{}, err
	}
	leaveRequests, err := s.Leave.List(ctx, "")
	if err != nil {
		return HROverview{}, err
	}
	serviceRequests, err := s.Support.List(ctx, "")
	if err != nil {
		return HROverview{}, err
	}

	overview := HROverview{
		TotalEmployees:         len(employees),
		PendingLeaveRequests:   leave.CountByStatus(leaveRequests)[leave.StatusPending],
		PendingServiceRequests: support.CountByStatus(serviceRequests)[support.StatusPending],
	}
	for _, emp := range employees {
		if employee.NeedsAttention(emp) {
			overview.NeedsAttention++
		}
		if emp.Status == "Active" {
			overview.ActiveEmployees++
		}
	}
	return overview, nil
}

// CSV row builders. The first row is always the header; handlers stream the
// rows with encoding/csv.

func (s *Service) EmployeesCSV(ctx context.Context, session authz.Session) ([][]string, error) {
	if !authz.Authorize(authz.OpExport, session.Role) {
		return nil, apperror.Forbidden("hr or admin role required")
	}
	employees, err := s.Employees.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Name", "Email", "Phone", "Department", "Title", "Start Date", "Status", "Employment Type"}}
	for _, emp := range employees {
		rows = append(rows, []string{emp.ID, emp.Name, emp.Email, emp.Phone, emp.Department, emp.Title, emp.StartDate, emp.Status, emp.EmploymentType})
	}
	return rows, nil
}

func (s *Service) LeaveRequestsCSV(ctx context.Context, session authz.Session) ([][]string, error) {
	if !authz.Authorize(authz.OpExport, session.Role) {
		return nil, apperror.Forbidden("hr or admin role required")
	}
	requests, err := s.Leave.List(ctx, "")
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Employee ID", "Start Date", "End Date", "Reason", "Status", "Created At"}}
	for _, req := range requests {
		rows = append(rows, []string{
			req.ID,
			req.EmployeeID,
			req.StartDate.Format("2006-01-02"),
			req.EndDate.Format("2006-01-02"),
			req.Reason,
			req.Status,
			req.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (s *Service) ServiceRequestsCSV(ctx context.Context, session authz.Session) ([][]string, error) {
	if !authz.Authorize(authz.OpExport, session.Role) {
		return nil, apperror.Forbidden("hr or admin role required")
	}
	requests, err := s.Support.List(ctx, "")
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Employee", "Request Type", "Description", "Status", "Created At"}}
	for _, req := range requests {
		rows = append(rows, []string{
			req.ID,
			req.EmployeeName,
			req.RequestType,
			req.Description,
			req.Status,
			req.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (s *Service) ActivityLogsCSV(ctx context.Context, session authz.Session) ([][]string, error) {
	if !authz.Authorize(authz.OpActivityRead, session.Role) {
		return nil, apperror.Forbidden("admin role required")
	}
	entries, err := s.Activity.List(ctx, session, "")
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Username", "Email", "Role", "Action", "Details", "Timestamp"}}
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.ID,
			entry.Username,
			entry.Email,
			entry.Role,
			entry.Action,
			entry.Details,
			entry.Timestamp.Format(time.RFC3339),
		})
	}
	return rows, nil
}
