package authz

type Operation string

const (
	OpEmployeesList   Operation = "employees.list"
	OpEmployeesRead   Operation = "employees.read"
	OpEmployeesCreate Operation = "employees.create"
	OpEmployeesUpdate Operation = "employees.update"
	OpEmployeesDelete Operation = "employees.delete"
	OpLeaveList       Operation = "leave.list"
	OpLeaveSubmit     Operation = "leave.submit"
	OpLeaveDecide     Operation = "leave.decide"
	OpServiceList     Operation = "service.list"
	OpServiceSubmit   Operation = "service.submit"
	OpServiceAdvance  Operation = "service.advance"
	OpActivityRead    Operation = "activity.read"
	OpActivityWrite   Operation = "activity.write"
	OpReportsAdmin    Operation = "reports.admin"
	OpReportsHR       Operation = "reports.hr"
	OpExport          Operation = "export"
)

// policy is the single authorization table every mutation and read entry
// point consults. A role absent from an operation's list is denied.
var policy = map[Operation][]Role{
	OpEmployeesList:   {RoleHR, RoleAdmin},
	OpEmployeesRead:   {RoleEmployee, RoleHR, RoleAdmin},
	OpEmployeesCreate: {RoleHR, RoleAdmin},
	OpEmployeesUpdate: {RoleEmployee, RoleHR, RoleAdmin},
	OpEmployeesDelete: {RoleHR, RoleAdmin},
	OpLeaveList:       {RoleEmployee, RoleHR, RoleAdmin},
	OpLeaveSubmit:     {RoleEmployee},
	OpLeaveDecide:     {RoleHR, RoleAdmin},
	OpServiceList:     {RoleEmployee, RoleHR, RoleAdmin},
	OpServiceSubmit:   {RoleEmployee},
	OpServiceAdvance:  {RoleHR, RoleAdmin},
	OpActivityRead:    {RoleAdmin},
	OpActivityWrite:   {RoleEmployee, RoleHR, RoleAdmin},
	OpReportsAdmin:    {RoleAdmin},
	OpReportsHR:       {RoleHR, RoleAdmin},
	OpExport:          {RoleHR, RoleAdmin},
}

// Authorize reports whether role may invoke op. Denial is a routing decision
// for the caller, not an exceptional condition.
func Authorize(op Operation, role Role) bool {
	for _, allowed := range policy[op] {
		if allowed == role {
			return true
		}
	}
	return false
}
