package employee

import "time"

// DefaultPageLimit is the page size used when the client sends none.
const DefaultPageLimit = 5

type CreateEmployeeRequest struct {
	EmployeeName   string `json:"employeeName" binding:"required"`
	EmployeeEmail  string `json:"employeeEmail" binding:"required,email"`
	EmployeeNumber string `json:"employeeNumber" binding:"required,len=10,numeric"`
	Dob            string `json:"dob" binding:"required,datetime=2006-01-02"`
	JoiningDate    string `json:"joiningDate" binding:"required,datetime=2006-01-02"`
}

// UpdateEmployeeRequest lists every mutable field. employeeCode is not here on
// purpose: it never changes after onboarding. Nil means "leave unchanged".
type UpdateEmployeeRequest struct {
	EmployeeName   *string `json:"employeeName" binding:"omitempty,min=1"`
	EmployeeEmail  *string `json:"employeeEmail" binding:"omitempty,email"`
	EmployeeNumber *string `json:"employeeNumber" binding:"omitempty,len=10,numeric"`
	Dob            *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	JoiningDate    *string `json:"joiningDate" binding:"omitempty,datetime=2006-01-02"`
}

type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeCode   int       `json:"employeeCode"`
	EmployeeName   string    `json:"employeeName"`
	EmployeeEmail  string    `json:"employeeEmail"`
	EmployeeNumber string    `json:"employeeNumber"`
	Dob            string    `json:"dob"`
	JoiningDate    string    `json:"joiningDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type EmployeeSummaryResponse struct {
	EmployeeCode int    `json:"employeeCode"`
	EmployeeName string `json:"employeeName"`
}

type CodeExistsResponse struct {
	Exists bool `json:"exists"`
}
