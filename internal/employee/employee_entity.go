package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode   int       `gorm:"not null;uniqueIndex:uq_employee_code"`
	EmployeeName   string    `gorm:"type:varchar(150);not null"`
	EmployeeEmail  string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	EmployeeNumber string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_employee_number"`
	Dob            time.Time `gorm:"type:date;not null"`
	JoiningDate    time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// EmployeeSummary is the name+code projection used by dropdowns.
type EmployeeSummary struct {
	EmployeeCode int
	EmployeeName string
}
