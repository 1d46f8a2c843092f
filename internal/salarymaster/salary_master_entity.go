package salarymaster

import (
	"time"

	"github.com/google/uuid"
)

// SalaryMaster is the payroll record of one employee. employee_code has no
// foreign key: deleting the employee leaves this row in place.
type SalaryMaster struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode   int       `gorm:"not null;uniqueIndex:uq_salary_master_employee_code"`
	Basic          Money     `gorm:"type:numeric(15,2);not null;default:0"`
	HRA            Money     `gorm:"column:hra;type:numeric(15,2);not null;default:0"`
	Conveyance     Money     `gorm:"type:numeric(15,2);not null;default:0"`
	OtherAllowance Money     `gorm:"type:numeric(15,2);not null;default:0"`
	GrossSalary    Money     `gorm:"type:numeric(15,2);not null"`
	EmployeePF     Money     `gorm:"column:employee_pf;type:numeric(15,2);not null"`
	EmployerPF     Money     `gorm:"column:employer_pf;type:numeric(15,2);not null"`
	EPS            Money     `gorm:"column:eps;type:numeric(15,2);not null"`
	EPF            Money     `gorm:"column:epf;type:numeric(15,2);not null"`
	EmployeeESIC   Money     `gorm:"column:employee_esic;type:numeric(15,2);not null"`
	EmployerESIC   Money     `gorm:"column:employer_esic;type:numeric(15,2);not null"`
	NetSalary      Money     `gorm:"type:numeric(15,2);not null"`
	CTC            Money     `gorm:"column:ctc;type:numeric(15,2);not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

func (SalaryMaster) TableName() string {
	return "salary_masters"
}

func (s *SalaryMaster) Earnings() Earnings {
	return Earnings{
		Basic:          s.Basic,
		HRA:            s.HRA,
		Conveyance:     s.Conveyance,
		OtherAllowance: s.OtherAllowance,
	}
}

// apply stores the earnings and the figures derived from them.
func (s *SalaryMaster) apply(e Earnings) {
	f := Compute(e)

	s.Basic = e.Basic
	s.HRA = e.HRA
	s.Conveyance = e.Conveyance
	s.OtherAllowance = e.OtherAllowance
	s.GrossSalary = f.Gross
	s.EmployeePF = f.EmployeePF
	s.EmployerPF = f.EmployerPF
	s.EPS = f.EPS
	s.EPF = f.EPF
	s.EmployeeESIC = f.EmployeeESIC
	s.EmployerESIC = f.EmployerESIC
	s.NetSalary = f.Net
	s.CTC = f.CTC
}
