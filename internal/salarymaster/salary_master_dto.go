package salarymaster

import "time"

const DefaultPageLimit = 5

// CreateSalaryMasterRequest carries earnings only; every derived figure is
// computed on the server.
type CreateSalaryMasterRequest struct {
	EmployeeCode   int    `json:"employeeCode" binding:"required,min=1000,max=9999"`
	Basic          *Money `json:"basic" binding:"required"`
	HRA            *Money `json:"hra" binding:"required"`
	Conveyance     *Money `json:"conveyance" binding:"required"`
	OtherAllowance *Money `json:"otherAllowance"`
}

func (r CreateSalaryMasterRequest) Earnings() Earnings {
	return Earnings{
		Basic:          deref(r.Basic),
		HRA:            deref(r.HRA),
		Conveyance:     deref(r.Conveyance),
		OtherAllowance: deref(r.OtherAllowance),
	}
}

// UpdateSalaryMasterRequest is a partial patch of the earnings. Nil leaves
// the stored value unchanged.
type UpdateSalaryMasterRequest struct {
	Basic          *Money `json:"basic"`
	HRA            *Money `json:"hra"`
	Conveyance     *Money `json:"conveyance"`
	OtherAllowance *Money `json:"otherAllowance"`
}

func (r UpdateSalaryMasterRequest) mergeInto(e Earnings) Earnings {
	if r.Basic != nil {
		e.Basic = *r.Basic
	}
	if r.HRA != nil {
		e.HRA = *r.HRA
	}
	if r.Conveyance != nil {
		e.Conveyance = *r.Conveyance
	}
	if r.OtherAllowance != nil {
		e.OtherAllowance = *r.OtherAllowance
	}
	return e
}

type SalaryMasterResponse struct {
	ID             string    `json:"id"`
	EmployeeCode   int       `json:"employeeCode"`
	Basic          Money     `json:"basic"`
	HRA            Money     `json:"hra"`
	Conveyance     Money     `json:"conveyance"`
	OtherAllowance Money     `json:"otherAllowance"`
	GrossSalary    Money     `json:"grossSalary"`
	EmployeePF     Money     `json:"employeePF"`
	EmployerPF     Money     `json:"employerPF"`
	EPS            Money     `json:"eps"`
	EPF            Money     `json:"epf"`
	EmployeeESIC   Money     `json:"employeeESIC"`
	EmployerESIC   Money     `json:"employerESIC"`
	NetSalary      Money     `json:"netSalary"`
	CTC            Money     `json:"ctc"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func deref(m *Money) Money {
	if m == nil {
		return Money{}
	}
	return *m
}
