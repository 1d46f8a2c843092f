package salarymaster

import "github.com/shopspring/decimal"

// Statutory rates in basis points (1 bp = 0.01%).
const (
	PFRateBps           = 1200 // 12% of basic, paid by employee and matched by employer
	EPSRateBps          = 833  // 8.33% of basic, pension share of the employer PF
	EmployeeESICRateBps = 75   // 0.75% of gross
	EmployerESICRateBps = 325  // 3.25% of gross
)

// ESICWageCeiling is the inclusive gross salary up to which ESIC applies.
var ESICWageCeiling = Rupees(21000)

type Earnings struct {
	Basic          Money
	HRA            Money
	Conveyance     Money
	OtherAllowance Money
}

func (e Earnings) HasNegative() bool {
	return e.Basic.IsNegative() || e.HRA.IsNegative() ||
		e.Conveyance.IsNegative() || e.OtherAllowance.IsNegative()
}

type Figures struct {
	Gross        Money
	EmployeePF   Money
	EmployerPF   Money
	EPS          Money
	EPF          Money
	EmployeeESIC Money
	EmployerESIC Money
	Net          Money
	CTC          Money
}

// Compute derives every payroll figure from the earnings. It does not
// validate: negative inputs give meaningless figures, never a panic.
func Compute(e Earnings) Figures {
	gross := e.Basic.Add(e.HRA.Decimal).Add(e.Conveyance.Decimal).Add(e.OtherAllowance.Decimal)

	pf := applyRate(e.Basic.Decimal, PFRateBps)
	eps := applyRate(e.Basic.Decimal, EPSRateBps)

	employeeESIC, employerESIC := decimal.Zero, decimal.Zero
	if gross.LessThanOrEqual(ESICWageCeiling.Decimal) {
		employeeESIC = applyRate(gross, EmployeeESICRateBps)
		employerESIC = applyRate(gross, EmployerESICRateBps)
	}

	return Figures{
		Gross:        NewMoney(gross),
		EmployeePF:   NewMoney(pf),
		EmployerPF:   NewMoney(pf),
		EPS:          NewMoney(eps),
		EPF:          NewMoney(pf.Sub(eps)),
		EmployeeESIC: NewMoney(employeeESIC),
		EmployerESIC: NewMoney(employerESIC),
		Net:          NewMoney(gross.Sub(pf).Sub(employeeESIC)),
		CTC:          NewMoney(gross.Add(pf).Add(employerESIC)),
	}
}

// applyRate returns amount*bps/10000 rounded half away from zero to the
// nearest paisa.
func applyRate(amount decimal.Decimal, bps int64) decimal.Decimal {
	return amount.Mul(decimal.New(bps, -4)).Round(moneyPlaces)
}
