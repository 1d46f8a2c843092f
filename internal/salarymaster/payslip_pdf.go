package salarymaster

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type Payslip struct {
	Record       SalaryMaster
	EmployeeName string
	GeneratedAt  time.Time
}

type payslipLine struct {
	label  string
	amount Money
}

// RenderPayslip writes a one page A4 payslip for the monthly salary master.
func RenderPayslip(w io.Writer, p Payslip) error {
	sm := p.Record

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %d", sm.EmployeeCode), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	name := p.EmployeeName
	if name == "" {
		name = "(employee record removed)"
	}
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", name))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee code: %d", sm.EmployeeCode))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", p.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Earnings", []payslipLine{
		{"Basic", sm.Basic},
		{"House rent allowance", sm.HRA},
		{"Conveyance", sm.Conveyance},
		{"Other allowance", sm.OtherAllowance},
		{"Gross salary", sm.GrossSalary},
	})
	section(pdf, "Deductions", []payslipLine{
		{"Provident fund (employee)", sm.EmployeePF},
		{"ESIC (employee)", sm.EmployeeESIC},
	})
	section(pdf, "Employer contributions", []payslipLine{
		{"Provident fund (employer)", sm.EmployerPF},
		{"  of which EPS", sm.EPS},
		{"  of which EPF", sm.EPF},
		{"ESIC (employer)", sm.EmployerESIC},
	})

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "INR "+sm.NetSalary.Fixed(), "T", 1, "R", false, 0, "")
	pdf.CellFormat(120, 8, "Cost to company", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "INR "+sm.CTC.Fixed(), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string, lines []payslipLine) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.CellFormat(120, 6, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, l.amount.Fixed(), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}
