package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// otherTaxTotals splits the flat-rate levy sum by payer. Observed
// configurations are employer-only, but the payer field is honored
// generically.
type otherTaxTotals struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	Lines    []payroll.OtherTaxLine
}

// computeOtherTaxes applies each configured levy (training-fund taxes and
// the like) on its declared base, using the same base resolution as the
// contribution calculator.
func computeOtherTaxes(totals grossTotals, cfg payroll.CountryPayrollConfig) otherTaxTotals {
	out := otherTaxTotals{
		Employee: decimal.Zero,
		Employer: decimal.Zero,
		Lines:    make([]payroll.OtherTaxLine, 0, len(cfg.OtherTaxes)),
	}

	for _, def := range cfg.OtherTaxes {
		base := resolveBase(def.CalculationBase, totals, cfg)
		amount := base.Mul(def.Rate).Div(oneHundred)

		var employeeShare, employerShare decimal.Decimal
		if def.Payer == payroll.PayerEmployee || def.Payer == payroll.PayerBoth {
			employeeShare = amount
		}
		if def.Payer == payroll.PayerEmployer || def.Payer == payroll.PayerBoth {
			employerShare = amount
		}

		out.Employee = out.Employee.Add(employeeShare)
		out.Employer = out.Employer.Add(employerShare)
		out.Lines = append(out.Lines, payroll.OtherTaxLine{
			Code:          def.Code,
			Name:          def.Name,
			Base:          base,
			Rate:          def.Rate,
			EmployeeShare: employeeShare,
			EmployerShare: employerShare,
		})
	}

	return out
}
