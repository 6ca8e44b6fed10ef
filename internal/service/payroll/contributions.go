package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// contributionTotals splits the contribution sum by payer.
type contributionTotals struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	Lines    []payroll.ContributionLine
}

// computeContributions applies every contribution type configured for the
// country: resolve the calculation base, cap it at the ceiling, pick the
// sector rate when one is configured, and split the result by payer.
func computeContributions(
	totals grossTotals,
	cfg payroll.CountryPayrollConfig,
	sectorCode string,
) contributionTotals {
	out := contributionTotals{
		Employee: decimal.Zero,
		Employer: decimal.Zero,
		Lines:    make([]payroll.ContributionLine, 0, len(cfg.ContributionTypes)),
	}

	for _, def := range cfg.ContributionTypes {
		base := resolveBase(def.CalculationBase, totals, cfg)
		if def.Ceiling != nil && base.GreaterThan(*def.Ceiling) {
			base = *def.Ceiling
		}

		employeeRate, employerRate := effectiveRates(def, sectorCode)

		var employeeShare, employerShare decimal.Decimal
		if def.Payer == payroll.PayerEmployee || def.Payer == payroll.PayerBoth {
			employeeShare = applyRate(base, employeeRate, def.IsFixedAmount)
		}
		if def.Payer == payroll.PayerEmployer || def.Payer == payroll.PayerBoth {
			employerShare = applyRate(base, employerRate, def.IsFixedAmount)
		}

		out.Employee = out.Employee.Add(employeeShare)
		out.Employer = out.Employer.Add(employerShare)
		out.Lines = append(out.Lines, payroll.ContributionLine{
			Code:          def.Code,
			Name:          def.Name,
			Base:          base,
			EmployeeRate:  employeeRate,
			EmployerRate:  employerRate,
			EmployeeShare: employeeShare,
			EmployerShare: employerShare,
		})
	}

	return out
}

// resolveBase maps a declared base onto the assembled gross figures.
// Precedence: component-declared base, country default base, total gross.
// Exactly one numeric value results, never an ambiguity.
func resolveBase(base payroll.BaseID, totals grossTotals, cfg payroll.CountryPayrollConfig) decimal.Decimal {
	if base == "" {
		base = cfg.DefaultContributionBase
	}
	switch base {
	case payroll.BaseTaxableGross:
		return totals.Taxable
	case payroll.BaseCategorialSalary:
		return totals.Categorial
	default:
		return totals.Total
	}
}

// effectiveRates picks the sector override over the default rates when the
// employee's sector has one configured.
func effectiveRates(def payroll.ContributionTypeDefinition, sectorCode string) (decimal.Decimal, decimal.Decimal) {
	employeeRate := def.EmployeeRate
	employerRate := def.EmployerRate
	if sectorCode == "" {
		return employeeRate, employerRate
	}
	override, ok := def.SectorOverrides[sectorCode]
	if !ok {
		return employeeRate, employerRate
	}
	if override.EmployeeRate != nil {
		employeeRate = *override.EmployeeRate
	}
	if override.EmployerRate != nil {
		employerRate = *override.EmployerRate
	}
	return employeeRate, employerRate
}

// applyRate multiplies base by a percentage, or returns the flat amount for
// fixed-amount contribution types.
func applyRate(base, rate decimal.Decimal, fixedAmount bool) decimal.Decimal {
	if fixedAmount {
		return rate
	}
	return base.Mul(rate).Div(oneHundred)
}
