package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Engine is the payroll calculation core: a single-pass pure transformation
// from (PayrollInput, CountryPayrollConfig) to PayrollResult. It holds no
// state and performs no I/O, so concurrent calculations need no
// coordination and identical inputs always produce identical results.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Compute produces a fully itemized payslip. All errors are returned
// synchronously; a given input either always succeeds or always fails.
func (e *Engine) Compute(in payroll.PayrollInput, cfg payroll.CountryPayrollConfig) (payroll.PayrollResult, error) {
	if err := validateInput(in); err != nil {
		return payroll.PayrollResult{}, err
	}
	if err := cfg.Validate(); err != nil {
		return payroll.PayrollResult{}, err
	}

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	belowMinimum := false
	if err := checkMinimumWage(totals.Total, in, cfg); err != nil {
		if !in.IsPreview {
			return payroll.PayrollResult{}, err
		}
		belowMinimum = true
	}

	contributions := computeContributions(totals, cfg, in.SectorCode)
	cmuEmployee, cmuEmployer := computeHealthCoverage(cfg.CMU, in.HasFamily)
	incomeTax := computeIncomeTax(totals.Taxable, contributions.Employee, in.FiscalParts, cfg)
	otherTaxes := computeOtherTaxes(totals, cfg)

	policy := PolicyFor(cfg.Rounding)
	deductions := contributions.Employee.
		Add(cmuEmployee).
		Add(incomeTax).
		Add(otherTaxes.Employee)
	netSalary := policy.Round(totals.Total.Sub(deductions))

	if netSalary.IsNegative() && !in.IsPreview {
		return payroll.PayrollResult{}, &payroll.ComputationError{
			Stage:  "net assembly",
			Detail: "net salary is negative: " + netSalary.String(),
		}
	}

	employerCost := totals.Total.
		Add(contributions.Employer).
		Add(cmuEmployer).
		Add(otherTaxes.Employer)

	return payroll.PayrollResult{
		EmployeeID:              in.EmployeeID,
		CountryCode:             in.CountryCode,
		PeriodStart:             in.PeriodStart,
		PeriodEnd:               in.PeriodEnd,
		GrossSalary:             totals.Total,
		TaxableGross:            totals.Taxable,
		Components:              totals.Lines,
		Contributions:           contributions.Lines,
		EmployeeContributions:   contributions.Employee,
		EmployerContributions:   contributions.Employer,
		CMUEmployee:             cmuEmployee,
		CMUEmployer:             cmuEmployer,
		IncomeTax:               incomeTax,
		OtherTaxes:              otherTaxes.Lines,
		OtherTaxesEmployeeTotal: otherTaxes.Employee,
		OtherTaxesEmployerTotal: otherTaxes.Employer,
		NetSalary:               netSalary,
		EmployerCost:            employerCost,
		BelowMinimumWage:        belowMinimum,
	}, nil
}

// validateInput enforces the structural requirements of a calculation:
// a base salary component, a coherent period, and a rate type the payment
// frequency can actually express.
func validateInput(in payroll.PayrollInput) error {
	hasBaseSalary := false
	for _, c := range in.Components {
		if c.Code == payroll.BaseSalaryCode && c.Amount.GreaterThan(decimal.Zero) {
			hasBaseSalary = true
			break
		}
	}
	if !hasBaseSalary {
		return payroll.ErrMissingBaseSalary
	}

	// A monthly rate only makes sense on a monthly payment cycle; daily and
	// hourly rates prorate cleanly onto any cycle.
	if in.RateType == payroll.RateMonthly && in.PaymentFrequency != payroll.FrequencyMonthly {
		return payroll.ErrInvalidRateFrequency
	}

	return nil
}
