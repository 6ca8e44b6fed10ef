package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// computeIncomeTax runs the progressive income tax: resolve the taxable base
// per country rule, apply the brackets marginally, then subtract the
// family deduction looked up from the fiscal-parts step table.
func computeIncomeTax(
	taxableGross decimal.Decimal,
	employeeContributions decimal.Decimal,
	fiscalParts decimal.Decimal,
	cfg payroll.CountryPayrollConfig,
) decimal.Decimal {
	base := taxableGross
	if cfg.TaxBase == payroll.TaxBaseGrossAfterSS {
		base = base.Sub(employeeContributions)
	}
	if base.IsNegative() {
		base = decimal.Zero
	}

	grossTax := marginalTax(base, cfg.TaxBrackets)
	deduction := familyDeduction(fiscalParts, cfg.FamilyDeductions)

	tax := grossTax.Sub(deduction)
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// marginalTax applies each bracket to the slice of the amount that falls
// inside it: no bracket is skipped, none is double-counted. Brackets are
// validated contiguous and ascending at configuration load.
func marginalTax(amount decimal.Decimal, brackets []payroll.TaxBracket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range brackets {
		if amount.LessThanOrEqual(b.LowerBound) {
			break
		}
		upper := amount
		if b.UpperBound != nil && b.UpperBound.LessThan(upper) {
			upper = *b.UpperBound
		}
		portion := upper.Sub(b.LowerBound)
		if portion.IsPositive() {
			total = total.Add(portion.Mul(b.Rate).Div(oneHundred))
		}
	}
	return total
}

// familyDeduction walks the step table: the highest threshold at or below
// the employee's fiscal parts wins. Rules are validated ascending at load.
func familyDeduction(fiscalParts decimal.Decimal, rules []payroll.FamilyDeductionRule) decimal.Decimal {
	deduction := decimal.Zero
	for _, r := range rules {
		if fiscalParts.LessThan(r.PartsThreshold) {
			break
		}
		deduction = r.Deduction
	}
	return deduction
}
