package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// computeHealthCoverage returns the fixed CMU charges. The employer amount
// depends on whether the employee has a spouse or at least one dependent.
// These are flat sums: no percentage math, no proration.
func computeHealthCoverage(cmu payroll.CMUAmounts, hasFamily bool) (employee, employer decimal.Decimal) {
	employee = cmu.Employee
	if hasFamily {
		employer = cmu.EmployerWithFamily
	} else {
		employer = cmu.EmployerBase
	}
	return employee, employer
}
