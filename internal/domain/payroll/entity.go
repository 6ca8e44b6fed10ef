package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseID identifies a calculation base a component can count toward.
// Closed enumeration: string-keyed base identifiers from configuration are
// mapped onto these once at load time, never re-parsed per calculation.
type BaseID string

const (
	BaseTotalGross       BaseID = "total_gross"
	BaseTaxableGross     BaseID = "taxable_gross"
	BaseCategorialSalary BaseID = "categorial_salary"
)

// ParseBaseID maps a configuration-store base identifier onto the closed enum.
func ParseBaseID(s string) (BaseID, bool) {
	switch BaseID(s) {
	case BaseTotalGross, BaseTaxableGross, BaseCategorialSalary:
		return BaseID(s), true
	}
	return "", false
}

// RateType enum - whether a component amount is a monthly, daily or hourly
// figure prior to proration.
type RateType string

const (
	RateMonthly RateType = "MONTHLY"
	RateDaily   RateType = "DAILY"
	RateHourly  RateType = "HOURLY"
)

// PaymentFrequency enum - how often the employee is actually paid.
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "MONTHLY"
	FrequencyWeekly   PaymentFrequency = "WEEKLY"
	FrequencyBiweekly PaymentFrequency = "BIWEEKLY"
	FrequencyDaily    PaymentFrequency = "DAILY"
)

// SourceType enum - where a salary component instance came from.
type SourceType string

const (
	SourceStandard SourceType = "standard"
	SourceTemplate SourceType = "template"
	SourceCustom   SourceType = "custom"
)

// BaseSalaryCode is the component code every payroll input must carry.
const BaseSalaryCode = "base_salary"

// ComponentMetadata describes how a salary component behaves in the
// calculation: whether it is taxable, which bases it counts toward, and
// whether it is a flat amount exempt from rate-based proration.
type ComponentMetadata struct {
	Taxable         bool
	IncludedInBases []BaseID
	IsFixedAmount   bool
}

// DefaultComponentMetadata is the conservative fallback for components with
// no metadata in configuration: taxable, counted in total gross only, prorated.
func DefaultComponentMetadata() ComponentMetadata {
	return ComponentMetadata{
		Taxable:         true,
		IncludedInBases: []BaseID{BaseTotalGross},
		IsFixedAmount:   false,
	}
}

// CountsToward reports whether the component participates in the given base.
func (m ComponentMetadata) CountsToward(base BaseID) bool {
	for _, b := range m.IncludedInBases {
		if b == base {
			return true
		}
	}
	return false
}

// SalaryComponentInstance is one salary element of a payroll input (base
// salary, allowance, bonus). Amount is period-relative before proration.
// Metadata is nil when the component has not been activated in configuration;
// the resolver substitutes DefaultComponentMetadata.
type SalaryComponentInstance struct {
	Code       string
	Name       string
	Amount     decimal.Decimal
	SourceType SourceType
	Metadata   *ComponentMetadata
}

// PayrollInput is the full set of employee-side inputs for one calculation.
// It is constructed fresh per invocation and never persisted by the engine.
type PayrollInput struct {
	EmployeeID       string
	CountryCode      string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	HireDate         time.Time
	Components       []SalaryComponentInstance
	FiscalParts      decimal.Decimal
	HasFamily        bool
	SectorCode       string
	RateType         RateType
	PaymentFrequency PaymentFrequency

	// UnitsWorked is days (MONTHLY/DAILY rates) or hours (HOURLY rate) worked
	// in the period. Nil means a full period; the engine derives the unit
	// count from the country's weekly-hours regime.
	UnitsWorked *decimal.Decimal

	// IsPreview relaxes failure modes suited to estimates: a below-minimum
	// gross is flagged on the result instead of rejected.
	IsPreview bool
}

// FiscalParts computes the family-size multiplier used by the income tax
// deduction table: 1.0 base, +1.0 if married, +0.5 per counted dependent.
// Dependents beyond maxDependents are not counted.
func FiscalParts(married bool, dependents, maxDependents int) decimal.Decimal {
	if dependents > maxDependents {
		dependents = maxDependents
	}
	if dependents < 0 {
		dependents = 0
	}
	parts := decimal.NewFromInt(1)
	if married {
		parts = parts.Add(decimal.NewFromInt(1))
	}
	return parts.Add(decimal.NewFromFloat(0.5).Mul(decimal.NewFromInt(int64(dependents))))
}

// ComponentLine is one component of the payslip breakdown, after resolution
// and proration.
type ComponentLine struct {
	Code          string
	Name          string
	Amount        decimal.Decimal // declared, before proration
	Prorated      decimal.Decimal
	Taxable       bool
	Bases         []BaseID
	IsFixedAmount bool
}

// ContributionLine is one social contribution, split by payer.
type ContributionLine struct {
	Code          string
	Name          string
	Base          decimal.Decimal // after ceiling
	EmployeeRate  decimal.Decimal // percent; zero for fixed-amount types
	EmployerRate  decimal.Decimal
	EmployeeShare decimal.Decimal
	EmployerShare decimal.Decimal
}

// OtherTaxLine is one flat-rate levy (employer-only in observed
// configurations, but the payer split is carried generically).
type OtherTaxLine struct {
	Code          string
	Name          string
	Base          decimal.Decimal
	Rate          decimal.Decimal // percent
	EmployeeShare decimal.Decimal
	EmployerShare decimal.Decimal
}

// PayrollResult is the fully itemized outcome of one calculation. It is a
// pure output value; persistence and payslip rendering happen outside the
// engine.
type PayrollResult struct {
	RunID       string
	EmployeeID  string
	CountryCode string
	PeriodStart time.Time
	PeriodEnd   time.Time

	GrossSalary  decimal.Decimal
	TaxableGross decimal.Decimal
	Components   []ComponentLine

	Contributions         []ContributionLine
	EmployeeContributions decimal.Decimal
	EmployerContributions decimal.Decimal

	CMUEmployee decimal.Decimal
	CMUEmployer decimal.Decimal

	IncomeTax decimal.Decimal

	OtherTaxes              []OtherTaxLine
	OtherTaxesEmployeeTotal decimal.Decimal
	OtherTaxesEmployerTotal decimal.Decimal

	NetSalary    decimal.Decimal
	EmployerCost decimal.Decimal

	// BelowMinimumWage is only ever true on preview results, where the
	// statutory floor check is a warning instead of a rejection.
	BelowMinimumWage bool
}
