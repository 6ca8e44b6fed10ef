package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Payer enum - which side of the payslip a contribution or levy lands on.
type Payer string

const (
	PayerEmployee Payer = "employee"
	PayerEmployer Payer = "employer"
	PayerBoth     Payer = "both"
)

// TaxBaseRule selects which gross the progressive income tax is computed on.
type TaxBaseRule string

const (
	// TaxBaseGrossBeforeSS taxes the taxable gross directly.
	TaxBaseGrossBeforeSS TaxBaseRule = "gross_before_ss"
	// TaxBaseGrossAfterSS taxes the taxable gross net of employee
	// contributions.
	TaxBaseGrossAfterSS TaxBaseRule = "gross_after_ss"
)

// RoundingRule names a net-pay rounding policy. The legal rule differs by
// country and is still being confirmed for some, so the policy is selected
// per country configuration instead of hard-coded.
type RoundingRule string

const (
	// RoundNearestUnit rounds to the nearest whole currency unit.
	RoundNearestUnit RoundingRule = "nearest_unit"
	// RoundHundredsPlus18 adds 18 then rounds to the nearest 100 units.
	RoundHundredsPlus18 RoundingRule = "hundreds_plus_18"
)

// TaxBracket is one slice of a progressive income tax scale. UpperBound is
// exclusive; nil means unbounded. A country's brackets must be contiguous,
// non-overlapping and ascending, together partitioning [0, inf).
type TaxBracket struct {
	LowerBound decimal.Decimal
	UpperBound *decimal.Decimal
	Rate       decimal.Decimal // percent
}

// FamilyDeductionRule is one step of the fiscal-parts deduction table: the
// deduction applies to any fiscal-parts value at or above the threshold,
// until the next step.
type FamilyDeductionRule struct {
	PartsThreshold decimal.Decimal
	Deduction      decimal.Decimal
}

// SectorOverride replaces a contribution type's default rates for a given
// sector. A nil field leaves that side's default rate in place.
type SectorOverride struct {
	EmployeeRate *decimal.Decimal
	EmployerRate *decimal.Decimal
}

// ContributionTypeDefinition configures one social contribution (retirement,
// work accident, family benefit and the like).
type ContributionTypeDefinition struct {
	Code string
	Name string

	Payer        Payer
	EmployeeRate decimal.Decimal // percent; flat amount when IsFixedAmount
	EmployerRate decimal.Decimal

	// IsFixedAmount marks flat-sum contributions; the rate fields then hold
	// currency amounts and no base is multiplied.
	IsFixedAmount bool

	// CalculationBase is resolved against the assembled gross figures; empty
	// falls back to the country default base, then total gross.
	CalculationBase BaseID

	// Ceiling caps the calculation base before the rate applies.
	Ceiling *decimal.Decimal

	// SectorOverrides keys replacement rates by sector code.
	SectorOverrides map[string]SectorOverride
}

// OtherTaxDefinition configures a flat-rate levy such as a training-fund tax.
type OtherTaxDefinition struct {
	Code            string
	Name            string
	Payer           Payer
	Rate            decimal.Decimal // percent
	CalculationBase BaseID
}

// CMUAmounts are the fixed health-coverage charges. The employer amount is
// selected by whether the employee has a spouse or at least one dependent.
// Never prorated.
type CMUAmounts struct {
	Employee           decimal.Decimal
	EmployerBase       decimal.Decimal
	EmployerWithFamily decimal.Decimal
}

// CountryPayrollConfig aggregates everything the engine consumes for one
// country. It is loaded by the host from the configuration store and never
// mutated by the engine.
type CountryPayrollConfig struct {
	CountryCode string

	// WeeklyHours drives the units-per-period defaults: hours per day is
	// WeeklyHours/5, monthly hours is WeeklyHours*52/12.
	WeeklyHours decimal.Decimal

	// MinimumWage is the statutory monthly floor; converted to /30 for daily
	// rates and /(30*8) for hourly rates before the check.
	MinimumWage decimal.Decimal

	// MaxDependents caps the dependents counted into fiscal parts.
	MaxDependents int

	TaxBase          TaxBaseRule
	TaxBrackets      []TaxBracket
	FamilyDeductions []FamilyDeductionRule

	ContributionTypes []ContributionTypeDefinition
	OtherTaxes        []OtherTaxDefinition
	CMU               CMUAmounts

	// DefaultContributionBase backs contribution types that declare no base.
	DefaultContributionBase BaseID

	Rounding RoundingRule

	// ComponentMetadata maps component codes to their calculation behavior.
	ComponentMetadata map[string]ComponentMetadata
}

// Validate checks the structural invariants the engine relies on. It fails
// closed: a config that does not fully cover its domain is rejected up front
// rather than silently computing zero tax or contributions.
func (c CountryPayrollConfig) Validate() error {
	if c.CountryCode == "" {
		return &ConfigurationMissingError{CountryCode: c.CountryCode, What: "country code"}
	}
	if len(c.TaxBrackets) == 0 {
		return &ConfigurationMissingError{CountryCode: c.CountryCode, What: "tax brackets"}
	}
	if len(c.FamilyDeductions) == 0 {
		return &ConfigurationMissingError{CountryCode: c.CountryCode, What: "family deduction table"}
	}
	if len(c.ContributionTypes) == 0 {
		return &ConfigurationMissingError{CountryCode: c.CountryCode, What: "contribution types"}
	}
	if c.MinimumWage.LessThanOrEqual(decimal.Zero) {
		return &ConfigurationMissingError{CountryCode: c.CountryCode, What: "minimum wage"}
	}
	if c.WeeklyHours.LessThanOrEqual(decimal.Zero) {
		return &ConfigurationMissingError{CountryCode: c.CountryCode, What: "weekly hours regime"}
	}

	switch c.TaxBase {
	case TaxBaseGrossBeforeSS, TaxBaseGrossAfterSS:
	default:
		return fmt.Errorf("%w: unknown tax base rule %q", ErrInvalidConfiguration, c.TaxBase)
	}
	switch c.Rounding {
	case RoundNearestUnit, RoundHundredsPlus18:
	default:
		return fmt.Errorf("%w: unknown rounding rule %q", ErrInvalidConfiguration, c.Rounding)
	}

	if err := validateBrackets(c.TaxBrackets); err != nil {
		return err
	}
	if err := validateDeductions(c.FamilyDeductions); err != nil {
		return err
	}
	return nil
}

// validateBrackets enforces that the scale partitions [0, inf): first lower
// bound zero, each upper bound equal to the next lower bound, last bracket
// unbounded.
func validateBrackets(brackets []TaxBracket) error {
	if !brackets[0].LowerBound.IsZero() {
		return fmt.Errorf("%w: first tax bracket must start at 0, got %s",
			ErrInvalidConfiguration, brackets[0].LowerBound)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return fmt.Errorf("%w: tax bracket %d has negative rate", ErrInvalidConfiguration, i)
		}
		last := i == len(brackets)-1
		if last {
			if b.UpperBound != nil {
				return fmt.Errorf("%w: last tax bracket must be unbounded", ErrInvalidConfiguration)
			}
			continue
		}
		if b.UpperBound == nil {
			return fmt.Errorf("%w: only the last tax bracket may be unbounded", ErrInvalidConfiguration)
		}
		if b.UpperBound.LessThanOrEqual(b.LowerBound) {
			return fmt.Errorf("%w: tax bracket %d is empty or inverted", ErrInvalidConfiguration, i)
		}
		if !brackets[i+1].LowerBound.Equal(*b.UpperBound) {
			return fmt.Errorf("%w: gap between tax brackets %d and %d", ErrInvalidConfiguration, i, i+1)
		}
	}
	return nil
}

// validateDeductions enforces ascending thresholds and a non-decreasing
// deduction step function.
func validateDeductions(rules []FamilyDeductionRule) error {
	for i, r := range rules {
		if r.Deduction.IsNegative() {
			return fmt.Errorf("%w: family deduction %d is negative", ErrInvalidConfiguration, i)
		}
		if i == 0 {
			continue
		}
		if !rules[i].PartsThreshold.GreaterThan(rules[i-1].PartsThreshold) {
			return fmt.Errorf("%w: family deduction thresholds must be strictly ascending", ErrInvalidConfiguration)
		}
		if rules[i].Deduction.LessThan(rules[i-1].Deduction) {
			return fmt.Errorf("%w: family deduction table must be non-decreasing", ErrInvalidConfiguration)
		}
	}
	return nil
}
