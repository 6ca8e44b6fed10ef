package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrCountryConfigNotFound = errors.New("payroll configuration not found for country")
	ErrInvalidConfiguration  = errors.New("invalid payroll configuration")
	ErrBelowMinimumWage      = errors.New("gross salary below statutory minimum wage")
	ErrMissingBaseSalary     = errors.New("payroll input has no base salary component")
	ErrInvalidRateFrequency  = errors.New("invalid rate type / payment frequency combination")
	ErrComputation           = errors.New("payroll computation invariant violated")
)

// BelowMinimumWageError reports a gross salary under the statutory floor at
// the applicable rate granularity. The caller decides whether this blocks a
// save or is merely a warning in preview mode.
type BelowMinimumWageError struct {
	CountryCode string
	RateType    RateType
	Gross       decimal.Decimal
	Minimum     decimal.Decimal
}

func (e *BelowMinimumWageError) Error() string {
	return fmt.Sprintf("gross salary %s below %s minimum wage %s (%s rate)",
		e.Gross, e.CountryCode, e.Minimum, e.RateType)
}

func (e *BelowMinimumWageError) Unwrap() error {
	return ErrBelowMinimumWage
}

// ConfigurationMissingError reports an absent configuration table for a
// country. The engine refuses to guess and fails closed rather than silently
// computing zero tax or contributions. It unwraps to ErrInvalidConfiguration,
// not ErrCountryConfigNotFound: a stored-but-incomplete config is a defect to
// surface, never a reason to fall back to defaults.
type ConfigurationMissingError struct {
	CountryCode string
	What        string
}

func (e *ConfigurationMissingError) Error() string {
	return fmt.Sprintf("missing %s for country %q", e.What, e.CountryCode)
}

func (e *ConfigurationMissingError) Unwrap() error {
	return ErrInvalidConfiguration
}

// ComputationError marks an internal invariant violation (negative net pay,
// unresolvable base). It is a defect, not a user-facing condition.
type ComputationError struct {
	Stage  string
	Detail string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error in %s: %s", e.Stage, e.Detail)
}

func (e *ComputationError) Unwrap() error {
	return ErrComputation
}
