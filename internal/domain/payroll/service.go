package payroll

import "context"

// PayrollService is the application-facing surface over the calculation
// engine. Computation itself is pure; the service only adds configuration
// loading and caching.
type PayrollService interface {
	// ComputePayslip runs a committed calculation. Missing configuration and
	// a below-minimum gross are both hard failures here.
	ComputePayslip(ctx context.Context, req ComputePayslipRequest) (PayslipResponse, error)

	// PreviewPayslip runs an estimate: countries without stored
	// configuration fall back to the seeded default profile, and a
	// below-minimum gross is flagged on the result instead of rejected.
	PreviewPayslip(ctx context.Context, req ComputePayslipRequest) (PayslipResponse, error)

	// GetCountryConfig exposes the loaded configuration in summary form.
	GetCountryConfig(ctx context.Context, countryCode string) (CountryConfigResponse, error)

	// ListCountries reports the countries with stored configuration.
	ListCountries(ctx context.Context) ([]string, error)
}
