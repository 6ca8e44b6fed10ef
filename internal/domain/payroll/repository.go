package payroll

import "context"

// ConfigRepository is the boundary to the external configuration store. The
// engine only consumes the loaded configuration; persistence of brackets,
// contribution definitions and wage floors lives outside this module's core.
type ConfigRepository interface {
	// GetCountryConfig loads the full payroll configuration for a country.
	// Returns ErrCountryConfigNotFound when no configuration exists.
	GetCountryConfig(ctx context.Context, countryCode string) (CountryPayrollConfig, error)

	// ListCountries returns the country codes with stored configuration.
	ListCountries(ctx context.Context) ([]string, error)
}
