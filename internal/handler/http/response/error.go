package response

import (
	"errors"
	"net/http"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var belowMinimum *payroll.BelowMinimumWageError
	if errors.As(err, &belowMinimum) {
		UnprocessableEntity(w, "BELOW_MINIMUM_WAGE", belowMinimum.Error(), map[string]string{
			"country_code": belowMinimum.CountryCode,
			"gross":        belowMinimum.Gross.String(),
			"minimum":      belowMinimum.Minimum.String(),
		})
		return
	}

	var configMissing *payroll.ConfigurationMissingError
	if errors.As(err, &configMissing) {
		UnprocessableEntity(w, "CONFIGURATION_INCOMPLETE", configMissing.Error(), map[string]string{
			"country_code": configMissing.CountryCode,
			"missing":      configMissing.What,
		})
		return
	}

	// Payroll domain errors
	switch {
	case errors.Is(err, payroll.ErrCountryConfigNotFound):
		NotFound(w, "No payroll configuration for this country")
	case errors.Is(err, payroll.ErrMissingBaseSalary):
		BadRequest(w, "A base salary component is required", nil)
	case errors.Is(err, payroll.ErrInvalidRateFrequency):
		BadRequest(w, "Rate type is incompatible with the payment frequency", nil)
	case errors.Is(err, payroll.ErrInvalidConfiguration):
		UnprocessableEntity(w, "CONFIGURATION_INCOMPLETE", err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
