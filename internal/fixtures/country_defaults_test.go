package fixtures

import (
	"testing"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The seeded profile must satisfy every structural invariant the engine
// checks, or preview mode would be dead on arrival.
func TestDefaultCountryConfig_IsValid(t *testing.T) {
	cfg := DefaultCountryConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "CI", cfg.CountryCode)
	assert.Len(t, cfg.TaxBrackets, 6)
	assert.Len(t, cfg.FamilyDeductions, 9)
	assert.Len(t, cfg.ContributionTypes, 3)
	assert.Len(t, cfg.OtherTaxes, 2)
}

func TestDefaultComponentMetadata_BaseSalary(t *testing.T) {
	catalog := DefaultComponentMetadata()

	base, ok := catalog[payroll.BaseSalaryCode]
	require.True(t, ok)
	assert.True(t, base.Taxable)
	assert.True(t, base.CountsToward(payroll.BaseTotalGross))
	assert.True(t, base.CountsToward(payroll.BaseTaxableGross))
	assert.True(t, base.CountsToward(payroll.BaseCategorialSalary))
}

func TestPreviewConfig_RetagsCountry(t *testing.T) {
	cfg := PreviewConfig("SN")
	assert.Equal(t, "SN", cfg.CountryCode)
	require.NoError(t, cfg.Validate())

	// Empty code keeps the default tag rather than producing an invalid config.
	cfg = PreviewConfig("")
	assert.Equal(t, "CI", cfg.CountryCode)
}
