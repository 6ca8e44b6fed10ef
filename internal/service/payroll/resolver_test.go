package payroll

import (
	"testing"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/akwaba-hr/payroll-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveComponents_InstanceMetadataWins(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()

	// transport_allowance is non-taxable in the country catalog; the instance
	// declares otherwise and must win.
	instance := payroll.SalaryComponentInstance{
		Code:   "transport_allowance",
		Amount: d(30000),
		Metadata: &payroll.ComponentMetadata{
			Taxable:         true,
			IncludedInBases: []payroll.BaseID{payroll.BaseTotalGross},
		},
	}

	resolved := resolveComponents([]payroll.SalaryComponentInstance{instance}, cfg)
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Meta.Taxable)
}

func TestResolveComponents_CountryCatalogFallback(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()

	instance := payroll.SalaryComponentInstance{Code: "transport_allowance", Amount: d(30000)}
	resolved := resolveComponents([]payroll.SalaryComponentInstance{instance}, cfg)

	require.Len(t, resolved, 1)
	assert.False(t, resolved[0].Meta.Taxable)
	assert.True(t, resolved[0].Meta.IsFixedAmount)
}

// Components unknown to both the instance and the catalog get the
// conservative defaults: taxable, total gross only, prorated.
func TestResolveComponents_UnknownComponentDefaults(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()

	instance := payroll.SalaryComponentInstance{Code: "night_shift_premium", Amount: d(15000)}
	resolved := resolveComponents([]payroll.SalaryComponentInstance{instance}, cfg)

	require.Len(t, resolved, 1)
	meta := resolved[0].Meta
	assert.True(t, meta.Taxable)
	assert.False(t, meta.IsFixedAmount)
	assert.True(t, meta.CountsToward(payroll.BaseTotalGross))
	assert.True(t, meta.CountsToward(payroll.BaseTaxableGross))
	assert.False(t, meta.CountsToward(payroll.BaseCategorialSalary))
}

// A declared base list can omit total gross or taxable gross; normalization
// repairs it so the gross invariants hold.
func TestNormalizeMetadata_RepairsBaseList(t *testing.T) {
	meta := normalizeMetadata(payroll.ComponentMetadata{
		Taxable:         true,
		IncludedInBases: []payroll.BaseID{payroll.BaseCategorialSalary},
	})

	assert.True(t, meta.CountsToward(payroll.BaseTotalGross))
	assert.True(t, meta.CountsToward(payroll.BaseTaxableGross))
	assert.True(t, meta.CountsToward(payroll.BaseCategorialSalary))

	nonTaxable := normalizeMetadata(payroll.ComponentMetadata{
		Taxable:         false,
		IncludedInBases: nil,
	})
	assert.True(t, nonTaxable.CountsToward(payroll.BaseTotalGross))
	assert.False(t, nonTaxable.CountsToward(payroll.BaseTaxableGross))
}

func TestComputeHealthCoverage(t *testing.T) {
	cmu := fixtures.DefaultCountryConfig().CMU

	employee, employer := computeHealthCoverage(cmu, false)
	assertDecimal(t, d(500), employee, "employee amount")
	assertDecimal(t, d(500), employer, "employer amount, no family")

	employee, employer = computeHealthCoverage(cmu, true)
	assertDecimal(t, d(500), employee, "employee amount unchanged")
	assertDecimal(t, d(1000), employer, "employer amount with family")
}
