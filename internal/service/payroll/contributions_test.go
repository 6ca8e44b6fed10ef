package payroll

import (
	"testing"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/akwaba-hr/payroll-backend-go/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func grossOf(total, taxable, categorial float64) grossTotals {
	return grossTotals{
		Total:      d(total),
		Taxable:    d(taxable),
		Categorial: d(categorial),
	}
}

func findLine(t *testing.T, lines []payroll.ContributionLine, code string) payroll.ContributionLine {
	t.Helper()
	for _, l := range lines {
		if l.Code == code {
			return l
		}
	}
	t.Fatalf("contribution line %q not found", code)
	return payroll.ContributionLine{}
}

func TestComputeContributions_StandardRates(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	totals := grossOf(75000, 75000, 75000)

	out := computeContributions(totals, cfg, "")

	retirement := findLine(t, out.Lines, "cnps_retirement")
	assertDecimal(t, d(4725), retirement.EmployeeShare, "retirement employee")
	assertDecimal(t, d(5775), retirement.EmployerShare, "retirement employer")

	accident := findLine(t, out.Lines, "cnps_work_accident")
	assertDecimal(t, d(0), accident.EmployeeShare, "accident employee")
	assertDecimal(t, d(2250), accident.EmployerShare, "accident employer")

	family := findLine(t, out.Lines, "cnps_family_benefit")
	assertDecimal(t, d(4312.5), family.EmployerShare, "family benefit employer")

	assertDecimal(t, d(4725), out.Employee, "employee total")
	assertDecimal(t, d(5775+2250+4312.5), out.Employer, "employer total")
}

// The retirement base is capped at its ceiling for high earners.
func TestComputeContributions_CeilingApplies(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	totals := grossOf(4000000, 4000000, 4000000)

	out := computeContributions(totals, cfg, "")

	retirement := findLine(t, out.Lines, "cnps_retirement")
	assertDecimal(t, d(3375000), retirement.Base, "capped base")
	assertDecimal(t, d(212625), retirement.EmployeeShare, "employee share on capped base")

	// The categorial-salary types are capped at the SMIG.
	accident := findLine(t, out.Lines, "cnps_work_accident")
	assertDecimal(t, d(75000), accident.Base, "accident capped base")
}

func TestComputeContributions_SectorOverride(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	totals := grossOf(75000, 75000, 75000)

	construction := computeContributions(totals, cfg, "construction")
	assertDecimal(t, d(3750), findLine(t, construction.Lines, "cnps_work_accident").EmployerShare,
		"construction rate")

	commerce := computeContributions(totals, cfg, "commerce")
	assertDecimal(t, d(1500), findLine(t, commerce.Lines, "cnps_work_accident").EmployerShare,
		"commerce rate")

	// Unknown sectors fall back to the default rate.
	unknown := computeContributions(totals, cfg, "agriculture")
	assertDecimal(t, d(2250), findLine(t, unknown.Lines, "cnps_work_accident").EmployerShare,
		"default rate")

	// The override only touches its own contribution type.
	assertDecimal(t, d(4725), findLine(t, construction.Lines, "cnps_retirement").EmployeeShare,
		"retirement unchanged")
}

func TestComputeContributions_FixedAmountType(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	cfg.ContributionTypes = append(cfg.ContributionTypes, payroll.ContributionTypeDefinition{
		Code:          "union_dues",
		Name:          "Cotisation syndicale",
		Payer:         payroll.PayerEmployee,
		EmployeeRate:  d(1000),
		IsFixedAmount: true,
	})
	totals := grossOf(500000, 500000, 75000)

	out := computeContributions(totals, cfg, "")

	dues := findLine(t, out.Lines, "union_dues")
	assertDecimal(t, d(1000), dues.EmployeeShare, "flat amount regardless of base")
	assertDecimal(t, d(0), dues.EmployerShare, "employee-only payer")
}

func TestResolveBase_Precedence(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	totals := grossOf(100, 80, 60)

	// Declared base wins.
	assertDecimal(t, d(80), resolveBase(payroll.BaseTaxableGross, totals, cfg), "declared base")
	assertDecimal(t, d(60), resolveBase(payroll.BaseCategorialSalary, totals, cfg), "declared base")

	// Empty base falls back to the country default.
	cfg.DefaultContributionBase = payroll.BaseTaxableGross
	assertDecimal(t, d(80), resolveBase("", totals, cfg), "country default")

	// No country default either: total gross.
	cfg.DefaultContributionBase = ""
	assertDecimal(t, d(100), resolveBase("", totals, cfg), "final fallback")
}

func TestComputeContributions_LineCount(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	out := computeContributions(grossOf(75000, 75000, 75000), cfg, "")
	require.Len(t, out.Lines, len(cfg.ContributionTypes))
}
