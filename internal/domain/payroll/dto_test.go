package payroll

import (
	"testing"

	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComputeRequest() ComputePayslipRequest {
	return ComputePayslipRequest{
		EmployeeID:       "emp-001",
		CountryCode:      "CI",
		PeriodStart:      "2025-06-01",
		PeriodEnd:        "2025-06-30",
		Components:       []ComponentRequest{{Code: BaseSalaryCode, Amount: dec(250000)}},
		FiscalParts:      dec(1),
		RateType:         "MONTHLY",
		PaymentFrequency: "MONTHLY",
	}
}

func TestComputePayslipRequest_Validate_OK(t *testing.T) {
	req := validComputeRequest()
	require.NoError(t, req.Validate())
}

func TestComputePayslipRequest_Validate_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ComputePayslipRequest)
		field  string
	}{
		{"missing employee", func(r *ComputePayslipRequest) { r.EmployeeID = " " }, "employee_id"},
		{"missing country", func(r *ComputePayslipRequest) { r.CountryCode = "" }, "country_code"},
		{"bad period start", func(r *ComputePayslipRequest) { r.PeriodStart = "06/01/2025" }, "period_start"},
		{"bad period end", func(r *ComputePayslipRequest) { r.PeriodEnd = "" }, "period_end"},
		{"bad hire date", func(r *ComputePayslipRequest) { r.HireDate = "not-a-date" }, "hire_date"},
		{"no components", func(r *ComputePayslipRequest) { r.Components = nil }, "components"},
		{"negative amount", func(r *ComputePayslipRequest) {
			r.Components = []ComponentRequest{{Code: BaseSalaryCode, Amount: dec(-1)}}
		}, "components"},
		{"bad rate type", func(r *ComputePayslipRequest) { r.RateType = "YEARLY" }, "rate_type"},
		{"bad frequency", func(r *ComputePayslipRequest) { r.PaymentFrequency = "QUARTERLY" }, "payment_frequency"},
		{"negative fiscal parts", func(r *ComputePayslipRequest) { r.FiscalParts = dec(-1) }, "fiscal_parts"},
		{"negative units", func(r *ComputePayslipRequest) { r.UnitsWorked = decPtr(-5) }, "units_worked"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validComputeRequest()
			c.mutate(&req)
			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestComputePayslipRequest_ToInput(t *testing.T) {
	req := validComputeRequest()
	req.SectorCode = "construction"
	req.HasFamily = true

	in := req.ToInput(true)

	assert.Equal(t, "emp-001", in.EmployeeID)
	assert.Equal(t, "CI", in.CountryCode)
	assert.Equal(t, "2025-06-01", in.PeriodStart.Format("2006-01-02"))
	assert.Equal(t, RateMonthly, in.RateType)
	assert.Equal(t, FrequencyMonthly, in.PaymentFrequency)
	assert.Equal(t, "construction", in.SectorCode)
	assert.True(t, in.HasFamily)
	assert.True(t, in.IsPreview)
	assert.Nil(t, in.UnitsWorked)

	require.Len(t, in.Components, 1)
	// Source type defaults to standard when the payload omits it.
	assert.Equal(t, SourceStandard, in.Components[0].SourceType)
}

func TestMapToPayslipResponse_SumsOtherTaxes(t *testing.T) {
	res := PayrollResult{
		OtherTaxesEmployeeTotal: dec(100),
		OtherTaxesEmployerTotal: dec(650),
	}
	resp := MapToPayslipResponse(res)
	assert.True(t, resp.OtherTaxesTotal.Equal(dec(750)), "got %s", resp.OtherTaxesTotal)
}

func TestMapToCountryConfigResponse(t *testing.T) {
	cfg := validConfig()
	cfg.OtherTaxes = []OtherTaxDefinition{{Code: "fdfp_training", Rate: decimal.NewFromFloat(0.6)}}

	resp := MapToCountryConfigResponse(cfg)
	assert.Equal(t, "CI", resp.CountryCode)
	assert.Equal(t, "gross_before_ss", resp.TaxBase)
	assert.Equal(t, "nearest_unit", resp.Rounding)
	assert.Len(t, resp.TaxBrackets, 2)
	assert.Equal(t, []string{"cnps_retirement"}, resp.Contributions)
	assert.Equal(t, []string{"fdfp_training"}, resp.OtherTaxes)
}
