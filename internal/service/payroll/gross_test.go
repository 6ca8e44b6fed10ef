package payroll

import (
	"testing"
	"time"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/akwaba-hr/payroll-backend-go/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func TestProrate_MonthlyFullPeriod(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	in := testInput(baseSalary(90000))

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	assertDecimal(t, d(90000), totals.Total, "full month")
}

func TestProrate_MonthlyMidMonthHire(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	in := testInput(baseSalary(90000))
	in.UnitsWorked = dp(15) // June has 30 days

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	assertDecimal(t, d(45000), totals.Total, "half month")
}

func TestProrate_HourlyRate(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	in := testInput(baseSalary(200))
	in.RateType = payroll.RateHourly
	in.PaymentFrequency = payroll.FrequencyWeekly
	in.UnitsWorked = dp(40)

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	assertDecimal(t, d(8000), totals.Total, "40 hours at 200")
}

func TestProrate_HourlyZeroHours(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	in := testInput(baseSalary(200))
	in.RateType = payroll.RateHourly
	in.PaymentFrequency = payroll.FrequencyWeekly
	in.UnitsWorked = dp(0)

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	assertDecimal(t, d(0), totals.Total, "zero hours")
}

func TestProrate_DailyRateDefaultsFromFrequency(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig() // 40h week, 8h day

	cases := []struct {
		freq payroll.PaymentFrequency
		days float64
	}{
		{payroll.FrequencyDaily, 1},
		{payroll.FrequencyWeekly, 5},
		{payroll.FrequencyBiweekly, 10},
		{payroll.FrequencyMonthly, 52.0 * 5 / 12},
	}

	for _, c := range cases {
		in := testInput(baseSalary(10000))
		in.RateType = payroll.RateDaily
		in.PaymentFrequency = c.freq

		resolved := resolveComponents(in.Components, cfg)
		totals := assembleGross(in, cfg, resolved)

		want := d(10000).Mul(d(c.days))
		if !totals.Total.Sub(want).Abs().LessThan(d(0.0001)) {
			t.Errorf("frequency %s: want %s, got %s", c.freq, want, totals.Total)
		}
	}
}

// Fixed-amount components are paid in full even on a partial period.
func TestProrate_FixedAmountImmune(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	in := testInput(
		baseSalary(90000),
		payroll.SalaryComponentInstance{Code: "transport_allowance", Amount: d(30000)},
	)
	in.UnitsWorked = dp(15)

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	assertDecimal(t, d(45000+30000), totals.Total, "prorated base plus full allowance")
}

func TestAssembleGross_SplitsBases(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig()
	in := testInput(
		baseSalary(300000),
		payroll.SalaryComponentInstance{Code: "seniority_bonus", Amount: d(20000)},
		payroll.SalaryComponentInstance{Code: "transport_allowance", Amount: d(30000)},
	)

	resolved := resolveComponents(in.Components, cfg)
	totals := assembleGross(in, cfg, resolved)

	assertDecimal(t, d(350000), totals.Total, "total gross")
	assertDecimal(t, d(320000), totals.Taxable, "taxable gross")
	// Only the base salary feeds the categorial salary.
	assertDecimal(t, d(300000), totals.Categorial, "categorial salary")
	require.Len(t, totals.Lines, 3)
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		date time.Time
		want int64
	}{
		{time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, c := range cases {
		got := daysInMonth(c.date)
		if !got.Equal(d(float64(c.want))) {
			t.Errorf("daysInMonth(%s) = %s, want %d", c.date.Format("2006-01"), got, c.want)
		}
	}
}

func TestMinimumWageFloor_PerRateType(t *testing.T) {
	cfg := fixtures.DefaultCountryConfig() // SMIG 75 000

	assertDecimal(t, d(75000), minimumWageFloor(cfg, payroll.RateMonthly), "monthly floor")
	assertDecimal(t, d(2500), minimumWageFloor(cfg, payroll.RateDaily), "daily floor")
	assertDecimal(t, d(312.5), minimumWageFloor(cfg, payroll.RateHourly), "hourly floor")
}
