package payroll

import (
	"time"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	five        = decimal.NewFromInt(5)
	twelve      = decimal.NewFromInt(12)
	thirty      = decimal.NewFromInt(30)
	fiftyTwo    = decimal.NewFromInt(52)
	twoFortyHrs = decimal.NewFromInt(240) // 30 days x 8 hours
	oneHundred  = decimal.NewFromInt(100)
)

// grossTotals carries the assembled gross figures every downstream
// calculator reads from.
type grossTotals struct {
	Total      decimal.Decimal
	Taxable    decimal.Decimal
	Categorial decimal.Decimal
	Lines      []payroll.ComponentLine
}

// assembleGross prorates each resolved component and sums the gross,
// taxable-gross and categorial-salary figures.
func assembleGross(
	in payroll.PayrollInput,
	cfg payroll.CountryPayrollConfig,
	components []resolvedComponent,
) grossTotals {
	totals := grossTotals{
		Total:      decimal.Zero,
		Taxable:    decimal.Zero,
		Categorial: decimal.Zero,
		Lines:      make([]payroll.ComponentLine, 0, len(components)),
	}

	for _, c := range components {
		prorated := prorate(c, in, cfg)

		totals.Total = totals.Total.Add(prorated)
		if c.Meta.Taxable {
			totals.Taxable = totals.Taxable.Add(prorated)
		}
		if c.Meta.CountsToward(payroll.BaseCategorialSalary) {
			totals.Categorial = totals.Categorial.Add(prorated)
		}

		totals.Lines = append(totals.Lines, payroll.ComponentLine{
			Code:          c.Code,
			Name:          c.Name,
			Amount:        c.Amount,
			Prorated:      prorated,
			Taxable:       c.Meta.Taxable,
			Bases:         c.Meta.IncludedInBases,
			IsFixedAmount: c.Meta.IsFixedAmount,
		})
	}

	return totals
}

// prorate converts a component's declared amount into its value for the
// period. Fixed-amount components are paid in full regardless of rate type
// or partial periods.
func prorate(c resolvedComponent, in payroll.PayrollInput, cfg payroll.CountryPayrollConfig) decimal.Decimal {
	if c.Meta.IsFixedAmount {
		return c.Amount
	}

	switch in.RateType {
	case payroll.RateMonthly:
		// Full calendar month unless a day count was supplied (mid-month
		// hire or termination).
		if in.UnitsWorked == nil {
			return c.Amount
		}
		days := daysInMonth(in.PeriodStart)
		return c.Amount.Mul(*in.UnitsWorked).Div(days)

	case payroll.RateDaily:
		days := in.UnitsWorked
		if days == nil {
			d := defaultDaysPerPeriod(in.PaymentFrequency, cfg.WeeklyHours)
			days = &d
		}
		return c.Amount.Mul(*days)

	case payroll.RateHourly:
		hours := in.UnitsWorked
		if hours == nil {
			h := defaultHoursPerPeriod(in.PaymentFrequency, cfg.WeeklyHours)
			hours = &h
		}
		return c.Amount.Mul(*hours)
	}

	return c.Amount
}

// defaultHoursPerPeriod derives the full-period hour count from the
// configured weekly-hours regime: hoursPerDay = weekly/5, monthly hours =
// weekly*52/12.
func defaultHoursPerPeriod(freq payroll.PaymentFrequency, weeklyHours decimal.Decimal) decimal.Decimal {
	switch freq {
	case payroll.FrequencyDaily:
		return weeklyHours.Div(five)
	case payroll.FrequencyWeekly:
		return weeklyHours
	case payroll.FrequencyBiweekly:
		return weeklyHours.Mul(decimal.NewFromInt(2))
	default:
		return weeklyHours.Mul(fiftyTwo).Div(twelve)
	}
}

// defaultDaysPerPeriod is the hour count expressed in working days.
func defaultDaysPerPeriod(freq payroll.PaymentFrequency, weeklyHours decimal.Decimal) decimal.Decimal {
	hoursPerDay := weeklyHours.Div(five)
	return defaultHoursPerPeriod(freq, weeklyHours).Div(hoursPerDay)
}

func daysInMonth(t time.Time) decimal.Decimal {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return decimal.NewFromInt(int64(lastOfThis.Day()))
}

// minimumWageFloor converts the statutory monthly minimum to the granularity
// of the employee's rate type.
func minimumWageFloor(cfg payroll.CountryPayrollConfig, rateType payroll.RateType) decimal.Decimal {
	switch rateType {
	case payroll.RateDaily:
		return cfg.MinimumWage.Div(thirty)
	case payroll.RateHourly:
		return cfg.MinimumWage.Div(twoFortyHrs)
	default:
		return cfg.MinimumWage
	}
}

// periodMinimum scales the per-unit statutory minimum by the same unit count
// the proration used, so a partial period is judged against a partial floor.
func periodMinimum(in payroll.PayrollInput, cfg payroll.CountryPayrollConfig) decimal.Decimal {
	floor := minimumWageFloor(cfg, in.RateType)

	switch in.RateType {
	case payroll.RateMonthly:
		if in.UnitsWorked == nil {
			return floor
		}
		return floor.Mul(*in.UnitsWorked).Div(daysInMonth(in.PeriodStart))

	case payroll.RateDaily:
		days := in.UnitsWorked
		if days == nil {
			dd := defaultDaysPerPeriod(in.PaymentFrequency, cfg.WeeklyHours)
			days = &dd
		}
		return floor.Mul(*days)

	case payroll.RateHourly:
		hours := in.UnitsWorked
		if hours == nil {
			h := defaultHoursPerPeriod(in.PaymentFrequency, cfg.WeeklyHours)
			hours = &h
		}
		return floor.Mul(*hours)
	}

	return floor
}

// checkMinimumWage enforces the statutory floor. A below-floor gross is a
// rejected input, never a silent clamp. A mid-month hire is compared against
// the floor prorated over the days actually worked, so a legal monthly rate
// never fails the check on a short first month.
func checkMinimumWage(gross decimal.Decimal, in payroll.PayrollInput, cfg payroll.CountryPayrollConfig) error {
	floor := periodMinimum(in, cfg)
	if gross.LessThan(floor) {
		return &payroll.BelowMinimumWageError{
			CountryCode: cfg.CountryCode,
			RateType:    in.RateType,
			Gross:       gross,
			Minimum:     floor,
		}
	}
	return nil
}
