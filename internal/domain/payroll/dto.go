package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPUTE DTOs ==========

type ComponentRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	SourceType string          `json:"source_type,omitempty"`
}

type ComputePayslipRequest struct {
	EmployeeID       string             `json:"employee_id"`
	CountryCode      string             `json:"country_code"`
	PeriodStart      string             `json:"period_start"` // YYYY-MM-DD
	PeriodEnd        string             `json:"period_end"`
	HireDate         string             `json:"hire_date,omitempty"`
	Components       []ComponentRequest `json:"components"`
	FiscalParts      decimal.Decimal    `json:"fiscal_parts"`
	HasFamily        bool               `json:"has_family"`
	SectorCode       string             `json:"sector_code,omitempty"`
	RateType         string             `json:"rate_type"`
	PaymentFrequency string             `json:"payment_frequency"`
	UnitsWorked      *decimal.Decimal   `json:"units_worked,omitempty"`
}

func (r *ComputePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CountryCode) {
		errs = append(errs, validator.ValidationError{Field: "country_code", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.HireDate != "" {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if len(r.Components) == 0 {
		errs = append(errs, validator.ValidationError{Field: "components", Message: "at least one component is required"})
	}
	for _, c := range r.Components {
		if validator.IsEmpty(c.Code) {
			errs = append(errs, validator.ValidationError{Field: "components", Message: "every component needs a code"})
			break
		}
		if c.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "components", Message: "amounts must be non-negative"})
			break
		}
	}
	switch RateType(r.RateType) {
	case RateMonthly, RateDaily, RateHourly:
	default:
		errs = append(errs, validator.ValidationError{Field: "rate_type", Message: "must be MONTHLY, DAILY or HOURLY"})
	}
	switch PaymentFrequency(r.PaymentFrequency) {
	case FrequencyMonthly, FrequencyWeekly, FrequencyBiweekly, FrequencyDaily:
	default:
		errs = append(errs, validator.ValidationError{Field: "payment_frequency", Message: "must be MONTHLY, WEEKLY, BIWEEKLY or DAILY"})
	}
	if r.FiscalParts.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fiscal_parts", Message: "must be non-negative"})
	}
	if r.UnitsWorked != nil && r.UnitsWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "units_worked", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToInput converts a validated request into the engine's input value. Preview
// is decided by the caller (endpoint), not the payload.
func (r *ComputePayslipRequest) ToInput(preview bool) PayrollInput {
	periodStart, _ := validator.IsValidDate(r.PeriodStart)
	periodEnd, _ := validator.IsValidDate(r.PeriodEnd)
	hireDate, _ := validator.IsValidDate(r.HireDate)

	components := make([]SalaryComponentInstance, 0, len(r.Components))
	for _, c := range r.Components {
		source := SourceType(c.SourceType)
		if source == "" {
			source = SourceStandard
		}
		components = append(components, SalaryComponentInstance{
			Code:       c.Code,
			Name:       c.Name,
			Amount:     c.Amount,
			SourceType: source,
		})
	}

	return PayrollInput{
		EmployeeID:       r.EmployeeID,
		CountryCode:      r.CountryCode,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		HireDate:         hireDate,
		Components:       components,
		FiscalParts:      r.FiscalParts,
		HasFamily:        r.HasFamily,
		SectorCode:       r.SectorCode,
		RateType:         RateType(r.RateType),
		PaymentFrequency: PaymentFrequency(r.PaymentFrequency),
		UnitsWorked:      r.UnitsWorked,
		IsPreview:        preview,
	}
}

// ========== RESPONSE DTOs ==========

type ComponentLineResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Prorated      decimal.Decimal `json:"prorated"`
	Taxable       bool            `json:"taxable"`
	Bases         []string        `json:"bases"`
	IsFixedAmount bool            `json:"is_fixed_amount"`
}

type ContributionLineResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name,omitempty"`
	Base          decimal.Decimal `json:"base"`
	EmployeeRate  decimal.Decimal `json:"employee_rate"`
	EmployerRate  decimal.Decimal `json:"employer_rate"`
	EmployeeShare decimal.Decimal `json:"employee_share"`
	EmployerShare decimal.Decimal `json:"employer_share"`
}

type OtherTaxLineResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name,omitempty"`
	Base          decimal.Decimal `json:"base"`
	Rate          decimal.Decimal `json:"rate"`
	EmployeeShare decimal.Decimal `json:"employee_share"`
	EmployerShare decimal.Decimal `json:"employer_share"`
}

type PayslipResponse struct {
	RunID       string `json:"run_id"`
	EmployeeID  string `json:"employee_id"`
	CountryCode string `json:"country_code"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	GrossSalary  decimal.Decimal         `json:"gross_salary"`
	TaxableGross decimal.Decimal         `json:"taxable_gross"`
	Components   []ComponentLineResponse `json:"components"`

	Contributions         []ContributionLineResponse `json:"contributions"`
	EmployeeContributions decimal.Decimal            `json:"employee_contributions"`
	EmployerContributions decimal.Decimal            `json:"employer_contributions"`

	CMUEmployee decimal.Decimal `json:"cmu_employee"`
	CMUEmployer decimal.Decimal `json:"cmu_employer"`

	IncomeTax decimal.Decimal `json:"income_tax"`

	OtherTaxes      []OtherTaxLineResponse `json:"other_taxes"`
	OtherTaxesTotal decimal.Decimal        `json:"other_taxes_total"`

	NetSalary    decimal.Decimal `json:"net_salary"`
	EmployerCost decimal.Decimal `json:"employer_cost"`

	BelowMinimumWage bool `json:"below_minimum_wage,omitempty"`
}

// MapToPayslipResponse flattens a PayrollResult into its JSON form.
func MapToPayslipResponse(res PayrollResult) PayslipResponse {
	components := make([]ComponentLineResponse, 0, len(res.Components))
	for _, c := range res.Components {
		bases := make([]string, 0, len(c.Bases))
		for _, b := range c.Bases {
			bases = append(bases, string(b))
		}
		components = append(components, ComponentLineResponse{
			Code:          c.Code,
			Name:          c.Name,
			Amount:        c.Amount,
			Prorated:      c.Prorated,
			Taxable:       c.Taxable,
			Bases:         bases,
			IsFixedAmount: c.IsFixedAmount,
		})
	}

	contributions := make([]ContributionLineResponse, 0, len(res.Contributions))
	for _, c := range res.Contributions {
		contributions = append(contributions, ContributionLineResponse{
			Code:          c.Code,
			Name:          c.Name,
			Base:          c.Base,
			EmployeeRate:  c.EmployeeRate,
			EmployerRate:  c.EmployerRate,
			EmployeeShare: c.EmployeeShare,
			EmployerShare: c.EmployerShare,
		})
	}

	otherTaxes := make([]OtherTaxLineResponse, 0, len(res.OtherTaxes))
	for _, t := range res.OtherTaxes {
		otherTaxes = append(otherTaxes, OtherTaxLineResponse{
			Code:          t.Code,
			Name:          t.Name,
			Base:          t.Base,
			Rate:          t.Rate,
			EmployeeShare: t.EmployeeShare,
			EmployerShare: t.EmployerShare,
		})
	}

	return PayslipResponse{
		RunID:                 res.RunID,
		EmployeeID:            res.EmployeeID,
		CountryCode:           res.CountryCode,
		PeriodStart:           res.PeriodStart.Format("2006-01-02"),
		PeriodEnd:             res.PeriodEnd.Format("2006-01-02"),
		GrossSalary:           res.GrossSalary,
		TaxableGross:          res.TaxableGross,
		Components:            components,
		Contributions:         contributions,
		EmployeeContributions: res.EmployeeContributions,
		EmployerContributions: res.EmployerContributions,
		CMUEmployee:           res.CMUEmployee,
		CMUEmployer:           res.CMUEmployer,
		IncomeTax:             res.IncomeTax,
		OtherTaxes:            otherTaxes,
		OtherTaxesTotal:       res.OtherTaxesEmployeeTotal.Add(res.OtherTaxesEmployerTotal),
		NetSalary:             res.NetSalary,
		EmployerCost:          res.EmployerCost,
		BelowMinimumWage:      res.BelowMinimumWage,
	}
}

// ========== CONFIG DTOs ==========

type TaxBracketResponse struct {
	LowerBound decimal.Decimal  `json:"lower_bound"`
	UpperBound *decimal.Decimal `json:"upper_bound,omitempty"`
	Rate       decimal.Decimal  `json:"rate"`
}

type CountryConfigResponse struct {
	CountryCode   string               `json:"country_code"`
	MinimumWage   decimal.Decimal      `json:"minimum_wage"`
	WeeklyHours   decimal.Decimal      `json:"weekly_hours"`
	TaxBase       string               `json:"tax_base"`
	Rounding      string               `json:"rounding"`
	TaxBrackets   []TaxBracketResponse `json:"tax_brackets"`
	Contributions []string             `json:"contribution_codes"`
	OtherTaxes    []string             `json:"other_tax_codes"`
}

// MapToCountryConfigResponse exposes the loaded configuration in summary
// form for administrative screens.
func MapToCountryConfigResponse(cfg CountryPayrollConfig) CountryConfigResponse {
	brackets := make([]TaxBracketResponse, 0, len(cfg.TaxBrackets))
	for _, b := range cfg.TaxBrackets {
		brackets = append(brackets, TaxBracketResponse{
			LowerBound: b.LowerBound,
			UpperBound: b.UpperBound,
			Rate:       b.Rate,
		})
	}
	contributions := make([]string, 0, len(cfg.ContributionTypes))
	for _, c := range cfg.ContributionTypes {
		contributions = append(contributions, c.Code)
	}
	otherTaxes := make([]string, 0, len(cfg.OtherTaxes))
	for _, t := range cfg.OtherTaxes {
		otherTaxes = append(otherTaxes, t.Code)
	}
	return CountryConfigResponse{
		CountryCode:   cfg.CountryCode,
		MinimumWage:   cfg.MinimumWage,
		WeeklyHours:   cfg.WeeklyHours,
		TaxBase:       string(cfg.TaxBase),
		Rounding:      string(cfg.Rounding),
		TaxBrackets:   brackets,
		Contributions: contributions,
		OtherTaxes:    otherTaxes,
	}
}
