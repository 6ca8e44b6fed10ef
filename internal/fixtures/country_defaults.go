package fixtures

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func dec(f float64) decimal.Decimal     { return decimal.NewFromFloat(f) }
func decPtr(f float64) *decimal.Decimal { d := decimal.NewFromFloat(f); return &d }

// ==========================================
// DEFAULT COUNTRY PROFILE
// ==========================================

// DefaultCountryConfig returns the seeded payroll configuration for Côte
// d'Ivoire, the first supported country. It doubles as the preview-mode
// fallback: estimates for a tenant whose configuration has not been
// activated yet run against this profile instead of a second configuration
// round-trip.
func DefaultCountryConfig() payroll.CountryPayrollConfig {
	return payroll.CountryPayrollConfig{
		CountryCode: "CI",

		// SMIG: statutory monthly minimum wage, in FCFA.
		MinimumWage: dec(75000),

		// Legal work week; drives units-per-period defaults.
		WeeklyHours: dec(40),

		// Fiscal parts are capped at 5.0: 1 base + 1 spouse + 0.5 x 6.
		MaxDependents: 6,

		TaxBase:  payroll.TaxBaseGrossBeforeSS,
		Rounding: payroll.RoundNearestUnit,

		// ITS monthly scale (2024 reform), marginal rates.
		TaxBrackets: []payroll.TaxBracket{
			{LowerBound: dec(0), UpperBound: decPtr(75000), Rate: dec(0)},
			{LowerBound: dec(75000), UpperBound: decPtr(240000), Rate: dec(16)},
			{LowerBound: dec(240000), UpperBound: decPtr(800000), Rate: dec(21)},
			{LowerBound: dec(800000), UpperBound: decPtr(2400000), Rate: dec(24)},
			{LowerBound: dec(2400000), UpperBound: decPtr(8000000), Rate: dec(28)},
			{LowerBound: dec(8000000), UpperBound: nil, Rate: dec(32)},
		},

		// Monthly deduction per fiscal-parts step.
		FamilyDeductions: []payroll.FamilyDeductionRule{
			{PartsThreshold: dec(1), Deduction: dec(0)},
			{PartsThreshold: dec(1.5), Deduction: dec(5500)},
			{PartsThreshold: dec(2), Deduction: dec(11000)},
			{PartsThreshold: dec(2.5), Deduction: dec(16500)},
			{PartsThreshold: dec(3), Deduction: dec(22000)},
			{PartsThreshold: dec(3.5), Deduction: dec(27500)},
			{PartsThreshold: dec(4), Deduction: dec(33000)},
			{PartsThreshold: dec(4.5), Deduction: dec(38500)},
			{PartsThreshold: dec(5), Deduction: dec(44000)},
		},

		DefaultContributionBase: payroll.BaseTotalGross,

		// CNPS contribution scheme.
		ContributionTypes: []payroll.ContributionTypeDefinition{
			{
				Code:            "cnps_retirement",
				Name:            "Retraite CNPS",
				Payer:           payroll.PayerBoth,
				EmployeeRate:    dec(6.3),
				EmployerRate:    dec(7.7),
				CalculationBase: payroll.BaseTaxableGross,
				Ceiling:         decPtr(3375000),
			},
			{
				Code:            "cnps_work_accident",
				Name:            "Accident de travail",
				Payer:           payroll.PayerEmployer,
				EmployerRate:    dec(3),
				CalculationBase: payroll.BaseCategorialSalary,
				Ceiling:         decPtr(75000),
				SectorOverrides: map[string]payroll.SectorOverride{
					"construction": {EmployerRate: decPtr(5)},
					"commerce":     {EmployerRate: decPtr(2)},
				},
			},
			{
				Code:            "cnps_family_benefit",
				Name:            "Prestations familiales",
				Payer:           payroll.PayerEmployer,
				EmployerRate:    dec(5.75),
				CalculationBase: payroll.BaseCategorialSalary,
				Ceiling:         decPtr(75000),
			},
		},

		// FDFP training levies, employer-only.
		OtherTaxes: []payroll.OtherTaxDefinition{
			{
				Code:            "fdfp_apprenticeship",
				Name:            "Taxe d'apprentissage",
				Payer:           payroll.PayerEmployer,
				Rate:            dec(0.4),
				CalculationBase: payroll.BaseTaxableGross,
			},
			{
				Code:            "fdfp_training",
				Name:            "Formation professionnelle continue",
				Payer:           payroll.PayerEmployer,
				Rate:            dec(0.6),
				CalculationBase: payroll.BaseTaxableGross,
			},
		},

		// CMU universal health coverage, flat monthly amounts.
		CMU: payroll.CMUAmounts{
			Employee:           dec(500),
			EmployerBase:       dec(500),
			EmployerWithFamily: dec(1000),
		},

		ComponentMetadata: DefaultComponentMetadata(),
	}
}

// ==========================================
// DEFAULT COMPONENT METADATA
// ==========================================

// DefaultComponentMetadata returns the standard component catalog: which
// components are taxable, which feed the categorial salary, and which are
// flat amounts exempt from proration.
func DefaultComponentMetadata() map[string]payroll.ComponentMetadata {
	return map[string]payroll.ComponentMetadata{
		payroll.BaseSalaryCode: {
			Taxable: true,
			IncludedInBases: []payroll.BaseID{
				payroll.BaseTotalGross,
				payroll.BaseTaxableGross,
				payroll.BaseCategorialSalary,
			},
		},
		"seniority_bonus": {
			Taxable: true,
			IncludedInBases: []payroll.BaseID{
				payroll.BaseTotalGross,
				payroll.BaseTaxableGross,
			},
		},
		"responsibility_bonus": {
			Taxable: true,
			IncludedInBases: []payroll.BaseID{
				payroll.BaseTotalGross,
				payroll.BaseTaxableGross,
			},
		},
		// Transport allowance is exempt up to the legal flat amount and paid
		// in full regardless of units worked.
		"transport_allowance": {
			Taxable:         false,
			IncludedInBases: []payroll.BaseID{payroll.BaseTotalGross},
			IsFixedAmount:   true,
		},
		"housing_allowance": {
			Taxable: true,
			IncludedInBases: []payroll.BaseID{
				payroll.BaseTotalGross,
				payroll.BaseTaxableGross,
			},
			IsFixedAmount: true,
		},
	}
}

// PreviewConfig returns the default profile retagged with the requested
// country code, for estimates against countries with no stored
// configuration.
func PreviewConfig(countryCode string) payroll.CountryPayrollConfig {
	cfg := DefaultCountryConfig()
	if countryCode != "" {
		cfg.CountryCode = countryCode
	}
	return cfg
}
