package postgresql

import (
	"context"
	"fmt"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollConfigRepository struct {
	db *database.DB
}

func NewPayrollConfigRepository(db *database.DB) payroll.ConfigRepository {
	return &payrollConfigRepository{db: db}
}

// GetCountryConfig assembles the full configuration snapshot for a country:
// settings row, tax scale, deduction table, contribution types with their
// sector overrides, flat levies and component metadata. The reads run inside
// one transaction so a concurrent configuration write cannot produce a torn
// snapshot.
func (r *payrollConfigRepository) GetCountryConfig(ctx context.Context, countryCode string) (payroll.CountryPayrollConfig, error) {
	var cfg payroll.CountryPayrollConfig

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		if cfg, err = r.getCountrySettings(txCtx, countryCode); err != nil {
			return err
		}
		if cfg.TaxBrackets, err = r.getTaxBrackets(txCtx, countryCode); err != nil {
			return err
		}
		if cfg.FamilyDeductions, err = r.getFamilyDeductions(txCtx, countryCode); err != nil {
			return err
		}
		if cfg.ContributionTypes, err = r.getContributionTypes(txCtx, countryCode); err != nil {
			return err
		}
		if cfg.OtherTaxes, err = r.getOtherTaxes(txCtx, countryCode); err != nil {
			return err
		}
		cfg.ComponentMetadata, err = r.getComponentMetadata(txCtx, countryCode)
		return err
	})
	if err != nil {
		return payroll.CountryPayrollConfig{}, err
	}

	return cfg, nil
}

func (r *payrollConfigRepository) ListCountries(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT country_code FROM country_payroll_settings ORDER BY country_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll countries: %w", err)
	}
	defer rows.Close()

	var countries []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan country code: %w", err)
		}
		countries = append(countries, code)
	}
	return countries, rows.Err()
}

func (r *payrollConfigRepository) getCountrySettings(ctx context.Context, countryCode string) (payroll.CountryPayrollConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT country_code, minimum_wage, weekly_hours, max_dependents,
			   tax_base, rounding_rule, default_contribution_base,
			   cmu_employee, cmu_employer_base, cmu_employer_family
		FROM country_payroll_settings
		WHERE country_code = $1
	`

	var cfg payroll.CountryPayrollConfig
	var taxBase, rounding, defaultBase string
	err := q.QueryRow(ctx, query, countryCode).Scan(
		&cfg.CountryCode, &cfg.MinimumWage, &cfg.WeeklyHours, &cfg.MaxDependents,
		&taxBase, &rounding, &defaultBase,
		&cfg.CMU.Employee, &cfg.CMU.EmployerBase, &cfg.CMU.EmployerWithFamily,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CountryPayrollConfig{}, payroll.ErrCountryConfigNotFound
		}
		return payroll.CountryPayrollConfig{}, fmt.Errorf("failed to get country payroll settings: %w", err)
	}

	cfg.TaxBase = payroll.TaxBaseRule(taxBase)
	cfg.Rounding = payroll.RoundingRule(rounding)
	if base, ok := payroll.ParseBaseID(defaultBase); ok {
		cfg.DefaultContributionBase = base
	} else {
		cfg.DefaultContributionBase = payroll.BaseTotalGross
	}

	return cfg, nil
}

func (r *payrollConfigRepository) getTaxBrackets(ctx context.Context, countryCode string) ([]payroll.TaxBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lower_bound, upper_bound, rate
		FROM tax_brackets
		WHERE country_code = $1
		ORDER BY lower_bound
	`

	rows, err := q.Query(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get tax brackets: %w", err)
	}
	defer rows.Close()

	var brackets []payroll.TaxBracket
	for rows.Next() {
		var b payroll.TaxBracket
		if err := rows.Scan(&b.LowerBound, &b.UpperBound, &b.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan tax bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	return brackets, rows.Err()
}

func (r *payrollConfigRepository) getFamilyDeductions(ctx context.Context, countryCode string) ([]payroll.FamilyDeductionRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT parts_threshold, deduction_amount
		FROM family_deduction_rules
		WHERE country_code = $1
		ORDER BY parts_threshold
	`

	rows, err := q.Query(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get family deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []payroll.FamilyDeductionRule
	for rows.Next() {
		var rule payroll.FamilyDeductionRule
		if err := rows.Scan(&rule.PartsThreshold, &rule.Deduction); err != nil {
			return nil, fmt.Errorf("failed to scan family deduction rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *payrollConfigRepository) getContributionTypes(ctx context.Context, countryCode string) ([]payroll.ContributionTypeDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, payer, employee_rate, employer_rate,
			   is_fixed_amount, calculation_base, ceiling_amount
		FROM contribution_types
		WHERE country_code = $1
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution types: %w", err)
	}
	defer rows.Close()

	var definitions []payroll.ContributionTypeDefinition
	for rows.Next() {
		var def payroll.ContributionTypeDefinition
		var payer, base string
		if err := rows.Scan(
			&def.Code, &def.Name, &payer, &def.EmployeeRate, &def.EmployerRate,
			&def.IsFixedAmount, &base, &def.Ceiling,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contribution type: %w", err)
		}
		def.Payer = payroll.Payer(payer)
		if parsed, ok := payroll.ParseBaseID(base); ok {
			def.CalculationBase = parsed
		}
		definitions = append(definitions, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range definitions {
		overrides, err := r.getSectorOverrides(ctx, countryCode, definitions[i].Code)
		if err != nil {
			return nil, err
		}
		definitions[i].SectorOverrides = overrides
	}

	return definitions, nil
}

func (r *payrollConfigRepository) getSectorOverrides(ctx context.Context, countryCode, contributionCode string) (map[string]payroll.SectorOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sector_code, employee_rate, employer_rate
		FROM contribution_sector_rates
		WHERE country_code = $1 AND contribution_code = $2
	`

	rows, err := q.Query(ctx, query, countryCode, contributionCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get sector overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]payroll.SectorOverride)
	for rows.Next() {
		var sectorCode string
		var employeeRate, employerRate *decimal.Decimal
		if err := rows.Scan(&sectorCode, &employeeRate, &employerRate); err != nil {
			return nil, fmt.Errorf("failed to scan sector override: %w", err)
		}
		overrides[sectorCode] = payroll.SectorOverride{
			EmployeeRate: employeeRate,
			EmployerRate: employerRate,
		}
	}
	return overrides, rows.Err()
}

func (r *payrollConfigRepository) getOtherTaxes(ctx context.Context, countryCode string) ([]payroll.OtherTaxDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT code, name, payer, rate, calculation_base
		FROM other_taxes
		WHERE country_code = $1
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get other taxes: %w", err)
	}
	defer rows.Close()

	var taxes []payroll.OtherTaxDefinition
	for rows.Next() {
		var def payroll.OtherTaxDefinition
		var payer, base string
		if err := rows.Scan(&def.Code, &def.Name, &payer, &def.Rate, &base); err != nil {
			return nil, fmt.Errorf("failed to scan other tax: %w", err)
		}
		def.Payer = payroll.Payer(payer)
		if parsed, ok := payroll.ParseBaseID(base); ok {
			def.CalculationBase = parsed
		}
		taxes = append(taxes, def)
	}
	return taxes, rows.Err()
}

func (r *payrollConfigRepository) getComponentMetadata(ctx context.Context, countryCode string) (map[string]payroll.ComponentMetadata, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT component_code, taxable, included_in_bases, is_fixed_amount
		FROM component_metadata
		WHERE country_code = $1
	`

	rows, err := q.Query(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get component metadata: %w", err)
	}
	defer rows.Close()

	metadata := make(map[string]payroll.ComponentMetadata)
	for rows.Next() {
		var code string
		var meta payroll.ComponentMetadata
		var rawBases []string
		if err := rows.Scan(&code, &meta.Taxable, &rawBases, &meta.IsFixedAmount); err != nil {
			return nil, fmt.Errorf("failed to scan component metadata: %w", err)
		}
		for _, raw := range rawBases {
			// Unknown base identifiers are dropped here, not carried into
			// the calculation as strings.
			if base, ok := payroll.ParseBaseID(raw); ok {
				meta.IncludedInBases = append(meta.IncludedInBases, base)
			}
		}
		metadata[code] = meta
	}
	return metadata, rows.Err()
}
