package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
)

// resolvedComponent is a salary component annotated with the metadata that
// drives the rest of the calculation.
type resolvedComponent struct {
	payroll.SalaryComponentInstance
	Meta payroll.ComponentMetadata
}

// resolveComponents classifies each component instance. Precedence:
// metadata declared on the instance itself, then the country's per-code
// metadata, then conservative defaults (taxable, total gross only, prorated).
// Missing metadata is a safe-default path, never a failure.
func resolveComponents(
	components []payroll.SalaryComponentInstance,
	cfg payroll.CountryPayrollConfig,
) []resolvedComponent {
	resolved := make([]resolvedComponent, 0, len(components))
	for _, c := range components {
		resolved = append(resolved, resolvedComponent{
			SalaryComponentInstance: c,
			Meta:                    metadataFor(c, cfg),
		})
	}
	return resolved
}

func metadataFor(c payroll.SalaryComponentInstance, cfg payroll.CountryPayrollConfig) payroll.ComponentMetadata {
	if c.Metadata != nil {
		return normalizeMetadata(*c.Metadata)
	}
	if meta, ok := cfg.ComponentMetadata[c.Code]; ok {
		return normalizeMetadata(meta)
	}
	return normalizeMetadata(payroll.DefaultComponentMetadata())
}

// normalizeMetadata guarantees every component counts toward total gross,
// and that taxable components count toward taxable gross. Without this a
// mis-declared base list could break the gross = sum-of-components invariant.
func normalizeMetadata(meta payroll.ComponentMetadata) payroll.ComponentMetadata {
	if !meta.CountsToward(payroll.BaseTotalGross) {
		meta.IncludedInBases = append(meta.IncludedInBases, payroll.BaseTotalGross)
	}
	if meta.Taxable && !meta.CountsToward(payroll.BaseTaxableGross) {
		meta.IncludedInBases = append(meta.IncludedInBases, payroll.BaseTaxableGross)
	}
	return meta
}
