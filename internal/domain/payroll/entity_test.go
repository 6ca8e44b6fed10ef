package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiscalParts(t *testing.T) {
	cases := []struct {
		name       string
		married    bool
		dependents int
		want       float64
	}{
		{"single no dependents", false, 0, 1},
		{"married no dependents", true, 0, 2},
		{"single two dependents", false, 2, 2},
		{"married one dependent", true, 1, 2.5},
		{"married two dependents", true, 2, 3},
		{"dependents capped", true, 10, 2 + 0.5*6},
		{"negative dependents ignored", false, -3, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FiscalParts(c.married, c.dependents, 6)
			assert.True(t, got.Equal(dec(c.want)), "got %s, want %v", got, c.want)
		})
	}
}

func TestComponentMetadata_CountsToward(t *testing.T) {
	meta := ComponentMetadata{
		IncludedInBases: []BaseID{BaseTotalGross, BaseTaxableGross},
	}
	assert.True(t, meta.CountsToward(BaseTotalGross))
	assert.True(t, meta.CountsToward(BaseTaxableGross))
	assert.False(t, meta.CountsToward(BaseCategorialSalary))
}

func TestDefaultComponentMetadata(t *testing.T) {
	meta := DefaultComponentMetadata()
	assert.True(t, meta.Taxable)
	assert.False(t, meta.IsFixedAmount)
	assert.True(t, meta.CountsToward(BaseTotalGross))
	assert.False(t, meta.CountsToward(BaseCategorialSalary))
}
