package payroll

import (
	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// RoundingPolicy is the pluggable net-pay rounding strategy. Project
// documentation describes two candidate legal rules; which one applies is a
// per-country configuration choice, so both are named policies rather than
// hard-coded behavior.
type RoundingPolicy interface {
	Name() string
	Round(v decimal.Decimal) decimal.Decimal
}

type nearestUnitPolicy struct{}

func (nearestUnitPolicy) Name() string { return string(payroll.RoundNearestUnit) }

func (nearestUnitPolicy) Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}

type hundredsPlus18Policy struct{}

func (hundredsPlus18Policy) Name() string { return string(payroll.RoundHundredsPlus18) }

// Round adds 18 then rounds to the nearest 100 currency units.
func (hundredsPlus18Policy) Round(v decimal.Decimal) decimal.Decimal {
	return v.Add(decimal.NewFromInt(18)).Div(oneHundred).Round(0).Mul(oneHundred)
}

// PolicyFor maps a configured rounding rule onto its policy. Unknown rules
// never reach here: configuration validation rejects them up front.
func PolicyFor(rule payroll.RoundingRule) RoundingPolicy {
	if rule == payroll.RoundHundredsPlus18 {
		return hundredsPlus18Policy{}
	}
	return nearestUnitPolicy{}
}
