package commission

import (
	"io"
	"log/slog"
	"testing"

	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testModels() []salarymodel.SalaryModel {
	return []salarymodel.SalaryModel{
		{
			ID:                   "1",
			Name:                 "Standard",
			CommissionLiv:        dec("10"),
			CommissionSkade:      dec("10"),
			BaseSalary:           dec("0"),
			BonusEnabled:         true,
			BonusThreshold:       decPtr("25000"),
			BonusPercentageLiv:   dec("5"),
			BonusPercentageSkade: dec("5"),
		},
		{
			ID:              "2",
			Name:            "Senior",
			CommissionLiv:   dec("12"),
			CommissionSkade: dec("8"),
			BaseSalary:      dec("20000"),
		},
	}
}

func newTestEngine() *Engine {
	return NewEngine(commission.DefaultPolicy(), testLogger())
}

func TestEngine_Compute_BaseCommission(t *testing.T) {
	e := newTestEngine()

	// Two life premiums summing 30000 at 10% give 3000 base, and 30000 over
	// the 25000 threshold adds 5% bonus on the whole premium.
	result := e.Compute(Input{
		LivPremium:    dec("30000"),
		SalaryModelID: "1",
	}, testModels())

	assert.True(t, result.BaseCommission.Equal(dec("3000")), "base = %s", result.BaseCommission)
	assert.True(t, result.BonusCommission.Equal(dec("1500")), "bonus = %s", result.BonusCommission)
	assert.True(t, result.GrossCommission.Equal(dec("4500")), "gross = %s", result.GrossCommission)
	assert.True(t, result.NetCommission.Equal(dec("4500")))
}

func TestEngine_Compute_SplitLines(t *testing.T) {
	e := newTestEngine()

	result := e.Compute(Input{
		LivPremium:    dec("10000"),
		SkadePremium:  dec("5000"),
		SalaryModelID: "2",
	}, testModels())

	assert.True(t, result.BaseCommissionLiv.Equal(dec("1200")))
	assert.True(t, result.BaseCommissionSkade.Equal(dec("400")))
	assert.True(t, result.GrossCommission.Equal(dec("1600")))
	// Model 2 has no bonus but carries a base salary.
	assert.True(t, result.BonusCommission.IsZero())
	assert.True(t, result.NetCommission.Equal(dec("21600")))
}

func TestEngine_Compute_BonusThresholdBoundary(t *testing.T) {
	e := newTestEngine()
	models := testModels()

	// Exactly at the threshold the bonus applies to the entire premium.
	at := e.Compute(Input{LivPremium: dec("25000"), SalaryModelID: "1"}, models)
	assert.True(t, at.BonusCommission.Equal(dec("1250")), "bonus at threshold = %s", at.BonusCommission)

	// One krone below, no bonus at all.
	below := e.Compute(Input{LivPremium: dec("24999"), SalaryModelID: "1"}, models)
	assert.True(t, below.BonusCommission.IsZero())
}

func TestEngine_Compute_FivePercentFromGrossOnly(t *testing.T) {
	e := newTestEngine()

	result := e.Compute(Input{
		LivPremium:       dec("30000"),
		SalaryModelID:    "1",
		ApplyFivePercent: true,
		Tjenestetorget:   dec("500"),
	}, testModels())

	// 5% of gross 4500, not of the tender-reduced amount.
	assert.True(t, result.FivePercentDeduction.Equal(dec("225")), "five percent = %s", result.FivePercentDeduction)
	assert.True(t, result.NetCommission.Equal(dec("3775")))
}

func TestEngine_Compute_NetIdentity(t *testing.T) {
	e := newTestEngine()

	in := Input{
		LivPremium:         dec("30000"),
		SkadePremium:       dec("12000"),
		SalaryModelID:      "1",
		ApplyFivePercent:   true,
		Tjenestetorget:     dec("300"),
		Bytt:               dec("150"),
		Other:              dec("75"),
		BaseSalary:         decPtr("15000"),
		DiscretionaryBonus: dec("1000"),
	}
	result := e.Compute(in, testModels())

	expected := result.GrossCommission.
		Sub(result.FivePercentDeduction).
		Sub(in.Tjenestetorget).
		Sub(in.Bytt).
		Sub(in.Other).
		Add(*in.BaseSalary).
		Add(in.DiscretionaryBonus)
	assert.True(t, result.NetCommission.Equal(expected))
	assert.True(t, result.GrossCommission.Equal(result.BaseCommission.Add(result.BonusCommission)))
}

func TestEngine_Compute_NumericCoercedModelID(t *testing.T) {
	e := newTestEngine()

	// "01" and "1.0" both resolve to model "1".
	padded := e.Compute(Input{LivPremium: dec("10000"), SalaryModelID: "01"}, testModels())
	assert.True(t, padded.BaseCommission.Equal(dec("1000")))

	coerced := e.Compute(Input{LivPremium: dec("10000"), SalaryModelID: "1.0"}, testModels())
	assert.True(t, coerced.BaseCommission.Equal(dec("1000")))
}

func TestEngine_Compute_FallbackToDefaultModel(t *testing.T) {
	e := newTestEngine()

	result := e.Compute(Input{LivPremium: dec("10000"), SalaryModelID: "99"}, testModels())

	// Unknown model falls back to the default tier "1".
	assert.True(t, result.BaseCommission.Equal(dec("1000")))
}

func TestEngine_Compute_ZeroRateStubWhenNothingResolves(t *testing.T) {
	e := newTestEngine()

	result := e.Compute(Input{
		LivPremium:    dec("10000"),
		SalaryModelID: "99",
	}, nil)

	assert.True(t, result.BaseCommission.IsZero())
	assert.True(t, result.GrossCommission.IsZero())
	assert.True(t, result.NetCommission.IsZero())
}

func TestEngine_Compute_BaseSalaryOverride(t *testing.T) {
	e := newTestEngine()

	result := e.Compute(Input{
		SkadePremium:  dec("1000"),
		SalaryModelID: "2",
		BaseSalary:    decPtr("5000"),
	}, testModels())

	assert.True(t, result.BaseSalary.Equal(dec("5000")))
	assert.True(t, result.NetCommission.Equal(dec("5080")))
}
