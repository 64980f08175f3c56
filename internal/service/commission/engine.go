package commission

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Engine computes one agent-month's commission from the aggregate and the
// salary-model list. It never fails: unresolvable models degrade to a
// zero-rate stub and the result is at worst all zeroes.
type Engine struct {
	policy commission.Policy
	logger *slog.Logger
}

func NewEngine(policy commission.Policy, logger *slog.Logger) *Engine {
	return &Engine{policy: policy, logger: logger}
}

// Input carries the aggregate fields plus the per-month deduction and
// add-in amounts the caller resolved (tender dataset, or the snapshot frozen
// into an approval record).
type Input struct {
	LivPremium       decimal.Decimal
	SkadePremium     decimal.Decimal
	SalaryModelID    string
	ApplyFivePercent bool

	Tjenestetorget decimal.Decimal
	Bytt           decimal.Decimal
	Other          decimal.Decimal

	// BaseSalary overrides the model's base salary when set.
	BaseSalary         *decimal.Decimal
	DiscretionaryBonus decimal.Decimal
}

// Compute runs the commission calculation. GrossCommission is base plus bonus
// commission before any deduction; NetCommission is the payable amount.
func (e *Engine) Compute(in Input, models []salarymodel.SalaryModel) commission.Result {
	model := e.resolveModel(in.SalaryModelID, models)

	baseLiv := in.LivPremium.Mul(model.CommissionLiv).Div(oneHundred)
	baseSkade := in.SkadePremium.Mul(model.CommissionSkade).Div(oneHundred)
	baseCommission := baseLiv.Add(baseSkade)

	// Cliff bonus: reaching the threshold grants the bonus rate on the entire
	// premium, not just the excess. The threshold value itself qualifies.
	bonusCommission := decimal.Zero
	totalPremium := in.LivPremium.Add(in.SkadePremium)
	if model.BonusEnabled && model.BonusThreshold != nil && totalPremium.GreaterThanOrEqual(*model.BonusThreshold) {
		bonusCommission = in.LivPremium.Mul(model.BonusPercentageLiv).Div(oneHundred).
			Add(in.SkadePremium.Mul(model.BonusPercentageSkade).Div(oneHundred))
	}

	gross := baseCommission.Add(bonusCommission)

	// The tenure deduction always comes off the gross total, never off a
	// partially deducted intermediate.
	fivePercent := decimal.Zero
	if in.ApplyFivePercent {
		fivePercent = gross.Mul(e.policy.TenureDeductionRate)
	}

	baseSalary := model.BaseSalary
	if in.BaseSalary != nil {
		baseSalary = *in.BaseSalary
	}

	net := gross.
		Sub(fivePercent).
		Sub(in.Tjenestetorget).
		Sub(in.Bytt).
		Sub(in.Other).
		Add(baseSalary).
		Add(in.DiscretionaryBonus)

	return commission.Result{
		BaseCommissionLiv:       baseLiv,
		BaseCommissionSkade:     baseSkade,
		BaseCommission:          baseCommission,
		BonusCommission:         bonusCommission,
		GrossCommission:         gross,
		FivePercentDeduction:    fivePercent,
		TjenestetorgetDeduction: in.Tjenestetorget,
		ByttDeduction:           in.Bytt,
		OtherDeductions:         in.Other,
		BaseSalary:              baseSalary,
		DiscretionaryBonus:      in.DiscretionaryBonus,
		NetCommission:           net,
	}
}

// resolveModel finds the active salary model by numeric-coerced id comparison
// (legacy imports reference models as "1", "01" or 1 interchangeably), then
// falls back to the policy default, then to a zero-rate stub.
func (e *Engine) resolveModel(id string, models []salarymodel.SalaryModel) salarymodel.SalaryModel {
	if m, ok := findModel(id, models); ok {
		return m
	}
	if m, ok := findModel(e.policy.DefaultSalaryModelID, models); ok {
		e.logger.Warn("salary model not found, using default tier",
			slog.String("salary_model_id", id),
			slog.String("default_id", e.policy.DefaultSalaryModelID),
		)
		return m
	}
	e.logger.Warn("no salary model resolvable, using zero-rate stub",
		slog.String("salary_model_id", id),
	)
	return salarymodel.SalaryModel{ID: id}
}

func findModel(id string, models []salarymodel.SalaryModel) (salarymodel.SalaryModel, bool) {
	for _, m := range models {
		if idsEqual(m.ID, id) {
			return m, true
		}
	}
	return salarymodel.SalaryModel{}, false
}

// idsEqual compares ids numerically when both sides parse as numbers, so
// "01" matches "1"; otherwise it falls back to a trimmed string compare.
func idsEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return na == nb
	}
	return a == b
}
