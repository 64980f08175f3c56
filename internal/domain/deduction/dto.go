package deduction

import (
	"github.com/provipay/commission-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertTenderDeductionRequest struct {
	AgentName      string          `json:"agent_name"`
	Month          string          `json:"month"` // YYYY-MM
	Tjenestetorget decimal.Decimal `json:"tjenestetorget"`
	Bytt           decimal.Decimal `json:"bytt"`
	Other          decimal.Decimal `json:"other"`
}

func (r *UpsertTenderDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentName) {
		errs = append(errs, validator.ValidationError{Field: "agent_name", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.Tjenestetorget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tjenestetorget", Message: "must be non-negative"})
	}
	if r.Bytt.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bytt", Message: "must be non-negative"})
	}
	if r.Other.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TenderDeductionResponse struct {
	ID             string          `json:"id"`
	AgentName      string          `json:"agent_name"`
	Month          string          `json:"month"`
	Tjenestetorget decimal.Decimal `json:"tjenestetorget"`
	Bytt           decimal.Decimal `json:"bytt"`
	Other          decimal.Decimal `json:"other"`
}
