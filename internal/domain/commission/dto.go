package commission

import (
	"github.com/provipay/commission-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ApproveRequest struct {
	AgentName          string          `json:"agent_name"`
	Month              string          `json:"month"` // YYYY-MM
	GrossCommission    decimal.Decimal `json:"gross_commission"`
	SalaryModelID      string          `json:"salary_model_id"`
	Comment            *string         `json:"comment,omitempty"`
	Tjenestetorget     decimal.Decimal `json:"tjenestetorget"`
	Bytt               decimal.Decimal `json:"bytt"`
	Other              decimal.Decimal `json:"other"`
	FivePercentApplied bool            `json:"five_percent_applied"`
	// Version of the record the caller last saw; 0 when approving for the
	// first time.
	Version int `json:"version"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentName) {
		errs = append(errs, validator.ValidationError{Field: "agent_name", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if !r.GrossCommission.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "gross_commission", Message: "must be a positive amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RevokeRequest struct {
	AgentName string `json:"agent_name"`
	Month     string `json:"month"`
	Reason    string `json:"reason"`
	Version   int    `json:"version"`
}

func (r *RevokeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentName) {
		errs = append(errs, validator.ValidationError{Field: "agent_name", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResultResponse struct {
	BaseCommissionLiv   decimal.Decimal `json:"base_commission_liv"`
	BaseCommissionSkade decimal.Decimal `json:"base_commission_skade"`
	BaseCommission      decimal.Decimal `json:"base_commission"`
	BonusCommission     decimal.Decimal `json:"bonus_commission"`

	GrossCommission decimal.Decimal `json:"gross_commission"`

	FivePercentDeduction    decimal.Decimal `json:"five_percent_deduction"`
	TjenestetorgetDeduction decimal.Decimal `json:"tjenestetorget_deduction"`
	ByttDeduction           decimal.Decimal `json:"bytt_deduction"`
	OtherDeductions         decimal.Decimal `json:"other_deductions"`

	BaseSalary         decimal.Decimal `json:"base_salary"`
	DiscretionaryBonus decimal.Decimal `json:"discretionary_bonus"`

	NetCommission decimal.Decimal `json:"net_commission"`
}

// OverviewRow is one agent's line on the monthly commission screen: the live
// aggregate, the live computation, and the approval status side by side.
type OverviewRow struct {
	AgentName        string          `json:"agent_name"`
	Office           string          `json:"office"`
	SalaryModelID    string          `json:"salary_model_id"`
	LivPremium       decimal.Decimal `json:"liv_premium"`
	SkadePremium     decimal.Decimal `json:"skade_premium"`
	TotalPremium     decimal.Decimal `json:"total_premium"`
	SaleCount        int             `json:"sale_count"`
	ApplyFivePercent bool            `json:"apply_five_percent"`

	Result ResultResponse `json:"result"`

	Approved           bool             `json:"approved"`
	ApprovedCommission *decimal.Decimal `json:"approved_commission,omitempty"`
	ApprovedBy         *string          `json:"approved_by,omitempty"`
	ApprovedAt         *string          `json:"approved_at,omitempty"`
	Revoked            bool             `json:"revoked"`
	Version            int              `json:"version"`
}

// OverviewResponse includes both totals; the difference between them is the
// reconciliation metric shown on the dashboard.
type OverviewResponse struct {
	Month           string          `json:"month"`
	Rows            []OverviewRow   `json:"rows"`
	CalculatedTotal decimal.Decimal `json:"calculated_total"`
	ApprovedTotal   decimal.Decimal `json:"approved_total"`
	Difference      decimal.Decimal `json:"difference"`
}

type ApprovalResponse struct {
	ID                 string          `json:"id"`
	AgentName          string          `json:"agent_name"`
	Month              string          `json:"month"`
	Approved           bool            `json:"approved"`
	ApprovedCommission decimal.Decimal `json:"approved_commission"`
	ApprovedBy         *string         `json:"approved_by,omitempty"`
	ApprovedAt         *string         `json:"approved_at,omitempty"`
	Comment            *string         `json:"comment,omitempty"`
	SalaryModelID      *string         `json:"salary_model_id,omitempty"`

	Tjenestetorget     decimal.Decimal `json:"tjenestetorget"`
	Bytt               decimal.Decimal `json:"bytt"`
	Other              decimal.Decimal `json:"other"`
	FivePercentApplied bool            `json:"five_percent_applied"`

	Revoked          bool    `json:"revoked"`
	RevokedBy        *string `json:"revoked_by,omitempty"`
	RevokedAt        *string `json:"revoked_at,omitempty"`
	RevocationReason *string `json:"revocation_reason,omitempty"`

	Version int `json:"version"`
}

type MonthsResponse struct {
	Months []string `json:"months"`
}
