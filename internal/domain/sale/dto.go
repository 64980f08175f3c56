package sale

import (
	"github.com/provipay/commission-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	AgentID         *string         `json:"agent_id,omitempty"`
	AgentName       string          `json:"agent_name"`
	PolicySaleDate  string          `json:"policy_sale_date"` // YYYY-MM-DD
	CommissionGroup string          `json:"commission_group"`
	NetPremium      decimal.Decimal `json:"net_premium"`
	CancelCode      string          `json:"cancel_code,omitempty"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentName) {
		errs = append(errs, validator.ValidationError{Field: "agent_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.PolicySaleDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "policy_sale_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.CommissionGroup) {
		errs = append(errs, validator.ValidationError{Field: "commission_group", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportSalesRequest struct {
	Sales []CreateSaleRequest `json:"sales"`
}

func (r *ImportSalesRequest) Validate() error {
	if len(r.Sales) == 0 {
		return validator.ValidationErrors{
			{Field: "sales", Message: "must contain at least one row"},
		}
	}
	return nil
}

type CancelSaleRequest struct {
	ID         string
	CancelCode string `json:"cancel_code"`
}

func (r *CancelSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if validator.IsEmpty(r.CancelCode) {
		errs = append(errs, validator.ValidationError{Field: "cancel_code", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaleFilter struct {
	AgentName *string
	Month     *string // YYYY-MM
}

type SaleResponse struct {
	ID              string          `json:"id"`
	AgentID         *string         `json:"agent_id,omitempty"`
	AgentName       string          `json:"agent_name"`
	PolicySaleDate  string          `json:"policy_sale_date"`
	CommissionGroup string          `json:"commission_group"`
	NetPremium      decimal.Decimal `json:"net_premium"`
	CancelCode      string          `json:"cancel_code,omitempty"`
}

type ImportSalesResponse struct {
	Imported int `json:"imported"`
}
