package salarymodel

import (
	"github.com/provipay/commission-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryModelRequest struct {
	Name                 string           `json:"name"`
	CommissionLiv        decimal.Decimal  `json:"commission_liv"`
	CommissionSkade      decimal.Decimal  `json:"commission_skade"`
	BaseSalary           decimal.Decimal  `json:"base_salary"`
	BonusEnabled         bool             `json:"bonus_enabled"`
	BonusThreshold       *decimal.Decimal `json:"bonus_threshold,omitempty"`
	BonusPercentageLiv   decimal.Decimal  `json:"bonus_percentage_liv"`
	BonusPercentageSkade decimal.Decimal  `json:"bonus_percentage_skade"`
}

func (r *CreateSalaryModelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.CommissionLiv.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "commission_liv", Message: "must be non-negative"})
	}
	if r.CommissionSkade.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "commission_skade", Message: "must be non-negative"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.BonusEnabled {
		if r.BonusThreshold == nil {
			errs = append(errs, validator.ValidationError{Field: "bonus_threshold", Message: "is required when bonus is enabled"})
		}
		if r.BonusPercentageLiv.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "bonus_percentage_liv", Message: "must be non-negative"})
		}
		if r.BonusPercentageSkade.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "bonus_percentage_skade", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryModelRequest struct {
	ID                   string
	Name                 *string          `json:"name,omitempty"`
	CommissionLiv        *decimal.Decimal `json:"commission_liv,omitempty"`
	CommissionSkade      *decimal.Decimal `json:"commission_skade,omitempty"`
	BaseSalary           *decimal.Decimal `json:"base_salary,omitempty"`
	BonusEnabled         *bool            `json:"bonus_enabled,omitempty"`
	BonusThreshold       *decimal.Decimal `json:"bonus_threshold,omitempty"`
	BonusPercentageLiv   *decimal.Decimal `json:"bonus_percentage_liv,omitempty"`
	BonusPercentageSkade *decimal.Decimal `json:"bonus_percentage_skade,omitempty"`
}

func (r *UpdateSalaryModelRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CommissionLiv != nil && r.CommissionLiv.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "commission_liv", Message: "must be non-negative"})
	}
	if r.CommissionSkade != nil && r.CommissionSkade.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "commission_skade", Message: "must be non-negative"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryModelResponse struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	CommissionLiv        decimal.Decimal  `json:"commission_liv"`
	CommissionSkade      decimal.Decimal  `json:"commission_skade"`
	BaseSalary           decimal.Decimal  `json:"base_salary"`
	BonusEnabled         bool             `json:"bonus_enabled"`
	BonusThreshold       *decimal.Decimal `json:"bonus_threshold,omitempty"`
	BonusPercentageLiv   decimal.Decimal  `json:"bonus_percentage_liv"`
	BonusPercentageSkade decimal.Decimal  `json:"bonus_percentage_skade"`
}
