package employee

import (
	"encoding/json"

	"github.com/provipay/commission-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name                      string `json:"name"`
	AgentCompany              string `json:"agent_company"`
	HireDate                  string `json:"hire_date"` // YYYY-MM-DD
	SalaryModelID             string `json:"salary_model_id"`
	ApplyFivePercentDeduction *bool  `json:"apply_five_percent_deduction,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.SalaryModelID) {
		errs = append(errs, validator.ValidationError{Field: "salary_model_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string
	Name          *string `json:"name,omitempty"`
	AgentCompany  *string `json:"agent_company,omitempty"`
	HireDate      *string `json:"hire_date,omitempty"`
	SalaryModelID *string `json:"salary_model_id,omitempty"`
	// Pointer-to-pointer so the caller can distinguish "leave as is" (field
	// absent) from "clear back to tenure-derived" (explicit null). Filled by
	// UnmarshalJSON below; plain decoding collapses absent and null.
	ApplyFivePercentDeduction **bool `json:"-"`
}

func (r *UpdateEmployeeRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateEmployeeRequest
	aux := struct {
		ApplyFivePercentDeduction *bool `json:"apply_five_percent_deduction"`
		*alias
	}{alias: (*alias)(r)}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if _, present := raw["apply_five_percent_deduction"]; present {
		r.ApplyFivePercentDeduction = &aux.ApplyFivePercentDeduction
	}
	return nil
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	AgentCompany              string `json:"agent_company"`
	HireDate                  string `json:"hire_date"`
	SalaryModelID             string `json:"salary_model_id"`
	ApplyFivePercentDeduction *bool  `json:"apply_five_percent_deduction,omitempty"`
}
