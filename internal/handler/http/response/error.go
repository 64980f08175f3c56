package response

import (
	"errors"
	"net/http"

	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/domain/deduction"
	"github.com/provipay/commission-backend-go/internal/domain/employee"
	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/provipay/commission-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Commission domain errors
	case errors.Is(err, commission.ErrApprovalNotFound):
		NotFound(w, "Approval record not found")
	case errors.Is(err, commission.ErrApprovalNotApproved):
		BadRequest(w, "Commission is not approved", nil)
	case errors.Is(err, commission.ErrApprovalRevoked):
		Conflict(w, "Approval is already revoked")
	case errors.Is(err, commission.ErrVersionConflict):
		Conflict(w, "Approval was modified by another session, reload and retry")
	case errors.Is(err, commission.ErrRevocationNeedsReason):
		BadRequest(w, "Revocation requires a reason", nil)

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale record not found")
	case errors.Is(err, sale.ErrSaleAlreadyCancelled):
		Conflict(w, "Sale record is already cancelled")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "Employee name already exists")

	// Salary model domain errors
	case errors.Is(err, salarymodel.ErrSalaryModelNotFound):
		NotFound(w, "Salary model not found")
	case errors.Is(err, salarymodel.ErrSalaryModelInUse):
		Conflict(w, "Salary model is assigned to employees")

	// Deduction domain errors
	case errors.Is(err, deduction.ErrTenderDeductionNotFound):
		NotFound(w, "Tender deduction not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
