package salarymodel

import "errors"

var (
	ErrSalaryModelNotFound = errors.New("salary model not found")
	ErrSalaryModelInUse    = errors.New("salary model is assigned to employees")
)
