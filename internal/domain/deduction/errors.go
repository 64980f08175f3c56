package deduction

import "errors"

var ErrTenderDeductionNotFound = errors.New("tender deduction not found")
