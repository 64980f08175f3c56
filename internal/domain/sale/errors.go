package sale

import "errors"

var (
	ErrSaleNotFound         = errors.New("sale record not found")
	ErrSaleAlreadyCancelled = errors.New("sale record is already cancelled")
)
