package commission

import "errors"

var (
	ErrApprovalNotFound      = errors.New("approval record not found")
	ErrApprovalNotApproved   = errors.New("approval record is not in approved state")
	ErrApprovalRevoked       = errors.New("approval record is already revoked")
	ErrVersionConflict       = errors.New("approval record was modified by another session")
	ErrRevocationNeedsReason = errors.New("revocation requires a reason")
)
