package commission

import "context"

// ApprovalRepository persists the approval snapshots. Upsert and Revoke take
// the version the caller last saw and must fail with ErrVersionConflict when
// the stored version no longer matches, so two sessions cannot silently
// overwrite each other.
type ApprovalRepository interface {
	// Upsert inserts or replaces the snapshot for (agent, month). expected
	// version 0 means "no record yet"; on success the stored version is
	// bumped.
	Upsert(ctx context.Context, record ApprovalRecord, expectedVersion int) (ApprovalRecord, error)
	GetByAgentMonth(ctx context.Context, agentName, month string) (ApprovalRecord, error)
	ListByMonth(ctx context.Context, month string, includeRevoked bool) ([]ApprovalRecord, error)
	Revoke(ctx context.Context, agentName, month, revokedBy, reason string, expectedVersion int) (ApprovalRecord, error)
}
