package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type approvalRepository struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) commission.ApprovalRepository {
	return &approvalRepository{db: db}
}

const approvalColumns = `
	id, agent_name, month, approved, approved_commission, approved_by, approved_at,
	comment, salary_model_id, tjenestetorget_deduction, bytt_deduction, other_deductions,
	five_percent_applied, revoked, revoked_by, revoked_at, revocation_reason,
	version, created_at, updated_at
`

func scanApproval(row pgx.Row) (commission.ApprovalRecord, error) {
	var rec commission.ApprovalRecord
	err := row.Scan(
		&rec.ID, &rec.AgentName, &rec.Month, &rec.Approved, &rec.ApprovedCommission,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.Comment, &rec.SalaryModelID,
		&rec.TjenestetorgetDeduction, &rec.ByttDeduction, &rec.OtherDeductions,
		&rec.FivePercentApplied, &rec.Revoked, &rec.RevokedBy, &rec.RevokedAt,
		&rec.RevocationReason, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert writes the approval snapshot for (agent, month) with a version guard.
// expectedVersion 0 means the caller believes no record exists yet; any other
// value must match the stored version or the write is rejected.
func (r *approvalRepository) Upsert(ctx context.Context, record commission.ApprovalRecord, expectedVersion int) (commission.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	if expectedVersion == 0 {
		query := fmt.Sprintf(`
			INSERT INTO commission_approvals (
				id, agent_name, month, approved, approved_commission, approved_by, approved_at,
				comment, salary_model_id, tjenestetorget_deduction, bytt_deduction, other_deductions,
				five_percent_applied, version
			)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7, $8, $9, $10, $11, $12, 1)
			ON CONFLICT (agent_name, month) DO NOTHING
			RETURNING %s
		`, approvalColumns)

		rec, err := scanApproval(q.QueryRow(ctx, query,
			uuid.NewString(), record.AgentName, record.Month, record.Approved,
			record.ApprovedCommission, record.ApprovedBy, record.Comment, record.SalaryModelID,
			record.TjenestetorgetDeduction, record.ByttDeduction, record.OtherDeductions,
			record.FivePercentApplied,
		))
		if err != nil {
			if err == pgx.ErrNoRows {
				// A record already exists, so version 0 is stale.
				return commission.ApprovalRecord{}, commission.ErrVersionConflict
			}
			return commission.ApprovalRecord{}, fmt.Errorf("failed to insert approval: %w", err)
		}
		return rec, nil
	}

	// Re-approval clears any prior revocation along with writing the fresh
	// snapshot.
	query := fmt.Sprintf(`
		UPDATE commission_approvals
		SET approved = $3,
		    approved_commission = $4,
		    approved_by = $5,
		    approved_at = NOW(),
		    comment = $6,
		    salary_model_id = $7,
		    tjenestetorget_deduction = $8,
		    bytt_deduction = $9,
		    other_deductions = $10,
		    five_percent_applied = $11,
		    revoked = FALSE,
		    revoked_by = NULL,
		    revoked_at = NULL,
		    revocation_reason = NULL,
		    version = version + 1,
		    updated_at = NOW()
		WHERE agent_name = $1 AND month = $2 AND version = $12
		RETURNING %s
	`, approvalColumns)

	rec, err := scanApproval(q.QueryRow(ctx, query,
		record.AgentName, record.Month, record.Approved, record.ApprovedCommission,
		record.ApprovedBy, record.Comment, record.SalaryModelID,
		record.TjenestetorgetDeduction, record.ByttDeduction, record.OtherDeductions,
		record.FivePercentApplied, expectedVersion,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByAgentMonth(ctx, record.AgentName, record.Month); getErr != nil {
				return commission.ApprovalRecord{}, getErr
			}
			return commission.ApprovalRecord{}, commission.ErrVersionConflict
		}
		return commission.ApprovalRecord{}, fmt.Errorf("failed to update approval: %w", err)
	}

	return rec, nil
}

func (r *approvalRepository) GetByAgentMonth(ctx context.Context, agentName, month string) (commission.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM commission_approvals
		WHERE agent_name = $1 AND month = $2
	`, approvalColumns)

	rec, err := scanApproval(q.QueryRow(ctx, query, agentName, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return commission.ApprovalRecord{}, commission.ErrApprovalNotFound
		}
		return commission.ApprovalRecord{}, fmt.Errorf("failed to get approval: %w", err)
	}

	return rec, nil
}

func (r *approvalRepository) ListByMonth(ctx context.Context, month string, includeRevoked bool) ([]commission.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM commission_approvals
		WHERE month = $1
	`, approvalColumns)
	if !includeRevoked {
		query += " AND revoked = FALSE"
	}
	query += " ORDER BY agent_name"

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	defer rows.Close()

	var records []commission.ApprovalRecord
	for rows.Next() {
		rec, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Revoke flips the revoked flag without touching the approval snapshot, so the
// frozen figures survive for audit and a later re-approval.
func (r *approvalRepository) Revoke(ctx context.Context, agentName, month, revokedBy, reason string, expectedVersion int) (commission.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE commission_approvals
		SET revoked = TRUE,
		    revoked_by = $3,
		    revoked_at = NOW(),
		    revocation_reason = $4,
		    version = version + 1,
		    updated_at = NOW()
		WHERE agent_name = $1 AND month = $2 AND version = $5
		RETURNING %s
	`, approvalColumns)

	rec, err := scanApproval(q.QueryRow(ctx, query, agentName, month, revokedBy, reason, expectedVersion))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByAgentMonth(ctx, agentName, month); getErr != nil {
				return commission.ApprovalRecord{}, getErr
			}
			return commission.ApprovalRecord{}, commission.ErrVersionConflict
		}
		return commission.ApprovalRecord{}, fmt.Errorf("failed to revoke approval: %w", err)
	}

	return rec, nil
}
