package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/provipay/commission-backend-go/internal/domain/deduction"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type tenderDeductionRepository struct {
	db *database.DB
}

func NewTenderDeductionRepository(db *database.DB) deduction.TenderDeductionRepository {
	return &tenderDeductionRepository{db: db}
}

func (r *tenderDeductionRepository) Upsert(ctx context.Context, d deduction.TenderDeduction) (deduction.TenderDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tender_deductions (id, agent_name, month, tjenestetorget, bytt, other)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (agent_name, month) DO UPDATE
		SET tjenestetorget = EXCLUDED.tjenestetorget,
		    bytt = EXCLUDED.bytt,
		    other = EXCLUDED.other,
		    updated_at = NOW()
		RETURNING id, agent_name, month, tjenestetorget, bytt, other, created_at, updated_at
	`

	var upserted deduction.TenderDeduction
	err := q.QueryRow(ctx, query,
		uuid.NewString(), d.AgentName, d.Month, d.Tjenestetorget, d.Bytt, d.Other,
	).Scan(
		&upserted.ID, &upserted.AgentName, &upserted.Month,
		&upserted.Tjenestetorget, &upserted.Bytt, &upserted.Other,
		&upserted.CreatedAt, &upserted.UpdatedAt,
	)
	if err != nil {
		return deduction.TenderDeduction{}, fmt.Errorf("failed to upsert tender deduction: %w", err)
	}

	return upserted, nil
}

func (r *tenderDeductionRepository) GetByAgentMonth(ctx context.Context, agentName, month string) (deduction.TenderDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agent_name, month, tjenestetorget, bytt, other, created_at, updated_at
		FROM tender_deductions
		WHERE agent_name = $1 AND month = $2
	`

	var d deduction.TenderDeduction
	err := q.QueryRow(ctx, query, agentName, month).Scan(
		&d.ID, &d.AgentName, &d.Month, &d.Tjenestetorget, &d.Bytt, &d.Other, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.TenderDeduction{}, deduction.ErrTenderDeductionNotFound
		}
		return deduction.TenderDeduction{}, fmt.Errorf("failed to get tender deduction: %w", err)
	}

	return d, nil
}

func (r *tenderDeductionRepository) ListByMonth(ctx context.Context, month string) ([]deduction.TenderDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agent_name, month, tjenestetorget, bytt, other, created_at, updated_at
		FROM tender_deductions
		WHERE month = $1
		ORDER BY agent_name
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list tender deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.TenderDeduction
	for rows.Next() {
		var d deduction.TenderDeduction
		if err := rows.Scan(
			&d.ID, &d.AgentName, &d.Month, &d.Tjenestetorget, &d.Bytt, &d.Other, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tender deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, nil
}
