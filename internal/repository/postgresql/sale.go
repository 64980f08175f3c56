package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type saleRepository struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, record sale.SaleRecord) (sale.SaleRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sale_records (id, agent_id, agent_name, policy_sale_date, commission_group, net_premium, cancel_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, agent_id, agent_name, policy_sale_date, commission_group, net_premium, cancel_code, created_at, updated_at
	`

	var rec sale.SaleRecord
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.AgentID, record.AgentName, record.PolicySaleDate,
		record.CommissionGroup, record.NetPremium, record.CancelCode,
	).Scan(
		&rec.ID, &rec.AgentID, &rec.AgentName, &rec.PolicySaleDate,
		&rec.CommissionGroup, &rec.NetPremium, &rec.CancelCode, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return sale.SaleRecord{}, fmt.Errorf("failed to create sale record: %w", err)
	}

	return rec, nil
}

// BulkCreate imports all rows in one transaction; a failing row rolls the
// whole batch back.
func (r *saleRepository) BulkCreate(ctx context.Context, records []sale.SaleRecord) (int, error) {
	query := `
		INSERT INTO sale_records (id, agent_id, agent_name, policy_sale_date, commission_group, net_premium, cancel_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	count := 0
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, record := range records {
			_, err := tx.Exec(ctx, query,
				uuid.NewString(), record.AgentID, record.AgentName, record.PolicySaleDate,
				record.CommissionGroup, record.NetPremium, record.CancelCode,
			)
			if err != nil {
				return fmt.Errorf("failed to import sale record for %s: %w", record.AgentName, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (sale.SaleRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agent_id, agent_name, policy_sale_date, commission_group, net_premium, cancel_code, created_at, updated_at
		FROM sale_records
		WHERE id = $1
	`

	var rec sale.SaleRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.AgentID, &rec.AgentName, &rec.PolicySaleDate,
		&rec.CommissionGroup, &rec.NetPremium, &rec.CancelCode, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sale.SaleRecord{}, sale.ErrSaleNotFound
		}
		return sale.SaleRecord{}, fmt.Errorf("failed to get sale record: %w", err)
	}

	return rec, nil
}

func (r *saleRepository) List(ctx context.Context, filter sale.SaleFilter) ([]sale.SaleRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, agent_id, agent_name, policy_sale_date, commission_group, net_premium, cancel_code, created_at, updated_at
		FROM sale_records
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.AgentName != nil {
		query += fmt.Sprintf(" AND agent_name = $%d", argIdx)
		args = append(args, *filter.AgentName)
		argIdx++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND to_char(policy_sale_date, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	query += " ORDER BY policy_sale_date DESC, agent_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale records: %w", err)
	}
	defer rows.Close()

	var records []sale.SaleRecord
	for rows.Next() {
		var rec sale.SaleRecord
		if err := rows.Scan(
			&rec.ID, &rec.AgentID, &rec.AgentName, &rec.PolicySaleDate,
			&rec.CommissionGroup, &rec.NetPremium, &rec.CancelCode, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *saleRepository) Cancel(ctx context.Context, id string, cancelCode string) error {
	q := GetQuerier(ctx, r.db)

	// Cancelled rows are kept forever; only the cancel code is set.
	query := `
		UPDATE sale_records
		SET cancel_code = $2, updated_at = NOW()
		WHERE id = $1 AND (cancel_code IS NULL OR cancel_code = '')
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, cancelCode).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either missing or already cancelled; disambiguate for the caller.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return sale.ErrSaleAlreadyCancelled
		}
		return fmt.Errorf("failed to cancel sale record: %w", err)
	}

	return nil
}
