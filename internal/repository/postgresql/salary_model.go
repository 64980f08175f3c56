package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type salaryModelRepository struct {
	db *database.DB
}

func NewSalaryModelRepository(db *database.DB) salarymodel.SalaryModelRepository {
	return &salaryModelRepository{db: db}
}

// salary_models keeps a serial primary key so model ids stay numeric-coercible
// strings ("1", "2", ...) matching the ids legacy sale imports reference.
func (r *salaryModelRepository) Create(ctx context.Context, model salarymodel.SalaryModel) (salarymodel.SalaryModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_models (name, commission_liv, commission_skade, base_salary, bonus_enabled, bonus_threshold, bonus_percentage_liv, bonus_percentage_skade)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text, name, commission_liv, commission_skade, base_salary, bonus_enabled, bonus_threshold, bonus_percentage_liv, bonus_percentage_skade, created_at, updated_at
	`

	var created salarymodel.SalaryModel
	err := q.QueryRow(ctx, query,
		model.Name, model.CommissionLiv, model.CommissionSkade, model.BaseSalary,
		model.BonusEnabled, model.BonusThreshold, model.BonusPercentageLiv, model.BonusPercentageSkade,
	).Scan(
		&created.ID, &created.Name, &created.CommissionLiv, &created.CommissionSkade, &created.BaseSalary,
		&created.BonusEnabled, &created.BonusThreshold, &created.BonusPercentageLiv, &created.BonusPercentageSkade,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return salarymodel.SalaryModel{}, fmt.Errorf("failed to create salary model: %w", err)
	}

	return created, nil
}

func (r *salaryModelRepository) GetByID(ctx context.Context, id string) (salarymodel.SalaryModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, name, commission_liv, commission_skade, base_salary, bonus_enabled, bonus_threshold, bonus_percentage_liv, bonus_percentage_skade, created_at, updated_at
		FROM salary_models
		WHERE id::text = $1
	`

	var model salarymodel.SalaryModel
	err := q.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.CommissionLiv, &model.CommissionSkade, &model.BaseSalary,
		&model.BonusEnabled, &model.BonusThreshold, &model.BonusPercentageLiv, &model.BonusPercentageSkade,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salarymodel.SalaryModel{}, salarymodel.ErrSalaryModelNotFound
		}
		return salarymodel.SalaryModel{}, fmt.Errorf("failed to get salary model: %w", err)
	}

	return model, nil
}

func (r *salaryModelRepository) GetAll(ctx context.Context) ([]salarymodel.SalaryModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, name, commission_liv, commission_skade, base_salary, bonus_enabled, bonus_threshold, bonus_percentage_liv, bonus_percentage_skade, created_at, updated_at
		FROM salary_models
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary models: %w", err)
	}
	defer rows.Close()

	var models []salarymodel.SalaryModel
	for rows.Next() {
		var model salarymodel.SalaryModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.CommissionLiv, &model.CommissionSkade, &model.BaseSalary,
			&model.BonusEnabled, &model.BonusThreshold, &model.BonusPercentageLiv, &model.BonusPercentageSkade,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary model: %w", err)
		}
		models = append(models, model)
	}

	return models, nil
}

func (r *salaryModelRepository) Update(ctx context.Context, req salarymodel.UpdateSalaryModelRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.CommissionLiv != nil {
		setClauses = append(setClauses, fmt.Sprintf("commission_liv = $%d", argIdx))
		args = append(args, *req.CommissionLiv)
		argIdx++
	}
	if req.CommissionSkade != nil {
		setClauses = append(setClauses, fmt.Sprintf("commission_skade = $%d", argIdx))
		args = append(args, *req.CommissionSkade)
		argIdx++
	}
	if req.BaseSalary != nil {
		setClauses = append(setClauses, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.BonusEnabled != nil {
		setClauses = append(setClauses, fmt.Sprintf("bonus_enabled = $%d", argIdx))
		args = append(args, *req.BonusEnabled)
		argIdx++
	}
	if req.BonusThreshold != nil {
		setClauses = append(setClauses, fmt.Sprintf("bonus_threshold = $%d", argIdx))
		args = append(args, *req.BonusThreshold)
		argIdx++
	}
	if req.BonusPercentageLiv != nil {
		setClauses = append(setClauses, fmt.Sprintf("bonus_percentage_liv = $%d", argIdx))
		args = append(args, *req.BonusPercentageLiv)
		argIdx++
	}
	if req.BonusPercentageSkade != nil {
		setClauses = append(setClauses, fmt.Sprintf("bonus_percentage_skade = $%d", argIdx))
		args = append(args, *req.BonusPercentageSkade)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE salary_models SET %s WHERE id::text = $%d RETURNING id", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return salarymodel.ErrSalaryModelNotFound
		}
		return fmt.Errorf("failed to update salary model: %w", err)
	}

	return nil
}

func (r *salaryModelRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM salary_models WHERE id::text = $1", id)
	if err != nil {
		// Employees reference models by id; the FK makes in-use models
		// undeletable rather than silently orphaning agents.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return salarymodel.ErrSalaryModelInUse
		}
		return fmt.Errorf("failed to delete salary model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salarymodel.ErrSalaryModelNotFound
	}

	return nil
}
