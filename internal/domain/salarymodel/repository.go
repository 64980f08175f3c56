package salarymodel

import "context"

type SalaryModelRepository interface {
	Create(ctx context.Context, model SalaryModel) (SalaryModel, error)
	GetByID(ctx context.Context, id string) (SalaryModel, error)
	GetAll(ctx context.Context) ([]SalaryModel, error)
	Update(ctx context.Context, req UpdateSalaryModelRequest) error
	Delete(ctx context.Context, id string) error
}
