package salarymodel

import "context"

type SalaryModelService interface {
	Create(ctx context.Context, req CreateSalaryModelRequest) (SalaryModelResponse, error)
	GetByID(ctx context.Context, id string) (SalaryModelResponse, error)
	List(ctx context.Context) ([]SalaryModelResponse, error)
	Update(ctx context.Context, req UpdateSalaryModelRequest) (SalaryModelResponse, error)
	Delete(ctx context.Context, id string) error
}
