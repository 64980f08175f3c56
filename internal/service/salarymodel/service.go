package salarymodel

import (
	"context"

	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type SalaryModelServiceImpl struct {
	db        *database.DB
	modelRepo salarymodel.SalaryModelRepository
}

func NewSalaryModelService(db *database.DB, modelRepo salarymodel.SalaryModelRepository) salarymodel.SalaryModelService {
	return &SalaryModelServiceImpl{db: db, modelRepo: modelRepo}
}

func (s *SalaryModelServiceImpl) Create(ctx context.Context, req salarymodel.CreateSalaryModelRequest) (salarymodel.SalaryModelResponse, error) {
	if err := req.Validate(); err != nil {
		return salarymodel.SalaryModelResponse{}, err
	}

	model := salarymodel.SalaryModel{
		Name:                 req.Name,
		CommissionLiv:        req.CommissionLiv,
		CommissionSkade:      req.CommissionSkade,
		BaseSalary:           req.BaseSalary,
		BonusEnabled:         req.BonusEnabled,
		BonusThreshold:       req.BonusThreshold,
		BonusPercentageLiv:   req.BonusPercentageLiv,
		BonusPercentageSkade: req.BonusPercentageSkade,
	}

	created, err := s.modelRepo.Create(ctx, model)
	if err != nil {
		return salarymodel.SalaryModelResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *SalaryModelServiceImpl) GetByID(ctx context.Context, id string) (salarymodel.SalaryModelResponse, error) {
	model, err := s.modelRepo.GetByID(ctx, id)
	if err != nil {
		return salarymodel.SalaryModelResponse{}, err
	}
	return mapToResponse(model), nil
}

func (s *SalaryModelServiceImpl) List(ctx context.Context) ([]salarymodel.SalaryModelResponse, error) {
	models, err := s.modelRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]salarymodel.SalaryModelResponse, 0, len(models))
	for _, m := range models {
		result = append(result, mapToResponse(m))
	}
	return result, nil
}

func (s *SalaryModelServiceImpl) Update(ctx context.Context, req salarymodel.UpdateSalaryModelRequest) (salarymodel.SalaryModelResponse, error) {
	if err := req.Validate(); err != nil {
		return salarymodel.SalaryModelResponse{}, err
	}

	if err := s.modelRepo.Update(ctx, req); err != nil {
		return salarymodel.SalaryModelResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *SalaryModelServiceImpl) Delete(ctx context.Context, id string) error {
	return s.modelRepo.Delete(ctx, id)
}

func mapToResponse(m salarymodel.SalaryModel) salarymodel.SalaryModelResponse {
	return salarymodel.SalaryModelResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		CommissionLiv:        m.CommissionLiv,
		CommissionSkade:      m.CommissionSkade,
		BaseSalary:           m.BaseSalary,
		BonusEnabled:         m.BonusEnabled,
		BonusThreshold:       m.BonusThreshold,
		BonusPercentageLiv:   m.BonusPercentageLiv,
		BonusPercentageSkade: m.BonusPercentageSkade,
	}
}
