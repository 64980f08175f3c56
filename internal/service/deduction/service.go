package deduction

import (
	"context"

	"github.com/provipay/commission-backend-go/internal/domain/deduction"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type TenderDeductionServiceImpl struct {
	db            *database.DB
	deductionRepo deduction.TenderDeductionRepository
}

func NewTenderDeductionService(db *database.DB, deductionRepo deduction.TenderDeductionRepository) deduction.TenderDeductionService {
	return &TenderDeductionServiceImpl{db: db, deductionRepo: deductionRepo}
}

func (s *TenderDeductionServiceImpl) Upsert(ctx context.Context, req deduction.UpsertTenderDeductionRequest) (deduction.TenderDeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.TenderDeductionResponse{}, err
	}

	upserted, err := s.deductionRepo.Upsert(ctx, deduction.TenderDeduction{
		AgentName:      req.AgentName,
		Month:          req.Month,
		Tjenestetorget: req.Tjenestetorget,
		Bytt:           req.Bytt,
		Other:          req.Other,
	})
	if err != nil {
		return deduction.TenderDeductionResponse{}, err
	}

	return mapToResponse(upserted), nil
}

func (s *TenderDeductionServiceImpl) GetByAgentMonth(ctx context.Context, agentName, month string) (deduction.TenderDeductionResponse, error) {
	d, err := s.deductionRepo.GetByAgentMonth(ctx, agentName, month)
	if err != nil {
		return deduction.TenderDeductionResponse{}, err
	}
	return mapToResponse(d), nil
}

func (s *TenderDeductionServiceImpl) ListByMonth(ctx context.Context, month string) ([]deduction.TenderDeductionResponse, error) {
	deductions, err := s.deductionRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.TenderDeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		result = append(result, mapToResponse(d))
	}
	return result, nil
}

func mapToResponse(d deduction.TenderDeduction) deduction.TenderDeductionResponse {
	return deduction.TenderDeductionResponse{
		ID:             d.ID,
		AgentName:      d.AgentName,
		Month:          d.Month,
		Tjenestetorget: d.Tjenestetorget,
		Bytt:           d.Bytt,
		Other:          d.Other,
	}
}
