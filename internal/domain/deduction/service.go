package deduction

import "context"

type TenderDeductionService interface {
	Upsert(ctx context.Context, req UpsertTenderDeductionRequest) (TenderDeductionResponse, error)
	GetByAgentMonth(ctx context.Context, agentName, month string) (TenderDeductionResponse, error)
	ListByMonth(ctx context.Context, month string) ([]TenderDeductionResponse, error)
}
