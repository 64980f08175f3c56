package deduction

import "context"

type TenderDeductionRepository interface {
	Upsert(ctx context.Context, d TenderDeduction) (TenderDeduction, error)
	GetByAgentMonth(ctx context.Context, agentName, month string) (TenderDeduction, error)
	ListByMonth(ctx context.Context, month string) ([]TenderDeduction, error)
}
