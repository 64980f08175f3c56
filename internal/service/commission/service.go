package commission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/domain/deduction"
	"github.com/provipay/commission-backend-go/internal/domain/employee"
	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type CommissionServiceImpl struct {
	db            *database.DB
	saleRepo      sale.SaleRepository
	employeeRepo  employee.EmployeeRepository
	modelRepo     salarymodel.SalaryModelRepository
	deductionRepo deduction.TenderDeductionRepository
	approvalRepo  commission.ApprovalRepository
	aggregator    *Aggregator
	engine        *Engine
	logger        *slog.Logger
}

func NewCommissionService(
	db *database.DB,
	saleRepo sale.SaleRepository,
	employeeRepo employee.EmployeeRepository,
	modelRepo salarymodel.SalaryModelRepository,
	deductionRepo deduction.TenderDeductionRepository,
	approvalRepo commission.ApprovalRepository,
	policy commission.Policy,
	logger *slog.Logger,
) commission.Service {
	return &CommissionServiceImpl{
		db:            db,
		saleRepo:      saleRepo,
		employeeRepo:  employeeRepo,
		modelRepo:     modelRepo,
		deductionRepo: deductionRepo,
		approvalRepo:  approvalRepo,
		aggregator:    NewAggregator(policy, logger),
		engine:        NewEngine(policy, logger),
		logger:        logger,
	}
}

// Helper to get the acting user from JWT context
func getActorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	if name, ok := claims["name"].(string); ok && name != "" {
		return name, nil
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// ========== AGGREGATION ==========

func (s *CommissionServiceImpl) Months(ctx context.Context) (commission.MonthsResponse, error) {
	sales, err := s.saleRepo.List(ctx, sale.SaleFilter{})
	if err != nil {
		return commission.MonthsResponse{}, fmt.Errorf("failed to list sales: %w", err)
	}
	roster, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return commission.MonthsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	_, months := s.aggregator.Aggregate(sales, roster)
	return commission.MonthsResponse{Months: months}, nil
}

func (s *CommissionServiceImpl) Overview(ctx context.Context, month string) (commission.OverviewResponse, error) {
	sales, err := s.saleRepo.List(ctx, sale.SaleFilter{Month: &month})
	if err != nil {
		return commission.OverviewResponse{}, fmt.Errorf("failed to list sales: %w", err)
	}
	roster, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return commission.OverviewResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	models, err := s.modelRepo.GetAll(ctx)
	if err != nil {
		return commission.OverviewResponse{}, fmt.Errorf("failed to list salary models: %w", err)
	}
	deductions, err := s.deductionRepo.ListByMonth(ctx, month)
	if err != nil {
		return commission.OverviewResponse{}, fmt.Errorf("failed to list tender deductions: %w", err)
	}
	approvals, err := s.approvalRepo.ListByMonth(ctx, month, true)
	if err != nil {
		return commission.OverviewResponse{}, fmt.Errorf("failed to list approvals: %w", err)
	}

	deductionByAgent := make(map[string]deduction.TenderDeduction, len(deductions))
	for _, d := range deductions {
		deductionByAgent[d.AgentName] = d
	}
	approvalByAgent := make(map[string]commission.ApprovalRecord, len(approvals))
	for _, a := range approvals {
		approvalByAgent[a.AgentName] = a
	}

	aggregates, _ := s.aggregator.Aggregate(sales, roster)

	resp := commission.OverviewResponse{
		Month:           month,
		Rows:            []commission.OverviewRow{},
		CalculatedTotal: decimal.Zero,
		ApprovedTotal:   decimal.Zero,
	}

	for _, agg := range aggregates {
		if agg.Month != month {
			continue
		}

		in := Input{
			LivPremium:       agg.LivPremium,
			SkadePremium:     agg.SkadePremium,
			SalaryModelID:    agg.SalaryModelID,
			ApplyFivePercent: agg.ApplyFivePercent,
		}

		// Deductions come from the tender dataset, unless an approval froze
		// its own snapshot for this month.
		approval, hasApproval := approvalByAgent[agg.AgentName]
		if hasApproval && approval.IsApproved() {
			in.Tjenestetorget = approval.TjenestetorgetDeduction
			in.Bytt = approval.ByttDeduction
			in.Other = approval.OtherDeductions
			in.ApplyFivePercent = approval.FivePercentApplied
		} else if d, ok := deductionByAgent[agg.AgentName]; ok {
			in.Tjenestetorget = d.Tjenestetorget
			in.Bytt = d.Bytt
			in.Other = d.Other
		}

		result := s.engine.Compute(in, models)
		resp.CalculatedTotal = resp.CalculatedTotal.Add(result.GrossCommission)

		row := commission.OverviewRow{
			AgentName:        agg.AgentName,
			Office:           agg.Office,
			SalaryModelID:    agg.SalaryModelID,
			LivPremium:       agg.LivPremium,
			SkadePremium:     agg.SkadePremium,
			TotalPremium:     agg.TotalPremium,
			SaleCount:        agg.TotalCount,
			ApplyFivePercent: in.ApplyFivePercent,
			Result:           mapResult(result),
		}
		if hasApproval {
			row.Revoked = approval.Revoked
			row.Version = approval.Version
			if approval.IsApproved() {
				row.Approved = true
				approved := approval.ApprovedCommission
				row.ApprovedCommission = &approved
				row.ApprovedBy = approval.ApprovedBy
				if approval.ApprovedAt != nil {
					at := approval.ApprovedAt.Format(time.RFC3339)
					row.ApprovedAt = &at
				}
				resp.ApprovedTotal = resp.ApprovedTotal.Add(approval.ApprovedCommission)
			}
		}
		resp.Rows = append(resp.Rows, row)
	}

	resp.Difference = resp.CalculatedTotal.Sub(resp.ApprovedTotal)
	return resp, nil
}

// ========== APPROVAL LIFECYCLE ==========

func (s *CommissionServiceImpl) Approve(ctx context.Context, req commission.ApproveRequest) (commission.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.ApprovalResponse{}, err
	}

	actor, err := getActorFromContext(ctx)
	if err != nil {
		return commission.ApprovalResponse{}, err
	}

	now := time.Now()
	modelID := req.SalaryModelID
	record := commission.ApprovalRecord{
		AgentName:               req.AgentName,
		Month:                   req.Month,
		Approved:                true,
		ApprovedCommission:      req.GrossCommission,
		ApprovedBy:              &actor,
		ApprovedAt:              &now,
		Comment:                 req.Comment,
		SalaryModelID:           &modelID,
		TjenestetorgetDeduction: req.Tjenestetorget,
		ByttDeduction:           req.Bytt,
		OtherDeductions:         req.Other,
		FivePercentApplied:      req.FivePercentApplied,
	}

	upserted, err := s.approvalRepo.Upsert(ctx, record, req.Version)
	if err != nil {
		return commission.ApprovalResponse{}, err
	}

	s.logger.Info("commission approved",
		slog.String("agent", req.AgentName),
		slog.String("month", req.Month),
		slog.String("approved_by", actor),
	)

	return mapApproval(upserted), nil
}

func (s *CommissionServiceImpl) Revoke(ctx context.Context, req commission.RevokeRequest) (commission.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.ApprovalResponse{}, err
	}

	actor, err := getActorFromContext(ctx)
	if err != nil {
		return commission.ApprovalResponse{}, err
	}

	current, err := s.approvalRepo.GetByAgentMonth(ctx, req.AgentName, req.Month)
	if err != nil {
		return commission.ApprovalResponse{}, err
	}
	if !current.Approved {
		return commission.ApprovalResponse{}, commission.ErrApprovalNotApproved
	}
	if current.Revoked {
		return commission.ApprovalResponse{}, commission.ErrApprovalRevoked
	}

	revoked, err := s.approvalRepo.Revoke(ctx, req.AgentName, req.Month, actor, req.Reason, req.Version)
	if err != nil {
		return commission.ApprovalResponse{}, err
	}

	s.logger.Info("commission approval revoked",
		slog.String("agent", req.AgentName),
		slog.String("month", req.Month),
		slog.String("revoked_by", actor),
	)

	return mapApproval(revoked), nil
}

func (s *CommissionServiceImpl) GetApproval(ctx context.Context, agentName, month string) (commission.ApprovalResponse, error) {
	record, err := s.approvalRepo.GetByAgentMonth(ctx, agentName, month)
	if err != nil {
		return commission.ApprovalResponse{}, err
	}
	return mapApproval(record), nil
}

func (s *CommissionServiceImpl) ListApprovals(ctx context.Context, month string, includeRevoked bool) ([]commission.ApprovalResponse, error) {
	records, err := s.approvalRepo.ListByMonth(ctx, month, includeRevoked)
	if err != nil {
		return nil, err
	}

	result := make([]commission.ApprovalResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapApproval(r))
	}
	return result, nil
}

// ========== HELPERS ==========

func mapResult(r commission.Result) commission.ResultResponse {
	return commission.ResultResponse{
		BaseCommissionLiv:       r.BaseCommissionLiv,
		BaseCommissionSkade:     r.BaseCommissionSkade,
		BaseCommission:          r.BaseCommission,
		BonusCommission:         r.BonusCommission,
		GrossCommission:         r.GrossCommission,
		FivePercentDeduction:    r.FivePercentDeduction,
		TjenestetorgetDeduction: r.TjenestetorgetDeduction,
		ByttDeduction:           r.ByttDeduction,
		OtherDeductions:         r.OtherDeductions,
		BaseSalary:              r.BaseSalary,
		DiscretionaryBonus:      r.DiscretionaryBonus,
		NetCommission:           r.NetCommission,
	}
}

func mapApproval(r commission.ApprovalRecord) commission.ApprovalResponse {
	resp := commission.ApprovalResponse{
		ID:                 r.ID,
		AgentName:          r.AgentName,
		Month:              r.Month,
		Approved:           r.Approved,
		ApprovedCommission: r.ApprovedCommission,
		ApprovedBy:         r.ApprovedBy,
		Comment:            r.Comment,
		SalaryModelID:      r.SalaryModelID,
		Tjenestetorget:     r.TjenestetorgetDeduction,
		Bytt:               r.ByttDeduction,
		Other:              r.OtherDeductions,
		FivePercentApplied: r.FivePercentApplied,
		Revoked:            r.Revoked,
		RevokedBy:          r.RevokedBy,
		RevocationReason:   r.RevocationReason,
		Version:            r.Version,
	}
	if r.ApprovedAt != nil {
		at := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	if r.RevokedAt != nil {
		at := r.RevokedAt.Format(time.RFC3339)
		resp.RevokedAt = &at
	}
	return resp
}

// Ensure sentinel comparisons stay on errors.Is
var _ = errors.Is
