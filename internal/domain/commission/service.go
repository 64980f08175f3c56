package commission

import "context"

type Service interface {
	Months(ctx context.Context) (MonthsResponse, error)
	Overview(ctx context.Context, month string) (OverviewResponse, error)
	Approve(ctx context.Context, req ApproveRequest) (ApprovalResponse, error)
	Revoke(ctx context.Context, req RevokeRequest) (ApprovalResponse, error)
	GetApproval(ctx context.Context, agentName, month string) (ApprovalResponse, error)
	ListApprovals(ctx context.Context, month string, includeRevoked bool) ([]ApprovalResponse, error)
}
