package http

import (
	"encoding/json"
	"net/http"

	"github.com/provipay/commission-backend-go/internal/domain/commission"
	"github.com/provipay/commission-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	Months(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	GetApproval(w http.ResponseWriter, r *http.Request)
	ListApprovals(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	commissionService commission.Service
}

func NewCommissionHandler(commissionService commission.Service) CommissionHandler {
	return &commissionHandlerImpl{commissionService: commissionService}
}

func (h *commissionHandlerImpl) Months(w http.ResponseWriter, r *http.Request) {
	result, err := h.commissionService.Months(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *commissionHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	result, err := h.commissionService.Overview(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *commissionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req commission.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.commissionService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *commissionHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	var req commission.RevokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.commissionService.Revoke(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *commissionHandlerImpl) GetApproval(w http.ResponseWriter, r *http.Request) {
	agentName := r.URL.Query().Get("agent_name")
	month := r.URL.Query().Get("month")
	if agentName == "" || month == "" {
		response.BadRequest(w, "agent_name and month query parameters are required", nil)
		return
	}

	result, err := h.commissionService.GetApproval(r.Context(), agentName, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *commissionHandlerImpl) ListApprovals(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}
	includeRevoked := r.URL.Query().Get("include_revoked") == "true"

	result, err := h.commissionService.ListApprovals(r.Context(), month, includeRevoked)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
