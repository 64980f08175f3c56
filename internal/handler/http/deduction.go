package http

import (
	"encoding/json"
	"net/http"

	"github.com/provipay/commission-backend-go/internal/domain/deduction"
	"github.com/provipay/commission-backend-go/internal/handler/http/response"
)

type TenderDeductionHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type tenderDeductionHandlerImpl struct {
	deductionService deduction.TenderDeductionService
}

func NewTenderDeductionHandler(deductionService deduction.TenderDeductionService) TenderDeductionHandler {
	return &tenderDeductionHandlerImpl{deductionService: deductionService}
}

func (h *tenderDeductionHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req deduction.UpsertTenderDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deductionService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get returns the whole month, or a single agent's record when agent_name is
// given.
func (h *tenderDeductionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	if agentName := r.URL.Query().Get("agent_name"); agentName != "" {
		result, err := h.deductionService.GetByAgentMonth(r.Context(), agentName, month)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.deductionService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
