package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/provipay/commission-backend-go/internal/domain/sale"
	"github.com/provipay/commission-backend-go/internal/handler/http/response"
)

type SaleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type saleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &saleHandlerImpl{saleService: saleService}
}

func (h *saleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.saleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale record created", result)
}

func (h *saleHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req sale.ImportSalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.saleService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sales imported", result)
}

func (h *saleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter sale.SaleFilter

	if agentName := r.URL.Query().Get("agent_name"); agentName != "" {
		filter.AgentName = &agentName
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	result, err := h.saleService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *saleHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sale ID is required", nil)
		return
	}

	var req sale.CancelSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	if err := h.saleService.Cancel(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sale record cancelled", nil)
}
