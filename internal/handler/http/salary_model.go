package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/provipay/commission-backend-go/internal/domain/salarymodel"
	"github.com/provipay/commission-backend-go/internal/handler/http/response"
)

type SalaryModelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type salaryModelHandlerImpl struct {
	modelService salarymodel.SalaryModelService
}

func NewSalaryModelHandler(modelService salarymodel.SalaryModelService) SalaryModelHandler {
	return &salaryModelHandlerImpl{modelService: modelService}
}

func (h *salaryModelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salarymodel.CreateSalaryModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.modelService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary model created", result)
}

func (h *salaryModelHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary model ID is required", nil)
		return
	}

	result, err := h.modelService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryModelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.modelService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryModelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary model ID is required", nil)
		return
	}

	var req salarymodel.UpdateSalaryModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.modelService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryModelHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary model ID is required", nil)
		return
	}

	if err := h.modelService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary model deleted successfully", nil)
}
