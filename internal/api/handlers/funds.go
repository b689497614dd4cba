package handlers

import (
	"errors"
	"net/http"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/api/response"
	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
	"github.com/dmerino/portfolio-dashboard/internal/service"
	"github.com/dmerino/portfolio-dashboard/internal/validation"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// FundsResponse is the payload of the fund list endpoint: the enriched
// positions in store order plus the aggregate summary.
type FundsResponse struct {
	Positions []model.EnrichedFund   `json:"positions"`
	Summary   model.PortfolioSummary `json:"summary"`
}

// Funds handles GET requests to retrieve all funds with market metrics.
//
// Endpoint: GET /api/fund
// Response: 200 OK with FundsResponse
//
// A store failure degrades to an empty list rather than an error status:
// the dashboard renders an empty table instead of breaking, matching the
// partial-results behavior of quote failures.
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	funds, summary, _ := h.fundService.GetFundsWithMetrics(r.Context())

	response.RespondJSON(w, http.StatusOK, FundsResponse{
		Positions: funds,
		Summary:   summary,
	})
}

// CreateFund handles POST requests to create a new fund position.
//
// Endpoint: POST /api/fund
// Request Body: CreateFundRequest
// Response: 201 Created with the stored Fund (ID assigned)
// Error: 400 Bad Request if validation fails or the body is invalid
// Error: 500 Internal Server Error if the store rejects the write
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.CreateFund(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveFund.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, fund)
}

// UpdateFund handles PUT requests to replace an existing fund position.
//
// Endpoint: PUT /api/fund/{id}
// Request Body: UpdateFundRequest
// Response: 200 OK with the stored Fund
// Error: 400 Bad Request if validation fails (ID validated by middleware)
// Error: 404 Not Found if the fund does not exist
// Error: 500 Internal Server Error if the store rejects the write
func (h *FundHandler) UpdateFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.UpdateFund(r.Context(), urlID(r), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveFund.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}

// DeleteFund handles DELETE requests to remove a fund position.
//
// Endpoint: DELETE /api/fund/{id}
// Response: 204 No Content
// Error: 404 Not Found if the fund does not exist
// Error: 500 Internal Server Error if the store rejects the delete
func (h *FundHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	if err := h.fundService.DeleteFund(r.Context(), urlID(r)); err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteFund.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
