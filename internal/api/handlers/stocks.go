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

// StockHandler handles HTTP requests for stock endpoints.
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new StockHandler with the provided service dependency.
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// StocksResponse is the payload of the stock list endpoint: the enriched
// positions in store order plus the aggregate summary.
type StocksResponse struct {
	Positions []model.EnrichedStock  `json:"positions"`
	Summary   model.PortfolioSummary `json:"summary"`
}

// Stocks handles GET requests to retrieve all stocks with market metrics.
//
// Endpoint: GET /api/stock
// Response: 200 OK with StocksResponse
//
// A store failure degrades to an empty list, like the fund endpoint.
func (h *StockHandler) Stocks(w http.ResponseWriter, r *http.Request) {
	stocks, summary, _ := h.stockService.GetStocksWithMetrics(r.Context())

	response.RespondJSON(w, http.StatusOK, StocksResponse{
		Positions: stocks,
		Summary:   summary,
	})
}

// CreateStock handles POST requests to create a new equity position.
//
// Endpoint: POST /api/stock
// Request Body: CreateStockRequest
// Response: 201 Created with the stored Stock (ID assigned)
// Error: 400 Bad Request if validation fails or the body is invalid
// Error: 500 Internal Server Error if the store rejects the write
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateStockRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateStock(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	stock, err := h.stockService.CreateStock(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveStock.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, stock)
}

// UpdateStock handles PUT requests to replace an existing equity position.
//
// Endpoint: PUT /api/stock/{id}
// Request Body: UpdateStockRequest
// Response: 200 OK with the stored Stock
// Error: 400 Bad Request if validation fails (ID validated by middleware)
// Error: 404 Not Found if the stock does not exist
// Error: 500 Internal Server Error if the store rejects the write
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateStockRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateStock(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	stock, err := h.stockService.UpdateStock(r.Context(), urlID(r), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveStock.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stock)
}

// DeleteStock handles DELETE requests to remove an equity position.
//
// Endpoint: DELETE /api/stock/{id}
// Response: 204 No Content
// Error: 404 Not Found if the stock does not exist
// Error: 500 Internal Server Error if the store rejects the delete
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	if err := h.stockService.DeleteStock(r.Context(), urlID(r)); err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteStock.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
