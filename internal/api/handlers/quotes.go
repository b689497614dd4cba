package handlers

import (
	"net/http"

	"github.com/dmerino/portfolio-dashboard/internal/api/response"
	"github.com/dmerino/portfolio-dashboard/internal/service"
)

// QuoteHandler handles HTTP requests for quote cache operations.
type QuoteHandler struct {
	quotes service.QuoteFetcher
}

// NewQuoteHandler creates a new QuoteHandler with the provided fetcher.
func NewQuoteHandler(quotes service.QuoteFetcher) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
	}
}

// Refresh handles POST requests to drop all cached quotes, forcing the
// next render to fetch fresh market data. This backs the dashboard's
// explicit refresh button.
//
// Endpoint: POST /api/quote/refresh
// Response: 200 OK
func (h *QuoteHandler) Refresh(w http.ResponseWriter, _ *http.Request) {
	h.quotes.Invalidate()

	response.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "refreshed",
	})
}
