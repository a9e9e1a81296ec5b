// README: Flight search handler (lookup gateway + optional server-side resort).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skylift/internal/modules/lookup"
	"skylift/internal/modules/ranking"
	"skylift/internal/types"
)

type FlightHandler struct {
	gateway lookup.Gateway
	logger  *zap.Logger
	timeout time.Duration
}

func NewFlightHandler(gateway lookup.Gateway, logger *zap.Logger, timeout time.Duration) *FlightHandler {
	return &FlightHandler{gateway: gateway, logger: logger, timeout: timeout}
}

type searchFlightsReq struct {
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	DepartureDate    string `json:"departureDate"`
	ReturnDate       string `json:"returnDate"`
	Passengers       int    `json:"passengers"`
	GoogleFlightsURL string `json:"googleFlightsUrl"`
	SortBy           string `json:"sortBy"`
}

// Search handles POST /api/search-flights.
func (h *FlightHandler) Search(c *gin.Context) {
	var req searchFlightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	for _, p := range []struct{ name, value string }{
		{"origin", req.Origin},
		{"destination", req.Destination},
		{"departureDate", req.DepartureDate},
	} {
		if strings.TrimSpace(p.value) == "" {
			writeError(c, http.StatusBadRequest, "missing required parameter: "+p.name)
			return
		}
	}

	passengers := req.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	searchReq := types.SearchRequest{
		Origin:           req.Origin,
		Destination:      req.Destination,
		DepartureDate:    req.DepartureDate,
		ReturnDate:       req.ReturnDate,
		Passengers:       passengers,
		GoogleFlightsURL: req.GoogleFlightsURL,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.gateway.Search(ctx, searchReq)
	if err != nil {
		h.logger.Error("flight search failed",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
			zap.Error(err))
		writeJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "flight search failed",
			"flights": []types.FlightOffer{},
		})
		return
	}

	if mode, ok := ranking.ParseMode(req.SortBy); ok {
		result.Flights = ranking.Sort(result.Flights, mode)
	}

	writeJSON(c, http.StatusOK, result)
}
