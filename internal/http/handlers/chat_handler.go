// README: Chat handler (one dialogue round-trip per request).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"skylift/internal/ai"
	"skylift/internal/modules/chat"
	"skylift/internal/modules/ranking"
	"skylift/internal/types"
)

type ChatHandler struct {
	engine  *chat.Engine
	store   *chat.Store
	logger  *zap.Logger
	timeout time.Duration
}

func NewChatHandler(engine *chat.Engine, store *chat.Store, logger *zap.Logger, timeout time.Duration) *ChatHandler {
	return &ChatHandler{engine: engine, store: store, logger: logger, timeout: timeout}
}

type chatReq struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatResp struct {
	SessionID               string              `json:"sessionId"`
	Reply                   string              `json:"reply"`
	IsFlightDetailsComplete bool                `json:"isFlightDetailsComplete"`
	FlightDetails           *ai.FlightDetails   `json:"flightDetails,omitempty"`
	SearchResults           *types.SearchResult `json:"searchResults,omitempty"`
	Picks                   *offerPicks         `json:"picks,omitempty"`
	GoogleFlightsURL        string              `json:"googleFlightsUrl,omitempty"`
}

// offerPicks holds the single top offer per ranking mode for summary cards.
type offerPicks struct {
	Best     *types.FlightOffer `json:"best,omitempty"`
	Cheapest *types.FlightOffer `json:"cheapest,omitempty"`
	Fastest  *types.FlightOffer `json:"fastest,omitempty"`
}

// pickOffers selects the summary-card offers. Empty lists yield no picks.
func pickOffers(result *types.SearchResult) *offerPicks {
	if result == nil || len(result.Flights) == 0 {
		return nil
	}
	picks := &offerPicks{}
	if best, ok := ranking.Pick(result.Flights, ranking.ModeBest); ok {
		picks.Best = &best
	}
	if cheapest, ok := ranking.Pick(result.Flights, ranking.ModeCheapest); ok {
		picks.Cheapest = &cheapest
	}
	if fastest, ok := ranking.Pick(result.Flights, ranking.ModeFastest); ok {
		picks.Fastest = &fastest
	}
	return picks
}

// Message handles POST /api/chat.
func (h *ChatHandler) Message(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	conv, err := h.loadConversation(ctx, req.SessionID)
	if err != nil {
		h.logger.Error("conversation load failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	result := h.engine.SubmitUserMessage(ctx, conv, req.Message)

	if err := h.store.Save(ctx, conv); err != nil {
		// The reply is still worth returning; only persistence lagged.
		h.logger.Error("conversation save failed", zap.String("session", conv.ID), zap.Error(err))
	}

	writeJSON(c, http.StatusOK, chatResp{
		SessionID:               conv.ID,
		Reply:                   result.Reply,
		IsFlightDetailsComplete: result.IsFlightDetailsComplete,
		FlightDetails:           result.FlightDetails,
		SearchResults:           result.SearchResults,
		Picks:                   pickOffers(result.SearchResults),
		GoogleFlightsURL:        result.GoogleFlightsURL,
	})
}

// loadConversation resolves the session's dialogue state, minting a fresh
// session when the id is absent or unknown (expired TTL included).
func (h *ChatHandler) loadConversation(ctx context.Context, sessionID string) (*chat.Conversation, error) {
	if sessionID == "" {
		return chat.NewConversation(uuid.NewString()), nil
	}
	conv, ok, err := h.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return chat.NewConversation(sessionID), nil
	}
	return conv, nil
}
