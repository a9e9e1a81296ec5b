// README: Slot-filling dialogue engine (extraction, retries, lookup, summary).
package chat

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"skylift/internal/ai"
	"skylift/internal/modules/lookup"
	"skylift/internal/modules/search"
	"skylift/internal/modules/usage"
	"skylift/internal/types"
)

// extractionAttempts is the total number of completion attempts per
// round-trip, including the first.
const extractionAttempts = 2

// QuotaService gates completion calls. Implementations return
// usage.ErrQuotaExhausted when the monthly allowance is spent.
type QuotaService interface {
	Consume(ctx context.Context, clientID string) error
}

// Engine drives the slot-filling dialogue. It never fabricates flight data
// itself: all offer-specific prose comes from the completion service
// constrained to the supplied offer list.
type Engine struct {
	provider       ai.CompletionProvider
	gateway        lookup.Gateway
	quota          QuotaService
	logger         *zap.Logger
	retryBaseDelay time.Duration

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewEngine wires the dialogue engine. quota may be nil (no local limit).
func NewEngine(provider ai.CompletionProvider, gateway lookup.Gateway, quota QuotaService, logger *zap.Logger, retryBaseDelay time.Duration) *Engine {
	return &Engine{
		provider:       provider,
		gateway:        gateway,
		quota:          quota,
		logger:         logger,
		retryBaseDelay: retryBaseDelay,
		sleep:          time.Sleep,
	}
}

// SubmitUserMessage runs one dialogue round-trip: append the user turn,
// extract slots from the whole transcript, and, once the completion service
// declares the slot set complete, search flights and issue the second
// completion pass that summarizes the real offers.
//
// Completion failures never escape as errors: they become scripted fallback
// replies keyed by failure class, with completeness always false.
func (e *Engine) SubmitUserMessage(ctx context.Context, conv *Conversation, text string) *TurnResult {
	conv.append("user", text)

	if e.quota != nil {
		if err := e.quota.Consume(ctx, conv.ID); err != nil {
			if errors.Is(err, usage.ErrQuotaExhausted) {
				return e.fail(conv, ai.FailureQuotaExceeded, err)
			}
			// Quota bookkeeping trouble is not the user's problem.
			e.logger.Warn("quota check failed, allowing request", zap.Error(err))
		}
	}

	result, err := e.extractWithRetry(ctx, conv.Turns)
	if err != nil {
		return e.fail(conv, ai.Classify(err), err)
	}

	conv.append("assistant", result.Reply)
	if result.FlightDetails != nil {
		conv.Slots = result.FlightDetails
	}

	if !result.IsFlightDetailsComplete {
		return &TurnResult{
			Reply:         result.Reply,
			FlightDetails: conv.Slots,
		}
	}

	// Slot set complete: build the request and run the lookup.
	slots := ai.FlightDetails{}
	if conv.Slots != nil {
		slots = *conv.Slots
	}
	req := search.BuildRequest(slots)

	searchRes, err := e.gateway.Search(ctx, req)
	if err != nil {
		// Lookup errors are normalized, never surfaced as exceptions.
		e.logger.Error("flight lookup failed", zap.Error(err))
		searchRes = &types.SearchResult{
			Flights:      []types.FlightOffer{},
			TotalResults: 0,
			SearchParams: types.ParamsFor(req),
			Error:        "flight lookup failed",
		}
	}

	reply := result.Reply
	summary, err := e.provider.SummarizeOffers(ctx, conv.Turns, searchRes.Flights)
	if err != nil {
		// The offers themselves still reach the user; only the prose is lost.
		e.logger.Warn("offer summary failed, keeping extraction reply",
			zap.String("class", string(ai.Classify(err))), zap.Error(err))
	} else {
		conv.append("assistant", summary)
		reply = summary
	}

	return &TurnResult{
		Reply:                   reply,
		IsFlightDetailsComplete: true,
		FlightDetails:           conv.Slots,
		SearchResults:           searchRes,
		GoogleFlightsURL:        req.GoogleFlightsURL,
	}
}

// extractWithRetry retries transient (overloaded) failures with a linearly
// increasing delay. Quota and auth failures fail fast.
func (e *Engine) extractWithRetry(ctx context.Context, transcript []ai.Turn) (*ai.ExtractionResult, error) {
	var lastErr error
	for attempt := 1; attempt <= extractionAttempts; attempt++ {
		result, err := e.provider.ExtractFlightDetails(ctx, transcript)
		if err == nil {
			return result, nil
		}
		lastErr = err

		class := ai.Classify(err)
		e.logger.Warn("completion extraction failed",
			zap.Int("attempt", attempt),
			zap.String("class", string(class)),
			zap.Error(err))
		if !class.Retryable() || attempt == extractionAttempts {
			break
		}
		e.sleep(time.Duration(attempt) * e.retryBaseDelay)
	}
	return nil, lastErr
}

// fail appends the scripted fallback reply for a failure class and returns
// the round-trip result. Raw error detail stays in the logs.
func (e *Engine) fail(conv *Conversation, class ai.FailureClass, err error) *TurnResult {
	e.logger.Error("completion service failure",
		zap.String("class", string(class)), zap.Error(err))

	reply := fallbackReply(class)
	conv.append("assistant", reply)
	return &TurnResult{
		Reply:        reply,
		FailureClass: class,
	}
}
