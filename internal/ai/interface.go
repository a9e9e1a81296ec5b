package ai

import (
	"context"

	"skylift/internal/types"
)

// CompletionProvider defines the contract for the text-completion backend.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.)
// and for in-process fakes in tests.
type CompletionProvider interface {
	// ExtractFlightDetails reads the whole conversation so far and returns the
	// assistant's next reply plus whatever flight slots it could resolve.
	// Each extraction reflects the full transcript, not an incremental delta.
	ExtractFlightDetails(ctx context.Context, transcript []Turn) (*ExtractionResult, error)

	// SummarizeOffers asks the model to describe ONLY the supplied offers,
	// across three fixed categories: best (price/duration blend), cheapest, fastest.
	SummarizeOffers(ctx context.Context, transcript []Turn, offers []types.FlightOffer) (string, error)
}
