// README: Conversation state (transcript + extracted slots).
package chat

import (
	"skylift/internal/ai"
	"skylift/internal/types"
)

// Conversation is the explicit dialogue-state value, owned by the caller.
// There is no process-wide "current conversation"; the HTTP layer keys
// conversations by session id.
type Conversation struct {
	ID string `json:"id"`

	// Turns is the append-only transcript passed to the completion service
	// each round-trip.
	Turns []ai.Turn `json:"turns"`

	// Slots is the latest extraction, replaced wholesale each turn.
	Slots *ai.FlightDetails `json:"slots,omitempty"`
}

func NewConversation(id string) *Conversation {
	return &Conversation{ID: id}
}

func (c *Conversation) append(role, text string) {
	c.Turns = append(c.Turns, ai.Turn{Role: role, Text: text})
}

// TurnResult is the outcome of one dialogue round-trip.
type TurnResult struct {
	Reply                   string
	IsFlightDetailsComplete bool
	FlightDetails           *ai.FlightDetails

	// SearchResults is set only when the slot set completed this turn and
	// the lookup ran.
	SearchResults    *types.SearchResult
	GoogleFlightsURL string

	// FailureClass is set when the completion service failed and the reply
	// is a scripted fallback.
	FailureClass ai.FailureClass
}
