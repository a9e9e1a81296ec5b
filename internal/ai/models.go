package ai

// Turn is one entry of a conversation transcript.
type Turn struct {
	// Role is "user" or "assistant".
	Role string `json:"role"`
	Text string `json:"text"`
}

// FlightDetails holds the slots the dialogue must resolve before a search
// can run. A partial record; replaced wholesale on every extraction.
type FlightDetails struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`

	// Dates is the raw date expression as the user phrased it
	// (e.g. "sep25 to oct2"); normalization happens downstream.
	Dates string `json:"dates,omitempty"`

	Passengers int `json:"passengers,omitempty"`
}

// ExtractionResult captures the structured output of one extraction call.
type ExtractionResult struct {
	// Reply is the assistant's user-facing response for this turn.
	Reply string `json:"reply"`

	// IsFlightDetailsComplete is the model's own completeness judgment.
	// It is authoritative: the engine does not re-derive completeness from
	// field presence alone.
	IsFlightDetailsComplete bool `json:"isFlightDetailsComplete"`

	FlightDetails *FlightDetails `json:"flightDetails,omitempty"`
}
