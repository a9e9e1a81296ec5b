// README: Common flight-domain value objects shared across modules.
package types

// FlightEndpoint is one end of an itinerary (airport code plus local time).
type FlightEndpoint struct {
	Code    string `json:"code"`
	Time    string `json:"time"`
	Airport string `json:"airport"`
}

// FlightLeg is a single segment of an offer as rendered to the user.
type FlightLeg struct {
	Airline        string `json:"airline"`
	AirlineLogoURL string `json:"airlineLogoUrl,omitempty"`
	DepartureTime  string `json:"departureTime"`
	ArrivalTime    string `json:"arrivalTime"`
	Duration       string `json:"duration"`
	Stops          string `json:"stops"`
	FromCode       string `json:"fromCode,omitempty"`
	ToCode         string `json:"toCode,omitempty"`
}

// FlightOffer is one priced itinerary returned by the lookup service.
// Prices are GBP. Duration follows the "<H>h <M>m" pattern.
// Offers are never mutated after creation.
type FlightOffer struct {
	ID          string         `json:"id"`
	Provider    string         `json:"provider"`
	Airline     string         `json:"airline"`
	Price       float64        `json:"price"`
	Duration    string         `json:"duration"`
	Stops       int            `json:"stops"`
	StopDetails string         `json:"stopDetails,omitempty"`
	From        FlightEndpoint `json:"from"`
	To          FlightEndpoint `json:"to"`
	Legs        []FlightLeg    `json:"legs"`
}

// SearchRequest is the normalized flight-search request handed to the
// lookup gateway. Immutable once sent.
type SearchRequest struct {
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	DepartureDate    string `json:"departureDate"`
	ReturnDate       string `json:"returnDate,omitempty"`
	Passengers       int    `json:"passengers"`
	GoogleFlightsURL string `json:"googleFlightsUrl,omitempty"`
}

// SearchParams echoes the request back in lookup responses (snake_case keys
// match the lookup process output).
type SearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
}

// SearchResult is the guaranteed response shape of the lookup gateway.
// Flights is always non-nil, so callers never special-case "no flights"
// against "malformed response".
type SearchResult struct {
	Flights      []FlightOffer `json:"flights"`
	TotalResults int           `json:"total_results"`
	SearchParams SearchParams  `json:"search_params"`
	Provider     string        `json:"provider,omitempty"`
	Error        string        `json:"error,omitempty"`
	Note         string        `json:"note,omitempty"`
}

// ParamsFor builds the echo block for a request.
func ParamsFor(req SearchRequest) SearchParams {
	return SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
	}
}
