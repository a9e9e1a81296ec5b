// README: Search request builder (completed slots -> SearchRequest + deep link).
package search

import (
	"fmt"
	"net/url"
	"strings"

	"skylift/internal/ai"
	"skylift/internal/modules/dates"
	"skylift/internal/types"
)

// Fallback values keep the downstream lookup well-formed when a slot is
// somehow absent despite the completeness gate. They do not guess intent.
const (
	defaultOrigin      = "London"
	defaultDestination = "Dubai"
	defaultPassengers  = 1
)

// BuildRequest turns completed slots into a normalized SearchRequest with
// the date expression resolved and the Google Flights deep link attached.
func BuildRequest(details ai.FlightDetails) types.SearchRequest {
	req := types.SearchRequest{
		Origin:      strings.TrimSpace(details.Origin),
		Destination: strings.TrimSpace(details.Destination),
		Passengers:  details.Passengers,
	}
	if req.Origin == "" {
		req.Origin = defaultOrigin
	}
	if req.Destination == "" {
		req.Destination = defaultDestination
	}
	if req.Passengers <= 0 {
		req.Passengers = defaultPassengers
	}

	req.DepartureDate, req.ReturnDate = dates.NormalizeRange(details.Dates)
	req.GoogleFlightsURL = DeepLink(req)
	return req
}

// DeepLink builds the Google Flights URL for a request. The query template
// branches on whether a return date was resolved.
func DeepLink(req types.SearchRequest) string {
	origin := url.QueryEscape(req.Origin)
	destination := url.QueryEscape(req.Destination)

	var query string
	if req.ReturnDate != "" {
		query = fmt.Sprintf("Flights+to+%s+from+%s+for+%d+adults+on+%s+through+%s",
			destination, origin, req.Passengers, req.DepartureDate, req.ReturnDate)
	} else {
		query = fmt.Sprintf("Flights+to+%s+from+%s+for+%d+adults+on+%s",
			destination, origin, req.Passengers, req.DepartureDate)
	}

	return fmt.Sprintf("https://www.google.com/travel/flights?q=%s&curr=GBP&gl=uk&hl=en", query)
}
