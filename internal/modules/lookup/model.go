// README: Lookup gateway models, typed errors, and the demo fallback offer set.
package lookup

import (
	"fmt"
	"regexp"
	"strconv"

	"skylift/internal/modules/search"
	"skylift/internal/types"
)

// ProcessError is the lookup-failed error for a non-zero exit of the
// external lookup process. Diagnostics carries the captured stderr.
type ProcessError struct {
	ExitCode    int
	Diagnostics string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("flight lookup process exited with code %d: %s", e.ExitCode, e.Diagnostics)
}

var (
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// NormalizeDuration coerces a duration string into the "<H>h <MM>m" pattern.
// Empty or zero durations degrade to the fixed placeholder "15h 30m".
func NormalizeDuration(duration string) string {
	hours, minutes := 0, 0
	if m := hoursRe.FindStringSubmatch(duration); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := minutesRe.FindStringSubmatch(duration); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	if hours == 0 && minutes == 0 {
		return "15h 30m"
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

// demoResult is the placeholder offer set used when the process produced
// output we could not parse. Tagged so the UI can flag it.
func demoResult(req types.SearchRequest, note string) *types.SearchResult {
	offer := types.FlightOffer{
		ID:          "demo_flight_1",
		Provider:    "Demo Data",
		Airline:     "Emirates",
		Price:       713,
		Duration:    "13h 00m",
		Stops:       1,
		StopDetails: "1 stop",
		From: types.FlightEndpoint{
			Code: search.AirportCode(req.Origin), Time: "2:35", Airport: req.Origin,
		},
		To: types.FlightEndpoint{
			Code: search.AirportCode(req.Destination), Time: "8:05", Airport: req.Destination,
		},
		Legs: []types.FlightLeg{{
			Airline:       "Emirates",
			DepartureTime: "2:35",
			ArrivalTime:   "8:05",
			Duration:      "13h 00m",
			Stops:         "1 stop",
			FromCode:      search.AirportCode(req.Origin),
			ToCode:        search.AirportCode(req.Destination),
		}},
	}
	return &types.SearchResult{
		Flights:      []types.FlightOffer{offer},
		TotalResults: 1,
		SearchParams: types.ParamsFor(req),
		Provider:     "Demo Data",
		Note:         note,
	}
}
