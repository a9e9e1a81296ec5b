// README: City -> IATA airport code resolution.
package search

import "strings"

// airportCodes covers the routes the lookup process knows well.
// Chennai is MAA, not CHE.
var airportCodes = map[string]string{
	"glasgow":    "GLA",
	"chennai":    "MAA",
	"london":     "LHR",
	"manchester": "MAN",
	"birmingham": "BHX",
	"edinburgh":  "EDI",
	"delhi":      "DEL",
	"mumbai":     "BOM",
	"dubai":      "DXB",
	"doha":       "DOH",
}

// AirportCode resolves a free-text location to an IATA code: exact city
// match first, then substring match, then the first three letters upper-cased.
func AirportCode(location string) string {
	lower := strings.ToLower(strings.TrimSpace(location))
	if code, ok := airportCodes[lower]; ok {
		return code
	}
	for city, code := range airportCodes {
		if strings.Contains(lower, city) {
			return code
		}
	}
	if len(location) >= 3 {
		return strings.ToUpper(location[:3])
	}
	return strings.ToUpper(location)
}
