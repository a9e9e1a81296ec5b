// README: Flight offer ranking (best/cheapest/fastest) and duration parsing.
package ranking

import (
	"regexp"
	"sort"
	"strconv"

	"skylift/internal/types"
)

// Mode selects the ranking criterion.
type Mode string

const (
	ModeBest     Mode = "best"
	ModeCheapest Mode = "cheapest"
	ModeFastest  Mode = "fastest"
)

// ParseMode validates a user-supplied sort key.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeBest, ModeCheapest, ModeFastest:
		return Mode(s), true
	}
	return "", false
}

var (
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// DurationMinutes converts a "<H>h <M>m" duration string to total minutes.
// Either component may be absent and counts as 0.
func DurationMinutes(duration string) int {
	total := 0
	if m := hoursRe.FindStringSubmatch(duration); m != nil {
		total += atoi(m[1]) * 60
	}
	if m := minutesRe.FindStringSubmatch(duration); m != nil {
		total += atoi(m[1])
	}
	return total
}

// score is the ascending sort key for a mode. The "best" formula
// (price/2 + minutes) is inherited behavior and deliberately unchanged.
func score(o types.FlightOffer, mode Mode) float64 {
	switch mode {
	case ModeCheapest:
		return o.Price
	case ModeFastest:
		return float64(DurationMinutes(o.Duration))
	default:
		return o.Price/2 + float64(DurationMinutes(o.Duration))
	}
}

// Sort returns a new slice ordered ascending by the mode's score.
// Ties preserve the original list order (stable).
func Sort(offers []types.FlightOffer, mode Mode) []types.FlightOffer {
	sorted := make([]types.FlightOffer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return score(sorted[i], mode) < score(sorted[j], mode)
	})
	return sorted
}

// Pick returns the single top offer for a mode, or ok=false on an empty list.
func Pick(offers []types.FlightOffer, mode Mode) (types.FlightOffer, bool) {
	if len(offers) == 0 {
		return types.FlightOffer{}, false
	}
	return Sort(offers, mode)[0], true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
