// README: Completion-usage quota definitions.
package usage

import "errors"

// ErrQuotaExhausted is returned when a session's completion allowance for
// the current month is spent. The dialogue engine maps it to the
// quota-exceeded failure class without calling the provider.
var ErrQuotaExhausted = errors.New("completion quota exhausted")

// DefaultAllowance is the number of completion calls granted per month.
const DefaultAllowance = 200
