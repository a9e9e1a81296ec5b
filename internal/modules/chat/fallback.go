package chat

import "skylift/internal/ai"

// fallbackReply is the deterministic, user-facing apology for each failure
// class. Every message notes that flight search itself remains available,
// and none of them claims any flight was found.
func fallbackReply(class ai.FailureClass) string {
	switch class {
	case ai.FailureOverloaded:
		return "Sorry, the assistant is handling a lot of requests right now. Please try again in a moment. The flight search form below still works in the meantime."
	case ai.FailureQuotaExceeded:
		return "Sorry, the assistant has reached its usage limit for now. You can still search flights directly using the search form below."
	case ai.FailureAuthFailed:
		return "Sorry, the assistant is temporarily unavailable because of a configuration problem on our side. Flight search itself still works normally."
	default:
		return "Sorry, something went wrong while processing your message. Please try again. Flight search is still available if you would rather search directly."
	}
}
