package usage

import "context"

// Service orchestrates completion-quota logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Consume deducts one completion call from the client's monthly allowance.
// If the client row does not exist yet it is initialised and the call is
// immediately consumed. Returns ErrQuotaExhausted when the quota for the
// current month is spent.
func (s *Service) Consume(ctx context.Context, clientID string) error {
	err := s.store.Consume(ctx, clientID)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureClient(ctx, clientID); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, clientID)
}
