// README: Loyalty service resolves a user's tier for discounting.
package loyalty

import (
	"context"
	"errors"

	"shipviet/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// TierForUser resolves the user's tier. An unknown user is tier none, not an
// error; infrastructure failures are returned and the caller's failure policy
// decides what happens.
func (s *Service) TierForUser(ctx context.Context, userID types.ID) (Tier, error) {
	tier, err := s.store.GetTier(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return TierNone, nil
	}
	if err != nil {
		return TierNone, err
	}
	return tier, nil
}
