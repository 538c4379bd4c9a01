// README: Loyalty tier store backed by PostgreSQL.
package loyalty

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shipviet/internal/types"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetTier(ctx context.Context, userID types.ID) (Tier, error) {
	row := s.db.QueryRow(ctx, `
		SELECT loyalty_tier FROM users WHERE id = $1`, string(userID),
	)
	var raw string
	err := row.Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return TierNone, ErrNotFound
	}
	if err != nil {
		return TierNone, err
	}
	return ParseTier(raw), nil
}
