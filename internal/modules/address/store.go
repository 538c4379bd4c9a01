// README: Address store backed by PostgreSQL with a Redis read-through cache.
package address

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"shipviet/internal/types"
)

var ErrNotFound = errors.New("address not found")

const cacheTTL = 10 * time.Minute

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// cachedAddress is the Redis representation; pointers survive JSON so a
// not-yet-geocoded address round-trips as-is.
type cachedAddress struct {
	ID       string   `json:"id"`
	UserID   *string  `json:"user_id"`
	Line     string   `json:"line"`
	Province string   `json:"province"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

func cacheKey(id types.ID) string {
	return "address:" + string(id)
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Address, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, cacheKey(id)).Result(); err == nil {
			var c cachedAddress
			if err := json.Unmarshal([]byte(raw), &c); err == nil {
				return fromCached(c), nil
			}
		}
	}

	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, line, province, lat, lng
		FROM addresses
		WHERE id = $1`, string(id),
	)

	var a Address
	var userID *string
	err := row.Scan(&a.ID, &userID, &a.Line, &a.Province, &a.Lat, &a.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID != nil {
		u := types.ID(*userID)
		a.UserID = &u
	}

	s.cache(ctx, &a)
	return &a, nil
}

// SetCoordinates persists a geocoding result and invalidates the cache entry.
func (s *Store) SetCoordinates(ctx context.Context, id types.ID, p types.Point) error {
	_, err := s.db.Exec(ctx, `
		UPDATE addresses SET lat = $1, lng = $2 WHERE id = $3`,
		p.Lat, p.Lng, string(id),
	)
	if err != nil {
		return err
	}
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKey(id)).Err()
	}
	return nil
}

func (s *Store) cache(ctx context.Context, a *Address) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(toCached(a))
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, cacheKey(a.ID), raw, cacheTTL).Err()
}

func toCached(a *Address) cachedAddress {
	c := cachedAddress{
		ID:       string(a.ID),
		Line:     a.Line,
		Province: a.Province,
		Lat:      a.Lat,
		Lng:      a.Lng,
	}
	if a.UserID != nil {
		u := string(*a.UserID)
		c.UserID = &u
	}
	return c
}

func fromCached(c cachedAddress) *Address {
	a := &Address{
		ID:       types.ID(c.ID),
		Line:     c.Line,
		Province: c.Province,
		Lat:      c.Lat,
		Lng:      c.Lng,
	}
	if c.UserID != nil {
		u := types.ID(*c.UserID)
		a.UserID = &u
	}
	return a
}
