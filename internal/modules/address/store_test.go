package address

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"shipviet/internal/types"
)

func TestCachedAddressRoundTrip(t *testing.T) {
	lat, lng := 10.7769, 106.7009
	uid := types.ID("user1")
	in := &Address{
		ID:       "addr1",
		UserID:   &uid,
		Line:     "123 Lê Lợi",
		Province: "Hồ Chí Minh",
		Lat:      &lat,
		Lng:      &lng,
	}

	out := fromCached(toCached(in))
	if out.ID != in.ID || out.Line != in.Line || out.Province != in.Province {
		t.Errorf("round trip lost fields: %+v", out)
	}
	if out.UserID == nil || *out.UserID != uid {
		t.Errorf("round trip lost user id: %v", out.UserID)
	}
	if out.Lat == nil || *out.Lat != lat || out.Lng == nil || *out.Lng != lng {
		t.Errorf("round trip lost coordinates: %v %v", out.Lat, out.Lng)
	}
}

func TestCachedAddressRoundTrip_NoCoordinates(t *testing.T) {
	in := &Address{ID: "addr2", Line: "Chợ Bến Thành"}
	out := fromCached(toCached(in))
	if out.Lat != nil || out.Lng != nil || out.UserID != nil {
		t.Errorf("expected nil optionals to survive, got %+v", out)
	}
}

// Redis-backed cache path; skipped unless an instance is available.
func TestStoreCache_Redis(t *testing.T) {
	redisAddr := os.Getenv("SHIPVIET_REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("SHIPVIET_REDIS_ADDR not set; skipping integration test")
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	store := NewStore(nil, rdb)
	ctx := context.Background()

	lat, lng := 10.7769, 106.7009
	a := &Address{ID: "cache_test_addr", Line: "123 Lê Lợi", Province: "Hồ Chí Minh", Lat: &lat, Lng: &lng}
	store.cache(ctx, a)
	defer rdb.Del(ctx, cacheKey(a.ID))

	// A cached record is served without touching the nil db pool.
	got, err := store.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Line != a.Line || got.Lat == nil || *got.Lat != lat {
		t.Errorf("cache returned %+v", got)
	}
}
