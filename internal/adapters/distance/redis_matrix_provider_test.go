package distance

import (
	"context"
	"field-service-scheduler/internal/domain"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisMatrixProviderRoundTrip(t *testing.T) {
	_, rdb := newTestRedis(t)
	p := NewRedisMatrixProvider(rdb, "")
	ctx := context.Background()

	m := domain.DistanceMatrix{}
	m.Set("A", "A", 0)
	m.SetSymmetric("A", "B", 10)
	m.SetSymmetric("A", "C", 15.5)

	require.NoError(t, p.PutMatrix(ctx, m))

	got, err := p.DistanceMatrix(ctx, []domain.Location{"A", "B", "A", "Z"})
	require.NoError(t, err)

	require.Len(t, got, 2, "unknown origins are omitted")
	require.Equal(t, map[domain.Location]float64{"A": 0, "B": 10, "C": 15.5}, got["A"])
	require.Equal(t, map[domain.Location]float64{"A": 10}, got["B"])
}

func TestRedisMatrixProviderKeyLayout(t *testing.T) {
	mr, rdb := newTestRedis(t)
	p := NewRedisMatrixProvider(rdb, "tenant1:dist:")

	m := domain.DistanceMatrix{}
	m.Set("A", "B", 12.25)
	require.NoError(t, p.PutMatrix(context.Background(), m))

	require.Equal(t, "12.25", mr.HGet("tenant1:dist:A", "B"))
}

func TestRedisMatrixProviderRejectsBadCost(t *testing.T) {
	mr, rdb := newTestRedis(t)
	p := NewRedisMatrixProvider(rdb, "")

	mr.HSet(DefaultRedisKeyPrefix+"A", "B", "far")

	_, err := p.DistanceMatrix(context.Background(), []domain.Location{"A"})
	require.Error(t, err)
}

func TestRedisMatrixProviderRejectsNegativeCost(t *testing.T) {
	_, rdb := newTestRedis(t)
	p := NewRedisMatrixProvider(rdb, "")

	m := domain.DistanceMatrix{}
	m.Set("A", "B", -1)

	require.Error(t, p.PutMatrix(context.Background(), m))
}
