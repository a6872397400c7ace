package distance

import (
	"context"
	"errors"
	"field-service-scheduler/internal/domain"
	"field-service-scheduler/internal/platform/obs"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKeyPrefix = "distance:"

// RedisMatrixProvider stores one hash per origin: key <prefix><origin>,
// field <destination>, value the cost formatted as a decimal string.
type RedisMatrixProvider struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisMatrixProvider(rdb *redis.Client, prefix string) *RedisMatrixProvider {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisMatrixProvider{rdb: rdb, prefix: prefix}
}

func (p *RedisMatrixProvider) key(origin domain.Location) string {
	return p.prefix + string(origin)
}

// Fetch the hashes for origins in one pipeline round trip.
// Origins with no hash are absent from the result.
func (p *RedisMatrixProvider) DistanceMatrix(
	ctx context.Context,
	origins []domain.Location,
) (_ domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "distance.redis.DistanceMatrix")(&err)

	if p.rdb == nil {
		return nil, errors.New("distance matrix: redis client is nil")
	}

	if len(origins) == 0 {
		return domain.DistanceMatrix{}, nil
	}

	seen := make(map[domain.Location]struct{}, len(origins))
	uniq := make([]domain.Location, 0, len(origins))
	for _, o := range origins {
		if strings.TrimSpace(string(o)) == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		uniq = append(uniq, o)
	}

	pipe := p.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(uniq))
	for i, o := range uniq {
		cmds[i] = pipe.HGetAll(ctx, p.key(o))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("get distance matrix: redis pipeline: %w", err)
	}

	out := make(domain.DistanceMatrix, len(uniq))
	for i, o := range uniq {
		fields, err := cmds[i].Result()
		if err != nil {
			return nil, fmt.Errorf("get distance matrix: origin=%q: %w", o, err)
		}

		for dest, raw := range fields {
			cost, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("get distance matrix: %q -> %q: parse cost %q: %w", o, dest, raw, err)
			}
			out.Set(o, domain.Location(dest), cost)
		}
	}

	return out, nil
}

// Store every row of m as a hash, replacing fields that already exist.
func (p *RedisMatrixProvider) PutMatrix(ctx context.Context, m domain.DistanceMatrix) (err error) {
	defer obs.Time(ctx, "distance.redis.PutMatrix")(&err)

	if p.rdb == nil {
		return errors.New("distance matrix: redis client is nil")
	}

	if err := m.Validate(); err != nil {
		return fmt.Errorf("insert distances: %w", err)
	}

	if len(m) == 0 {
		return nil
	}

	_, err = p.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for origin, row := range m {
			if len(row) == 0 {
				continue
			}
			values := make(map[string]any, len(row))
			for dest, cost := range row {
				values[string(dest)] = strconv.FormatFloat(cost, 'g', -1, 64)
			}
			pipe.HSet(ctx, p.key(origin), values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert distances: redis pipeline: %w", err)
	}

	return nil
}
