package distance

import (
	"context"
	"database/sql"
	"errors"
	"field-service-scheduler/internal/domain"
	"field-service-scheduler/internal/platform/obs"
	"fmt"
	"strings"
)

// SQLMatrixProvider reads and writes travel costs in the distances table.
// It is used with the pgx stdlib driver ($n placeholders, text[] binding).
type SQLMatrixProvider struct {
	DB *sql.DB
}

func NewSQLMatrixProvider(db *sql.DB) *SQLMatrixProvider {
	return &SQLMatrixProvider{DB: db}
}

// Fetch every stored row whose origin is in origins.
func (s *SQLMatrixProvider) DistanceMatrix(
	ctx context.Context,
	origins []domain.Location,
) (_ domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "distance.sql.DistanceMatrix")(&err)

	if s.DB == nil {
		return nil, errors.New("distance matrix: db is nil")
	}

	if len(origins) == 0 {
		return domain.DistanceMatrix{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(origins))
	for _, o := range origins {
		k := strings.TrimSpace(string(o))
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}

	if len(uniq) == 0 {
		return domain.DistanceMatrix{}, nil
	}

	q := `
	SELECT origin, destination, cost
    FROM distances
    WHERE origin = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get distance matrix: query distances table: %w", err)
	}
	defer rows.Close()

	out := make(domain.DistanceMatrix, len(uniq))
	for rows.Next() {
		var origin, dest string
		var cost float64
		if err := rows.Scan(&origin, &dest, &cost); err != nil {
			return nil, fmt.Errorf("get distance matrix: scan rows: %w", err)
		}
		out.Set(domain.Location(origin), domain.Location(dest), cost)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distance matrix: row iteration: %w", err)
	}

	return out, nil
}

// Store every pair of m, replacing existing costs.
func (s *SQLMatrixProvider) PutMatrix(ctx context.Context, m domain.DistanceMatrix) (err error) {
	defer obs.Time(ctx, "distance.sql.PutMatrix")(&err)

	if s.DB == nil {
		return errors.New("distance matrix: db is nil")
	}

	if err := m.Validate(); err != nil {
		return fmt.Errorf("insert distances: %w", err)
	}

	if len(m) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert distances: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := WriteMatrix(ctx, tx, m); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert distances commit: %w", err)
	}

	return nil
}

// WriteMatrix upserts every pair of m inside tx. The caller commits.
func WriteMatrix(ctx context.Context, tx *sql.Tx, m domain.DistanceMatrix) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO distances (origin, destination, cost)
    VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE
	SET cost = EXCLUDED.cost;
	`)
	if err != nil {
		return fmt.Errorf("insert distances: db prepare: %w", err)
	}
	defer stmt.Close()

	for origin, row := range m {
		if strings.TrimSpace(string(origin)) == "" {
			return fmt.Errorf("insert distances: empty origin key")
		}

		for dest, cost := range row {
			if strings.TrimSpace(string(dest)) == "" {
				return fmt.Errorf("insert distances: origin=%q: empty destination key", origin)
			}

			if _, err := stmt.ExecContext(ctx, string(origin), string(dest), cost); err != nil {
				return fmt.Errorf("insert distances %q -> %q: %w", origin, dest, err)
			}
		}
	}
	return nil
}
