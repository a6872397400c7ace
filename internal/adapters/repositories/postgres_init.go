package repositories

import (
	"context"
	"database/sql"
	"errors"
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/adapters/distance"
	"fmt"
)

// Initialize the Postgres schema for engineers, jobs and distances.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEngineersQuery := `
	CREATE TABLE IF NOT EXISTS engineers (
		engineer_id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL DEFAULT 0,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	);
	`

	// Tables created before rows carried their input order.
	addEngineerPositionQuery := `
	ALTER TABLE engineers ADD COLUMN IF NOT EXISTS position INTEGER NOT NULL DEFAULT 0;
	`

	createEngineerSkillsQuery := `
	CREATE TABLE IF NOT EXISTS engineer_skills (
		engineer_id INTEGER NOT NULL REFERENCES engineers (engineer_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		skill TEXT NOT NULL,
		PRIMARY KEY (engineer_id, position)
	);
	`

	createJobsQuery := `
	CREATE TABLE IF NOT EXISTS jobs (
		job_id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL DEFAULT 0,
		location TEXT NOT NULL,
		scheduled_time TEXT NOT NULL DEFAULT ''
	);
	`

	addJobPositionQuery := `
	ALTER TABLE jobs ADD COLUMN IF NOT EXISTS position INTEGER NOT NULL DEFAULT 0;
	`

	createJobSkillsQuery := `
	CREATE TABLE IF NOT EXISTS job_skills (
		job_id INTEGER NOT NULL REFERENCES jobs (job_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		skill TEXT NOT NULL,
		PRIMARY KEY (job_id, position)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        cost DOUBLE PRECISION NOT NULL CHECK (cost >= 0),
        PRIMARY KEY (origin, destination)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_distances_destination_origin
    ON distances(destination, origin);
	`

	statements := []string{
		createEngineersQuery,
		addEngineerPositionQuery,
		createEngineerSkillsQuery,
		createJobsQuery,
		addJobPositionQuery,
		createJobSkillsQuery,
		createDistancesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database from a JSON or YAML dataset file.
func SeedFromFile(ctx context.Context, db *sql.DB, path string) error {
	d, err := dataset.Load(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return SeedDataset(ctx, db, d)
}

// Replace the stored roster and distance matrix with d in one transaction.
// Engineers and jobs keep their slice order through the position column,
// since assignment and routing tie-breaks depend on it.
func SeedDataset(ctx context.Context, db *sql.DB, d *dataset.Dataset) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	if err := d.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Skill rows cascade with their owners.
	for _, table := range []string{"engineers", "jobs", "distances"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s;`, table)); err != nil {
			return fmt.Errorf("seed: clear %s: %w", table, err)
		}
	}

	for pos, e := range d.Engineers {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO engineers (engineer_id, position, name, location)
		VALUES ($1, $2, $3, $4);
		`, e.ID, pos, e.Name, string(e.Location)); err != nil {
			return fmt.Errorf("seed: insert engineer_id=%d: %w", e.ID, err)
		}

		if err := replaceSkills(ctx, tx, "engineer_skills", "engineer_id", e.ID, e.Skills); err != nil {
			return fmt.Errorf("seed: engineer_id=%d: %w", e.ID, err)
		}
	}

	for pos, j := range d.Jobs {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO jobs (job_id, position, location, scheduled_time)
		VALUES ($1, $2, $3, $4);
		`, j.ID, pos, string(j.Location), j.Time); err != nil {
			return fmt.Errorf("seed: insert job_id=%d: %w", j.ID, err)
		}

		if err := replaceSkills(ctx, tx, "job_skills", "job_id", j.ID, j.RequiredSkills); err != nil {
			return fmt.Errorf("seed: job_id=%d: %w", j.ID, err)
		}
	}

	if err := distance.WriteMatrix(ctx, tx, d.Distances); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

// table and idColumn are package constants, never user input.
func replaceSkills(ctx context.Context, tx *sql.Tx, table, idColumn string, id int, skills []string) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, table, idColumn), id); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, position, skill) VALUES ($1, $2, $3);`, table, idColumn)
	for pos, skill := range skills {
		if _, err := tx.ExecContext(ctx, insert, id, pos, skill); err != nil {
			return fmt.Errorf("insert %s position=%d: %w", table, pos, err)
		}
	}
	return nil
}
