package repositories

import (
	"context"
	"database/sql"
	"errors"
	"field-service-scheduler/internal/domain"
	"field-service-scheduler/internal/platform/obs"
	"fmt"
)

// Postgres-backed implementation of the RosterRepository port.
type PostgresRosterRepository struct{ DB *sql.DB }

func NewPostgresRosterRepository(db *sql.DB) *PostgresRosterRepository {
	return &PostgresRosterRepository{DB: db}
}

// Return all engineers in seeded order, skills in stored order.
func (s *PostgresRosterRepository) ListEngineers(ctx context.Context) (_ []domain.Engineer, err error) {
	defer obs.Time(ctx, "roster.ListEngineers")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres roster repository: DB is nil")
	}

	query := `
	SELECT
		e.engineer_id,
		e.name,
		e.location,
		s.skill
	FROM engineers e
	LEFT JOIN engineer_skills s ON s.engineer_id = e.engineer_id
	ORDER BY e.position, e.engineer_id, s.position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list engineers: query engineers table: %w", err)
	}
	defer rows.Close()

	engineers := make([]domain.Engineer, 0, 16)
	for rows.Next() {
		var id int
		var name, location string
		var skill sql.NullString
		if err := rows.Scan(&id, &name, &location, &skill); err != nil {
			return nil, fmt.Errorf("list engineers: scan row: %w", err)
		}

		// Rows arrive grouped by engineer; start a new one when the id changes.
		if n := len(engineers); n == 0 || engineers[n-1].ID != id {
			engineers = append(engineers, domain.Engineer{
				ID:       id,
				Name:     name,
				Location: domain.Location(location),
				Skills:   domain.Skills{},
			})
		}
		if skill.Valid {
			last := &engineers[len(engineers)-1]
			last.Skills = append(last.Skills, domain.NormalizeSkills([]string{skill.String})...)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list engineers: row iteration: %w", err)
	}

	return engineers, nil
}

// Return all jobs in seeded order, required skills in stored order.
func (s *PostgresRosterRepository) ListJobs(ctx context.Context) (_ []domain.Job, err error) {
	defer obs.Time(ctx, "roster.ListJobs")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres roster repository: DB is nil")
	}

	query := `
	SELECT
		j.job_id,
		j.location,
		j.scheduled_time,
		s.skill
	FROM jobs j
	LEFT JOIN job_skills s ON s.job_id = j.job_id
	ORDER BY j.position, j.job_id, s.position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: query jobs table: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0, 64)
	for rows.Next() {
		var id int
		var location, scheduled string
		var skill sql.NullString
		if err := rows.Scan(&id, &location, &scheduled, &skill); err != nil {
			return nil, fmt.Errorf("list jobs: scan row: %w", err)
		}

		if n := len(jobs); n == 0 || jobs[n-1].ID != id {
			jobs = append(jobs, domain.Job{
				ID:             id,
				Location:       domain.Location(location),
				Time:           scheduled,
				RequiredSkills: domain.Skills{},
			})
		}
		if skill.Valid {
			last := &jobs[len(jobs)-1]
			last.RequiredSkills = append(last.RequiredSkills, domain.NormalizeSkills([]string{skill.String})...)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: row iteration: %w", err)
	}

	return jobs, nil
}
