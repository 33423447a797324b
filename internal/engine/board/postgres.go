package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore backs the board with a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres creates a pgx pool and ensures the schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, errors.New("board: DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("board: parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("board: create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("board: ping postgres: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("board: init schema: %w", err)
	}

	slog.Info("board postgres connected", slog.String("addr", config.ConnConfig.Host))
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			company     TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location    TEXT NOT NULL DEFAULT '',
			skills      JSONB NOT NULL DEFAULT '[]',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL UNIQUE,
			headline    TEXT NOT NULL DEFAULT '',
			resume_url  TEXT NOT NULL DEFAULT '',
			resume_text TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id         TEXT PRIMARY KEY,
			job_id     TEXT NOT NULL REFERENCES jobs(id),
			profile_id TEXT NOT NULL REFERENCES profiles(id),
			status     TEXT NOT NULL DEFAULT 'saved',
			notes      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (job_id, profile_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateJob(ctx context.Context, job *Job) error {
	if job.Title == "" || job.Company == "" {
		return errors.New("board: title and company are required")
	}
	job.ID = uuid.NewString()
	job.CreatedAt = now()
	job.UpdatedAt = job.CreatedAt
	skills, err := json.Marshal(job.Skills)
	if err != nil {
		return fmt.Errorf("board: marshal skills: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, company, description, location, skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		job.ID, job.Title, job.Company, job.Description, job.Location,
		string(skills), job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("board: insert job: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetJob(ctx context.Context, id string) (*Job, error) {
	var j Job
	var skills []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, description, location, skills, created_at, updated_at
		 FROM jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Title, &j.Company, &j.Description, &j.Location,
			&skills, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: get job: %w", err)
	}
	_ = json.Unmarshal(skills, &j.Skills)
	return &j, nil
}

func (s *PostgresStore) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, description, location, skills, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("board: list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		var j Job
		var skills []byte
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Description,
			&j.Location, &skills, &j.CreatedAt, &j.UpdatedAt); err != nil {
			continue
		}
		_ = json.Unmarshal(skills, &j.Skills)
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *PostgresStore) SaveProfile(ctx context.Context, p *Profile) error {
	if p.Name == "" || p.Email == "" {
		return errors.New("board: name and email are required")
	}
	ts := now()

	var existingID, createdAt string
	err := s.pool.QueryRow(ctx,
		`SELECT id, created_at FROM profiles WHERE email = $1`, p.Email).
		Scan(&existingID, &createdAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		p.ID = uuid.NewString()
		p.CreatedAt = ts
		p.UpdatedAt = ts
		_, err = s.pool.Exec(ctx,
			`INSERT INTO profiles (id, name, email, headline, resume_url, resume_text, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.Name, p.Email, p.Headline, p.ResumeURL, p.ResumeText, ts, ts)
		if err != nil {
			return fmt.Errorf("board: insert profile: %w", err)
		}
	case err != nil:
		return fmt.Errorf("board: lookup profile: %w", err)
	default:
		p.ID = existingID
		p.CreatedAt = createdAt
		p.UpdatedAt = ts
		_, err = s.pool.Exec(ctx,
			`UPDATE profiles SET name=$1, headline=$2, resume_url=$3, resume_text=$4, updated_at=$5 WHERE id=$6`,
			p.Name, p.Headline, p.ResumeURL, p.ResumeText, ts, p.ID)
		if err != nil {
			return fmt.Errorf("board: update profile: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, headline, resume_url, resume_text, created_at, updated_at
		 FROM profiles WHERE id = $1 OR email = $1`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Headline, &p.ResumeURL, &p.ResumeText,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: get profile: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) CreateApplication(ctx context.Context, a *Application) error {
	if a.JobID == "" || a.ProfileID == "" {
		return errors.New("board: job_id and profile_id are required")
	}
	if a.Status == "" {
		a.Status = StatusApplied
	}
	if !ValidStatus(string(a.Status)) {
		return fmt.Errorf("board: invalid status %q (valid: saved, applied, interview, offer, rejected)", a.Status)
	}
	a.ID = uuid.NewString()
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt
	_, err := s.pool.Exec(ctx,
		`INSERT INTO applications (id, job_id, profile_id, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.ProfileID, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("board: insert application: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListApplications(ctx context.Context, profileID, jobID string, limit int) ([]Application, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `SELECT id, job_id, profile_id, status, notes, created_at, updated_at
		 FROM applications WHERE 1=1`
	args := []any{}
	if profileID != "" {
		args = append(args, profileID)
		query += fmt.Sprintf(` AND profile_id = $%d`, len(args))
	}
	if jobID != "" {
		args = append(args, jobID)
		query += fmt.Sprintf(` AND job_id = $%d`, len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY updated_at DESC LIMIT $%d`, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("board: list applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ProfileID, &a.Status, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			continue
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (s *PostgresStore) UpdateApplication(ctx context.Context, id, status, notes string) (*Application, error) {
	if id == "" {
		return nil, errors.New("board: application id is required")
	}
	if status == "" && notes == "" {
		return nil, errors.New("board: at least one of status or notes must be provided")
	}
	if status != "" && !ValidStatus(status) {
		return nil, fmt.Errorf("board: invalid status %q", status)
	}

	ts := now()
	var err error
	switch {
	case status != "" && notes != "":
		_, err = s.pool.Exec(ctx,
			`UPDATE applications SET status=$1, notes=$2, updated_at=$3 WHERE id=$4`, status, notes, ts, id)
	case status != "":
		_, err = s.pool.Exec(ctx,
			`UPDATE applications SET status=$1, updated_at=$2 WHERE id=$3`, status, ts, id)
	default:
		_, err = s.pool.Exec(ctx,
			`UPDATE applications SET notes=$1, updated_at=$2 WHERE id=$3`, notes, ts, id)
	}
	if err != nil {
		return nil, fmt.Errorf("board: update application: %w", err)
	}

	var a Application
	err = s.pool.QueryRow(ctx,
		`SELECT id, job_id, profile_id, status, notes, created_at, updated_at
		 FROM applications WHERE id = $1`, id).
		Scan(&a.ID, &a.JobID, &a.ProfileID, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: reload application: %w", err)
	}
	return &a, nil
}
