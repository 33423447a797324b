package board

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore is the default single-node backend.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the board database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("board: mkdir %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("board: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("board: init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			company     TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location    TEXT,
			skills      TEXT NOT NULL DEFAULT '[]',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL UNIQUE,
			headline    TEXT,
			resume_url  TEXT,
			resume_text TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id         TEXT PRIMARY KEY,
			job_id     TEXT NOT NULL REFERENCES jobs(id),
			profile_id TEXT NOT NULL REFERENCES profiles(id),
			status     TEXT NOT NULL DEFAULT 'saved',
			notes      TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (job_id, profile_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// CreateJob inserts a posting, assigning ID and timestamps.
func (s *SQLiteStore) CreateJob(ctx context.Context, job *Job) error {
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
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, title, company, description, location, skills, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Company, job.Description, job.Location,
		string(skills), job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("board: insert job: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetJob(ctx context.Context, id string) (*Job, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, company, description, location, skills, created_at, updated_at
		 FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

func (s *SQLiteStore) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, company, description, location, skills, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("board: list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			continue
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*Job, error) {
	var j Job
	var location sql.NullString
	var skills string
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &location,
		&skills, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: scan job: %w", err)
	}
	j.Location = location.String
	_ = json.Unmarshal([]byte(skills), &j.Skills)
	return &j, nil
}

// SaveProfile upserts by email: an existing profile with the same email is
// updated in place and keeps its ID.
func (s *SQLiteStore) SaveProfile(ctx context.Context, p *Profile) error {
	if p.Name == "" || p.Email == "" {
		return errors.New("board: name and email are required")
	}
	ts := now()

	var existingID, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM profiles WHERE email = ?`, p.Email).
		Scan(&existingID, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		p.ID = uuid.NewString()
		p.CreatedAt = ts
		p.UpdatedAt = ts
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO profiles (id, name, email, headline, resume_url, resume_text, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
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
		_, err = s.db.ExecContext(ctx,
			`UPDATE profiles SET name=?, headline=?, resume_url=?, resume_text=?, updated_at=? WHERE id=?`,
			p.Name, p.Headline, p.ResumeURL, p.ResumeText, ts, p.ID)
		if err != nil {
			return fmt.Errorf("board: update profile: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	var headline, resumeURL, resumeText sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, headline, resume_url, resume_text, created_at, updated_at
		 FROM profiles WHERE id = ? OR email = ?`, id, id).
		Scan(&p.ID, &p.Name, &p.Email, &headline, &resumeURL, &resumeText,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: get profile: %w", err)
	}
	p.Headline = headline.String
	p.ResumeURL = resumeURL.String
	p.ResumeText = resumeText.String
	return &p, nil
}

func (s *SQLiteStore) CreateApplication(ctx context.Context, a *Application) error {
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
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (id, job_id, profile_id, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.JobID, a.ProfileID, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("board: insert application: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListApplications(ctx context.Context, profileID, jobID string, limit int) ([]Application, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `SELECT id, job_id, profile_id, status, notes, created_at, updated_at
		 FROM applications WHERE 1=1`
	args := []any{}
	if profileID != "" {
		query += ` AND profile_id = ?`
		args = append(args, profileID)
	}
	if jobID != "" {
		query += ` AND job_id = ?`
		args = append(args, jobID)
	}
	query += ` ORDER BY updated_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("board: list applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		var a Application
		var notes sql.NullString
		if err := rows.Scan(&a.ID, &a.JobID, &a.ProfileID, &a.Status, &notes,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			continue
		}
		a.Notes = notes.String
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (s *SQLiteStore) UpdateApplication(ctx context.Context, id, status, notes string) (*Application, error) {
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
		_, err = s.db.ExecContext(ctx,
			`UPDATE applications SET status=?, notes=?, updated_at=? WHERE id=?`, status, notes, ts, id)
	case status != "":
		_, err = s.db.ExecContext(ctx,
			`UPDATE applications SET status=?, updated_at=? WHERE id=?`, status, ts, id)
	default:
		_, err = s.db.ExecContext(ctx,
			`UPDATE applications SET notes=?, updated_at=? WHERE id=?`, notes, ts, id)
	}
	if err != nil {
		return nil, fmt.Errorf("board: update application: %w", err)
	}

	var a Application
	var n sql.NullString
	err = s.db.QueryRowContext(ctx,
		`SELECT id, job_id, profile_id, status, notes, created_at, updated_at
		 FROM applications WHERE id = ?`, id).
		Scan(&a.ID, &a.JobID, &a.ProfileID, &a.Status, &n, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: reload application: %w", err)
	}
	a.Notes = n.String
	return &a, nil
}
