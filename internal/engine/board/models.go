// Package board persists the job-board records: postings, candidate
// profiles, and applications. Two backends exist — SQLite (default, local
// file) and PostgreSQL (DATABASE_URL) — behind one Store interface.
//
// Match scores are never stored; they are recomputed from the current
// resume/job text on every read that needs one.
package board

import (
	"context"
	"errors"
)

// ApplicationStatus tracks where an application sits in the pipeline.
type ApplicationStatus string

const (
	StatusSaved     ApplicationStatus = "saved"
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
)

// ValidStatus checks if a status string is one of the known pipeline states.
func ValidStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Job is a stored job posting.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Profile is a candidate profile. ResumeText holds plain text already
// extracted from the candidate's resume; ResumeURL remembers where it
// came from.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Headline   string `json:"headline,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty"`
	ResumeText string `json:"resume_text,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Application links a profile to a job.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id"`
	ProfileID string            `json:"profile_id"`
	Status    ApplicationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("board: not found")

// Store is the persistence boundary for the job board.
type Store interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, limit int) ([]Job, error)

	SaveProfile(ctx context.Context, p *Profile) error
	GetProfile(ctx context.Context, id string) (*Profile, error)

	CreateApplication(ctx context.Context, a *Application) error
	ListApplications(ctx context.Context, profileID, jobID string, limit int) ([]Application, error)
	UpdateApplication(ctx context.Context, id, status, notes string) (*Application, error)

	Close() error
}
