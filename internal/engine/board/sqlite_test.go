package board

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("OpenSQLite error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateJob_Basic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	job := &Job{
		Title:       "Senior Go Developer",
		Company:     "Stripe",
		Description: "Payments infrastructure in Go",
		Location:    "Remote",
		Skills:      []string{"golang", "postgres"},
	}
	if err := s.CreateJob(ctx, job); err != nil {
		t.Fatalf("CreateJob error: %v", err)
	}
	if job.ID == "" {
		t.Error("expected assigned ID")
	}

	got, err := s.GetJob(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetJob error: %v", err)
	}
	if got.Title != job.Title || len(got.Skills) != 2 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestCreateJob_MissingRequired(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateJob(ctx, &Job{Title: "Only Title"}); err == nil {
		t.Error("expected error when company is missing")
	}
	if err := s.CreateJob(ctx, &Job{Company: "Only Company"}); err == nil {
		t.Error("expected error when title is missing")
	}
}

func TestGetJob_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetJob(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListJobs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"Backend Engineer", "SRE", "Data Engineer"} {
		if err := s.CreateJob(ctx, &Job{Title: title, Company: "Acme"}); err != nil {
			t.Fatalf("CreateJob error: %v", err)
		}
	}

	jobs, err := s.ListJobs(ctx, 0)
	if err != nil {
		t.Fatalf("ListJobs error: %v", err)
	}
	if len(jobs) != 3 {
		t.Errorf("expected 3 jobs, got %d", len(jobs))
	}
}

func TestSaveProfile_UpsertByEmail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := &Profile{Name: "Ada", Email: "ada@example.com", ResumeText: "first version"}
	if err := s.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile error: %v", err)
	}
	firstID := p.ID

	p2 := &Profile{Name: "Ada L.", Email: "ada@example.com", ResumeText: "second version"}
	if err := s.SaveProfile(ctx, p2); err != nil {
		t.Fatalf("SaveProfile (upsert) error: %v", err)
	}
	if p2.ID != firstID {
		t.Errorf("upsert changed ID: %s vs %s", p2.ID, firstID)
	}

	got, err := s.GetProfile(ctx, firstID)
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if got.ResumeText != "second version" || got.Name != "Ada L." {
		t.Errorf("upsert did not stick: %+v", got)
	}

	// Lookup by email works too.
	if _, err := s.GetProfile(ctx, "ada@example.com"); err != nil {
		t.Errorf("GetProfile by email error: %v", err)
	}
}

func TestApplications_Lifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	job := &Job{Title: "Backend Engineer", Company: "Acme"}
	if err := s.CreateJob(ctx, job); err != nil {
		t.Fatalf("CreateJob error: %v", err)
	}
	p := &Profile{Name: "Ada", Email: "ada@example.com"}
	if err := s.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile error: %v", err)
	}

	app := &Application{JobID: job.ID, ProfileID: p.ID}
	if err := s.CreateApplication(ctx, app); err != nil {
		t.Fatalf("CreateApplication error: %v", err)
	}
	if app.Status != StatusApplied {
		t.Errorf("expected default status applied, got %s", app.Status)
	}

	// Duplicate application for the same job+profile is rejected.
	if err := s.CreateApplication(ctx, &Application{JobID: job.ID, ProfileID: p.ID}); err == nil {
		t.Error("expected unique constraint error on duplicate application")
	}

	updated, err := s.UpdateApplication(ctx, app.ID, "interview", "onsite scheduled")
	if err != nil {
		t.Fatalf("UpdateApplication error: %v", err)
	}
	if updated.Status != StatusInterview || updated.Notes != "onsite scheduled" {
		t.Errorf("update mismatch: %+v", updated)
	}

	apps, err := s.ListApplications(ctx, p.ID, "", 0)
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}

	apps, err = s.ListApplications(ctx, p.ID, "other-job", 0)
	if err != nil {
		t.Fatalf("ListApplications (filtered) error: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("expected 0 applications for other job, got %d", len(apps))
	}
}

func TestUpdateApplication_Validation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.UpdateApplication(ctx, "", "applied", ""); err == nil {
		t.Error("expected error for empty id")
	}
	if _, err := s.UpdateApplication(ctx, "some-id", "", ""); err == nil {
		t.Error("expected error when neither status nor notes given")
	}
	if _, err := s.UpdateApplication(ctx, "some-id", "bogus", ""); err == nil {
		t.Error("expected error for invalid status")
	}
	if _, err := s.UpdateApplication(ctx, "missing-id", "applied", ""); !errors.Is(err, ErrNotFound) {
		t.Error("expected ErrNotFound for unknown id")
	}
}
