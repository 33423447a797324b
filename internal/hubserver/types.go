package hubserver

import "github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"

// MatchScoreInput identifies a resume (inline text, stored profile, or URL)
// and a job (stored id, or inline fields).
type MatchScoreInput struct {
	ResumeText string `json:"resume_text,omitempty" jsonschema:"resume plain text; wins over profile_id and resume_url"`
	ProfileID  string `json:"profile_id,omitempty" jsonschema:"stored profile id or email"`
	ResumeURL  string `json:"resume_url,omitempty" jsonschema:"URL of a plain-text or HTML resume"`

	JobID          string   `json:"job_id,omitempty" jsonschema:"stored job posting id"`
	JobTitle       string   `json:"job_title,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
	JobSkills      []string `json:"job_skills,omitempty"`

	Strategy string `json:"strategy,omitempty" jsonschema:"vector-space (default) or keyword-overlap"`
}

// MatchScoreOutput is the scoring result.
type MatchScoreOutput struct {
	Score    int    `json:"score"`
	Strategy string `json:"strategy"`
	JobID    string `json:"job_id,omitempty"`
	Summary  string `json:"summary"`
}

// SimilarityInput holds two raw texts for ad hoc comparison.
type SimilarityInput struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

// SimilarityOutput is the similarity percentage.
type SimilarityOutput struct {
	Score int `json:"score"`
}

// RankJobsInput scores one resume against all stored jobs.
type RankJobsInput struct {
	ResumeText string `json:"resume_text,omitempty"`
	ProfileID  string `json:"profile_id,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
	Limit      int    `json:"limit,omitempty" jsonschema:"max jobs to return (default 15)"`
}

// RankedJob is one scored posting.
type RankedJob struct {
	JobID   string `json:"job_id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Snippet string `json:"snippet,omitempty"`
	Score   int    `json:"score"`
}

// RankJobsOutput lists postings sorted by score descending.
type RankJobsOutput struct {
	Jobs    []RankedJob `json:"jobs"`
	Summary string      `json:"summary"`
}

// JobPostInput creates a posting.
type JobPostInput struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// JobListInput filters the posting list.
type JobListInput struct {
	Limit int `json:"limit,omitempty"`
}

// JobListOutput is a page of postings.
type JobListOutput struct {
	Jobs  []board.Job `json:"jobs"`
	Total int         `json:"total"`
}

// JobGetInput fetches one posting.
type JobGetInput struct {
	ID string `json:"id"`
}

// ProfileSaveInput upserts a candidate profile by email.
type ProfileSaveInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Headline   string `json:"headline,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty" jsonschema:"extracted to resume_text on save; extraction failure leaves resume_text empty"`
	ResumeText string `json:"resume_text,omitempty"`
}

// ProfileSaveOutput reports the stored profile.
type ProfileSaveOutput struct {
	Profile     board.Profile `json:"profile"`
	ResumeChars int           `json:"resume_chars"`
	Message     string        `json:"message"`
}

// ProfileGetInput fetches a profile by id or email.
type ProfileGetInput struct {
	ID string `json:"id"`
}

// ApplicationSubmitInput applies a profile to a job.
type ApplicationSubmitInput struct {
	JobID     string `json:"job_id"`
	ProfileID string `json:"profile_id"`
	Status    string `json:"status,omitempty" jsonschema:"saved, applied (default), interview, offer, rejected"`
	Notes     string `json:"notes,omitempty"`
}

// ApplicationSubmitOutput reports the stored application plus a freshly
// computed match score (scores are never persisted).
type ApplicationSubmitOutput struct {
	Application board.Application `json:"application"`
	MatchScore  int               `json:"match_score"`
	Message     string            `json:"message"`
}

// ApplicationListInput filters applications.
type ApplicationListInput struct {
	ProfileID string `json:"profile_id,omitempty"`
	JobID     string `json:"job_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// ApplicationRow is one listed application with its recomputed score.
type ApplicationRow struct {
	Application board.Application `json:"application"`
	JobTitle    string            `json:"job_title,omitempty"`
	MatchScore  int               `json:"match_score"`
}

// ApplicationListOutput is a page of applications.
type ApplicationListOutput struct {
	Applications []ApplicationRow `json:"applications"`
	Total        int              `json:"total"`
}

// ApplicationUpdateInput moves an application through the pipeline.
type ApplicationUpdateInput struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}
