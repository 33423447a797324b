// Package hubserver registers the HiringHub MCP tools: match scoring,
// similarity preview, and the job/profile/application plumbing.
package hubserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/extract"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/match"
)

// Deps carries the collaborators tool handlers need.
type Deps struct {
	Store   board.Store
	Fetcher *extract.Fetcher
}

// RegisterTools registers all HiringHub tools on the given MCP server.
func RegisterTools(server *mcp.Server, d Deps) {
	registerMatchScore(server, d)
	registerSemanticSimilarity(server)
	registerRankJobs(server, d)
	registerJobTools(server, d)
	registerProfileTools(server, d)
	registerApplicationTools(server, d)
}

// defaultStrategy resolves the process-wide strategy configured at startup.
func defaultStrategy() match.Strategy {
	return match.ParseStrategy(engine.Cfg.DefaultStrategy)
}

// pickStrategy prefers the per-call strategy, falling back to the default.
func pickStrategy(s string) match.Strategy {
	if s == "" {
		return defaultStrategy()
	}
	return match.ParseStrategy(s)
}

// resolveResumeText resolves resume text from, in order of precedence:
// inline text, a stored profile, a resume URL. Extraction and lookup
// failures degrade to "" — the scorer treats that as a normal
// zero-confidence input, never an error.
func resolveResumeText(ctx context.Context, d Deps, inline, profileID, resumeURL string) string {
	if inline != "" {
		return inline
	}
	if profileID != "" {
		p, err := d.Store.GetProfile(ctx, profileID)
		if err != nil {
			slog.Warn("resume resolve: profile lookup failed", slog.String("profile_id", profileID), slog.Any("error", err))
			return ""
		}
		if p.ResumeText != "" {
			return p.ResumeText
		}
		resumeURL = p.ResumeURL
	}
	if resumeURL != "" {
		text, err := d.Fetcher.ExtractText(ctx, resumeURL)
		if err != nil {
			slog.Warn("resume resolve: extraction failed", slog.String("url", resumeURL), slog.Any("error", err))
			return ""
		}
		return text
	}
	return ""
}

// jobRecord converts a stored posting into the scorer's job shape.
func jobRecord(j *board.Job) *match.JobRecord {
	rec := &match.JobRecord{Title: j.Title, Description: j.Description}
	for _, s := range j.Skills {
		rec.Skills = append(rec.Skills, match.Skill{Name: s})
	}
	return rec
}
