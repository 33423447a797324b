package hubserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/match"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/toolutil"
)

func registerMatchScore(server *mcp.Server, d Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_score",
		Description: "Score a resume against a job posting and return a 0-100 match percentage. The resume comes from inline text, a stored profile, or a resume URL; the job from a stored posting id or inline title/description/skills. Strategy: vector-space (TF/cosine, default) or keyword-overlap (literal keyword containment with skill bonus). Empty or unresolvable resume text scores 0, it is not an error.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input MatchScoreInput) (*mcp.CallToolResult, MatchScoreOutput, error) {
		engine.IncrMatchRequests()

		rec := &match.JobRecord{Title: input.JobTitle, Description: input.JobDescription}
		for _, s := range input.JobSkills {
			rec.Skills = append(rec.Skills, match.Skill{Name: s})
		}
		if input.JobID != "" {
			job, err := d.Store.GetJob(ctx, input.JobID)
			if err != nil {
				return nil, MatchScoreOutput{}, fmt.Errorf("match_score: job %s: %w", input.JobID, err)
			}
			rec = jobRecord(job)
		}

		resume := resolveResumeText(ctx, d, input.ResumeText, input.ProfileID, input.ResumeURL)
		strategy := pickStrategy(input.Strategy)
		score := match.MatchPercentage(resume, rec, strategy)

		summary := fmt.Sprintf("Match score %d/100 (%s strategy).", score, strategy)
		if resume == "" {
			summary = "No resume text available; score is 0."
		}

		return nil, MatchScoreOutput{
			Score:    score,
			Strategy: string(strategy),
			JobID:    input.JobID,
			Summary:  summary,
		}, nil
	})
}

func registerRankJobs(server *mcp.Server, d Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rank_jobs",
		Description: "Score one resume against every stored job posting and return the postings sorted by match score (0-100), best first. Scores are computed fresh on every call; nothing is indexed or persisted.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input RankJobsInput) (*mcp.CallToolResult, RankJobsOutput, error) {
		engine.IncrRankRequests()

		resume := resolveResumeText(ctx, d, input.ResumeText, input.ProfileID, input.ResumeURL)
		strategy := pickStrategy(input.Strategy)
		limit := toolutil.NormLimit(input.Limit, 15, 100)

		jobs, err := d.Store.ListJobs(ctx, 200)
		if err != nil {
			return nil, RankJobsOutput{}, fmt.Errorf("rank_jobs: %w", err)
		}
		if len(jobs) == 0 {
			return nil, RankJobsOutput{Jobs: []RankedJob{}, Summary: "No jobs stored."}, nil
		}

		ranked := make([]RankedJob, 0, len(jobs))
		for i := range jobs {
			j := &jobs[i]
			ranked = append(ranked, RankedJob{
				JobID:   j.ID,
				Title:   j.Title,
				Company: j.Company,
				Snippet: engine.TruncateRunes(j.Description, 300, "..."),
				Score:   match.MatchPercentage(resume, jobRecord(j), strategy),
			})
		}

		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Score > ranked[j].Score
		})
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}

		summary := fmt.Sprintf("Scored %d jobs (%s strategy). Top match: %d/100.",
			len(jobs), strategy, ranked[0].Score)
		return nil, RankJobsOutput{Jobs: ranked, Summary: summary}, nil
	})
}
