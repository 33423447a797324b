package hubserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/match"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/toolutil"
)

func registerApplicationTools(server *mcp.Server, d Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_submit",
		Description: "Apply a candidate profile to a job posting. Returns the stored application plus a match score computed from the profile's current resume text; the score is informational and never persisted.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ApplicationSubmitInput) (*mcp.CallToolResult, ApplicationSubmitOutput, error) {
		job, err := d.Store.GetJob(ctx, input.JobID)
		if err != nil {
			return nil, ApplicationSubmitOutput{}, fmt.Errorf("application_submit: job %s: %w", input.JobID, err)
		}
		profile, err := d.Store.GetProfile(ctx, input.ProfileID)
		if err != nil {
			return nil, ApplicationSubmitOutput{}, fmt.Errorf("application_submit: profile %s: %w", input.ProfileID, err)
		}

		app := &board.Application{
			JobID:     job.ID,
			ProfileID: profile.ID,
			Status:    board.ApplicationStatus(input.Status),
			Notes:     input.Notes,
		}
		if err := d.Store.CreateApplication(ctx, app); err != nil {
			return nil, ApplicationSubmitOutput{}, fmt.Errorf("application_submit: %w", err)
		}
		engine.IncrApplicationWrites()

		score := match.MatchPercentage(profile.ResumeText, jobRecord(job), defaultStrategy())
		return nil, ApplicationSubmitOutput{
			Application: *app,
			MatchScore:  score,
			Message: fmt.Sprintf("%s applied to '%s' at %s (match %d/100)",
				profile.Name, job.Title, job.Company, score),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_list",
		Description: "List applications, optionally filtered by profile and/or job, newest activity first. Every row carries a freshly recomputed match score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ApplicationListInput) (*mcp.CallToolResult, ApplicationListOutput, error) {
		apps, err := d.Store.ListApplications(ctx, input.ProfileID, input.JobID,
			toolutil.NormLimit(input.Limit, 50, 200))
		if err != nil {
			return nil, ApplicationListOutput{}, fmt.Errorf("application_list: %w", err)
		}

		rows := make([]ApplicationRow, 0, len(apps))
		for _, a := range apps {
			row := ApplicationRow{Application: a}
			// Best-effort enrichment: a missing job or profile still lists
			// the application, with score 0.
			if job, err := d.Store.GetJob(ctx, a.JobID); err == nil {
				row.JobTitle = job.Title
				if profile, err := d.Store.GetProfile(ctx, a.ProfileID); err == nil {
					row.MatchScore = match.MatchPercentage(profile.ResumeText, jobRecord(job), defaultStrategy())
				}
			}
			rows = append(rows, row)
		}
		return nil, ApplicationListOutput{Applications: rows, Total: len(rows)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_update",
		Description: "Update an application's pipeline status (saved, applied, interview, offer, rejected) and/or notes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ApplicationUpdateInput) (*mcp.CallToolResult, board.Application, error) {
		app, err := d.Store.UpdateApplication(ctx, input.ID, input.Status, input.Notes)
		if err != nil {
			return nil, board.Application{}, fmt.Errorf("application_update: %w", err)
		}
		engine.IncrApplicationWrites()
		return nil, *app, nil
	})
}
