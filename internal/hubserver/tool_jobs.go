package hubserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/toolutil"
)

func registerJobTools(server *mcp.Server, d Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_post",
		Description: "Create a job posting with title, company, description, location, and a skills list. HTML tags in the description are stripped. Returns the stored posting with its id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobPostInput) (*mcp.CallToolResult, board.Job, error) {
		job := &board.Job{
			Title:       input.Title,
			Company:     input.Company,
			Description: engine.CleanHTML(input.Description),
			Location:    input.Location,
			Skills:      input.Skills,
		}
		if err := d.Store.CreateJob(ctx, job); err != nil {
			return nil, board.Job{}, fmt.Errorf("job_post: %w", err)
		}
		engine.IncrJobWrites()
		return nil, *job, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_list",
		Description: "List stored job postings, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobListInput) (*mcp.CallToolResult, JobListOutput, error) {
		jobs, err := d.Store.ListJobs(ctx, toolutil.NormLimit(input.Limit, 50, 200))
		if err != nil {
			return nil, JobListOutput{}, fmt.Errorf("job_list: %w", err)
		}
		return nil, JobListOutput{Jobs: jobs, Total: len(jobs)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_get",
		Description: "Fetch a single job posting by id.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobGetInput) (*mcp.CallToolResult, board.Job, error) {
		if input.ID == "" {
			return nil, board.Job{}, fmt.Errorf("job_get: id is required")
		}
		job, err := d.Store.GetJob(ctx, input.ID)
		if err != nil {
			return nil, board.Job{}, fmt.Errorf("job_get: %w", err)
		}
		return nil, *job, nil
	})
}
