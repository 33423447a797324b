package hubserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"
)

func registerProfileTools(server *mcp.Server, d Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_save",
		Description: "Create or update a candidate profile, keyed by email. If resume_url is given without resume_text, the resume is fetched and reduced to plain text; extraction failure is logged and leaves resume_text empty rather than failing the save.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ProfileSaveInput) (*mcp.CallToolResult, ProfileSaveOutput, error) {
		resumeText := input.ResumeText
		if resumeText == "" && input.ResumeURL != "" {
			text, err := d.Fetcher.ExtractText(ctx, input.ResumeURL)
			if err != nil {
				slog.Warn("profile_save: resume extraction failed",
					slog.String("url", input.ResumeURL), slog.Any("error", err))
			} else {
				resumeText = text
			}
		}

		p := &board.Profile{
			Name:       input.Name,
			Email:      input.Email,
			Headline:   input.Headline,
			ResumeURL:  input.ResumeURL,
			ResumeText: resumeText,
		}
		if err := d.Store.SaveProfile(ctx, p); err != nil {
			return nil, ProfileSaveOutput{}, fmt.Errorf("profile_save: %w", err)
		}
		engine.IncrProfileWrites()

		msg := fmt.Sprintf("Profile %s saved (id=%s)", p.Email, p.ID)
		if resumeText == "" && input.ResumeURL != "" {
			msg += "; resume text unavailable, match scores will be 0 until a resume is attached"
		}
		return nil, ProfileSaveOutput{
			Profile:     *p,
			ResumeChars: len(resumeText),
			Message:     msg,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_get",
		Description: "Fetch a candidate profile by id or email.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ProfileGetInput) (*mcp.CallToolResult, board.Profile, error) {
		if input.ID == "" {
			return nil, board.Profile{}, fmt.Errorf("profile_get: id is required")
		}
		p, err := d.Store.GetProfile(ctx, input.ID)
		if err != nil {
			return nil, board.Profile{}, fmt.Errorf("profile_get: %w", err)
		}
		return nil, *p, nil
	})
}
