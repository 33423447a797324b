package hubserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/match"
)

func registerSemanticSimilarity(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "semantic_similarity",
		Description: "Compare two raw texts with the vector-space strategy and return a 0-100 similarity percentage. Symmetric: swapping the texts gives the same score. Empty input scores 0. Useful for ad hoc resume-vs-description previews outside the stored job flow.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SimilarityInput) (*mcp.CallToolResult, SimilarityOutput, error) {
		engine.IncrSimilarityRequests()
		return nil, SimilarityOutput{Score: match.SemanticSimilarity(input.TextA, input.TextB)}, nil
	})
}
