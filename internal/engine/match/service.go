package match

import "strings"

// Strategy selects which scorer MatchPercentage uses. The two strategies
// answer the same question differently and are never averaged; callers pick
// one explicitly, with vector-space as the default.
type Strategy string

const (
	StrategyVectorSpace    Strategy = "vector-space"
	StrategyKeywordOverlap Strategy = "keyword-overlap"
)

// ParseStrategy maps a config/tool string to a Strategy.
// Empty or unrecognized input falls back to vector-space.
func ParseStrategy(s string) Strategy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StrategyKeywordOverlap), "keyword", "overlap":
		return StrategyKeywordOverlap
	default:
		return StrategyVectorSpace
	}
}

// Skill is a named skill attached to a job posting.
type Skill struct {
	Name string `json:"name"`
}

// JobRecord is the slice of a job posting the scorer consumes.
// Additional fields on the caller's job type are ignored.
type JobRecord struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills,omitempty"`
}

// compositeText concatenates title, description, and skill names into the
// single document the vector-space strategy scores against.
func (j *JobRecord) compositeText() string {
	parts := make([]string, 0, 2+len(j.Skills))
	parts = append(parts, j.Title, j.Description)
	for _, s := range j.Skills {
		parts = append(parts, s.Name)
	}
	return strings.Join(parts, " ")
}

// MatchPercentage scores resume text against a job with the given strategy
// and returns an integer in [0, 100]. Empty resume text or a nil job is a
// normal zero-confidence result, not an error.
func MatchPercentage(resumeText string, job *JobRecord, strategy Strategy) int {
	if resumeText == "" || job == nil {
		return 0
	}
	switch strategy {
	case StrategyKeywordOverlap:
		skills := make([]string, 0, len(job.Skills))
		for _, s := range job.Skills {
			skills = append(skills, s.Name)
		}
		return keywordOverlapScore(resumeText, job.Title, job.Description, skills)
	default:
		return SemanticSimilarity(resumeText, job.compositeText())
	}
}
