package match

import (
	"math"
	"strings"
)

// keyword is a job-derived term; skills carry a bonus weight when matched.
type keyword struct {
	term    string
	isSkill bool
}

// buildKeywords assembles the deduplicated keyword set for a job: every skill
// name, plus every description/title word longer than 3 chars that is not a
// stop word. A term sourced from both a skill and free text keeps its
// is-skill flag.
func buildKeywords(title, description string, skills []string) []keyword {
	seen := make(map[string]int) // term → index into kws
	var kws []keyword

	add := func(term string, isSkill bool) {
		if term == "" {
			return
		}
		if i, ok := seen[term]; ok {
			if isSkill {
				kws[i].isSkill = true
			}
			return
		}
		seen[term] = len(kws)
		kws = append(kws, keyword{term: term, isSkill: isSkill})
	}

	for _, s := range skills {
		add(strings.TrimSpace(Normalize(s)), true)
	}
	for _, w := range Tokenize(description) {
		add(w, false)
	}
	for _, w := range Tokenize(title) {
		add(w, false)
	}
	return kws
}

// keywordOverlapScore measures literal containment of job keywords in the
// normalized resume text and returns a percentage in [0, 100].
//
// Containment is a plain substring check against the raw normalized resume,
// so short keywords can match inside longer words ("java" inside
// "javascript"). That is a known, accepted weakness of this strategy —
// upgrading to word-boundary matching would change scores downstream.
// A matched skill keyword counts 1.5; the denominator is the count of
// distinct keywords, without the skill bonus.
func keywordOverlapScore(resumeText, title, description string, skills []string) int {
	resume := Normalize(resumeText)
	kws := buildKeywords(title, description, skills)
	if len(kws) == 0 {
		return 0
	}

	var matched float64
	for _, kw := range kws {
		if strings.Contains(resume, kw.term) {
			matched++
			if kw.isSkill {
				matched += 0.5
			}
		}
	}

	pct := int(math.Round(matched / float64(len(kws)) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
