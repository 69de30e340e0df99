package resolver

import (
	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/utils"
)

// matchThreshold is the share of query tokens that must appear in a
// predefined question's keywords for a fuzzy match.
const matchThreshold = 0.6

type matchEntry struct {
	qa         models.PredefinedQuestion
	normalized string
	keywords   map[string]struct{}
}

// Matcher answers questions from the curated FAQ set: exact normalized
// equality first, keyword overlap second.
type Matcher struct {
	entries []matchEntry
}

func NewMatcher(qs []models.PredefinedQuestion) *Matcher {
	entries := make([]matchEntry, 0, len(qs))
	for _, qa := range qs {
		kw := make(map[string]struct{})
		if len(qa.Keywords) > 0 {
			for _, k := range qa.Keywords {
				kw[utils.NormalizeQuestion(k)] = struct{}{}
			}
		} else {
			for _, t := range utils.Tokens(qa.Question) {
				kw[t] = struct{}{}
			}
		}
		entries = append(entries, matchEntry{
			qa:         qa,
			normalized: utils.NormalizeQuestion(qa.Question),
			keywords:   kw,
		})
	}
	return &Matcher{entries: entries}
}

func (m *Matcher) Match(question string) (models.PredefinedQuestion, bool) {
	normalized := utils.NormalizeQuestion(question)
	if normalized == "" {
		return models.PredefinedQuestion{}, false
	}

	for _, e := range m.entries {
		if e.normalized == normalized {
			return e.qa, true
		}
	}

	tokens := utils.Tokens(question)
	for _, e := range m.entries {
		overlap := 0
		for _, t := range tokens {
			if _, ok := e.keywords[t]; ok {
				overlap++
			}
		}
		if float64(overlap)/float64(len(tokens)) > matchThreshold {
			return e.qa, true
		}
	}
	return models.PredefinedQuestion{}, false
}
