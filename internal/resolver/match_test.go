package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrk/leadbot/internal/models"
)

func faq() []models.PredefinedQuestion {
	return []models.PredefinedQuestion{
		{Question: "What are your pricing models?", Answer: "Flat monthly rates."},
		{Question: "Do you have any setup fees?", Answer: "No setup fees."},
		{Question: "Can I hire a dedicated remote team?", Answer: "Yes, dedicated teams."},
	}
}

func TestMatchExactCaseInsensitive(t *testing.T) {
	m := NewMatcher(faq())

	qa, ok := m.Match("  WHAT ARE your   Pricing Models? ")
	require.True(t, ok)
	assert.Equal(t, "Flat monthly rates.", qa.Answer)
}

func TestMatchKeywordOverlap(t *testing.T) {
	m := NewMatcher(faq())

	// 3 of 4 query tokens appear in "do you have any setup fees?"
	qa, ok := m.Match("any setup fees charged")
	require.True(t, ok)
	assert.Equal(t, "No setup fees.", qa.Answer)
}

func TestMatchBelowThreshold(t *testing.T) {
	m := NewMatcher(faq())

	_, ok := m.Match("tell me about penguin migration routes")
	assert.False(t, ok)
}

func TestMatchEmptyQuestion(t *testing.T) {
	m := NewMatcher(faq())

	_, ok := m.Match("   ")
	assert.False(t, ok)
}

func TestMatchUsesSeededKeywords(t *testing.T) {
	m := NewMatcher([]models.PredefinedQuestion{
		{Question: "What are your hours?", Answer: "We are open 9-5.", Keywords: []string{"hours", "open", "schedule", "time"}},
	})

	qa, ok := m.Match("opening hours schedule")
	require.True(t, ok)
	assert.Equal(t, "We are open 9-5.", qa.Answer)
}
