// Package risk derives structured risk flags from the free-text medical
// history answers. Extraction is a pure read: it never writes anything
// back into the session.
package risk

import (
	"strings"

	"github.com/mkravets/skin-assist-bot/pkg/dialogue"
	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

// One rule per question. All requireAll keywords must appear in the
// answer, and at least one anyOf keyword when the list is non-empty.
// Rules are independent: an answer set may trigger zero, one or many
// factors.
type rule struct {
	question   string
	requireAll []string
	anyOf      []string
	factor     domain.RiskFactor
}

var rules = []rule{
	{
		question:   dialogue.QuestionFamilyHistory,
		requireAll: []string{"family history", "yes"},
		factor:     domain.RiskFamilyHistory,
	},
	{
		question:   dialogue.QuestionSunExposure,
		requireAll: []string{"sun exposure"},
		anyOf:      []string{"yes", "significant", "severe", "many", "multiple"},
		factor:     domain.RiskSunExposure,
	},
	{
		question:   dialogue.QuestionPriorCancer,
		requireAll: []string{"previous", "yes"},
		factor:     domain.RiskPriorCancer,
	},
	{
		question: dialogue.QuestionSymptoms,
		anyOf:    []string{"yes", "painful", "itchy", "bleeding", "itches", "hurts", "bleeds"},
		factor:   domain.RiskSymptomatic,
	},
	{
		question: dialogue.QuestionChanges,
		anyOf:    []string{"yes", "changed", "changing", "growing", "darker"},
		factor:   domain.RiskRecentChange,
	},
}

// Extract is total: missing or non-matching answers simply yield no
// factor, never an error.
func Extract(responses map[string]string) []domain.RiskFactor {
	var factors []domain.RiskFactor
	for _, r := range rules {
		answer := strings.ToLower(responses[r.question])
		if answer == "" {
			continue
		}
		if !containsAll(answer, r.requireAll) {
			continue
		}
		if len(r.anyOf) > 0 && !containsAny(answer, r.anyOf) {
			continue
		}
		factors = append(factors, r.factor)
	}
	return factors
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
