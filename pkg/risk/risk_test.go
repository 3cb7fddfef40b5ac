package risk

import (
	"testing"

	"github.com/mkravets/skin-assist-bot/pkg/dialogue"
	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string]string
		want      []domain.RiskFactor
	}{
		{
			"family history confirmed",
			map[string]string{dialogue.QuestionFamilyHistory: "yes, family history of melanoma"},
			[]domain.RiskFactor{domain.RiskFamilyHistory},
		},
		{
			"family history mentioned without confirmation",
			map[string]string{dialogue.QuestionFamilyHistory: "my family history is clear"},
			nil,
		},
		{
			"sun exposure with qualifier",
			map[string]string{dialogue.QuestionSunExposure: "significant sun exposure as a child"},
			[]domain.RiskFactor{domain.RiskSunExposure},
		},
		{
			"sun exposure without qualifier",
			map[string]string{dialogue.QuestionSunExposure: "a little sun exposure, nothing serious"},
			nil,
		},
		{
			"previous cancer confirmed",
			map[string]string{dialogue.QuestionPriorCancer: "yes, a previous basal cell carcinoma"},
			[]domain.RiskFactor{domain.RiskPriorCancer},
		},
		{
			"symptomatic lesion",
			map[string]string{dialogue.QuestionSymptoms: "it itches sometimes"},
			[]domain.RiskFactor{domain.RiskSymptomatic},
		},
		{
			"recent change",
			map[string]string{dialogue.QuestionChanges: "it has been growing and getting darker"},
			[]domain.RiskFactor{domain.RiskRecentChange},
		},
		{
			"negative answers yield nothing",
			map[string]string{
				dialogue.QuestionChanges:  "no",
				dialogue.QuestionSymptoms: "not at all",
			},
			nil,
		},
		{
			"empty responses yield nothing",
			map[string]string{},
			nil,
		},
		{
			"multiple factors accumulate",
			map[string]string{
				dialogue.QuestionFamilyHistory: "yes, family history on my mother's side",
				dialogue.QuestionSymptoms:      "it is painful",
				dialogue.QuestionChanges:       "yes, changed shape",
			},
			[]domain.RiskFactor{domain.RiskFamilyHistory, domain.RiskSymptomatic, domain.RiskRecentChange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.responses)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("factor %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	responses := map[string]string{dialogue.QuestionFamilyHistory: "YES, Family History of skin cancer"}

	got := Extract(responses)

	if len(got) != 1 || got[0] != domain.RiskFamilyHistory {
		t.Errorf("Extract() = %v, want [%q]", got, domain.RiskFamilyHistory)
	}
}
