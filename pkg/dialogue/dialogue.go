// Package dialogue drives the fixed-stage assessment conversation:
// introduction, guidance, medical history, waiting for an image, and
// post-prediction follow-up. Transitions are keyword-triggered and
// encoded as a per-stage rule table, not nested conditionals, so each
// rule can be exercised in isolation.
package dialogue

import (
	"strings"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

// Machine holds the transition table. It carries no per-conversation
// state; everything mutable lives in the Session it is handed.
type Machine struct {
	rules map[domain.Stage][]rule
}

// A rule pairs an intent predicate with a response handler. Rules are
// tried in order; the first match wins.
type rule struct {
	match   func(text string) bool
	respond func(s *domain.Session, text string) string
}

func NewMachine() *Machine {
	m := &Machine{}
	m.rules = map[domain.Stage][]rule{
		domain.StageIntroduction: {
			{anyKeyword("yes", "sure", "okay", "start", "guide", "help"), m.beginGuidance},
			{always, m.reintroduce},
		},
		domain.StageGuidance: {
			{anyKeyword("yes", "sure", "okay", "proceed", "continue", "ready"), m.beginHistory},
			{anyKeyword("question", "?"), m.answerGuidanceQuestion},
			{always, m.nudgeIntoHistory},
		},
		domain.StageMedicalHistory: {
			{always, m.recordAnswer},
		},
		domain.StageWaitingForImage: {
			{always, m.remindUpload},
		},
		domain.StagePostPrediction: {
			{anyKeyword("explain", "features", "why", "how", "what"), m.explainFeatures},
			{anyKeyword("next", "steps", "do", "should"), m.adviseNextSteps},
			{always, m.reassure},
		},
	}
	return m
}

// Process advances the conversation one user turn: it mutates the stage,
// the stored answers and the question cursor, and returns the assistant
// reply. Transcript bookkeeping belongs to the caller.
func (m *Machine) Process(s *domain.Session, text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	rules, ok := m.rules[s.Stage]
	if !ok {
		// A stage outside the table is a programming error; answer
		// generically and leave the stage alone so the session heals.
		return fallbackMessage
	}
	for _, r := range rules {
		if r.match(normalized) {
			return r.respond(s, normalized)
		}
	}
	return fallbackMessage
}

func anyKeyword(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

func always(string) bool { return true }

func (m *Machine) beginGuidance(s *domain.Session, _ string) string {
	s.Stage = domain.StageGuidance
	return guidanceMessage()
}

func (m *Machine) reintroduce(_ *domain.Session, _ string) string {
	return "I understand you may have questions. This application can analyze images of skin lesions to help determine if they might be concerning. Would you like me to guide you through the process?"
}

func (m *Machine) beginHistory(s *domain.Session, _ string) string {
	s.Stage = domain.StageMedicalHistory
	return m.askNext(s)
}

func (m *Machine) answerGuidanceQuestion(_ *domain.Session, _ string) string {
	return "I'm happy to answer questions. This tool helps identify potential skin cancer concerns, but it's not a replacement for professional medical advice. Please upload a clear image of your skin lesion when you can. Would you like to proceed with some medical history questions while you prepare your image?"
}

func (m *Machine) nudgeIntoHistory(s *domain.Session, _ string) string {
	s.Stage = domain.StageMedicalHistory
	return "When you're ready, please upload an image of the lesion. In the meantime, I'd like to ask you a few questions that might help with the assessment. " + m.askNext(s)
}

// recordAnswer attributes the incoming text to the question most
// recently asked. The asked-question index is captured before the cursor
// advances again, so answers never shift onto the next question.
func (m *Machine) recordAnswer(s *domain.Session, text string) string {
	asked := s.QuestionIndex - 1
	if asked >= 0 && asked < len(Questions) {
		s.Responses[Questions[asked]] = text
	}

	if s.QuestionIndex < len(Questions) {
		return m.askNext(s)
	}

	s.Stage = domain.StageWaitingForImage
	return "Thank you for providing that information. Please upload an image of the skin lesion if you haven't already, and I'll analyze it for you."
}

func (m *Machine) askNext(s *domain.Session) string {
	q := Questions[s.QuestionIndex]
	s.QuestionIndex++
	return q
}

func (m *Machine) remindUpload(_ *domain.Session, _ string) string {
	return "I'm waiting for you to upload an image of the skin lesion. Please send it as a photo and I'll analyze it right away."
}

func (m *Machine) explainFeatures(s *domain.Session, _ string) string {
	if s.Prediction != nil && s.Prediction.Label == domain.LabelMelanoma {
		return "The system analyzes visual characteristics including: asymmetry (irregular shape), border irregularity, color variations, diameter (larger lesions are more concerning), and evolving features. In melanomas, we often see irregular borders, multiple colors, and asymmetric patterns. Based on these features, I recommend consulting with a dermatologist who can perform a proper examination. Would you like me to explain what steps you should take next?"
	}
	return "The system analyzes visual characteristics including: symmetry, regular borders, uniform color, smaller size, and stable appearance over time. Benign moles typically have more regular, symmetrical patterns with consistent coloration. However, it's still good practice to monitor any skin lesions for changes. Would you like advice on monitoring your skin health?"
}

func (m *Machine) adviseNextSteps(s *domain.Session, _ string) string {
	if s.Prediction != nil && s.Prediction.Label == domain.LabelMelanoma {
		return "Given the results, I recommend: 1) Make an appointment with a dermatologist as soon as possible, 2) Mention that you used an AI tool that suggested possible melanoma concerns, 3) Don't panic - further testing is needed for a definitive diagnosis, 4) Until your appointment, protect the area from sun exposure. Is there anything specific about the process you'd like to know?"
	}
	return "Even with a benign result, I recommend: 1) Take photos every 3-6 months to track any changes, 2) Use the 'ABCDE rule' to monitor: Asymmetry, Border irregularity, Color changes, Diameter increases, or Evolution of any kind, 3) Practice sun protection with sunscreen, protective clothing, and avoiding peak UV hours, 4) Consider a routine skin check with a dermatologist, especially if you have risk factors. Would you like more information on any of these points?"
}

func (m *Machine) reassure(s *domain.Session, _ string) string {
	if s.Prediction != nil && s.Prediction.Label == domain.LabelMelanoma {
		return "I understand this result may be concerning. Remember that this is a preliminary screening tool, not a diagnosis. A dermatologist can perform additional tests like dermoscopy or a biopsy if needed. Do you have any specific questions about the results or next steps?"
	}
	return "I'm glad the results suggest a benign lesion. While this is reassuring, it's always good practice to monitor your skin for changes and practice sun protection. Is there anything specific about skin health monitoring you'd like to know more about?"
}

const fallbackMessage = "I'm here to help analyze skin lesions and provide guidance. Would you like to upload an image or ask questions about the process?"
