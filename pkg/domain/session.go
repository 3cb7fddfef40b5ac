package domain

// Stage is a named point in the fixed conversation sequence. It controls
// which user input is meaningful on the next turn.
type Stage string

const (
	StageIntroduction    Stage = "introduction"
	StageGuidance        Stage = "guidance"
	StageMedicalHistory  Stage = "medical_history"
	StageWaitingForImage Stage = "waiting_for_image"
	StagePostPrediction  Stage = "post_prediction"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role string
	Text string
}

// Session is the single mutable hub of one conversation. Everything a
// turn reads or writes lives here; the pipeline and classifier stay
// stateless.
type Session struct {
	ChatID  int64
	Stage   Stage
	History []ChatMessage

	// Responses maps question text to the answer the user gave to it.
	Responses map[string]string

	// QuestionIndex counts how many medical history questions have been
	// asked so far. The answer arriving on a turn belongs to question
	// QuestionIndex-1, the one most recently asked.
	QuestionIndex int

	Prediction *Prediction
}

func NewSession(chatID int64) *Session {
	return &Session{
		ChatID:    chatID,
		Stage:     StageIntroduction,
		Responses: make(map[string]string),
	}
}

func (s *Session) Append(role, text string) {
	s.History = append(s.History, ChatMessage{Role: role, Text: text})
}

// Reset clears the whole session in one step. Partial resets are never
// valid: stage, history, answers, cursor and prediction go together.
func (s *Session) Reset() {
	s.Stage = StageIntroduction
	s.History = nil
	s.Responses = make(map[string]string)
	s.QuestionIndex = 0
	s.Prediction = nil
}
