package repository

import (
	"sync"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

// sessionRepository keeps one Session per chat, in memory only. A full
// user turn runs under the lock, which is what keeps the question-cursor
// attribution and the atomic reset intact when many chats are served at
// once.
type sessionRepository struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
}

func NewSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[int64]*domain.Session),
	}
}

// Update runs fn against the chat's session, creating the session on
// first use. fn sees the live session; it must not retain the pointer.
func (r *sessionRepository) Update(chatID int64, fn func(*domain.Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatID]
	if !ok {
		s = domain.NewSession(chatID)
		r.sessions[chatID] = s
	}
	fn(s)
}

// Snapshot returns a deep copy safe to read outside the lock. The second
// return is false when the chat has no session yet.
func (r *sessionRepository) Snapshot(chatID int64) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatID]
	if !ok {
		return domain.Session{}, false
	}

	out := *s
	out.History = append([]domain.ChatMessage(nil), s.History...)
	out.Responses = make(map[string]string, len(s.Responses))
	for k, v := range s.Responses {
		out.Responses[k] = v
	}
	if s.Prediction != nil {
		p := *s.Prediction
		out.Prediction = &p
	}
	return out, true
}
