package booking

import (
	"sync"

	"github.com/vincibarbearia/app-agendamento/internal/httperr"
)

// State of one customer's booking session. The transitions mirror the
// selection → scheduling → submit flow; keeping them explicit is what makes
// a double submit refusable instead of merely unlikely.
type State string

const (
	StateSelection  State = "selecao"
	StateScheduling State = "agendamento"
	StateSubmitting State = "enviando"
	StateDone       State = "concluido"
)

type session struct {
	mu    sync.Mutex
	state State
}

type sessionSet struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionSet() *sessionSet {
	return &sessionSet{sessions: make(map[string]*session)}
}

func (s *sessionSet) get(customerID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[customerID]
	if !ok {
		sess = &session{state: StateSelection}
		s.sessions[customerID] = sess
	}
	return sess
}

// beginSubmit flips the session into SUBMITTING if it currently is in one
// of the allowed states. A session already submitting refuses re-entry.
func (s *session) beginSubmit(allowed ...State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return httperr.ErrBusinessMsg("submission_in_progress", "Aguarde, estamos processando seu pedido.")
	}

	for _, a := range allowed {
		if s.state == a {
			s.state = StateSubmitting
			return nil
		}
	}
	return httperr.ErrBusinessMsg("invalid_state", "Esta etapa não está disponível no momento.")
}

func (s *session) set(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *session) current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// toScheduling moves SELECTION (or a finished session) to SCHEDULING.
func (s *session) toScheduling() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateSelection, StateDone, StateScheduling:
		s.state = StateScheduling
		return nil
	default:
		return httperr.ErrBusinessMsg("invalid_state", "Esta etapa não está disponível no momento.")
	}
}

// back returns from SCHEDULING to SELECTION; a no-op elsewhere except
// while submitting, which cannot be abandoned.
func (s *session) back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return httperr.ErrBusinessMsg("submission_in_progress", "Aguarde, estamos processando seu pedido.")
	}
	s.state = StateSelection
	return nil
}
