package banking

import (
	"time"

	"github.com/google/uuid"
)

// SessionState tracks a link session through its lifecycle. The transition
// Created -> FlowOpened happens at most once per session; that is what keeps
// re-evaluations of "token present + flow ready" from reopening the
// provider's authorization flow.
type SessionState int

const (
	SessionCreated SessionState = iota
	SessionFlowOpened
	SessionConsumed
)

// LinkSession is a single-use linking session. It becomes consumed once the
// authorization flow returns any result, or when the user walks away. A
// stale session is simply dropped; the backend needs no cleanup call.
type LinkSession struct {
	ID        uuid.UUID
	Token     string
	CreatedAt time.Time

	state SessionState
}

func NewLinkSession(token string) *LinkSession {
	return &LinkSession{
		ID:        uuid.New(),
		Token:     token,
		CreatedAt: time.Now(),
		state:     SessionCreated,
	}
}

func (s *LinkSession) State() SessionState {
	if s == nil {
		return SessionConsumed
	}
	return s.state
}

// OpenFlow transitions Created -> FlowOpened. It returns true only on the
// first call; callers gate the actual open on the return value.
func (s *LinkSession) OpenFlow() bool {
	if s == nil || s.state != SessionCreated {
		return false
	}
	s.state = SessionFlowOpened
	return true
}

// Consume marks the session spent, whatever state it was in.
func (s *LinkSession) Consume() {
	if s == nil {
		return
	}
	s.state = SessionConsumed
}

func (s *LinkSession) Consumed() bool {
	return s == nil || s.state == SessionConsumed
}
