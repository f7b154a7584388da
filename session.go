package deltasym

import (
	"errors"

	"go.uber.org/zap"

	"github.com/physym/deltasym/algebra"
)

// ErrNoSession indicates that a session-dependent operation ran with no
// interactive session installed.
var ErrNoSession = errors.New("deltasym: no interactive session is active")

// Session is the variable namespace of an interactive session: a flat,
// ordered table of name to expression bindings.
//
// A Session is not safe for concurrent use; it models a single-user,
// single-session interactive scope.
type Session struct {
	vars    map[string]algebra.Expr
	order   []string
	journal *zap.Logger
}

// SessionOption customizes a Session at construction time.
type SessionOption func(*Session)

// WithJournal attaches a logger that records every namespace write.
func WithJournal(l *zap.Logger) SessionOption {
	return func(s *Session) { s.journal = l }
}

// NewSession creates an empty session namespace.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{vars: map[string]algebra.Expr{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind inserts or overwrites a binding.
func (s *Session) Bind(name string, expr algebra.Expr) {
	_, overwrote := s.vars[name]
	if !overwrote {
		s.order = append(s.order, name)
	}
	s.vars[name] = expr
	if s.journal != nil {
		s.journal.Info("namespace write",
			zap.String("name", name),
			zap.String("value", expr.String()),
			zap.Bool("overwrote", overwrote),
		)
	}
}

// Lookup returns the binding for name, if any.
func (s *Session) Lookup(name string) (algebra.Expr, bool) {
	e, ok := s.vars[name]
	return e, ok
}

// Names returns the bound names in insertion order.
func (s *Session) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of bindings.
func (s *Session) Len() int { return len(s.vars) }

// The process-current session. Interactive front ends install their
// session here so library calls can reach the user's namespace without
// threading it through every call.
var current *Session

// Install makes s the process-current session.
func Install(s *Session) { current = s }

// Current returns the process-current session, or ErrNoSession if none
// has been installed.
func Current() (*Session, error) {
	if current == nil {
		return nil, ErrNoSession
	}
	return current, nil
}

// Reset clears the process-current session.
func Reset() { current = nil }
