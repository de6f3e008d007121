// Package quill implements a weighted delegated-signing session: a convener
// grants participants one unit of signing weight each, participants either
// sign a certificate directly or delegate their weight to another
// participant, and a tally reports the certificate holding the most weight.
package quill

import (
	"github.com/cmwaters/quill/gate"
	"github.com/cmwaters/quill/signing"
)

// Session couples a signing engine with the gate that authenticates its
// callers. Participants seal operations with their keys and submit the
// envelopes here; read-only queries go straight to the engine.
type Session struct {
	gate   *gate.Gate
	engine *signing.Engine
}

// New creates a delegated-signing session. The namespace scopes envelope
// signatures to this session, the convener is the only identity allowed to
// grant signing rights, and the certificate list is fixed for the session's
// lifetime.
func New(namespace []byte, convener signing.ID, certificateNames []string, opts ...signing.Option) *Session {
	return &Session{
		gate:   gate.New(namespace),
		engine: signing.New(convener, certificateNames, opts...),
	}
}

// Submit verifies an envelope and applies its operation.
func (s *Session) Submit(env *gate.Envelope) error {
	return s.gate.Apply(env, s.engine)
}

// Gate returns the session's envelope gate, for sealing operations.
func (s *Session) Gate() *gate.Gate {
	return s.gate
}

// Engine exposes the underlying engine for read-only queries and for
// collaborators that authenticate callers themselves.
func (s *Session) Engine() *signing.Engine {
	return s.engine
}
