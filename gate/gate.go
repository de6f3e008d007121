// Package gate authenticates signing-session operations. Callers wrap an
// operation in an Envelope sealed with their private key; the gate verifies
// the signature, derives the caller's identity from the enclosed public key
// and hands the operation to the engine. It is the authentication
// collaborator the engine itself deliberately does not contain.
package gate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"

	"github.com/libp2p/go-libp2p/core/crypto"

	"github.com/cmwaters/quill/identity"
	"github.com/cmwaters/quill/signing"
)

// Op tags the operation an envelope carries.
type Op uint8

const (
	OpGrant Op = iota + 1
	OpDelegate
	OpSign

	// MaxSessionSize indicates the maximum length in bytes of the session
	// namespace. A namespace can be empty thus 0 is accepted.
	MaxSessionSize = math.MaxUint8
	// MaxTargetSize indicates the maximum length in bytes of a target
	// identity.
	MaxTargetSize = math.MaxUint8
)

var (
	ErrMalformedEnvelope = errors.New("malformed envelope")
	ErrBadSignature      = errors.New("envelope signature verification failed")
	ErrUnknownOp         = errors.New("unknown envelope operation")
)

// Envelope is a single signed operation request. PubKey is the caller's
// marshaled public key; the caller identity is derived from it after the
// signature checks out, never taken from the envelope directly.
type Envelope struct {
	Op          Op         `json:"op"`
	Target      signing.ID `json:"target,omitempty"`
	Certificate int        `json:"certificate,omitempty"`
	PubKey      []byte     `json:"pub_key"`
	Signature   []byte     `json:"signature"`
}

// Gate verifies envelopes for one session, identified by its namespace.
type Gate struct {
	session []byte
}

func New(session []byte) *Gate {
	if len(session) > MaxSessionSize {
		panic("session namespace can not be longer than 255 bytes")
	}
	return &Gate{session: session}
}

// SignBytes encodes the information an envelope signature covers.
//
// The format is:
// 1 byte op (also used for versioning)
// 4 bytes certificate index
// up to 255 bytes length prefixed target identity (single byte length)
// up to 255 bytes length prefixed session namespace (single byte length)
//
// Target is empty for sign operations, certificate is zero for the others.
func (g *Gate) SignBytes(op Op, target signing.ID, certificate int) []byte {
	if len(target) > MaxTargetSize {
		panic("target identity can not be longer than 255 bytes")
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte(byte(op))
	certBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(certBytes, uint32(certificate))
	buf.Write(certBytes)
	buf.WriteByte(byte(len(target)))
	buf.WriteString(string(target))
	buf.WriteByte(byte(len(g.session)))
	buf.Write(g.session)
	return buf.Bytes()
}

// Seal signs an operation on behalf of a participant.
func (g *Gate) Seal(p *identity.Participant, op Op, target signing.ID, certificate int) (*Envelope, error) {
	pub, err := crypto.MarshalPublicKey(p.PubKey())
	if err != nil {
		return nil, err
	}
	sig, err := p.Sign(g.SignBytes(op, target, certificate))
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Op:          op,
		Target:      target,
		Certificate: certificate,
		PubKey:      pub,
		Signature:   sig,
	}, nil
}

// Verify checks an envelope's signature against its enclosed public key and
// returns the caller identity derived from that key.
func (g *Gate) Verify(env *Envelope) (signing.ID, error) {
	if env == nil || len(env.PubKey) == 0 || len(env.Signature) == 0 {
		return "", ErrMalformedEnvelope
	}
	// bound the untrusted fields before re-encoding the sign bytes: an
	// oversized target cannot have been sealed, and a certificate index
	// beyond uint32 would alias a smaller one in the encoding
	if len(env.Target) > MaxTargetSize {
		return "", ErrMalformedEnvelope
	}
	if env.Certificate < 0 || uint64(env.Certificate) > math.MaxUint32 {
		return "", ErrMalformedEnvelope
	}
	switch env.Op {
	case OpGrant, OpDelegate, OpSign:
	default:
		return "", ErrUnknownOp
	}

	pub, err := crypto.UnmarshalPublicKey(env.PubKey)
	if err != nil {
		return "", ErrMalformedEnvelope
	}
	ok, err := pub.Verify(g.SignBytes(env.Op, env.Target, env.Certificate), env.Signature)
	if err != nil || !ok {
		return "", ErrBadSignature
	}
	return identity.FromPublicKey(pub)
}

// Apply verifies an envelope and executes its operation against the engine.
func (g *Gate) Apply(env *Envelope, engine *signing.Engine) error {
	caller, err := g.Verify(env)
	if err != nil {
		return err
	}
	switch env.Op {
	case OpGrant:
		return engine.GrantRight(caller, env.Target)
	case OpDelegate:
		return engine.Delegate(caller, env.Target)
	case OpSign:
		return engine.Sign(caller, env.Certificate)
	default:
		return ErrUnknownOp
	}
}
