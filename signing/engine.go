package signing

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Engine is the core struct that runs a weighted delegated-signing session.
// A fixed registry of participants each hold at most one unit of signing
// weight, granted by the convener. A participant spends its weight exactly
// once: either by signing a certificate directly or by delegating the weight
// to another participant, with weight accumulating transitively through
// delegation chains.
//
// The engine is a sequential state machine: every mutating operation runs to
// completion under an exclusive lock, and either applies in full or leaves
// the session untouched. Caller identity is an explicit parameter on every
// operation; authenticating callers is the job of an outer layer such as the
// gate package.
type Engine struct {
	// mtx serializes all mutating operations. Read-only operations take the
	// read side so they observe committed state only.
	mtx sync.RWMutex

	// convener is the privileged identity fixed at construction. Only the
	// convener grants signing rights.
	convener ID

	registry *Registry
	certs    *CertificateStore

	// hopCeiling bounds the delegation-chain walk. Zero means derive the
	// bound from the registry size at resolve time.
	hopCeiling int

	logger zerolog.Logger
}

// New creates a session with the given convener and certificate list. The
// convener starts with one unit of signing weight; all certificates start
// with none.
func New(convener ID, certificateNames []string, opts ...Option) *Engine {
	e := &Engine{
		convener: convener,
		registry: NewRegistry(),
		certs:    NewCertificateStore(certificateNames),
		logger:   zerolog.New(os.Stdout),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.registry.GetOrCreate(convener).Weight = 1
	return e
}

// GrantRight gives target one unit of signing weight. Only the convener may
// grant, a right is granted at most once per participant, and never to a
// participant that has already committed.
func (e *Engine) GrantRight(caller, target ID) error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if caller != e.convener {
		return ErrUnauthorized
	}
	s := e.registry.Signer(target)
	if s.Committed {
		return ErrAlreadyCommitted
	}
	if s.Weight != 0 {
		// also covers granting to the convener a second time
		return ErrAlreadyGranted
	}

	e.registry.GetOrCreate(target).Weight = 1
	e.logger.Debug().Str("target", string(target)).Msg("granted signing right")
	return nil
}

// Delegate commits the caller's weight to another participant. The requested
// target is resolved through any delegations it has made itself; the
// caller's weight then lands on the certificate the resolved delegate signed
// if it has already signed, or is added to the delegate's own weight to be
// forwarded whenever it commits.
func (e *Engine) Delegate(caller, to ID) error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	s := e.registry.Signer(caller)
	if s.Weight == 0 {
		return ErrNoRightToSign
	}
	if s.Committed {
		return ErrAlreadyCommitted
	}
	if to == caller {
		return ErrSelfDelegation
	}

	resolved, err := ResolveDelegate(e.registry, caller, to, e.ceiling())
	if err != nil {
		return err
	}
	delegate := e.registry.Signer(resolved)
	if delegate.Weight == 0 {
		return ErrDelegateCannotSign
	}

	// all preconditions hold, commit. The weight moves first so that the
	// caller's record is only marked committed once nothing can fail.
	if delegate.Committed {
		// A resolved delegate has no outgoing delegation, so committed here
		// means it signed. Its certificate index was bounds-checked when it
		// signed, and again on Restore, so this cannot fail on a well-formed
		// session.
		if err := e.certs.AddWeight(delegate.Certificate, s.Weight); err != nil {
			return err
		}
	} else {
		e.registry.GetOrCreate(resolved).Weight += s.Weight
	}
	rec := e.registry.GetOrCreate(caller)
	rec.Committed = true
	rec.Delegate = resolved

	e.logger.Debug().
		Str("caller", string(caller)).
		Str("delegate", string(resolved)).
		Uint64("weight", rec.Weight).
		Msg("delegated signing weight")
	return nil
}

// Sign commits the caller's accumulated weight to the certificate at index.
func (e *Engine) Sign(caller ID, index int) error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	s := e.registry.Signer(caller)
	if s.Weight == 0 {
		return ErrNoRightToSign
	}
	if s.Committed {
		return ErrAlreadyCommitted
	}
	// bounds are checked before any field is assigned so a rejected sign
	// leaves the signer free to commit elsewhere
	if index < 0 || index >= e.certs.Len() {
		return ErrOutOfRange
	}

	rec := e.registry.GetOrCreate(caller)
	rec.Committed = true
	rec.Certificate = index
	_ = e.certs.AddWeight(index, rec.Weight)

	e.logger.Debug().
		Str("caller", string(caller)).
		Int("certificate", index).
		Uint64("weight", rec.Weight).
		Msg("signed certificate")
	return nil
}

// Convener returns the session's privileged identity.
func (e *Engine) Convener() ID {
	return e.convener
}

// SignerInfo returns a snapshot of the record for id. Unknown identities
// read as the zero-valued signer.
func (e *Engine) SignerInfo(id ID) Signer {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return e.registry.Signer(id)
}

// Certificates returns the number of certificates in the session.
func (e *Engine) Certificates() int {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return e.certs.Len()
}

// CertificateWeight returns the accumulated weight of the certificate at
// index.
func (e *Engine) CertificateWeight(index int) (uint64, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return e.certs.WeightAt(index)
}

// CertificateName returns the name of the certificate at index.
func (e *Engine) CertificateName(index int) (string, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return e.certs.NameAt(index)
}

// OutstandingWeight returns the total weight not yet accumulated on any
// certificate: the sum of weight held by signers that have not committed.
// Together with the certificate weights this always equals the total weight
// ever granted.
func (e *Engine) OutstandingWeight() uint64 {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	var total uint64
	for _, s := range e.registry.signers {
		if !s.Committed {
			total += s.Weight
		}
	}
	return total
}

func (e *Engine) ceiling() int {
	if e.hopCeiling > 0 {
		return e.hopCeiling
	}
	return e.registry.Len()
}
