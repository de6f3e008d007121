package signing

import "fmt"

// Snapshot is the persisted-state layout of a session: the registry as a
// sparse map keyed by identity and the certificate store as a dense ordered
// list. It marshals cleanly with encoding/json for any storage collaborator;
// the engine itself never touches disk.
type Snapshot struct {
	Convener     ID            `json:"convener"`
	Signers      map[ID]Signer `json:"signers"`
	Certificates []Certificate `json:"certificates"`
}

// Snapshot exports a consistent copy of the session state.
func (e *Engine) Snapshot() Snapshot {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	signers := make(map[ID]Signer, len(e.registry.signers))
	for id, s := range e.registry.signers {
		signers[id] = *s
	}
	certs := make([]Certificate, len(e.certs.certs))
	copy(certs, e.certs.certs)

	return Snapshot{
		Convener:     e.convener,
		Signers:      signers,
		Certificates: certs,
	}
}

// Restore builds a session from a snapshot, validating that every record is
// one the engine could have produced.
func Restore(snap Snapshot, opts ...Option) (*Engine, error) {
	e := New(snap.Convener, nil, opts...)
	e.certs = &CertificateStore{certs: make([]Certificate, len(snap.Certificates))}
	copy(e.certs.certs, snap.Certificates)

	for id, s := range snap.Signers {
		if !s.Committed && s.Delegate != "" {
			return nil, fmt.Errorf("signer %s delegated without committing", id)
		}
		if s.Committed && s.Delegate == "" {
			if s.Certificate < 0 || s.Certificate >= len(snap.Certificates) {
				return nil, fmt.Errorf("signer %s signed certificate %d: %w", id, s.Certificate, ErrOutOfRange)
			}
		}
		rec := e.registry.GetOrCreate(id)
		*rec = s
	}
	return e, nil
}
