package signing

// ID is the opaque identity of a participant. The engine never interprets
// it; the identity package derives IDs from libp2p public keys, and tests
// use plain strings.
type ID string

// Signer is the per-participant record. The zero value is an unregistered
// participant: no weight, no commitment.
//
// A signer commits at most once, by signing directly or by delegating.
// Committed with a non-empty Delegate means the weight was delegated;
// Committed with an empty Delegate means Certificate holds the index the
// signer signed. Exactly one of the two holds for every committed signer.
type Signer struct {
	// Weight is the accumulated signing power: 1 once granted, plus any
	// weight received from delegators that have not yet been forwarded to a
	// certificate.
	Weight uint64 `json:"weight"`

	// Committed is set once the signer has signed or delegated. There is no
	// transition out of it.
	Committed bool `json:"committed"`

	// Delegate is the resolved endpoint of the signer's delegation, set iff
	// the signer committed by delegating.
	Delegate ID `json:"delegate,omitempty"`

	// Certificate is the index the signer signed, valid iff Committed is set
	// and Delegate is empty.
	Certificate int `json:"certificate"`
}

// Registry owns all signer records for a session. Records are materialized
// lazily: reading an unknown identity yields a zero-valued snapshot without
// allocating, only writes create an entry.
//
// Registry is not synchronized. The engine is its single writer and guards
// all access with its own lock.
type Registry struct {
	signers map[ID]*Signer
}

func NewRegistry() *Registry {
	return &Registry{
		signers: make(map[ID]*Signer),
	}
}

// GetOrCreate returns the mutable record for id, materializing a zero-valued
// one on first access.
func (r *Registry) GetOrCreate(id ID) *Signer {
	s, ok := r.signers[id]
	if !ok {
		s = &Signer{}
		r.signers[id] = s
	}
	return s
}

// Signer returns a snapshot of the record for id. Unknown identities read as
// the zero-valued signer.
func (r *Registry) Signer(id ID) Signer {
	if s, ok := r.signers[id]; ok {
		return *s
	}
	return Signer{}
}

// Len returns the number of materialized records.
func (r *Registry) Len() int {
	return len(r.signers)
}
