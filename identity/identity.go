// Package identity derives participant identities for signing sessions from
// libp2p keypairs. The signing engine treats identities as opaque; this
// package pins them to public keys so an outer layer can authenticate
// callers.
package identity

import (
	"crypto/rand"

	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/cmwaters/quill/signing"
)

// FromPublicKey derives the participant identity for a public key. The
// derivation is the libp2p peer ID, so the same key always maps to the same
// identity.
func FromPublicKey(pub crypto.PubKey) (signing.ID, error) {
	pid, err := peer.IDFromPublicKey(pub)
	if err != nil {
		return "", err
	}
	return signing.ID(pid), nil
}

// Participant couples a private key with its derived identity and signs
// operation envelopes on its behalf.
type Participant struct {
	priv crypto.PrivKey
	id   signing.ID
}

// NewParticipant wraps an existing private key.
func NewParticipant(priv crypto.PrivKey) (*Participant, error) {
	id, err := FromPublicKey(priv.GetPublic())
	if err != nil {
		return nil, err
	}
	return &Participant{priv: priv, id: id}, nil
}

// Generate creates a participant with a fresh ed25519 key.
func Generate() (*Participant, error) {
	priv, _, err := crypto.GenerateEd25519Key(rand.Reader)
	if err != nil {
		return nil, err
	}
	return NewParticipant(priv)
}

// ID returns the participant's derived identity.
func (p *Participant) ID() signing.ID {
	return p.id
}

// PubKey returns the participant's public key.
func (p *Participant) PubKey() crypto.PubKey {
	return p.priv.GetPublic()
}

// Sign signs msg with the participant's private key.
func (p *Participant) Sign(msg []byte) ([]byte, error) {
	return p.priv.Sign(msg)
}
