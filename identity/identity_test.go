package identity_test

import (
	"testing"

	"github.com/cmwaters/quill/identity"
	"github.com/stretchr/testify/require"
)

func TestDerivedIdentityIsStable(t *testing.T) {
	p, err := identity.Generate()
	require.NoError(t, err)

	id, err := identity.FromPublicKey(p.PubKey())
	require.NoError(t, err)
	require.Equal(t, p.ID(), id)
	require.NotEmpty(t, id)

	// a fresh key yields a different identity
	q, err := identity.Generate()
	require.NoError(t, err)
	require.NotEqual(t, p.ID(), q.ID())
}

func TestParticipantSigns(t *testing.T) {
	p, err := identity.Generate()
	require.NoError(t, err)

	msg := []byte("sign me")
	sig, err := p.Sign(msg)
	require.NoError(t, err)

	ok, err := p.PubKey().Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)
}
