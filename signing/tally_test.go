package signing_test

import (
	"testing"

	"github.com/cmwaters/quill/signing"
	"github.com/stretchr/testify/require"
)

func TestLeadingCertificate(t *testing.T) {
	store := signing.NewCertificateStore([]string{"A", "B", "C"})
	require.NoError(t, store.AddWeight(0, 5))
	require.NoError(t, store.AddWeight(1, 5))
	require.NoError(t, store.AddWeight(2, 7))
	require.Equal(t, 2, store.Leading())

	store = signing.NewCertificateStore([]string{"A", "B"})
	require.NoError(t, store.AddWeight(0, 5))
	require.NoError(t, store.AddWeight(1, 5))
	// ties keep the earliest index
	require.Equal(t, 0, store.Leading())
}

func TestLeadingCertificateDefaults(t *testing.T) {
	// no weight at all yields index 0
	store := signing.NewCertificateStore([]string{"A", "B"})
	require.Equal(t, 0, store.Leading())

	// so does an empty store, where the name lookup then fails
	engine := signing.New(convener, nil)
	require.Equal(t, 0, engine.LeadingCertificate())
	_, err := engine.LeadingCertificateName()
	require.ErrorIs(t, err, signing.ErrOutOfRange)
}

func TestLeadingCertificateTracksSigning(t *testing.T) {
	engine := newEngine("Milk", "Wheat")
	for _, id := range []signing.ID{"a", "b", "c"} {
		require.NoError(t, engine.GrantRight(convener, id))
	}

	require.NoError(t, engine.Sign("a", 1))
	require.Equal(t, 1, engine.LeadingCertificate())

	// 1 vs 1, the earlier certificate takes the lead
	require.NoError(t, engine.Sign("b", 0))
	require.Equal(t, 0, engine.LeadingCertificate())

	require.NoError(t, engine.Delegate("c", "a"))
	name, err := engine.LeadingCertificateName()
	require.NoError(t, err)
	require.Equal(t, "Wheat", name)
}
