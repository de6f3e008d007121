package signing_test

import (
	"fmt"
	"testing"

	"github.com/cmwaters/quill/signing"
	"github.com/stretchr/testify/require"
)

func TestResolveNonDelegatingTarget(t *testing.T) {
	reg := signing.NewRegistry()
	reg.GetOrCreate("a").Weight = 1

	resolved, err := signing.ResolveDelegate(reg, "x", "a", reg.Len())
	require.NoError(t, err)
	require.Equal(t, signing.ID("a"), resolved)

	// an identity the registry has never seen still resolves, the engine
	// decides whether it may sign
	resolved, err = signing.ResolveDelegate(reg, "x", "ghost", reg.Len())
	require.NoError(t, err)
	require.Equal(t, signing.ID("ghost"), resolved)
}

func TestResolveChains(t *testing.T) {
	for _, length := range []int{1, 2, 5, 20} {
		t.Run(fmt.Sprintf("%d", length), func(t *testing.T) {
			reg := signing.NewRegistry()
			for i := 0; i < length; i++ {
				reg.GetOrCreate(chainID(i)).Delegate = chainID(i + 1)
			}
			reg.GetOrCreate(chainID(length)).Weight = 1

			resolved, err := signing.ResolveDelegate(reg, "x", chainID(0), reg.Len())
			require.NoError(t, err)
			require.Equal(t, chainID(length), resolved)
		})
	}
}

func TestResolveRejectsChainBackToCaller(t *testing.T) {
	reg := signing.NewRegistry()
	reg.GetOrCreate("a").Delegate = "b"
	reg.GetOrCreate("b").Delegate = "x"

	// the walk reaches the original caller after two hops
	_, err := signing.ResolveDelegate(reg, "x", "a", reg.Len())
	require.ErrorIs(t, err, signing.ErrDelegationCycle)

	// the caller itself as the requested target is caught before any hop
	_, err = signing.ResolveDelegate(reg, "x", "x", reg.Len())
	require.ErrorIs(t, err, signing.ErrDelegationCycle)
}

func TestResolveHopCeiling(t *testing.T) {
	// a cycle that never revisits the caller is only caught by the ceiling.
	// The engine never records such a registry, the ceiling guards against
	// state produced elsewhere.
	reg := signing.NewRegistry()
	reg.GetOrCreate("a").Delegate = "b"
	reg.GetOrCreate("b").Delegate = "c"
	reg.GetOrCreate("c").Delegate = "a"

	_, err := signing.ResolveDelegate(reg, "x", "a", reg.Len())
	require.ErrorIs(t, err, signing.ErrDelegationCycle)

	// a well formed chain exactly at the ceiling still resolves
	reg = signing.NewRegistry()
	reg.GetOrCreate("a").Delegate = "b"
	reg.GetOrCreate("b").Delegate = "c"
	reg.GetOrCreate("c").Weight = 1
	resolved, err := signing.ResolveDelegate(reg, "x", "a", reg.Len())
	require.NoError(t, err)
	require.Equal(t, signing.ID("c"), resolved)
}

func chainID(i int) signing.ID {
	return signing.ID(fmt.Sprintf("signer-%d", i))
}
