package signing

// ResolveDelegate walks the delegation chain starting at requested and
// returns its final non-delegating endpoint. The walk fails with
// ErrDelegationCycle if any identity on the chain equals start (the original
// caller), or if more than hopCeiling delegation links are followed.
//
// A registry built through the engine is acyclic by construction, since
// every delegation target is resolved before being recorded, so a chain can
// never exceed the number of known participants. The ceiling turns that
// assumption into a hard bound.
//
// The resolver is pure: it never mutates the registry and leaves checking
// the endpoint's right to sign to the engine.
func ResolveDelegate(reg *Registry, start, requested ID, hopCeiling int) (ID, error) {
	current := requested
	for hops := 0; hops <= hopCeiling; hops++ {
		// the cycle check runs once per hop, before following further
		if current == start {
			return "", ErrDelegationCycle
		}
		next := reg.Signer(current).Delegate
		if next == "" {
			return current, nil
		}
		current = next
	}
	return "", ErrDelegationCycle
}
