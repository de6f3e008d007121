package signing

import "errors"

// Every operation failure is a rejection of that single operation: state is
// left untouched and the caller decides what to do next. Callers should
// classify with errors.Is.
var (
	// ErrUnauthorized is returned when an operation reserved for the
	// convener is attempted by anyone else.
	ErrUnauthorized = errors.New("caller is not the convener")

	// ErrAlreadyCommitted is returned when a signer that has already signed
	// or delegated attempts a second commitment, or when the convener grants
	// a right to such a signer.
	ErrAlreadyCommitted = errors.New("signer has already committed")

	// ErrAlreadyGranted is returned when the convener grants a signing right
	// to a participant that already holds one.
	ErrAlreadyGranted = errors.New("signing right already granted")

	// ErrNoRightToSign is returned when a participant without any signing
	// weight attempts to sign or delegate.
	ErrNoRightToSign = errors.New("no right to sign")

	// ErrSelfDelegation is returned when a participant delegates to itself.
	ErrSelfDelegation = errors.New("cannot delegate to self")

	// ErrDelegationCycle is returned when following a delegation chain leads
	// back to the caller, or when the chain exceeds the hop ceiling.
	ErrDelegationCycle = errors.New("delegation chain forms a cycle")

	// ErrDelegateCannotSign is returned when the delegation chain terminates
	// at a participant with no signing weight.
	ErrDelegateCannotSign = errors.New("resolved delegate has no right to sign")

	// ErrOutOfRange is returned for a certificate index beyond the store.
	ErrOutOfRange = errors.New("certificate index out of range")
)
