package entities

import "errors"

// Error taxonomy for the core. Callers classify failures with
// errors.Is against these sentinels; adapters wrap them with detail.
var (
	// ErrInvalidParameter signals a bad strategy argument (e.g. topK < 1).
	// Local and recoverable - the call is rejected, nothing else changes.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownVariant signals a runtime switch to a strategy or
	// provider name that does not exist. The active selection is kept.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrProviderUnavailable signals a generation backend that cannot be
	// reached or is not configured (missing API key, connection refused).
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderError signals a generation backend that was reached but
	// failed to produce an answer. Affects only the one request.
	ErrProviderError = errors.New("provider error")
)
