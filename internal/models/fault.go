package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a pipeline failure. Clients surface kinds without
// interpretation; retry and abort policy lives in the orchestrator.
type Kind string

const (
	// KindProfileNotFound means the requested user does not exist in the
	// profile store. Not retryable.
	KindProfileNotFound Kind = "ProfileNotFound"

	// KindUpstreamUnavailable means the profile store could not be reached
	// or timed out. Retryable once.
	KindUpstreamUnavailable Kind = "UpstreamUnavailable"

	// KindUpstreamContractViolation means the profile store returned a body
	// that does not parse as a FinancialProfile. Not retryable.
	KindUpstreamContractViolation Kind = "UpstreamContractViolation"

	// KindProviderUnavailable means the reasoning provider could not be
	// reached or timed out. Retryable once.
	KindProviderUnavailable Kind = "ProviderUnavailable"

	// KindProviderRejected means the reasoning provider returned an explicit
	// error or non-success. Retrying without modification is futile.
	KindProviderRejected Kind = "ProviderRejected"

	// KindProviderResponseTooLarge means the provider's output exceeded the
	// defensive size bound. Not retryable.
	KindProviderResponseTooLarge Kind = "ProviderResponseTooLarge"

	// KindInternal covers unexpected failures with no taxonomy entry.
	KindInternal Kind = "Internal"
)

// Retryable reports whether a failure of this kind may be retried.
func (k Kind) Retryable() bool {
	return k == KindUpstreamUnavailable || k == KindProviderUnavailable
}

// HTTPStatus maps a kind to the status code returned to API callers.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindProfileNotFound:
		return http.StatusNotFound
	case KindUpstreamUnavailable, KindProviderUnavailable, KindProviderRejected:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Fault is a classified pipeline error.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// NewFault creates a classified error. err may be nil.
func NewFault(kind Kind, message string, err error) *Fault {
	return &Fault{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the taxonomy kind from an error chain.
// Unclassified errors report KindInternal.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindInternal
}

// FaultMessage extracts the human-readable message from an error chain,
// falling back to err.Error() for unclassified errors.
func FaultMessage(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
