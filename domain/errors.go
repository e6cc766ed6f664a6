package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures at the provider boundary
type ErrorKind string

const (
	// KindValidation means the caller sent an unusable request
	KindValidation ErrorKind = "validation"
	// KindUnavailable means the provider was never initialized
	KindUnavailable ErrorKind = "unavailable"
	// KindProvider means the provider call itself failed
	KindProvider ErrorKind = "provider"
)

// Error is the uniform failure type returned by services and adapters
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports a request the service refuses to forward
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewUnavailableError reports a provider that could not be constructed
func NewUnavailableError(format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...)}
}

// NewProviderError wraps a failed provider call. The message is the
// underlying error's text so callers see what the provider said.
func NewProviderError(err error) *Error {
	return &Error{Kind: KindProvider, Message: err.Error(), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// AsProviderError leaves classified errors alone and wraps everything
// else as a provider failure.
func AsProviderError(err error) error {
	if err == nil || KindOf(err) != "" {
		return err
	}
	return NewProviderError(err)
}
