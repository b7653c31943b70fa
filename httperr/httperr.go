// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types carrying HTTP status codes.
package httperr

import (
	"errors"
	"net/http"
)

// CodedError wraps an error with an HTTP status code.
// The broker client uses it to carry the remote status through the call
// stack; HTTP layers built on this module can reuse it for responses.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code.
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// New creates a new error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// Code extracts the HTTP status code from an error chain.
// If no CodedError is found, it returns http.StatusInternalServerError.
// A nil error maps to http.StatusOK.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return http.StatusInternalServerError
}

// IsClientError reports whether the error carries a 4xx status code.
func IsClientError(err error) bool {
	code := Code(err)
	return code >= 400 && code <= 499
}

// IsServerError reports whether the error carries a 5xx status code, or no
// code at all (unknown failures are assumed to be the server's fault).
func IsServerError(err error) bool {
	code := Code(err)
	return code >= 500 && code <= 599
}
