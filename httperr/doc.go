// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes.

Errors carry their status code through the call stack, so callers can react
to classes of failure without string matching:

	err := httperr.New("broker returned 503", http.StatusServiceUnavailable)

	httperr.Code(err)          // 503
	httperr.IsServerError(err) // true

CodedError supports the standard wrapping pattern; errors.Is and errors.As
see through it to the underlying error.
*/
package httperr
