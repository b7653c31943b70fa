// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package env provides injectable environment variable access.
package env

import "os"

// Reader defines an interface for environment variable access.
// Components take a Reader instead of calling os.Getenv directly so tests
// can supply their own environment.
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader implements Reader over a fixed map. Intended for tests.
type MapReader map[string]string

// Getenv returns the mapped value, or "" when the key is absent.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// GetOr reads key through r, falling back to def when unset or empty.
func GetOr(r Reader, key, def string) string {
	if v := r.Getenv(key); v != "" {
		return v
	}
	return def
}
