// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader(t *testing.T) {
	t.Setenv("SKILLMESH_TEST_VAR", "value")

	r := &OSReader{}
	assert.Equal(t, "value", r.Getenv("SKILLMESH_TEST_VAR"))
	assert.Empty(t, r.Getenv("SKILLMESH_TEST_VAR_UNSET"))
}

func TestMapReader(t *testing.T) {
	t.Parallel()

	r := MapReader{"KEY": "value"}
	assert.Equal(t, "value", r.Getenv("KEY"))
	assert.Empty(t, r.Getenv("OTHER"))
}

func TestGetOr(t *testing.T) {
	t.Parallel()

	r := MapReader{"SET": "value", "EMPTY": ""}
	assert.Equal(t, "value", GetOr(r, "SET", "fallback"))
	assert.Equal(t, "fallback", GetOr(r, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetOr(r, "UNSET", "fallback"))
}
