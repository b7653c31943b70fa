// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmesh/skillmesh-core/ledger"
	"github.com/skillmesh/skillmesh-core/manifest"
)

func TestResolverFunc(t *testing.T) {
	t.Parallel()

	want := &manifest.SkillManifest{Name: "skill-a", Version: "1.0.0"}

	var r ledger.Resolver = ledger.ResolverFunc(
		func(_ context.Context, address string, sequenceNumber uint64) (*manifest.SkillManifest, bool, error) {
			switch {
			case address == "0.0.12345" && sequenceNumber == 1:
				return want, true, nil
			case address == "0.0.666":
				return nil, false, errors.New("ledger unreachable")
			default:
				return nil, false, nil
			}
		})

	got, found, err := r.Resolve(context.Background(), "0.0.12345", 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)

	got, found, err = r.Resolve(context.Background(), "0.0.99999", 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)

	_, _, err = r.Resolve(context.Background(), "0.0.666", 1)
	assert.Error(t, err)
}
