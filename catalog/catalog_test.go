// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmesh/skillmesh-core/manifest"
)

// testManifest returns a valid manifest for the given name and version.
func testManifest(name, version string) *manifest.SkillManifest {
	return &manifest.SkillManifest{
		Name:        name,
		Version:     version,
		Description: "d",
		License:     "MIT",
		Tags:        []string{},
		Skills: []manifest.SkillDefinition{
			{
				Name:         "x",
				Description:  "d",
				Category:     "c",
				Tags:         []string{},
				InputSchema:  map[string]any{},
				OutputSchema: map[string]any{},
			},
		},
	}
}

func TestUpsert_StoresRecord(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cat := New(WithClock(func() time.Time { return now }))

	record, err := cat.Upsert(testManifest("skill-a", "1.0.0"), "0.0.42")
	require.NoError(t, err)

	assert.Equal(t, "skill-a", record.Manifest.Name)
	assert.Equal(t, "0.0.42", record.Publisher)
	assert.Equal(t, manifest.StatusPublished, record.Status)
	assert.Equal(t, now, record.PublishedAt)
	assert.Regexp(t, `^0\.0\.[1-9]\d*$`, record.TopicID)
}

func TestUpsert_InvalidManifest(t *testing.T) {
	t.Parallel()

	cat := New()
	_, err := cat.Upsert(&manifest.SkillManifest{}, "0.0.42")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Invalid skill manifest")

	var invalid *InvalidManifestError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Violations, "Missing name")
	assert.Contains(t, invalid.Violations, "Missing description")
	assert.Contains(t, invalid.Violations, "Must have at least one skill definition")

	// Nothing was written.
	assert.Zero(t, cat.Count())
}

func TestUpsert_IdempotentAddressing(t *testing.T) {
	t.Parallel()

	cat := New()

	// Publish the same (name, version) twice, then a second version.
	first, err := cat.Upsert(testManifest("skill-a", "1.0.0"), "0.0.42")
	require.NoError(t, err)
	second, err := cat.Upsert(testManifest("skill-a", "1.0.0"), "0.0.42")
	require.NoError(t, err)
	upgraded, err := cat.Upsert(testManifest("skill-a", "2.0.0"), "0.0.42")
	require.NoError(t, err)

	assert.Equal(t, first.TopicID, second.TopicID)
	assert.NotEqual(t, first.TopicID, upgraded.TopicID)
	assert.Equal(t, 2, cat.Count())
}

func TestUpsert_DoesNotShareManifestWithCaller(t *testing.T) {
	t.Parallel()

	cat := New()
	m := testManifest("skill-a", "1.0.0")

	record, err := cat.Upsert(m, "0.0.42")
	require.NoError(t, err)

	// Caller keeps mutating its manifest; the stored record must not move.
	m.Description = "mutated"
	m.Skills[0].Name = "mutated"

	assert.Equal(t, "d", record.Manifest.Description)
	assert.Equal(t, "x", record.Manifest.Skills[0].Name)
}

func TestGetByAddress(t *testing.T) {
	t.Parallel()

	cat := New()
	record, err := cat.Upsert(testManifest("skill-a", "1.0.0"), "0.0.42")
	require.NoError(t, err)

	got, ok := cat.GetByAddress(record.TopicID)
	require.True(t, ok)
	assert.Equal(t, record, got)

	// Well-formed but unpublished addresses are absent, not errors.
	_, ok = cat.GetByAddress("0.0.999999999")
	assert.False(t, ok)

	_, ok = cat.GetByAddress("")
	assert.False(t, ok)
}

func TestListAll_InsertionOrder(t *testing.T) {
	t.Parallel()

	cat := New()
	var want []string
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("skill-%d", i)
		record, err := cat.Upsert(testManifest(name, "1.0.0"), "0.0.42")
		require.NoError(t, err)
		want = append(want, record.TopicID)
	}

	// Re-publishing an early entry must not move it.
	_, err := cat.Upsert(testManifest("skill-1", "1.0.0"), "0.0.42")
	require.NoError(t, err)

	var got []string
	for _, record := range cat.ListAll() {
		got = append(got, record.TopicID)
	}
	assert.Equal(t, want, got)

	// Stable across repeated calls with no intervening writes.
	assert.Equal(t, cat.ListAll(), cat.ListAll())
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cat := New()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				// Half the workers hammer the same address, the rest
				// write distinct ones and read concurrently.
				if w%2 == 0 {
					_, err := cat.Upsert(testManifest("shared", "1.0.0"), "0.0.42")
					assert.NoError(t, err)
				} else {
					_, err := cat.Upsert(testManifest(fmt.Sprintf("w%d-i%d", w, i), "1.0.0"), "0.0.42")
					assert.NoError(t, err)
				}
				for _, record := range cat.ListAll() {
					// A torn read would surface as an inconsistent record.
					assert.NotEmpty(t, record.TopicID)
					assert.Equal(t, manifest.StatusPublished, record.Status)
				}
			}
		}(w)
	}
	wg.Wait()

	// One shared address plus the distinct ones.
	assert.Equal(t, 1+(workers/2)*perWorker, cat.Count())
}

func TestInvalidManifestError_Unwrapping(t *testing.T) {
	t.Parallel()

	err := error(&InvalidManifestError{Violations: []string{"Missing name"}})

	var invalid *InvalidManifestError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"Missing name"}, invalid.Violations)
}
