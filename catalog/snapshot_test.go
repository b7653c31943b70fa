// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := New(WithClock(func() time.Time { return now }))

	for _, name := range []string{"skill-a", "skill-b", "skill-c"} {
		_, err := src.Upsert(testManifest(name, "1.0.0"), "0.0.42")
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, src.WriteSnapshot(&buf))

	dst := New()
	require.NoError(t, dst.ReadSnapshot(&buf))

	require.Equal(t, src.Count(), dst.Count())

	want := src.ListAll()
	got := dst.ListAll()
	for i := range want {
		assert.Equal(t, want[i].TopicID, got[i].TopicID)
		assert.Equal(t, want[i].Manifest, got[i].Manifest)
		assert.Equal(t, want[i].Publisher, got[i].Publisher)
		// Restoring must not re-stamp publish times.
		assert.Equal(t, now, got[i].PublishedAt)
	}
}

func TestReadSnapshot_RejectsTamperedTopicID(t *testing.T) {
	t.Parallel()

	src := New()
	record, err := src.Upsert(testManifest("skill-a", "1.0.0"), "0.0.42")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.WriteSnapshot(&buf))

	tampered := strings.Replace(buf.String(), record.TopicID, "0.0.1234", 1)

	dst := New()
	err = dst.ReadSnapshot(strings.NewReader(tampered))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match derived address")
	assert.Zero(t, dst.Count())
}

func TestReadSnapshot_RejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			data:    "{not json",
			wantErr: "reading catalog snapshot",
		},
		{
			name:    "unsupported version",
			data:    `{"version": 99, "skills": []}`,
			wantErr: "unsupported catalog snapshot version 99",
		},
		{
			name:    "null entry",
			data:    `{"version": 1, "skills": [null]}`,
			wantErr: "entry 0 is null",
		},
		{
			name:    "invalid manifest",
			data:    `{"version": 1, "skills": [{"manifest": {"name": ""}, "topic_id": "0.0.5"}]}`,
			wantErr: "Invalid skill manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat := New()
			err := cat.ReadSnapshot(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSnapshotPath(t *testing.T) {
	t.Parallel()

	got := SnapshotPath(filepath.Join("home", "data"))
	assert.Equal(t, filepath.Join("home", "data", "skillmesh", "catalog.json"), got)

	assert.True(t, strings.HasSuffix(DefaultSnapshotPath(), filepath.Join("skillmesh", "catalog.json")))
}
