// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{
			name: "boolean expression",
			expr: `skill.name == "pdf-finder"`,
		},
		{
			name: "membership test",
			expr: `"research" in skill.categories`,
		},
		{
			name:    "syntax error",
			expr:    `skill.name ==`,
			wantErr: "compiling filter",
		},
		{
			name:    "non-boolean result",
			expr:    `skill.name`,
			wantErr: "must evaluate to a boolean",
		},
		{
			name:    "oversized expression",
			expr:    `skill.name == "` + strings.Repeat("a", maxFilterLength) + `"`,
			wantErr: "exceeds maximum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, err := NewFilter(tt.expr)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expr, filter.Source())
		})
	}
}

func TestDiscoverFilter(t *testing.T) {
	t.Parallel()

	engine := NewEngine(seedCatalog(t))

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{
			name: "exact name",
			expr: `skill.name == "summarizer"`,
			want: []string{"summarizer"},
		},
		{
			name: "version prefix",
			expr: `skill.version.startsWith("1.")`,
			want: []string{"pdf-finder", "translator"},
		},
		{
			name: "tag membership",
			expr: `"nlp" in skill.tags`,
			want: []string{"summarizer", "translator"},
		},
		{
			name: "category and skill name",
			expr: `"text" in skill.categories && "summarize" in skill.skill_names`,
			want: []string{"summarizer"},
		},
		{
			name: "matches nothing",
			expr: `skill.license == "GPL-3.0"`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, err := NewFilter(tt.expr)
			require.NoError(t, err)

			result, err := engine.DiscoverFilter(filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(result))
			assert.Equal(t, tt.expr, result.Query)
		})
	}
}

func TestFilter_Matches_EvaluationError(t *testing.T) {
	t.Parallel()

	// The environment declares skill as map[string]dyn, so a missing key is
	// only caught at evaluation time.
	filter, err := NewFilter(`skill.no_such_field == "x"`)
	require.NoError(t, err)

	records := seedCatalog(t).ListAll()
	require.NotEmpty(t, records)

	_, err = filter.Matches(records[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluating filter")
}
