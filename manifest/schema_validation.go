// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/skill-manifest.schema.json
var embeddedSchemaFS embed.FS

const manifestSchemaFile = "data/skill-manifest.schema.json"

// ValidateSchema validates the manifest against the embedded JSON schema.
// This complements Validate: the rule validator produces the stable,
// caller-facing violation list, while the schema catches shape problems
// (wrong types, unknown fields) at the wire boundary.
func (m *SkillManifest) ValidateSchema() error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return ValidateManifestBytes(data)
}

// ValidateManifestBytes validates raw manifest JSON bytes against the
// embedded skill-manifest schema.
func ValidateManifestBytes(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(manifestSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", manifestSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("manifest schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("manifest schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
