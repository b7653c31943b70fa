// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"regexp"
)

// semverPattern matches MAJOR.MINOR.PATCH with optional pre-release and
// build metadata, per semver.org 2.0.0.
var semverPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// ValidationResult is the outcome of validating a candidate manifest.
// Either Valid is true and Errors is empty, or Valid is false and Errors
// carries every violated rule.
type ValidationResult struct {
	// Valid reports whether the manifest satisfies all rules.
	Valid bool `json:"valid"`
	// Errors lists every violation, in rule order. Never nil.
	Errors []string `json:"errors"`
}

// IsValidSemver reports whether version satisfies semantic-version syntax.
func IsValidSemver(version string) bool {
	return semverPattern.MatchString(version)
}

// Validate checks a candidate manifest for structural and semantic
// correctness. All rules are evaluated independently and every violation is
// collected; validation never short-circuits and never fails with an error.
//
// The result is deterministic: identical input always yields the same error
// set in the same order. Manifest-level rules come first, then per-skill
// errors in ascending index order.
func Validate(m *SkillManifest) ValidationResult {
	errs := make([]string, 0)

	if m == nil {
		m = &SkillManifest{}
	}

	if m.Name == "" {
		errs = append(errs, "Missing name")
	}
	if m.Description == "" {
		errs = append(errs, "Missing description")
	}
	if len(m.Skills) == 0 {
		errs = append(errs, "Must have at least one skill definition")
	}
	if !IsValidSemver(m.Version) {
		errs = append(errs, fmt.Sprintf("Version %q is not valid semver (MAJOR.MINOR.PATCH)", m.Version))
	}

	for i := range m.Skills {
		errs = append(errs, validateSkill(i, &m.Skills[i])...)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// validateSkill checks one skill definition, prefixing every violation with
// its position in the manifest.
func validateSkill(index int, s *SkillDefinition) []string {
	var errs []string

	if s.Name == "" {
		errs = append(errs, fmt.Sprintf("skills[%d]: missing name", index))
	}
	if s.Description == "" {
		errs = append(errs, fmt.Sprintf("skills[%d]: missing description", index))
	}
	if s.Category == "" {
		errs = append(errs, fmt.Sprintf("skills[%d]: missing category", index))
	}
	// An empty object is an acceptable schema; only an absent or null
	// schema is a violation. Decoded JSON "{}" yields a non-nil map.
	if s.InputSchema == nil {
		errs = append(errs, fmt.Sprintf("skills[%d]: missing input_schema", index))
	}
	if s.OutputSchema == nil {
		errs = append(errs, fmt.Sprintf("skills[%d]: missing output_schema", index))
	}

	return errs
}
