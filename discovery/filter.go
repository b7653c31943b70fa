// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/skillmesh/skillmesh-core/manifest"
)

const (
	// maxFilterLength caps filter expression size. Discovery filters come
	// from untrusted callers; an unbounded expression is a DoS vector.
	maxFilterLength = 4096

	// filterCostLimit caps the runtime cost of evaluating one filter
	// against one record.
	filterCostLimit = 500000
)

// filterEnv is the lazily-built CEL environment shared by all filters.
var filterEnv = struct {
	once sync.Once
	env  *cel.Env
	err  error
}{}

// Filter is a compiled CEL expression evaluated per catalog record.
// The expression sees a single variable, "skill", a map with the keys
// name, version, author, license, tags, categories and skill_names.
// It must evaluate to a boolean.
//
//	f, err := discovery.NewFilter(`"research" in skill.categories && skill.version.startsWith("2.")`)
type Filter struct {
	source  string
	program cel.Program
}

// NewFilter compiles a CEL filter expression.
func NewFilter(expr string) (*Filter, error) {
	if len(expr) > maxFilterLength {
		return nil, fmt.Errorf("filter expression length %d exceeds maximum of %d", len(expr), maxFilterLength)
	}

	env, err := getFilterEnv()
	if err != nil {
		return nil, fmt.Errorf("building filter environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter %q must evaluate to a boolean, got %s", expr, ast.OutputType())
	}

	program, err := env.Program(ast, cel.CostLimit(filterCostLimit))
	if err != nil {
		return nil, fmt.Errorf("creating filter program for %q: %w", expr, err)
	}

	return &Filter{source: expr, program: program}, nil
}

// Source returns the original filter expression.
func (f *Filter) Source() string {
	return f.source
}

// Matches evaluates the filter against one record.
func (f *Filter) Matches(record *manifest.PublishedSkill) (bool, error) {
	out, _, err := f.program.Eval(map[string]any{
		"skill": recordContext(record),
	})
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.source, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, want bool", f.source, out.Value())
	}
	return matched, nil
}

// DiscoverFilter returns every published skill matching the compiled filter,
// in catalog insertion order. The Query field of the result echoes the
// filter source.
func (e *Engine) DiscoverFilter(filter *Filter) (*Result, error) {
	matches := make([]*manifest.PublishedSkill, 0)
	for _, record := range e.catalog.ListAll() {
		matched, err := filter.Matches(record)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, record)
		}
	}

	return &Result{
		Skills: matches,
		Total:  len(matches),
		Query:  filter.Source(),
	}, nil
}

// getFilterEnv returns the shared CEL environment, creating it on first use.
func getFilterEnv() (*cel.Env, error) {
	filterEnv.once.Do(func() {
		filterEnv.env, filterEnv.err = cel.NewEnv(
			cel.Variable("skill", cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return filterEnv.env, filterEnv.err
}

// recordContext projects a catalog record into the flat map the filter
// environment exposes.
func recordContext(record *manifest.PublishedSkill) map[string]any {
	m := &record.Manifest

	categories := make([]string, 0, len(m.Skills))
	skillNames := make([]string, 0, len(m.Skills))
	for i := range m.Skills {
		categories = append(categories, m.Skills[i].Category)
		skillNames = append(skillNames, m.Skills[i].Name)
	}

	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return map[string]any{
		"name":        m.Name,
		"version":     m.Version,
		"author":      m.Author,
		"license":     m.License,
		"tags":        tags,
		"categories":  categories,
		"skill_names": skillNames,
	}
}
