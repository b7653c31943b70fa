// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package converters translates between skillmesh manifest types and the
// MCP tool representation used by agent runtimes.
package converters

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/skillmesh/skillmesh-core/manifest"
)

// SkillToTool converts one skill definition into an MCP tool.
// The skill's input schema is carried verbatim as the tool's raw input
// schema; output schemas have no MCP equivalent and are dropped.
func SkillToTool(s *manifest.SkillDefinition) (mcp.Tool, error) {
	if s == nil {
		return mcp.Tool{}, fmt.Errorf("skill definition cannot be nil")
	}
	if s.Name == "" {
		return mcp.Tool{}, fmt.Errorf("skill definition has no name")
	}

	tool := mcp.Tool{
		Name:        s.Name,
		Description: s.Description,
	}

	if len(s.InputSchema) > 0 {
		raw, err := json.Marshal(s.InputSchema)
		if err != nil {
			return mcp.Tool{}, fmt.Errorf("encoding input schema for skill %s: %w", s.Name, err)
		}
		tool.RawInputSchema = raw
	}

	return tool, nil
}

// ManifestToTools converts every skill in the manifest into MCP tools, in
// manifest order. Tool names are qualified as "<manifest>/<skill>" so that
// bundles from different publishers can coexist in one tool list.
func ManifestToTools(m *manifest.SkillManifest) ([]mcp.Tool, error) {
	if m == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	tools := make([]mcp.Tool, 0, len(m.Skills))
	for i := range m.Skills {
		tool, err := SkillToTool(&m.Skills[i])
		if err != nil {
			return nil, fmt.Errorf("skills[%d]: %w", i, err)
		}
		if m.Name != "" {
			tool.Name = m.Name + "/" + tool.Name
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// ToolToSkill converts an MCP tool into a skill definition under the given
// category. The tool's input schema is decoded into the skill's free-form
// input schema; the output schema is left as an empty object since MCP tools
// do not declare one.
func ToolToSkill(tool *mcp.Tool, category string) (*manifest.SkillDefinition, error) {
	if tool == nil {
		return nil, fmt.Errorf("tool cannot be nil")
	}
	if tool.Name == "" {
		return nil, fmt.Errorf("tool has no name")
	}

	def := &manifest.SkillDefinition{
		Name:         tool.Name,
		Description:  tool.Description,
		Category:     category,
		Tags:         []string{},
		InputSchema:  map[string]any{},
		OutputSchema: map[string]any{},
	}

	if len(tool.RawInputSchema) > 0 {
		if err := json.Unmarshal(tool.RawInputSchema, &def.InputSchema); err != nil {
			return nil, fmt.Errorf("decoding input schema for tool %s: %w", tool.Name, err)
		}
	} else {
		data, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("encoding input schema for tool %s: %w", tool.Name, err)
		}
		if err := json.Unmarshal(data, &def.InputSchema); err != nil {
			return nil, fmt.Errorf("decoding input schema for tool %s: %w", tool.Name, err)
		}
	}

	return def, nil
}
