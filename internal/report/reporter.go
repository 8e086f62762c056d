// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders extracted declarations into a grouped markdown
// document and decides whether an existing report needs rewriting.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

// Reporter generates markdown reports from extracted declarations.
type Reporter struct {
	briefDocstring bool
}

// NewReporter creates a reporter. When briefDocstring is true only the
// first non-blank line of each docstring is rendered, as a blockquote.
func NewReporter(briefDocstring bool) *Reporter {
	return &Reporter{briefDocstring: briefDocstring}
}

// entry is one renderable item: exactly one of fn or dc is set.
type entry struct {
	name string
	fn   *types.FunctionInfo
	dc   *types.DataclassInfo
}

// Generate renders the complete markdown report. The description, when
// non-empty, is inserted between the title and the totals line so that
// change detection ignores it.
func (r *Reporter) Generate(functions []types.FunctionInfo, dataclasses []types.DataclassInfo, description string) string {
	var lines []string

	lines = append(lines, "# Python Functions Report", "")

	if description != "" {
		lines = append(lines, "## Description", "", description, "", "---", "")
	}

	lines = append(lines, fmt.Sprintf("Total functions found: **%d**", len(functions)))
	if len(dataclasses) > 0 {
		lines = append(lines, "", fmt.Sprintf("Total dataclasses found: **%d**", len(dataclasses)))
	}
	lines = append(lines, "", "---", "")

	grouped := groupByDirectory(functions, dataclasses)

	dirs := make([]string, 0, len(grouped))
	for dir := range grouped {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	// Table of contents: each directory link with its members nested under it.
	lines = append(lines, "## Table of Contents", "")
	for _, dir := range dirs {
		lines = append(lines, fmt.Sprintf("- [%s](#directory-%s)", displayDirectory(dir), directoryAnchor(dir)))
		for _, item := range grouped[dir] {
			lines = append(lines, fmt.Sprintf("  - [%s](#%s)", item.name, strings.ToLower(item.name)))
		}
	}
	lines = append(lines, "", "---", "")

	for _, dir := range dirs {
		items := grouped[dir]

		lines = append(lines, fmt.Sprintf("## Directory: `%s`", displayDirectory(dir)), "")

		funcCount, dcCount := 0, 0
		for _, item := range items {
			if item.fn != nil {
				funcCount++
			} else {
				dcCount++
			}
		}
		lines = append(lines, fmt.Sprintf("Functions in this directory: **%d**", funcCount))
		if dcCount > 0 {
			lines = append(lines, "", fmt.Sprintf("Dataclasses in this directory: **%d**", dcCount))
		}
		lines = append(lines, "")

		for _, item := range items {
			if item.fn != nil {
				lines = append(lines, r.formatFunctionSection(item.fn))
			} else {
				lines = append(lines, r.formatDataclassSection(item.dc))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// groupByDirectory partitions all items by directory and sorts each
// group's members by name, ties keeping the input order (functions first,
// then dataclasses).
func groupByDirectory(functions []types.FunctionInfo, dataclasses []types.DataclassInfo) map[string][]entry {
	grouped := make(map[string][]entry)
	for i := range functions {
		fn := &functions[i]
		grouped[fn.Directory] = append(grouped[fn.Directory], entry{name: fn.Name, fn: fn})
	}
	for i := range dataclasses {
		dc := &dataclasses[i]
		grouped[dc.Directory] = append(grouped[dc.Directory], entry{name: dc.Name, dc: dc})
	}

	for dir := range grouped {
		items := grouped[dir]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].name < items[j].name
		})
	}
	return grouped
}

// displayDirectory maps the root grouping key "." to its display form.
func displayDirectory(dir string) string {
	if dir == "." {
		return "(root)"
	}
	return dir
}

// directoryAnchor builds the TOC anchor for a directory header.
func directoryAnchor(dir string) string {
	anchor := strings.ReplaceAll(dir, "/", "")
	return strings.ReplaceAll(anchor, ".", "")
}

// formatFunctionSection formats a single function as a markdown block.
func (r *Reporter) formatFunctionSection(fn *types.FunctionInfo) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("### `%s`", fn.Name), "")
	lines = append(lines, fmt.Sprintf("**File:** `%s:%d`", fn.FilePath, fn.LineNumber), "")

	lines = append(lines, "**Signature:**", "```python", fn.Signature, "```", "")

	if len(fn.Decorators) > 0 {
		lines = append(lines, "**Decorators:**")
		for _, dec := range fn.Decorators {
			lines = append(lines, fmt.Sprintf("- `@%s`", dec))
		}
		lines = append(lines, "")
	}

	if len(fn.Arguments) > 0 {
		lines = append(lines, "**Arguments:**")
		for _, arg := range fn.Arguments {
			lines = append(lines, fmt.Sprintf("- `%s`", arg))
		}
		lines = append(lines, "")
	}

	if fn.ReturnAnnotation != "" {
		lines = append(lines, fmt.Sprintf("**Returns:** `%s`", fn.ReturnAnnotation), "")
	}

	if fn.IsAsync {
		lines = append(lines, "**Type:** Async function", "")
	}

	lines = append(lines, r.formatDocumentation(fn.Docstring)...)
	lines = append(lines, "---", "")

	return strings.Join(lines, "\n")
}

// formatDataclassSection formats a single dataclass as a markdown block.
func (r *Reporter) formatDataclassSection(dc *types.DataclassInfo) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("### `%s`", dc.Name), "")
	lines = append(lines, fmt.Sprintf("**File:** `%s:%d`", dc.FilePath, dc.LineNumber), "")

	lines = append(lines, "**Signature:**", "```python", dc.Signature, "```", "")

	if len(dc.Decorators) > 0 {
		lines = append(lines, "**Decorators:**")
		for _, dec := range dc.Decorators {
			lines = append(lines, fmt.Sprintf("- `@%s`", dec))
		}
		lines = append(lines, "")
	}

	if len(dc.Fields) > 0 {
		lines = append(lines, "**Fields:**")
		for _, field := range dc.Fields {
			lines = append(lines, fmt.Sprintf("- `%s`", field))
		}
		lines = append(lines, "")
	}

	lines = append(lines, r.formatDocumentation(dc.Docstring)...)
	lines = append(lines, "---", "")

	return strings.Join(lines, "\n")
}

// formatDocumentation renders the docstring block: a blockquote summary in
// brief mode, the full text fenced otherwise, or a fixed marker when the
// docstring is absent.
func (r *Reporter) formatDocumentation(docstring string) []string {
	if docstring == "" {
		return []string{"**Documentation:** No docstring provided", ""}
	}

	if r.briefDocstring {
		return []string{"**Documentation:**", "> " + docstringSummary(docstring), ""}
	}
	return []string{"**Documentation:**", "```", docstring, "```", ""}
}

// docstringSummary returns the first non-blank line of a docstring.
func docstringSummary(docstring string) string {
	for _, line := range strings.Split(strings.TrimSpace(docstring), "\n") {
		if stripped := strings.TrimSpace(line); stripped != "" {
			return stripped
		}
	}
	return ""
}
