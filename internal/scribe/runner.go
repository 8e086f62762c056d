// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scribe implements the report generation pipeline, wiring the
// extractor, the reporter, and the optional description provider.
package scribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/petar-djukic/pyfuncscribe/internal/extract"
	"github.com/petar-djukic/pyfuncscribe/internal/report"
	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

const (
	// maxDescribeItems caps how many declarations are handed to the
	// description provider.
	maxDescribeItems = 50

	// maxDocstringPrefix caps the docstring excerpt per item.
	maxDocstringPrefix = 100
)

// Describer abstracts the narrative-description collaborator so the
// pipeline is testable and degrades cleanly when it is unavailable.
type Describer interface {
	Describe(ctx context.Context, items []types.ReportItem) (string, error)
}

// Deps holds injected dependencies and settings for the runner.
type Deps struct {
	RootDir            string
	OutputPath         string // "" writes the report to Stdout
	BriefDocstring     bool
	IncludeCommented   bool
	IncludeDataclasses bool
	AddDescription     bool
	Recursive          bool
	IncludeEmpty       bool
	Describer          Describer // nil disables description generation
	Stdout             io.Writer
	Stderr             io.Writer
}

// RunResult holds the outcome of a Runner.Run invocation.
type RunResult struct {
	FunctionCount  int
	DataclassCount int
	Written        bool // A report was written (file or stdout)
	UpToDate       bool // Existing file preserved, nothing written
}

// Runner executes the extract-render-write pipeline.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies. Missing output
// writers default to the process streams.
func NewRunner(deps Deps) *Runner {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	return &Runner{deps: deps}
}

// Run extracts all declarations under the root, renders the markdown
// report, and writes it to the configured destination. When the
// destination already exists and a description was requested, the report
// is first rendered without the description and compared against the
// existing file; if nothing meaningful changed, the file is left
// untouched byte-for-byte, preserving its old description.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{}

	extractor, err := extract.NewExtractor(r.deps.RootDir, r.deps.IncludeCommented)
	if err != nil {
		return result, err
	}

	functions, err := extractor.ExtractAll(ctx, r.deps.Recursive)
	if err != nil {
		return result, fmt.Errorf("extracting functions: %w", err)
	}
	result.FunctionCount = len(functions)

	var dataclasses []types.DataclassInfo
	if r.deps.IncludeDataclasses {
		dataclasses, err = extractor.ExtractAllDataclasses(ctx, r.deps.Recursive)
		if err != nil {
			return result, fmt.Errorf("extracting dataclasses: %w", err)
		}
		result.DataclassCount = len(dataclasses)
	}

	if len(functions)+len(dataclasses) == 0 {
		fmt.Fprintf(r.deps.Stderr, "Warning: No functions found in '%s'\n", r.deps.RootDir)
		if !r.deps.IncludeEmpty {
			return result, nil
		}
	}

	reporter := report.NewReporter(r.deps.BriefDocstring)

	// Idempotent write: when the destination exists and a description was
	// requested, compare a description-free render against the existing
	// content before spending a description call or touching the file.
	if r.deps.OutputPath != "" && r.deps.AddDescription {
		existing, readErr := os.ReadFile(r.deps.OutputPath)
		if readErr == nil {
			candidate := reporter.Generate(functions, dataclasses, "")
			if !report.HasContentChanged(string(existing), candidate) {
				fmt.Fprintln(r.deps.Stderr, "No changes detected in codebase. Skipping update.")
				fmt.Fprintf(r.deps.Stderr, "Report already up-to-date: %s\n", r.deps.OutputPath)
				result.UpToDate = true
				return result, nil
			}
		}
	}

	description := r.generateDescription(ctx, functions, dataclasses)
	rendered := reporter.Generate(functions, dataclasses, description)

	if r.deps.OutputPath == "" {
		fmt.Fprintln(r.deps.Stdout, rendered)
		result.Written = true
		return result, nil
	}

	if dir := filepath.Dir(r.deps.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.deps.OutputPath, []byte(rendered), 0o644); err != nil {
		return result, fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(r.deps.Stderr, "Report generated successfully: %s\n", r.deps.OutputPath)
	result.Written = true
	return result, nil
}

// generateDescription asks the collaborator for a narrative summary.
// Any failure degrades to an empty description with a warning on the
// diagnostic stream; the report itself never carries error text.
func (r *Runner) generateDescription(ctx context.Context, functions []types.FunctionInfo, dataclasses []types.DataclassInfo) string {
	if !r.deps.AddDescription || r.deps.Describer == nil {
		return ""
	}

	items := buildReportItems(functions, dataclasses)
	description, err := r.deps.Describer.Describe(ctx, items)
	if err != nil {
		fmt.Fprintf(r.deps.Stderr, "Warning: description generation failed: %v\n", err)
		return ""
	}
	return description
}

// buildReportItems projects up to maxDescribeItems declarations, functions
// first then dataclasses in aggregate order, into description inputs with
// truncated docstring prefixes.
func buildReportItems(functions []types.FunctionInfo, dataclasses []types.DataclassInfo) []types.ReportItem {
	var items []types.ReportItem

	for i := range functions {
		if len(items) >= maxDescribeItems {
			return items
		}
		fn := &functions[i]
		items = append(items, types.ReportItem{
			Name:      fn.Name,
			FilePath:  fn.FilePath,
			Docstring: truncate(fn.Docstring, maxDocstringPrefix),
		})
	}
	for i := range dataclasses {
		if len(items) >= maxDescribeItems {
			return items
		}
		dc := &dataclasses[i]
		items = append(items, types.ReportItem{
			Name:      dc.Name,
			FilePath:  dc.FilePath,
			Docstring: truncate(dc.Docstring, maxDocstringPrefix),
		})
	}
	return items
}

// truncate caps s at n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
