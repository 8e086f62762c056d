// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across pyfuncscribe packages.
package types

// FunctionInfo holds the extracted metadata for a single Python function
// or method, including nested and class-scoped definitions.
type FunctionInfo struct {
	Name             string   // Function name
	Docstring        string   // Docstring text, "" when absent
	FilePath         string   // Path relative to the scan root
	Directory        string   // Parent directory of FilePath, "." for root
	Signature        string   // Reconstructed signature text
	LineNumber       int      // Line of the def keyword (1-based)
	Arguments        []string // Formatted parameters in declaration order
	ReturnAnnotation string   // Return annotation text, "" when absent
	Decorators       []string // Decorator expressions in source order
	IsAsync          bool     // True for async def
}

// DataclassInfo holds the extracted metadata for a class declaration
// carrying a dataclass decorator.
type DataclassInfo struct {
	Name       string   // Class name
	Docstring  string   // Docstring text, "" when absent
	FilePath   string   // Path relative to the scan root
	Directory  string   // Parent directory of FilePath, "." for root
	Signature  string   // "class Name(<bases>)", "()" when no bases
	LineNumber int      // Line of the class keyword (1-based)
	Fields     []string // "name: type" for annotated members only
	Decorators []string // Decorator expressions in source order
}

// ReportItem is the projection of an extracted declaration handed to the
// description provider: just enough context for a narrative summary.
type ReportItem struct {
	Name      string
	FilePath  string
	Docstring string // Truncated prefix, not the full text
}
