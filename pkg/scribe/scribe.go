// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scribe defines the public interface for pyfuncscribe, a
// documentation generator that reports on the functions of a Python
// codebase.
package scribe

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidConfig indicates the configuration failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Scriber instance.
type Config struct {
	RootDir            string // Scan root (required, must be a directory)
	OutputPath         string // Report destination; "" writes to stdout
	BriefDocstring     bool   // Render only the first line of docstrings
	IncludeCommented   bool   // Keep declarations on commented-out lines
	IncludeDataclasses bool   // Also extract dataclass declarations
	AddDescription     bool   // Request an LLM-generated description block
	NoRecurse          bool   // Scan only the root's direct children
	IncludeEmpty       bool   // Emit a report even when nothing was found

	Model   string // Bedrock model ID; empty disables descriptions
	Region  string // AWS region for Bedrock
	Profile string // AWS credential profile (optional)

	Stdout io.Writer // Report stream (default os.Stdout)
	Stderr io.Writer // Diagnostic stream (default os.Stderr)
}

// Result holds the outcome of a Scriber.Run invocation.
type Result struct {
	FunctionCount  int  // Functions extracted
	DataclassCount int  // Dataclasses extracted
	Written        bool // A report was written
	UpToDate       bool // Existing report preserved unchanged
}

// Scriber generates one report per Run invocation.
type Scriber interface {
	// Run scans the root, extracts declarations, renders the markdown
	// report, and writes it to the configured destination, honoring the
	// idempotent-write policy for existing files.
	Run(ctx context.Context) (*Result, error)
}
