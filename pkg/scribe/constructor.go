// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scribe

import (
	"context"
	"fmt"
	"os"

	"github.com/petar-djukic/pyfuncscribe/internal/llm"
	internalscribe "github.com/petar-djukic/pyfuncscribe/internal/scribe"
)

// New validates the config and returns a ready-to-use Scriber.
//
// When a description is requested but the Bedrock model or region is not
// configured, or the client cannot be initialized, the Scriber degrades to
// report generation without a description and a warning on the diagnostic
// stream. Configuration of the scan root itself is strict: a missing or
// non-directory root is an error.
func New(cfg Config) (Scriber, error) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var describer internalscribe.Describer
	if cfg.AddDescription {
		describer = newDescriber(cfg)
	}

	runner := internalscribe.NewRunner(internalscribe.Deps{
		RootDir:            cfg.RootDir,
		OutputPath:         cfg.OutputPath,
		BriefDocstring:     cfg.BriefDocstring,
		IncludeCommented:   cfg.IncludeCommented,
		IncludeDataclasses: cfg.IncludeDataclasses,
		AddDescription:     cfg.AddDescription,
		Recursive:          !cfg.NoRecurse,
		IncludeEmpty:       cfg.IncludeEmpty,
		Describer:          describer,
		Stdout:             cfg.Stdout,
		Stderr:             cfg.Stderr,
	})

	return &scriberAdapter{runner: runner}, nil
}

// newDescriber builds the Bedrock client, or nil with a warning when the
// collaborator is unavailable. A missing credential is a soft failure.
func newDescriber(cfg Config) internalscribe.Describer {
	if cfg.Model == "" || cfg.Region == "" {
		fmt.Fprintln(cfg.Stderr, "Warning: no Bedrock model/region configured; skipping description generation")
		return nil
	}

	client, err := llm.NewClient(context.Background(), llm.ClientConfig{
		ModelID: cfg.Model,
		Region:  cfg.Region,
		Profile: cfg.Profile,
	})
	if err != nil {
		fmt.Fprintf(cfg.Stderr, "Warning: description client unavailable: %v\n", err)
		return nil
	}
	return client
}

// scriberAdapter adapts internal/scribe.Runner to the public Scriber
// interface.
type scriberAdapter struct {
	runner *internalscribe.Runner
}

func (a *scriberAdapter) Run(ctx context.Context) (*Result, error) {
	ir, err := a.runner.Run(ctx)
	if ir == nil {
		return &Result{}, err
	}
	return &Result{
		FunctionCount:  ir.FunctionCount,
		DataclassCount: ir.DataclassCount,
		Written:        ir.Written,
		UpToDate:       ir.UpToDate,
	}, err
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.RootDir == "" {
		return fmt.Errorf("RootDir is required")
	}
	info, err := os.Stat(cfg.RootDir)
	if err != nil {
		return fmt.Errorf("directory %q does not exist", cfg.RootDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", cfg.RootDir)
	}
	return nil
}
