// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scribe

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(Config{Stderr: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_NonexistentRoot(t *testing.T) {
	_, err := New(Config{
		RootDir: filepath.Join(t.TempDir(), "missing"),
		Stderr:  &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestNew_RootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "root.txt")
	require.NoError(t, os.WriteFile(file, []byte("not a directory"), 0o644))

	_, err := New(Config{RootDir: file, Stderr: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestNew_ValidRoot(t *testing.T) {
	s, err := New(Config{RootDir: t.TempDir(), Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNew_DescriptionWithoutModelDegrades(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("def f():\n    pass\n"), 0o644))

	var stdout, stderr bytes.Buffer
	s, err := New(Config{
		RootDir:        root,
		AddDescription: true,
		Stdout:         &stdout,
		Stderr:         &stderr,
	})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "no Bedrock model/region configured")

	// The run still produces a full report, just without a description.
	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Equal(t, 1, result.FunctionCount)
	assert.Contains(t, stdout.String(), "Total functions found: **1**")
	assert.NotContains(t, stdout.String(), "## Description")
}

func TestRun_EndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"), []byte(`def entry_point(argv):
    '''Program entry point.'''
    pass
`), 0o644))

	out := filepath.Join(t.TempDir(), "report.md")
	s, err := New(Config{
		RootDir:    root,
		OutputPath: out,
		Stderr:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Written)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "entry_point")
	assert.Contains(t, string(content), "Program entry point.")
}
