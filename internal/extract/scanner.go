// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package extract provides Python source file scanning, parsing, and
// function extraction.
package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindPythonFiles enumerates the .py files under root and returns their
// absolute paths in lexicographic order. When recursive is false only the
// direct children of root are considered.
//
// The root is assumed to be a validated, existing directory; callers are
// responsible for checking it first.
func FindPythonFiles(root string, recursive bool) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}

	var paths []string

	if recursive {
		err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip inaccessible entries
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasSuffix(d.Name(), ".py") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory: %w", err)
		}
	} else {
		entries, err := os.ReadDir(absRoot)
		if err != nil {
			return nil, fmt.Errorf("reading directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.HasSuffix(entry.Name(), ".py") {
				paths = append(paths, filepath.Join(absRoot, entry.Name()))
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}
