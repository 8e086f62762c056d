// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

// dataclassMarker is the decorator name that qualifies a class as a
// dataclass declaration.
const dataclassMarker = "dataclass"

// ExtractAllDataclasses extracts dataclass declarations from every Python
// file under the root, in the scanner's sorted file order.
func (e *Extractor) ExtractAllDataclasses(ctx context.Context, recursive bool) ([]types.DataclassInfo, error) {
	paths, err := FindPythonFiles(e.rootDir, recursive)
	if err != nil {
		return nil, err
	}

	var all []types.DataclassInfo
	for _, path := range paths {
		dataclasses, err := e.ExtractDataclassesFromFile(ctx, path)
		if err != nil {
			continue
		}
		all = append(all, dataclasses...)
	}
	return all, nil
}

// ExtractDataclassesFromFile extracts dataclass-decorated class
// declarations from a single Python file. A file that fails to parse
// yields an empty result and a nil error.
func (e *Extractor) ExtractDataclassesFromFile(ctx context.Context, path string) ([]types.DataclassInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	root, err := ParsePython(ctx, content)
	if err != nil {
		if errors.Is(err, ErrParseFailed) {
			return nil, nil
		}
		return nil, err
	}

	relPath, directory := e.relativePath(path)

	var dataclasses []types.DataclassInfo
	walkTree(root, func(n *sitter.Node) {
		if n.Type() != "class_definition" {
			return
		}

		decorators := extractDecorators(n, content)
		if !hasDataclassDecorator(decorators) {
			return
		}

		info, err := buildDataclassInfo(n, content)
		if err != nil {
			return // drop this declaration only
		}
		info.Decorators = decorators
		info.FilePath = relPath
		info.Directory = directory
		info.LineNumber = int(n.StartPoint().Row) + 1
		dataclasses = append(dataclasses, *info)
	})

	return dataclasses, nil
}

// hasDataclassDecorator reports whether any decorator resolves to the
// dataclass marker, either by simple name or by attribute-access tail.
// Call parentheses are stripped first, so dataclass(frozen=True) matches.
func hasDataclassDecorator(decorators []string) bool {
	for _, dec := range decorators {
		name := dec
		if i := strings.Index(name, "("); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(name)
		if name == dataclassMarker || strings.HasSuffix(name, "."+dataclassMarker) {
			return true
		}
	}
	return false
}

// buildDataclassInfo reconstructs a DataclassInfo from a class_definition
// node.
func buildDataclassInfo(n *sitter.Node, src []byte) (*types.DataclassInfo, error) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil, fmt.Errorf("class definition without a name")
	}
	name := nameNode.Content(src)

	bases := "()"
	if sup := n.ChildByFieldName("superclasses"); sup != nil {
		bases = sup.Content(src)
	}

	return &types.DataclassInfo{
		Name:      name,
		Docstring: extractDocstring(n, src),
		Signature: "class " + name + bases,
		Fields:    extractAnnotatedFields(n, src),
	}, nil
}

// extractAnnotatedFields collects "name: type" strings for class body
// members that carry a type annotation. Plain assignments are excluded.
func extractAnnotatedFields(n *sitter.Node, src []byte) []string {
	body := n.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	var fields []string
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}

		assign := stmt.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}

		annotation := assign.ChildByFieldName("type")
		left := assign.ChildByFieldName("left")
		if annotation == nil || left == nil {
			continue
		}
		fields = append(fields, left.Content(src)+": "+annotation.Content(src))
	}
	return fields
}
