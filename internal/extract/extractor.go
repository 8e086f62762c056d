// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

// Extractor extracts function and dataclass information from Python files
// under a root directory.
type Extractor struct {
	rootDir          string
	includeCommented bool
}

// NewExtractor creates an extractor rooted at rootDir. When
// includeCommented is true, declarations whose first physical line is
// commented out are not filtered.
func NewExtractor(rootDir string, includeCommented bool) (*Extractor, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving root directory: %w", err)
	}
	return &Extractor{rootDir: abs, includeCommented: includeCommented}, nil
}

// RootDir returns the resolved absolute scan root.
func (e *Extractor) RootDir() string {
	return e.rootDir
}

// ExtractAll extracts functions from every Python file under the root, in
// the scanner's sorted file order. Files that cannot be read or parsed
// contribute nothing and do not abort the aggregate.
func (e *Extractor) ExtractAll(ctx context.Context, recursive bool) ([]types.FunctionInfo, error) {
	paths, err := FindPythonFiles(e.rootDir, recursive)
	if err != nil {
		return nil, err
	}

	var all []types.FunctionInfo
	for _, path := range paths {
		functions, err := e.ExtractFile(ctx, path)
		if err != nil {
			continue
		}
		all = append(all, functions...)
	}
	return all, nil
}

// ExtractFile extracts all function definitions from a single Python file.
// A file that fails to parse yields an empty result and a nil error.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]types.FunctionInfo, error) {
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
	lines := strings.Split(string(content), "\n")

	var functions []types.FunctionInfo
	walkTree(root, func(n *sitter.Node) {
		if n.Type() != "function_definition" {
			return
		}

		lineNumber := int(n.StartPoint().Row) + 1
		if !e.includeCommented && isLineCommented(lines, lineNumber) {
			return
		}

		info, err := buildFunctionInfo(n, content)
		if err != nil {
			return // drop this declaration only
		}
		info.FilePath = relPath
		info.Directory = directory
		info.LineNumber = lineNumber
		functions = append(functions, *info)
	})

	return functions, nil
}

// relativePath returns the path relative to the scan root and its parent
// directory ("." for the root itself). Files outside the root keep their
// absolute path.
func (e *Extractor) relativePath(path string) (string, string) {
	rel, err := filepath.Rel(e.rootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	dir := "."
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		dir = rel[:i]
	}
	return rel, dir
}

// isLineCommented reports whether the physical source line at the given
// 1-based line number begins with a comment marker after trimming leading
// whitespace. Only the declaration's first line is inspected; continuation
// lines are not verified.
func isLineCommented(lines []string, lineNumber int) bool {
	if lineNumber < 1 || lineNumber > len(lines) {
		return false
	}
	line := strings.TrimLeft(lines[lineNumber-1], " \t")
	return strings.HasPrefix(line, "#")
}

// buildFunctionInfo reconstructs a FunctionInfo from a function_definition
// node. An unexpected node shape yields an error and the declaration is
// dropped by the caller.
func buildFunctionInfo(n *sitter.Node, src []byte) (*types.FunctionInfo, error) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil, fmt.Errorf("function definition without a name")
	}

	info := &types.FunctionInfo{
		Name:       nameNode.Content(src),
		Docstring:  extractDocstring(n, src),
		Arguments:  buildArgumentList(n.ChildByFieldName("parameters"), src),
		Decorators: extractDecorators(n, src),
		IsAsync:    isAsyncDef(n),
	}

	if ret := n.ChildByFieldName("return_type"); ret != nil {
		info.ReturnAnnotation = ret.Content(src)
	}

	info.Signature = buildSignature(info.Name, info.Arguments, info.ReturnAnnotation, info.IsAsync)
	return info, nil
}

// isAsyncDef reports whether the definition starts with the async keyword.
func isAsyncDef(n *sitter.Node) bool {
	first := n.Child(0)
	return first != nil && first.Type() == "async"
}

// extractDecorators collects the textual decorator expressions attached to
// a definition, in source order. Decorated definitions are wrapped in a
// decorated_definition parent node; the leading @ is stripped.
func extractDecorators(n *sitter.Node, src []byte) []string {
	parent := n.Parent()
	if parent == nil || parent.Type() != "decorated_definition" {
		return nil
	}

	var decorators []string
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		child := parent.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}
		text := strings.TrimPrefix(strings.TrimSpace(child.Content(src)), "@")
		decorators = append(decorators, text)
	}
	return decorators
}

// extractDocstring returns the cleaned docstring when the body's first
// statement is a bare string literal, or "" otherwise.
func extractDocstring(n *sitter.Node, src []byte) string {
	body := n.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}

	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}

	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}

	return cleanDocstring(stripStringLiteral(str.Content(src)))
}

// stripStringLiteral removes the prefix letters and quote delimiters from a
// Python string literal, leaving the raw inner text.
func stripStringLiteral(lit string) string {
	s := strings.TrimLeft(lit, "rRbBuUfF")

	for _, q := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, q) {
			s = strings.TrimPrefix(s, q)
			s = strings.TrimSuffix(s, q)
			return s
		}
	}
	return s
}

// cleanDocstring normalizes a docstring the way Python's docstring helpers
// do: the first line is trimmed, the common leading indentation of the
// remaining lines is removed, and surrounding blank lines are dropped.
func cleanDocstring(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) == 0 {
		return ""
	}

	// Common indentation of all lines after the first.
	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	cleaned := []string{strings.TrimSpace(lines[0])}
	for _, line := range lines[1:] {
		if margin > 0 && len(line) >= margin {
			line = line[margin:]
		}
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	result := strings.Join(cleaned, "\n")
	return strings.Trim(result, "\n")
}
