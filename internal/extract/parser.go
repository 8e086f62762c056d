// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrParseFailed indicates a file could not be parsed as Python. Callers
// treat the file as contributing zero declarations and continue.
var ErrParseFailed = errors.New("parse failed")

// ParsePython parses Python source into a tree-sitter syntax tree and
// returns the root node.
//
// Tree-sitter is error-tolerant and returns partial trees for broken
// sources, so a root containing ERROR nodes is reported as ErrParseFailed:
// a file with a syntax error contributes nothing, matching the behavior of
// a strict parser. Invalid UTF-8 is rejected the same way.
func ParsePython(ctx context.Context, content []byte) (*sitter.Node, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrParseFailed)
	}

	root, err := sitter.ParseCtx(ctx, content, python.GetLanguage())
	if err != nil || root == nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if root.HasError() {
		return nil, fmt.Errorf("%w: syntax error", ErrParseFailed)
	}

	return root, nil
}

// walkTree visits every named node in the tree in pre-order.
func walkTree(n *sitter.Node, visit func(*sitter.Node)) {
	visit(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walkTree(n.NamedChild(i), visit)
	}
}
