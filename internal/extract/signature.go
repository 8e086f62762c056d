// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// buildArgumentList renders the parameters of a function definition as
// formatted strings in declaration order: positional parameters, *args,
// keyword-only parameters, **kwargs. Each parameter is rendered as "name"
// or "name: annotation"; default values are intentionally omitted.
func buildArgumentList(params *sitter.Node, src []byte) []string {
	if params == nil {
		return nil
	}

	var args []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)

		switch p.Type() {
		case "identifier", "list_splat_pattern", "dictionary_splat_pattern", "tuple_pattern":
			args = append(args, p.Content(src))

		case "typed_parameter":
			// Pattern (identifier or splat) followed by an annotation.
			pattern := p.NamedChild(0)
			annotation := p.ChildByFieldName("type")
			if pattern == nil || annotation == nil {
				continue
			}
			args = append(args, pattern.Content(src)+": "+annotation.Content(src))

		case "default_parameter":
			name := p.ChildByFieldName("name")
			if name == nil {
				continue
			}
			args = append(args, name.Content(src))

		case "typed_default_parameter":
			name := p.ChildByFieldName("name")
			annotation := p.ChildByFieldName("type")
			if name == nil || annotation == nil {
				continue
			}
			args = append(args, name.Content(src)+": "+annotation.Content(src))

		case "keyword_separator", "positional_separator":
			// Bare * and / markers carry no name; the surrounding order
			// already reflects positional vs keyword-only grouping.
		}
	}
	return args
}

// buildSignature assembles the canonical signature text from its parts.
func buildSignature(name string, args []string, returnAnnotation string, isAsync bool) string {
	var b strings.Builder
	if isAsync {
		b.WriteString("async ")
	}
	b.WriteString("def ")
	b.WriteString(name)
	b.WriteString("(")
	b.WriteString(strings.Join(args, ", "))
	b.WriteString(")")
	if returnAnnotation != "" {
		b.WriteString(" -> ")
		b.WriteString(returnAnnotation)
	}
	return b.String()
}
