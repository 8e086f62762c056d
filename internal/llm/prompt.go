// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// describeData holds the values injected into the description prompt
// template.
type describeData struct {
	Items []types.ReportItem
}

// RenderDescribePrompt renders the description prompt for the given items.
func RenderDescribePrompt(items []types.ReportItem) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/describe.tmpl")
	if err != nil {
		return "", fmt.Errorf("parsing describe template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, describeData{Items: items}); err != nil {
		return "", fmt.Errorf("executing describe template: %w", err)
	}

	return buf.String(), nil
}
