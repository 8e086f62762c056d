// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withFakeDescription splices a description block between the report title
// and the rest, the way a previous run with a live LLM would have.
func withFakeDescription(report, description string) string {
	block := "## Description\n\n" + description + "\n\n---\n\n"
	lines := strings.Split(report, "\n")
	return strings.Join(lines[:2], "\n") + "\n\n" + block + strings.Join(lines[2:], "\n")
}

func TestHasContentChanged_IdenticalReports(t *testing.T) {
	reporter := NewReporter(true)
	report1 := reporter.Generate(sampleFunctions(), nil, "")
	report2 := reporter.Generate(sampleFunctions(), nil, "")

	assert.False(t, HasContentChanged(report1, report2))
}

func TestHasContentChanged_DescriptionIgnored(t *testing.T) {
	reporter := NewReporter(true)
	base := reporter.Generate(sampleFunctions(), nil, "")
	decorated := withFakeDescription(base, "This is a fake LLM-generated description.")

	assert.False(t, HasContentChanged(decorated, base))
}

func TestHasContentChanged_RenderedDescriptionIgnored(t *testing.T) {
	reporter := NewReporter(true)
	base := reporter.Generate(sampleFunctions(), nil, "")
	decorated := reporter.Generate(sampleFunctions(), nil, "Some volatile prose.")

	assert.False(t, HasContentChanged(decorated, base))
}

func TestHasContentChanged_FunctionCountDetected(t *testing.T) {
	reporter := NewReporter(true)
	full := reporter.Generate(sampleFunctions(), nil, "")
	fewer := reporter.Generate(sampleFunctions()[:1], nil, "")

	assert.True(t, HasContentChanged(full, fewer))
}

func TestHasContentChanged_CountDigitDetected(t *testing.T) {
	reporter := NewReporter(true)
	report := reporter.Generate(sampleFunctions(), nil, "")
	modified := strings.Replace(report, "**2**", "**3**", 1)

	assert.True(t, HasContentChanged(report, modified))
}

func TestHasContentChanged_FunctionNameDetected(t *testing.T) {
	reporter := NewReporter(true)
	report := reporter.Generate(sampleFunctions(), nil, "")
	modified := strings.ReplaceAll(report, "test_function_1", "modified_function")

	assert.True(t, HasContentChanged(report, modified))
}

func TestHasContentChanged_WhitespaceNormalized(t *testing.T) {
	report1 := `# Python Functions Report

Total functions found: **2**

---

## Table of Contents
- test_function_1
`

	report2 := `# Python Functions Report

Total functions found: **2**

---

## Table of Contents

- test_function_1
`

	assert.False(t, HasContentChanged(report1, report2))
}

func TestHasContentChanged_NoMarkerComparesWholeText(t *testing.T) {
	assert.False(t, HasContentChanged("plain text", "plain   text"))
	assert.True(t, HasContentChanged("plain text", "different text"))
}
