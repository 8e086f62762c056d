// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

func sampleFunctions() []types.FunctionInfo {
	return []types.FunctionInfo{
		{
			Name:             "test_function_1",
			Docstring:        "This is a test function.",
			FilePath:         "test_file.py",
			Directory:        ".",
			Signature:        "def test_function_1(x: int) -> str",
			LineNumber:       10,
			Arguments:        []string{"self", "x: int"},
			ReturnAnnotation: "str",
		},
		{
			Name:             "test_function_2",
			Docstring:        "Another test function.",
			FilePath:         "test_file.py",
			Directory:        ".",
			Signature:        "async def test_function_2() -> None",
			LineNumber:       20,
			Arguments:        []string{"self"},
			ReturnAnnotation: "None",
			Decorators:       []string{"property"},
			IsAsync:          true,
		},
	}
}

func TestGenerate_Basics(t *testing.T) {
	reporter := NewReporter(false)
	rendered := reporter.Generate(sampleFunctions(), nil, "")

	assert.Contains(t, rendered, "# Python Functions Report")
	assert.Contains(t, rendered, "Total functions found: **2**")
	assert.Contains(t, rendered, "test_function_1")
	assert.Contains(t, rendered, "test_function_2")
}

func TestGenerate_Empty(t *testing.T) {
	reporter := NewReporter(false)
	rendered := reporter.Generate(nil, nil, "")

	assert.Contains(t, rendered, "# Python Functions Report")
	assert.Contains(t, rendered, "Total functions found: **0**")
	assert.NotContains(t, rendered, "Total dataclasses found:")
}

func TestGenerate_BriefDocstring(t *testing.T) {
	reporter := NewReporter(true)
	rendered := reporter.Generate(sampleFunctions(), nil, "")

	assert.Contains(t, rendered, "> This is a test function.")
	assert.Contains(t, rendered, "> Another test function.")
}

func TestGenerate_FullDocstring(t *testing.T) {
	functions := sampleFunctions()
	functions[0].Docstring = "Summary line.\n\nDetail paragraph."

	reporter := NewReporter(false)
	rendered := reporter.Generate(functions, nil, "")

	assert.Contains(t, rendered, "```\nSummary line.\n\nDetail paragraph.\n```")
	assert.NotContains(t, rendered, "> Summary line.")
}

func TestGenerate_NoDocstringMarker(t *testing.T) {
	functions := []types.FunctionInfo{{
		Name:      "bare",
		FilePath:  "bare.py",
		Directory: ".",
		Signature: "def bare()",
	}}

	reporter := NewReporter(false)
	rendered := reporter.Generate(functions, nil, "")

	assert.Contains(t, rendered, "**Documentation:** No docstring provided")
}

func TestGenerate_TableOfContents(t *testing.T) {
	reporter := NewReporter(false)
	rendered := reporter.Generate(sampleFunctions(), nil, "")

	assert.Contains(t, rendered, "## Table of Contents")
	assert.Contains(t, rendered, "- [(root)](#directory-)")
	assert.Contains(t, rendered, "  - [test_function_1](#test_function_1)")
}

func TestGenerate_FunctionBlockFields(t *testing.T) {
	reporter := NewReporter(false)
	rendered := reporter.Generate(sampleFunctions(), nil, "")

	assert.Contains(t, rendered, "**File:** `test_file.py:10`")
	assert.Contains(t, rendered, "**File:** `test_file.py:20`")
	assert.Contains(t, rendered, "```python\ndef test_function_1(x: int) -> str\n```")
	assert.Contains(t, rendered, "- `@property`")
	assert.Contains(t, rendered, "**Arguments:**")
	assert.Contains(t, rendered, "- `self`")
	assert.Contains(t, rendered, "- `x: int`")
	assert.Contains(t, rendered, "**Returns:** `str`")
	assert.Contains(t, rendered, "**Returns:** `None`")
	assert.Contains(t, rendered, "**Type:** Async function")
}

func TestGenerate_GroupedByDirectory(t *testing.T) {
	functions := []types.FunctionInfo{
		{Name: "func_root", FilePath: "root.py", Directory: ".", Signature: "def func_root()"},
		{Name: "func_sub", FilePath: "subdir/sub.py", Directory: "subdir", Signature: "def func_sub()"},
	}

	reporter := NewReporter(false)
	rendered := reporter.Generate(functions, nil, "")

	assert.Contains(t, rendered, "## Directory: `(root)`")
	assert.Contains(t, rendered, "## Directory: `subdir`")
	assert.Contains(t, rendered, "Functions in this directory: **1**")
}

func TestGenerate_SortedWithinDirectory(t *testing.T) {
	functions := []types.FunctionInfo{
		{Name: "zebra_func", FilePath: "test.py", Directory: ".", Signature: "def zebra_func()", LineNumber: 1},
		{Name: "alpha_func", FilePath: "test.py", Directory: ".", Signature: "def alpha_func()", LineNumber: 2},
	}

	reporter := NewReporter(false)
	rendered := reporter.Generate(functions, nil, "")

	posAlpha := strings.Index(rendered, "alpha_func")
	posZebra := strings.Index(rendered, "zebra_func")
	require.GreaterOrEqual(t, posAlpha, 0)
	require.GreaterOrEqual(t, posZebra, 0)
	assert.Less(t, posAlpha, posZebra)
}

func TestGenerate_DescriptionPlacement(t *testing.T) {
	reporter := NewReporter(false)
	rendered := reporter.Generate(sampleFunctions(), nil, "A generated overview of the codebase.")

	assert.Contains(t, rendered, "## Description")
	assert.Contains(t, rendered, "A generated overview of the codebase.")

	// The description sits between the title and the totals line.
	posTitle := strings.Index(rendered, "# Python Functions Report")
	posDesc := strings.Index(rendered, "## Description")
	posTotals := strings.Index(rendered, "Total functions found:")
	assert.Less(t, posTitle, posDesc)
	assert.Less(t, posDesc, posTotals)
}

func TestGenerate_Dataclasses(t *testing.T) {
	dataclasses := []types.DataclassInfo{
		{
			Name:       "Point",
			Docstring:  "A 2D point.",
			FilePath:   "models.py",
			Directory:  ".",
			Signature:  "class Point()",
			LineNumber: 2,
			Fields:     []string{"x: int", "y: int"},
			Decorators: []string{"dataclass"},
		},
	}

	reporter := NewReporter(false)
	rendered := reporter.Generate(sampleFunctions(), dataclasses, "")

	assert.Contains(t, rendered, "Total functions found: **2**")
	assert.Contains(t, rendered, "Total dataclasses found: **1**")
	assert.Contains(t, rendered, "### `Point`")
	assert.Contains(t, rendered, "```python\nclass Point()\n```")
	assert.Contains(t, rendered, "**Fields:**")
	assert.Contains(t, rendered, "- `x: int`")
	assert.Contains(t, rendered, "- `@dataclass`")
	assert.Contains(t, rendered, "Dataclasses in this directory: **1**")
	assert.Contains(t, rendered, "  - [Point](#point)")
}
