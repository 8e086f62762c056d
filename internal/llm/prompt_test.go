// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/pyfuncscribe/pkg/types"
)

func TestRenderDescribePrompt(t *testing.T) {
	items := []types.ReportItem{
		{Name: "load_data", FilePath: "io/loader.py", Docstring: "Load the dataset."},
		{Name: "train", FilePath: "model.py"},
	}

	prompt, err := RenderDescribePrompt(items)
	require.NoError(t, err)

	assert.Contains(t, prompt, "- load_data (io/loader.py): Load the dataset.")
	assert.Contains(t, prompt, "- train (model.py)")
	assert.NotContains(t, prompt, "train (model.py):", "items without docstrings get no trailing colon")
	assert.Contains(t, prompt, "single concise paragraph")
}

func TestRenderDescribePrompt_Empty(t *testing.T) {
	prompt, err := RenderDescribePrompt(nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Declarations:")
}
