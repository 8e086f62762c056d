// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import "strings"

// totalsMarker is the first report line shared by every render regardless
// of whether a description block was inserted above it.
const totalsMarker = "Total functions found:"

// HasContentChanged reports whether the candidate report differs from the
// existing one in any functionally meaningful way.
//
// Both inputs are truncated to start at their first line containing the
// totals marker, which discards everything above it, the description block
// included, so non-deterministic prose never triggers a spurious change.
// The remaining text is whitespace-normalized before comparison: counts,
// groupings, signatures, and docstrings all stay significant.
func HasContentChanged(existing, candidate string) bool {
	return normalizeFromTotals(existing) != normalizeFromTotals(candidate)
}

// normalizeFromTotals trims the report, drops every line before the totals
// marker (keeping the whole text when the marker is absent), and collapses
// all whitespace runs to single spaces.
func normalizeFromTotals(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")

	start := 0
	for i, line := range lines {
		if strings.Contains(line, totalsMarker) {
			start = i
			break
		}
	}

	tail := strings.Join(lines[start:], "\n")
	return strings.Join(strings.Fields(tail), " ")
}
