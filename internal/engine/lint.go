package engine

import (
	m "linterman.dev/pkg/linterman/internal/model"
)

// Lint runs the selected rules over the collection and returns the full
// report. A nil rule selection runs everything, an empty one runs nothing.
func Lint(c *m.Collection, enabled []string) m.Result {
	issues := runChecks(c, enabled)
	stats := computeStats(c, issues)

	return m.Result{
		Score:  computeScore(issues, stats),
		Issues: issues,
		Stats:  stats,
	}
}

// LintAndFix lints the collection, applies every available fix to a copy and
// lints again. The input collection is never modified.
func LintAndFix(c *m.Collection, enabled []string) m.FixOutcome {
	before := Lint(c, enabled)

	fixed := c.Clone()
	applied := ApplyFixes(fixed, before.Issues)

	after := Lint(fixed, enabled)

	return m.FixOutcome{
		FixedCollection: fixed,
		FixesApplied:    applied,
		Before:          m.Summary{Score: before.Score, Issues: len(before.Issues)},
		After:           m.Summary{Score: after.Score, Issues: len(after.Issues)},
		RemainingIssues: after.Issues,
	}
}
