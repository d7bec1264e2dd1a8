package rules

import (
	"fmt"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// minTestCoveragePercent is the share of requests that should carry at least
// one test script.
const minTestCoveragePercent = 80.0

// CheckTestCoverage reports a single collection-wide issue when fewer than
// 80% of requests have their own tests.
func CheckTestCoverage(c *m.Collection) []m.Issue {
	total := 0
	withTests := 0

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}
		total++
		for _, script := range scope.TestScripts(node.Item) {
			if strings.TrimSpace(script) != "" {
				withTests++
				break
			}
		}
	})

	if total == 0 {
		return nil
	}

	coverage := float32(withTests) / float32(total) * 100.0
	if coverage >= minTestCoveragePercent {
		return nil
	}

	return []m.Issue{{
		RuleID:   "test-coverage-minimum",
		Severity: m.SeverityWarning,
		Message: fmt.Sprintf(
			"📊 Couverture de tests insuffisante : %.1f%% (%d/%d requêtes testées). Minimum recommandé : 80%%",
			coverage, withTests, total,
		),
		Path: "/",
	}}
}
