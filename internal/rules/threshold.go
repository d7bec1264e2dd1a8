package rules

import (
	"fmt"
	"regexp"
	"strconv"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// maxResponseTimeThreshold is the highest acceptable `.below(N)` bound, in
// milliseconds.
const maxResponseTimeThreshold = 2000

var thresholdPattern = regexp.MustCompile(`responseTime.*\.to\.be\.below\((\d+)\)`)

// CheckResponseTimeThreshold warns about response-time assertions whose
// threshold is too lax to mean anything.
func CheckResponseTimeThreshold(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		testScript := scope.JoinedTestScript(node.Item)
		name := itemDisplayName(node.Item, lastIndex(node.Path))

		for _, match := range thresholdPattern.FindAllStringSubmatch(testScript, -1) {
			threshold, err := strconv.Atoi(match[1])
			if err != nil || threshold <= maxResponseTimeThreshold {
				continue
			}

			issues = append(issues, m.Issue{
				RuleID:   "response-time-threshold",
				Severity: m.SeverityWarning,
				Message: fmt.Sprintf(
					"⏱️ Request \"%s\" has response time threshold too high (%dms > %dms recommended)",
					name, threshold, maxResponseTimeThreshold,
				),
				Path: node.Path.String(),
				Fix: &m.Fix{
					Type:               m.FixAdjustThresholdAlias,
					CurrentThreshold:   threshold,
					SuggestedThreshold: maxResponseTimeThreshold,
				},
			})
		}
	})

	return issues
}
