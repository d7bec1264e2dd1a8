package rules

import (
	"fmt"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// responseTimePatterns matches response-time assertions, with both the
// English and French test wording accepted.
var responseTimePatterns = compileAll([]string{
	`responseTime`,
	`response_time`,
	`pm\.response\.responseTime`,
	`pm\.expect\(.*responseTime.*\)`,
	`responseTime.*\.to\.be\.below`,
	`responseTime.*\.to\.be\.lessThan`,
	`(?i)temps de réponse`,
	`(?i)response time`,
})

const responseTimeFixCode = "pm.test(location + \" - Response time is less than 200ms\", function () {\n    pm.expect(pm.response.responseTime).to.be.below(200);\n});"

// CheckResponseTimeMandatory requires every request to assert the response
// time, either in its own test script or in one inherited from an ancestor
// folder.
func CheckResponseTimeMandatory(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		if matchAny(responseTimePatterns, scope.JoinedTestScript(node.Item)) {
			return
		}

		if matchAnyScript(responseTimePatterns, node.Inherited.Test) {
			return
		}

		name := itemDisplayName(node.Item, lastIndex(node.Path))

		issues = append(issues, m.Issue{
			RuleID:   "test-response-time-mandatory",
			Severity: m.SeverityWarning,
			Message:  fmt.Sprintf("⏱️ Request \"%s\" is missing response time test", name),
			Path:     node.Path.String(),
			Fix: &m.Fix{
				Type:          m.FixAddResponseTimeTest,
				SuggestedCode: responseTimeFixCode,
			},
		})
	})

	return issues
}

// lastIndex returns the final segment of a path, the item's index among its
// siblings.
func lastIndex(p m.Path) int {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1]
}
