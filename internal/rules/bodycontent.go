package rules

import (
	"fmt"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// bodyContentPatterns matches assertions that look at the response body.
var bodyContentPatterns = compileAll([]string{
	`pm\.response\.json\(\)`,
	`pm\.response\.to\.have\.jsonSchema`,
	`responseJson`,
	`jsonData`,
	`pm\.response\.text\(\)`,
	`\.to\.have\.property\(`,
	`\.to\.include\(`,
	`\.to\.eql\(`,
	`\.to\.equal\(`,
	`\.to\.be\.`,
})

// noBodyPatterns marks requests that probably have no response body to
// assert on (DELETEs and 204 No Content flavors).
var noBodyPatterns = compileAll([]string{
	`204`,
	`(?i)no.*content`,
	`(?i)delete`,
})

// CheckBodyContentValidation warns when a tested request only asserts the
// status or timing and never looks at the response content. Requests without
// any tests at all are left to the coverage rule, and requests that plainly
// return no body are skipped.
func CheckBodyContentValidation(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		testScript := scope.JoinedTestScript(node.Item)

		if testScript == "" && !node.Inherited.HasNonEmptyTest() {
			return
		}

		hasBodyTest := matchAny(bodyContentPatterns, testScript) ||
			matchAnyScript(bodyContentPatterns, node.Inherited.Test)

		name := itemDisplayName(node.Item, lastIndex(node.Path))
		method := ""
		if node.Item.Request != nil {
			method = node.Item.Request.Method
		}

		probablyNoBody := matchAny(noBodyPatterns, testScript) ||
			matchAny(noBodyPatterns, method) ||
			matchAny(noBodyPatterns, name) ||
			matchAnyScript(noBodyPatterns, node.Inherited.Test)

		if hasBodyTest || probablyNoBody {
			return
		}

		issues = append(issues, m.Issue{
			RuleID:   "test-body-content-validation",
			Severity: m.SeverityWarning,
			Message:  fmt.Sprintf("⚠️ Request \"%s\" should validate response content (body, properties, schema)", name),
			Path:     node.Path.String(),
		})
	})

	return issues
}
