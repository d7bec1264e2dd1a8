package rules

import (
	"fmt"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// statusTestPattern matches the accepted ways of asserting the HTTP status
// code in a test script.
var statusTestPattern = compileAlternation([]string{
	`pm\.response\.to\.have\.status\(`,
	`pm\.response\.to\.be\.success`,
	`pm\.expect\(pm\.response\.code\)`,
	`pm\.response\.code\s*===`,
	`responseCode\.code\s*===`,
})

const statusTestFixCode = "pm.test(location + ' - Status code is 2xx', function() {\n    pm.response.to.be.success;\n});"

// CheckHTTPStatusMandatory requires every request to assert the response
// status code in its own test script. Folder-level scripts do not satisfy
// this rule: a status assertion is expected next to the request it covers.
func CheckHTTPStatusMandatory(c *m.Collection) []m.Issue {
	var issues []m.Issue

	if statusTestPattern == nil {
		return issues
	}

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		for _, script := range scope.TestScripts(node.Item) {
			if statusTestPattern.MatchString(script) {
				return
			}
		}

		name := node.Item.Name
		if name == "" {
			name = "unknown"
		}

		issues = append(issues, m.Issue{
			RuleID:   "test-http-status-mandatory",
			Severity: m.SeverityError,
			Message:  fmt.Sprintf("La requête '%s' ne teste pas le code de statut HTTP", name),
			Path:     node.Path.String(),
			Fix: &m.Fix{
				Type:     m.FixAddTest,
				TestCode: statusTestFixCode,
			},
		})
	})

	return issues
}
