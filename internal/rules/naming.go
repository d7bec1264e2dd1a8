package rules

import (
	"fmt"
	"regexp"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// namingPattern accepts request names that lead with their HTTP verb.
var namingPattern = regexp.MustCompile(`^(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\s+`)

// CheckNamingConvention warns when a request name does not start with its
// HTTP method. Folder names are not checked.
func CheckNamingConvention(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		method := node.Item.Request.Method
		name := itemDisplayName(node.Item, lastIndex(node.Path))

		if method == "" || namingPattern.MatchString(name) {
			return
		}

		issues = append(issues, m.Issue{
			RuleID:   "request-naming-convention",
			Severity: m.SeverityWarning,
			Message: fmt.Sprintf(
				"📝 Requête \"%s\" : le nom devrait commencer par la méthode HTTP (ex: \"%s %s\")",
				name, method, name,
			),
			Path: node.Path.String(),
			Fix: &m.Fix{
				Type:          m.FixRenameRequest,
				SuggestedName: fmt.Sprintf("%s %s", method, name),
			},
		})
	})

	return issues
}
