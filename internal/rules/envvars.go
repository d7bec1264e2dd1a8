package rules

import (
	"fmt"
	"regexp"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

var hardcodedURLPattern = regexp.MustCompile(`^https?://[^{]`)

// CheckEnvironmentVariables flags absolute URLs that should go through an
// environment variable instead. Local addresses are tolerated.
func CheckEnvironmentVariables(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		url := rawURL(node.Item.Request)
		if url == "" || !hardcodedURLPattern.MatchString(url) {
			return
		}
		if strings.Contains(url, "{{") ||
			strings.Contains(url, "localhost") ||
			strings.Contains(url, "127.0.0.1") {
			return
		}

		name := itemDisplayName(node.Item, lastIndex(node.Path))
		issues = append(issues, m.Issue{
			RuleID:   "environment-variables-usage",
			Severity: m.SeverityWarning,
			Message: fmt.Sprintf(
				"🔧 Request \"%s\" should use an environment variable for the URL (ex: {{base_url}})",
				name,
			),
			Path: node.Path.String() + "/request/url",
			Fix: &m.Fix{
				Type:              m.FixUseEnvironmentVariable,
				Field:             "url",
				SuggestedVariable: "{{base_url}}",
			},
		})
	})

	return issues
}
