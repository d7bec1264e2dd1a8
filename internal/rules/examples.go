package rules

import (
	"fmt"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// CheckRequestExamples verifies that every request documents at least one
// response example and that existing examples carry a name, a body and
// described query parameters.
func CheckRequestExamples(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		name := itemDisplayName(node.Item, lastIndex(node.Path))
		path := node.Path.String()

		if len(node.Item.Response) == 0 {
			issues = append(issues, m.Issue{
				RuleID:   "request-examples-required",
				Severity: m.SeverityError,
				Message:  fmt.Sprintf("📋 Request \"%s\" has no response examples", name),
				Path:     path,
			})
		} else {
			for i, resp := range node.Item.Response {
				if resp.Name == "" {
					issues = append(issues, m.Issue{
						RuleID:   "documentation-completeness",
						Severity: m.SeverityError,
						Message:  fmt.Sprintf("🏷️ Example #%d for \"%s\" is missing name", i+1, name),
						Path:     fmt.Sprintf("%s/response[%d]", path, i),
					})
				}

				noContent := resp.Code == 204 ||
					resp.Status == "No Content" ||
					strings.Contains(strings.ToLower(resp.Name), "no content")
				if resp.Body == "" && !noContent {
					issues = append(issues, m.Issue{
						RuleID:   "documentation-completeness",
						Severity: m.SeverityError,
						Message:  fmt.Sprintf("📄 Example #%d for \"%s\" is missing content", i+1, name),
						Path:     fmt.Sprintf("%s/response[%d]", path, i),
					})
				}
			}
		}

		if node.Item.Request.URL == nil {
			return
		}
		var undocumented []string
		for _, param := range node.Item.Request.URL.Query {
			key := param.Key
			if key == "" {
				key = "paramètre sans nom"
			}
			if strings.TrimSpace(param.Description) == "" {
				undocumented = append(undocumented, key)
			}
		}
		if len(undocumented) > 0 {
			issues = append(issues, m.Issue{
				RuleID:   "documentation-completeness",
				Severity: m.SeverityError,
				Message: fmt.Sprintf(
					"📝 Request \"%s\" has undocumented parameters: %s",
					name, strings.Join(undocumented, ", "),
				),
				Path: path + "/request/url/query",
			})
		}
	})

	return issues
}
