package rules

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

var (
	folderTestPattern  = regexp.MustCompile(`pm\.test\s*\(`)
	testCallPattern    = regexp.MustCompile(`pm\.test\s*\(\s*([^,]+?)(?:,|\))`)
	quotedDescPattern  = regexp.MustCompile(`["']([^"']+)["']`)
	templateVarPattern = regexp.MustCompile(`\{\{[^}]+\}\}`)
	rawPathPattern     = regexp.MustCompile(`/[^?#]*`)
)

// pathVariablePatterns detect script variables that hold a piece of the
// request path, making a test description dynamic.
var pathVariablePatterns = compileAll([]string{
	`pm\.environment\.set\s*\(\s*["']([^"']+)["']\s*,\s*[^)]*(?:path|location|uri|url)`,
	`pm\.variables\.set\s*\(\s*["']([^"']+)["']\s*,\s*[^)]*(?:path|location|uri|url)`,
	`let\s+(\w+)\s*=\s*[^;]*(?:path|location|uri|url)`,
	`const\s+(\w+)\s*=\s*[^;]*(?:path|location|uri|url)`,
})

// CheckTestDescriptions verifies that test descriptions reference the request
// URI, either literally through a path segment or through a path variable
// such as location. Requests under a folder that defines its own tests are
// skipped, a folder test cannot name every child URI.
func CheckTestDescriptions(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}
		for _, script := range node.Inherited.Test {
			if folderTestPattern.MatchString(script) {
				return
			}
		}

		name := itemDisplayName(node.Item, lastIndex(node.Path))
		issues = append(issues, checkRequestDescriptions(node.Item, node.Path.String(), name)...)
	})

	return issues
}

func checkRequestDescriptions(item *m.Item, path, name string) []m.Issue {
	testScript := firstEventScript(item, "test")
	if testScript == "" {
		return nil
	}

	uriPath := extractURIPath(item.Request)
	if uriPath == "/unknown" {
		return nil
	}

	segments := pathSegments(uriPath)
	if len(segments) == 0 {
		return nil
	}

	prerequestScript := firstEventScript(item, "prerequest")
	pathVariables := extractPathVariables(prerequestScript, testScript)

	var issues []m.Issue
	for _, call := range testCallPattern.FindAllStringSubmatch(testScript, -1) {
		rawDescription := strings.TrimSpace(call[1])

		if usesPathVariable(rawDescription, pathVariables) {
			continue
		}

		quoted := quotedDescPattern.FindStringSubmatch(rawDescription)
		if quoted == nil {
			continue
		}
		description := quoted[1]

		if hasURISegment(description, segments) {
			continue
		}

		maxSegments := 3
		if len(segments) < maxSegments {
			maxSegments = len(segments)
		}
		suggestedPath := "/" + strings.Join(segments[len(segments)-maxSegments:], "/")

		var suggestion string
		if len(pathVariables) == 0 {
			suggestion = fmt.Sprintf(
				"inclure un segment du chemin (ex: \"%s\") ou utiliser la variable location/requestName",
				suggestedPath,
			)
		} else {
			suggestion = fmt.Sprintf(
				"inclure un segment du chemin (ex: \"%s\") ou utiliser la variable %s",
				suggestedPath, strings.Join(pathVariables, " ou "),
			)
		}

		issues = append(issues, m.Issue{
			RuleID:   "test-description-with-uri",
			Severity: m.SeverityError,
			Message: fmt.Sprintf(
				"🎯 Test \"%s\" dans \"%s\" devrait %s",
				description, name, suggestion,
			),
			Path: path,
			Fix: &m.Fix{
				Type:           m.FixUpdateTestDescription,
				OldDescription: description,
				NewDescription: fmt.Sprintf("location + ' - %s'", description),
			},
		})
	}

	return issues
}

// firstEventScript returns the joined source of the first event with the
// given listen kind. Later events of the same kind are not consulted.
func firstEventScript(item *m.Item, listen string) string {
	for _, event := range item.Event {
		if event.Listen == listen && event.Script.Exec != nil {
			return strings.Join(event.Script.Exec, "\n")
		}
	}

	return ""
}

// extractURIPath recovers the path portion of the request URL. Template
// variables are substituted with a placeholder host so the URL still parses;
// "/unknown" marks a request whose path cannot be determined.
func extractURIPath(req *m.Request) string {
	if req.URL == nil {
		return "/unknown"
	}
	raw := req.URL.Raw

	clean := templateVarPattern.ReplaceAllString(raw, "http://example.com")

	if parsed, err := url.Parse(clean); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		p := parsed.Path
		p = strings.SplitN(p, "?", 2)[0]
		p = strings.SplitN(p, "#", 2)[0]
		return p
	}

	if match := rawPathPattern.FindString(raw); match != "" {
		return match
	}

	return "/unknown"
}

func pathSegments(uriPath string) []string {
	var segments []string
	for _, s := range strings.Split(uriPath, "/") {
		if s == "" || strings.HasPrefix(s, ":") || strings.Contains(s, "{") {
			continue
		}
		segments = append(segments, s)
	}

	return segments
}

func extractPathVariables(prerequestScript, testScript string) []string {
	var variables []string
	for _, re := range pathVariablePatterns {
		for _, match := range re.FindAllStringSubmatch(prerequestScript, -1) {
			variables = append(variables, match[1])
		}
		for _, match := range re.FindAllStringSubmatch(testScript, -1) {
			variables = append(variables, match[1])
		}
	}

	sort.Strings(variables)

	var deduped []string
	for _, v := range variables {
		if len(deduped) == 0 || deduped[len(deduped)-1] != v {
			deduped = append(deduped, v)
		}
	}

	return deduped
}

func usesPathVariable(rawDescription string, pathVariables []string) bool {
	for _, v := range pathVariables {
		if strings.Contains(rawDescription, v) {
			return true
		}
	}

	return strings.Contains(rawDescription, "location") ||
		strings.Contains(rawDescription, "requestName")
}

func hasURISegment(description string, segments []string) bool {
	lower := strings.ToLower(description)
	for _, segment := range segments {
		s := strings.ToLower(segment)
		if strings.Contains(lower, s) ||
			strings.Contains(lower, "/"+s) ||
			strings.Contains(lower, "[/"+s) {
			return true
		}
	}

	return false
}
