// Package engine runs the rule checks over a collection and turns the
// findings into a scored report, with optional automatic fixing.
package engine

import (
	"golang.org/x/sync/errgroup"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/rules"
)

// CheckFunc inspects a collection and reports its findings.
type CheckFunc func(*m.Collection) []m.Issue

// Rule couples a rule identifier with its check. The identifier is what rule
// selection matches against; a check may emit related secondary identifiers
// in its issues.
type Rule struct {
	ID       string
	Category string
	Severity m.Severity
	Check    CheckFunc
}

// registry lists every rule in evaluation order. Reports preserve this order
// so two runs over the same collection are comparable line by line.
var registry = []Rule{
	{ID: "test-http-status-mandatory", Category: "testing", Severity: m.SeverityError, Check: rules.CheckHTTPStatusMandatory},
	{ID: "test-description-with-uri", Category: "testing", Severity: m.SeverityError, Check: rules.CheckTestDescriptions},
	{ID: "test-response-time-mandatory", Category: "testing", Severity: m.SeverityWarning, Check: rules.CheckResponseTimeMandatory},
	{ID: "test-body-content-validation", Category: "testing", Severity: m.SeverityWarning, Check: rules.CheckBodyContentValidation},
	{ID: "test-schema-validation-recommended", Category: "testing", Severity: m.SeverityWarning, Check: rules.CheckSchemaValidationRecommended},
	{ID: "request-naming-convention", Category: "structure", Severity: m.SeverityWarning, Check: rules.CheckNamingConvention},
	{ID: "response-time-threshold", Category: "performance", Severity: m.SeverityWarning, Check: rules.CheckResponseTimeThreshold},
	{ID: "environment-variables-usage", Category: "best-practices", Severity: m.SeverityWarning, Check: rules.CheckEnvironmentVariables},
	{ID: "test-coverage-minimum", Category: "best-practices", Severity: m.SeverityWarning, Check: rules.CheckTestCoverage},
	{ID: "collection-overview-template", Category: "documentation", Severity: m.SeverityError, Check: rules.CheckCollectionOverview},
	{ID: "request-examples-required", Category: "documentation", Severity: m.SeverityError, Check: rules.CheckRequestExamples},
	{ID: "hardcoded-secrets", Category: "security", Severity: m.SeverityError, Check: rules.CheckHardcodedSecrets},
}

// Rules returns the registered rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)

	return out
}

// runChecks evaluates the selected rules. A nil selection means every rule; an
// empty non-nil selection means none. Checks run concurrently but issues come
// back in registration order.
func runChecks(c *m.Collection, enabled []string) []m.Issue {
	selected := make(map[string]bool, len(enabled))
	for _, id := range enabled {
		selected[id] = true
	}

	results := make([][]m.Issue, len(registry))

	var g errgroup.Group
	for i, rule := range registry {
		i, rule := i, rule
		if enabled != nil && !selected[rule.ID] {
			continue
		}

		g.Go(func() error {
			results[i] = rule.Check(c)
			return nil
		})
	}
	_ = g.Wait()

	var issues []m.Issue
	for _, found := range results {
		issues = append(issues, found...)
	}

	return issues
}
