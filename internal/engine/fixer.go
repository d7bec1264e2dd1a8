package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
)

// locationPrerequest defines the location variable that generated tests and
// descriptions rely on. It is inserted once per item, before any test event
// that references location.
var locationPrerequest = m.Event{
	Listen: "prerequest",
	Script: m.Script{
		Exec: m.ScriptSource{
			"// Définir la variable location pour les tests",
			"pm.environment.set('location', pm.request.url.getPath());",
		},
		Type: "text/javascript",
	},
}

var belowCallPattern = regexp.MustCompile(`\.below\((\d+)\)`)

// ApplyFixes applies every applicable fix attached to the issues, mutating
// the collection in place, and returns how many fixes were applied. Issues
// whose path no longer resolves are skipped, which makes re-applying the same
// fix list over an already fixed collection safe.
func ApplyFixes(c *m.Collection, issues []m.Issue) int {
	applied := 0
	for i := range issues {
		if issues[i].Fix == nil {
			continue
		}
		if applySingleFix(c, issues[i].Path, issues[i].Fix) {
			applied++
		}
	}

	return applied
}

func applySingleFix(c *m.Collection, path string, fix *m.Fix) bool {
	switch fix.Type {
	case m.FixRenameRequest:
		return applyRenameRequest(c, path, fix)
	case m.FixAddTest, m.FixAddResponseTimeTest:
		return applyAddTest(c, path, fix)
	case m.FixUpdateTestDescription, m.FixTestDescriptionURIAlias:
		return applyUpdateTestDescription(c, path, fix)
	case m.FixUpdateThreshold, m.FixAdjustThresholdAlias:
		return applyUpdateThreshold(c, path, fix)
	}

	return false
}

// resolveTarget resolves a fix target, treating an unparseable path the same
// as an unresolvable one.
func resolveTarget(c *m.Collection, path string) *m.Item {
	p, ok := m.ParsePath(path)
	if !ok {
		return nil
	}

	return m.Resolve(c, p)
}

func applyRenameRequest(c *m.Collection, path string, fix *m.Fix) bool {
	if fix.SuggestedName == "" {
		return false
	}

	item := resolveTarget(c, path)
	if item == nil {
		return false
	}

	item.Name = fix.SuggestedName

	return true
}

func applyAddTest(c *m.Collection, path string, fix *m.Fix) bool {
	testCode := fix.TestCode
	if testCode == "" {
		testCode = fix.SuggestedCode
	}
	if testCode == "" {
		return false
	}

	item := resolveTarget(c, path)
	if item == nil {
		return false
	}

	if strings.Contains(testCode, "location") {
		ensureLocationPrerequest(item)
	}

	for i := range item.Event {
		event := &item.Event[i]
		if event.Listen != "test" {
			continue
		}

		if event.Script.Exec != nil && !similarTestExists(event.Script.Exec, testCode) {
			event.Script.Exec = append(event.Script.Exec, testCode)
		}

		return true
	}

	item.Event = append(item.Event, m.Event{
		Listen: "test",
		Script: m.Script{
			Exec: m.ScriptSource{testCode},
			Type: "text/javascript",
		},
	})

	return true
}

// similarTestExists reports whether the script already contains a test of the
// same family as the candidate, matched on shared marker substrings.
func similarTestExists(exec m.ScriptSource, testCode string) bool {
	markers := []string{"Status code", "responseTime", "response time"}
	for _, line := range exec {
		for _, marker := range markers {
			if strings.Contains(line, marker) && strings.Contains(testCode, marker) {
				return true
			}
		}
	}

	return false
}

func applyUpdateTestDescription(c *m.Collection, path string, fix *m.Fix) bool {
	if fix.OldDescription == "" || fix.NewDescription == "" {
		return false
	}

	item := resolveTarget(c, path)
	if item == nil {
		return false
	}

	if strings.Contains(fix.NewDescription, "location") {
		ensureLocationPrerequest(item)
	}

	doubleQuoted := `"` + fix.OldDescription + `"`
	singleQuoted := "'" + fix.OldDescription + "'"

	for i := range item.Event {
		event := &item.Event[i]
		if event.Listen != "test" {
			continue
		}

		for j, line := range event.Script.Exec {
			if !strings.Contains(line, doubleQuoted) && !strings.Contains(line, singleQuoted) {
				continue
			}

			line = strings.ReplaceAll(line, doubleQuoted, fix.NewDescription)
			line = strings.ReplaceAll(line, singleQuoted, fix.NewDescription)
			event.Script.Exec[j] = line
		}
	}

	return true
}

func applyUpdateThreshold(c *m.Collection, path string, fix *m.Fix) bool {
	threshold := fix.NewThreshold
	if threshold == 0 {
		threshold = fix.SuggestedThreshold
	}
	if threshold == 0 {
		return false
	}

	item := resolveTarget(c, path)
	if item == nil || item.Event == nil {
		return false
	}

	for i := range item.Event {
		event := &item.Event[i]
		if event.Listen != "test" {
			continue
		}

		for j, line := range event.Script.Exec {
			if !strings.Contains(line, "responseTime") || !strings.Contains(line, "below") {
				continue
			}

			match := belowCallPattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}

			current, err := strconv.Atoi(match[1])
			if err != nil || current <= maxThreshold {
				continue
			}

			event.Script.Exec[j] = strings.ReplaceAll(
				line,
				fmt.Sprintf(".below(%d)", current),
				fmt.Sprintf(".below(%d)", threshold),
			)
		}
	}

	return true
}

// maxThreshold mirrors the response-time-threshold rule limit. Lines at or
// under it are left alone even when a threshold fix targets the item.
const maxThreshold = 2000

func ensureLocationPrerequest(item *m.Item) {
	for _, event := range item.Event {
		if event.Listen == "prerequest" {
			return
		}
	}

	added := locationPrerequest
	added.Script.Exec = append(m.ScriptSource(nil), locationPrerequest.Script.Exec...)
	item.Event = append(item.Event, added)
}
