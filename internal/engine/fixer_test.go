package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	m "linterman.dev/pkg/linterman/internal/model"
)

func TestFixRenameRequest(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{"name": "users", "request": {"method": "GET", "url": "https://api.example.com/users"}}]
	}`)

	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix:  &m.Fix{Type: m.FixRenameRequest, SuggestedName: "GET users"},
	}})

	require.Equal(t, 1, applied)
	require.Equal(t, "GET users", c.Item[0].Name)
}

func TestFixAddTestCreatesEvent(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{"name": "GET users", "request": {"method": "GET", "url": "https://api.example.com/users"}}]
	}`)

	code := "pm.test('Status code is 200', () => pm.response.to.have.status(200));"
	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix:  &m.Fix{Type: m.FixAddTest, TestCode: code},
	}})

	require.Equal(t, 1, applied)
	require.Len(t, c.Item[0].Event, 1)
	require.Equal(t, "test", c.Item[0].Event[0].Listen)
	require.Equal(t, "text/javascript", c.Item[0].Event[0].Script.Type)
	require.Equal(t, m.ScriptSource{code}, c.Item[0].Event[0].Script.Exec)
}

func TestFixAddTestSkipsSimilarExisting(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Status code is 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix: &m.Fix{
			Type:     m.FixAddTest,
			TestCode: "pm.test('Status code check', () => pm.response.to.have.status(200));",
		},
	}})

	require.Equal(t, 1, applied)
	require.Len(t, c.Item[0].Event[0].Script.Exec, 1)
}

func TestFixAddTestAppendsDifferentFamily(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Status code is 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	code := "pm.test('responseTime under 2s', () => pm.expect(pm.response.responseTime).to.be.below(2000));"
	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix:  &m.Fix{Type: m.FixAddResponseTimeTest, TestCode: code},
	}})

	require.Equal(t, 1, applied)
	require.Len(t, c.Item[0].Event[0].Script.Exec, 2)
	require.Equal(t, code, c.Item[0].Event[0].Script.Exec[1])
}

func TestFixAddTestWithLocationInsertsPrerequest(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{"name": "GET users", "request": {"method": "GET", "url": "https://api.example.com/users"}}]
	}`)

	code := "pm.test(location + ' - Status code', () => pm.response.to.have.status(200));"
	issues := []m.Issue{{
		Path: "/item[0]",
		Fix:  &m.Fix{Type: m.FixAddTest, TestCode: code},
	}}

	require.Equal(t, 1, ApplyFixes(c, issues))

	var prerequests int
	for _, event := range c.Item[0].Event {
		if event.Listen == "prerequest" {
			prerequests++
			require.Contains(t, strings.Join(event.Script.Exec, "\n"), "pm.environment.set('location'")
		}
	}
	require.Equal(t, 1, prerequests)

	// A second application must not duplicate the prerequest.
	ApplyFixes(c, issues)

	prerequests = 0
	for _, event := range c.Item[0].Event {
		if event.Listen == "prerequest" {
			prerequests++
		}
	}
	require.Equal(t, 1, prerequests)
}

func TestFixUpdateTestDescription(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Status is 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix: &m.Fix{
			Type:           m.FixUpdateTestDescription,
			OldDescription: "Status is 200",
			NewDescription: "location + ' - Status is 200'",
		},
	}})

	require.Equal(t, 1, applied)

	line := c.Item[0].Event[0].Script.Exec[0]
	require.Contains(t, line, "pm.test(location + ' - Status is 200', ")
	require.NotContains(t, line, "'Status is 200'")
}

func TestFixUpdateThreshold(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": [
					"pm.expect(pm.response.responseTime).to.be.below(5000);",
					"pm.expect(pm.response.responseTime).to.be.below(1500);"
				]}
			}]
		}]
	}`)

	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix:  &m.Fix{Type: m.FixUpdateThreshold, SuggestedThreshold: 2000},
	}})

	require.Equal(t, 1, applied)

	exec := c.Item[0].Event[0].Script.Exec
	require.Contains(t, exec[0], ".below(2000)")
	require.Contains(t, exec[1], ".below(1500)")
}

func TestFixUnresolvablePathSkipped(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{"name": "users", "request": {"method": "GET", "url": "https://api.example.com/users"}}]
	}`)

	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[7]",
		Fix:  &m.Fix{Type: m.FixRenameRequest, SuggestedName: "GET users"},
	}})

	require.Equal(t, 0, applied)
	require.Equal(t, "users", c.Item[0].Name)
}

func TestFixMalformedPathSkipped(t *testing.T) {
	c := mustCollection(t, `{
		"item": [
			{"name": "first", "request": {"method": "GET", "url": "https://api.example.com/a"}},
			{"name": "second", "request": {"method": "GET", "url": "https://api.example.com/b"}}
		]
	}`)

	// A broken leading segment must not let the trailing index re-anchor at
	// the root and rename a node the path never addressed.
	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[x]/item[1]",
		Fix:  &m.Fix{Type: m.FixRenameRequest, SuggestedName: "RENAMED"},
	}})

	require.Equal(t, 0, applied)
	require.Equal(t, "first", c.Item[0].Name)
	require.Equal(t, "second", c.Item[1].Name)
}

func TestFixUnknownTypeNotCounted(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{"name": "users", "request": {"method": "GET", "url": "https://api.example.com/users"}}]
	}`)

	applied := ApplyFixes(c, []m.Issue{
		{Path: "/item[0]", Fix: &m.Fix{Type: "use_environment_variable", SuggestedVariable: "{{base_url}}"}},
		{Path: "/item[0]", Fix: nil},
	})

	require.Equal(t, 0, applied)
}

func TestFixAliasTypesAccepted(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.expect(pm.response.responseTime).to.be.below(9000);"]}
			}]
		}]
	}`)

	applied := ApplyFixes(c, []m.Issue{{
		Path: "/item[0]",
		Fix:  &m.Fix{Type: m.FixAdjustThresholdAlias, SuggestedThreshold: 2000},
	}})

	require.Equal(t, 1, applied)
	require.Contains(t, c.Item[0].Event[0].Script.Exec[0], ".below(2000)")
}
