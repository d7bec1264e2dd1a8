package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "linterman.dev/pkg/linterman/internal/model"
)

func TestDescriptionWithURISegmentValid(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET /users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('GET /users - Status 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	require.Empty(t, CheckTestDescriptions(c))
}

func TestDescriptionWithoutURISegment(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET /users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Status is 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	issues := CheckTestDescriptions(c)
	require.Len(t, issues, 1)
	require.Equal(t, "test-description-with-uri", issues[0].RuleID)
	require.Equal(t, m.SeverityError, issues[0].Severity)
	require.Contains(t, issues[0].Message, "devrait inclure")
	require.Contains(t, issues[0].Message, `"/users"`)
	require.NotNil(t, issues[0].Fix)
	require.Equal(t, m.FixUpdateTestDescription, issues[0].Fix.Type)
	require.Equal(t, "Status is 200", issues[0].Fix.OldDescription)
	require.Equal(t, "location + ' - Status is 200'", issues[0].Fix.NewDescription)
}

func TestDescriptionUsingLocationVariable(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET /users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [
				{
					"listen": "prerequest",
					"script": {"exec": ["const location = pm.request.url.getPath();"]}
				},
				{
					"listen": "test",
					"script": {"exec": ["pm.test(location + ' - Status 200', () => pm.response.to.have.status(200));"]}
				}
			]
		}]
	}`)

	require.Empty(t, CheckTestDescriptions(c))
}

func TestDescriptionSkipsChildrenOfTestedFolder(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "Users",
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Folder level check', () => pm.response.to.have.status(200));"]}
			}],
			"item": [{
				"name": "GET /users",
				"request": {"method": "GET", "url": "https://api.example.com/users"},
				"event": [{
					"listen": "test",
					"script": {"exec": ["pm.test('Status is 200', () => pm.response.to.have.status(200));"]}
				}]
			}]
		}]
	}`)

	require.Empty(t, CheckTestDescriptions(c))
}

func TestDescriptionTemplatedHostStillParses(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET orders",
			"request": {"method": "GET", "url": "{{base_url}}/orders"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Status is 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	issues := CheckTestDescriptions(c)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Message, `"/orders"`)
}

func TestDescriptionSuggestsKnownPathVariable(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET /users",
			"request": {"method": "GET", "url": "https://api.example.com/users"},
			"event": [
				{
					"listen": "prerequest",
					"script": {"exec": ["const endpoint = pm.request.url.getPath();"]}
				},
				{
					"listen": "test",
					"script": {"exec": ["pm.test('Status is 200', () => pm.response.to.have.status(200));"]}
				}
			]
		}]
	}`)

	issues := CheckTestDescriptions(c)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Message, "la variable endpoint")
}

func TestDescriptionUntestedRequestSkipped(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "GET /users",
			"request": {"method": "GET", "url": "https://api.example.com/users"}
		}]
	}`)

	require.Empty(t, CheckTestDescriptions(c))
}

func TestDescriptionRequestWithoutURLSkipped(t *testing.T) {
	c := mustCollection(t, `{
		"item": [{
			"name": "No URL",
			"request": {"method": "GET"},
			"event": [{
				"listen": "test",
				"script": {"exec": ["pm.test('Status is 200', () => pm.response.to.have.status(200));"]}
			}]
		}]
	}`)

	require.Empty(t, CheckTestDescriptions(c))
}
