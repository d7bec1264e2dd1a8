package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	m "linterman.dev/pkg/linterman/internal/model"
)

func TestLintReportsScoreAndStats(t *testing.T) {
	c := mustCollection(t, untestedFixture)

	result := Lint(c, nil)

	require.NotEmpty(t, result.Issues)
	require.Equal(t, 1, result.Stats.TotalRequests)
	require.Positive(t, result.Stats.Errors)
	require.Less(t, result.Score, 100)
	require.GreaterOrEqual(t, result.Score, 0)
	require.Equal(t, result.Stats.Errors+result.Stats.Warnings+result.Stats.Infos, len(result.Issues))
}

const documentedDescription = `Collection de démonstration entièrement documentée.

## Prérequis
Aucun prérequis spécifique pour cette collection de démonstration.

## Présentation
Cette collection démontre une API REST correctement documentée et testée.

## Mode d'emploi
1. Configurer les variables d'environnement
2. Exécuter les requêtes dans l'ordre

## Reste à faire
Rien pour le moment.

| Métadonnée | Valeur |
|------------|--------|
| Référent | John Doe |
| Version de collection | 2.0.0 |
`

func cleanCollection() *m.Collection {
	return &m.Collection{
		Info: m.Info{Name: "Demo API", Description: m.LooseText(documentedDescription)},
		Item: []m.Item{{
			Name:    "GET users",
			Request: &m.Request{Method: "GET", URL: &m.URL{Raw: "{{base_url}}/users"}},
			Response: []m.Response{{
				Name: "200 OK",
				Code: 200,
				Body: `{"users": []}`,
			}},
			Event: []m.Event{
				{
					Listen: "prerequest",
					Script: m.Script{Exec: m.ScriptSource{
						"pm.environment.set('location', pm.request.url.getPath());",
					}},
				},
				{
					Listen: "test",
					Script: m.Script{Exec: m.ScriptSource{
						"pm.test(location + ' - Status code is 200', () => pm.response.to.have.status(200));",
						"pm.test(location + ' - responseTime', () => pm.expect(pm.response.responseTime).to.be.below(500));",
						"const jsonData = pm.response.json();",
						"pm.response.to.have.jsonSchema(schema);",
					}},
				},
			},
		}},
	}
}

func TestLintCleanCollection(t *testing.T) {
	result := Lint(cleanCollection(), nil)

	require.Empty(t, result.Issues)
	require.Equal(t, 100, result.Score)
	require.Equal(t, 1, result.Stats.TotalRequests)
}

func TestLintAndFixLeavesInputUntouched(t *testing.T) {
	c := mustCollection(t, untestedFixture)

	original, err := json.Marshal(c)
	require.NoError(t, err)

	outcome := LintAndFix(c, nil)
	require.NotNil(t, outcome.FixedCollection)

	unchanged, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, string(original), string(unchanged))
}

func TestLintAndFixImprovesScore(t *testing.T) {
	c := mustCollection(t, untestedFixture)

	outcome := LintAndFix(c, nil)

	require.Positive(t, outcome.FixesApplied)
	require.GreaterOrEqual(t, outcome.After.Score, outcome.Before.Score)
	require.LessOrEqual(t, outcome.After.Issues, outcome.Before.Issues)
	require.Len(t, outcome.RemainingIssues, outcome.After.Issues)
}

func TestLintAndFixIsIdempotent(t *testing.T) {
	c := mustCollection(t, untestedFixture)

	first := LintAndFix(c, nil)
	second := LintAndFix(first.FixedCollection, nil)

	require.Equal(t, first.After.Score, second.After.Score)
	require.Equal(t, first.After.Issues, second.Before.Issues)
	require.Equal(t, first.After.Issues, second.After.Issues)
}

func TestLintAndFixRespectsRuleSelection(t *testing.T) {
	c := mustCollection(t, untestedFixture)

	outcome := LintAndFix(c, []string{"request-naming-convention"})

	for _, issue := range outcome.RemainingIssues {
		require.Equal(t, "request-naming-convention", issue.RuleID)
	}
	require.Equal(t, "GET users", outcome.FixedCollection.Item[0].Name)
}

func TestLintAndFixAppliesStatusTest(t *testing.T) {
	c := mustCollection(t, untestedFixture)

	outcome := LintAndFix(c, []string{"test-http-status-mandatory"})

	require.Equal(t, 1, outcome.FixesApplied)
	require.Empty(t, outcome.RemainingIssues)
	require.NotEmpty(t, outcome.FixedCollection.Item[0].Event)

	var hasTest bool
	for _, event := range outcome.FixedCollection.Item[0].Event {
		if event.Listen == "test" {
			hasTest = true
		}
	}
	require.True(t, hasTest)

	require.Equal(t, m.SeverityError, Lint(c, []string{"test-http-status-mandatory"}).Issues[0].Severity)
}
