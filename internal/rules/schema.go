package rules

import (
	"fmt"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// schemaValidationPatterns matches JSON-schema assertions.
var schemaValidationPatterns = compileAll([]string{
	`pm\.response\.to\.have\.jsonSchema\s*\(`,
	`jsonSchema`,
	`Schema_Validation`,
})

const schemaValidationFixCode = "// Définir le schéma JSON attendu\nconst schema = {\n    \"type\": \"object\",\n    \"properties\": {\n        // Définir les propriétés attendues\n    },\n    \"required\": []\n};\n\n// Test de validation de schéma\nif (pm.response.code === 200) {\n    pm.test(requestName + \" - Schema_Validation\", () => {\n        pm.response.to.have.jsonSchema(schema);\n    });\n}"

// CheckSchemaValidationRecommended recommends a JSON-schema assertion for
// requests that likely return JSON: GET and POST, excluding download and
// file endpoints. Folder-level schema validation covers descendants.
func CheckSchemaValidationRecommended(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		covered := matchAny(schemaValidationPatterns, scope.JoinedTestScript(node.Item)) ||
			matchAnyScript(schemaValidationPatterns, node.Inherited.Test)

		method := node.Item.Request.Method
		url := rawURL(node.Item.Request)

		likelyJSON := (method == "GET" || method == "POST") &&
			!strings.Contains(url, "/download") &&
			!strings.Contains(url, "/file")

		if !likelyJSON || covered {
			return
		}

		name := itemDisplayName(node.Item, lastIndex(node.Path))

		issues = append(issues, m.Issue{
			RuleID:   "test-schema-validation-recommended",
			Severity: m.SeverityWarning,
			Message:  fmt.Sprintf("🛡️ Requête \"%s\" : validation de schéma JSON recommandée pour améliorer la robustesse des tests", name),
			Path:     node.Path.String(),
			Fix: &m.Fix{
				Type:          m.FixAddSchemaValidation,
				SuggestedCode: schemaValidationFixCode,
			},
		})
	})

	return issues
}
