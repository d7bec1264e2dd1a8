package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
	"linterman.dev/pkg/linterman/internal/scope"
)

// secretPattern couples a detection regex with the human label of the secret
// and the environment variable to suggest instead.
type secretPattern struct {
	re         *regexp.Regexp
	label      string
	suggestion string
}

func mustSecretPattern(expr, label, suggestion string) secretPattern {
	return secretPattern{regexp.MustCompile(expr), label, suggestion}
}

var secretPatterns = []secretPattern{
	mustSecretPattern(`api[_-]?key\s*[=:]\s*["']?([a-zA-Z0-9_\-]{20,})["']?`, "API Key", "{{api_key}}"),
	mustSecretPattern(`apikey\s*[=:]\s*["']?([a-zA-Z0-9_\-]{20,})["']?`, "API Key", "{{api_key}}"),

	mustSecretPattern(`bearer\s+([a-zA-Z0-9_\-\.]{20,})`, "Bearer Token", "{{auth_token}}"),
	mustSecretPattern(`token\s*[=:]\s*["']?([a-zA-Z0-9_\-\.]{20,})["']?`, "Token", "{{auth_token}}"),

	mustSecretPattern(`AKIA[0-9A-Z]{16}`, "AWS Access Key", "{{aws_access_key}}"),
	mustSecretPattern(`aws[_-]?secret[_-]?access[_-]?key\s*[=:]\s*["']?([a-zA-Z0-9/\+]{40})["']?`, "AWS Secret Key", "{{aws_secret_key}}"),

	mustSecretPattern(`-----BEGIN\s+(?:RSA\s+)?PRIVATE\s+KEY-----`, "Private Key", "{{private_key}}"),

	// The character class cannot open a {{variable}}, so template values never
	// match.
	mustSecretPattern(`password=[a-zA-Z0-9]{3,}`, "Password", "{{password}}"),
	mustSecretPattern(`pwd=[a-zA-Z0-9]{3,}`, "Password", "{{password}}"),

	mustSecretPattern(`secret\s*[=:]\s*["']([^"'\s]{8,})["']`, "Secret", "{{secret}}"),
	mustSecretPattern(`client[_-]?secret\s*[=:]\s*["']?([a-zA-Z0-9_\-]{20,})["']?`, "Client Secret", "{{client_secret}}"),

	mustSecretPattern(`jdbc:.*password=([^&\s]+)`, "Database Password", "{{db_password}}"),
	mustSecretPattern(`mongodb(?:\+srv)?://[^:]+:([^@]+)@`, "MongoDB Password", "{{mongo_password}}"),

	mustSecretPattern(`client_id\s*[=:]\s*["']?([a-zA-Z0-9_\-]{20,})["']?`, "OAuth Client ID", "{{client_id}}"),

	mustSecretPattern(`xox[baprs]-[0-9]{10,13}-[0-9]{10,13}-[a-zA-Z0-9]{24,}`, "Slack Token", "{{slack_token}}"),
	mustSecretPattern(`gh[pousr]_[A-Za-z0-9_]{36,}`, "GitHub Token", "{{github_token}}"),
	mustSecretPattern(`sk_live_[a-zA-Z0-9]{24,}`, "Stripe Secret Key", "{{stripe_secret_key}}"),
	mustSecretPattern(`pk_live_[a-zA-Z0-9]{24,}`, "Stripe Publishable Key", "{{stripe_public_key}}"),
}

const secretPreviewLength = 50

// requestAsJSON serializes a request for pattern scanning. HTML escaping is
// off so "&", "<" and ">" stay literal and delimiter-bounded patterns stop
// where they do in the document text.
func requestAsJSON(req *m.Request) (string, error) {
	var buf strings.Builder

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// CheckHardcodedSecrets scans each request, serialized back to JSON, for
// credential-looking values. At most one secret is reported per request;
// values referencing a {{variable}} are ignored.
func CheckHardcodedSecrets(c *m.Collection) []m.Issue {
	var issues []m.Issue

	scope.Walk(c, func(node scope.Node) {
		if !node.Item.IsRequest() {
			return
		}

		requestJSON, err := requestAsJSON(node.Item.Request)
		if err != nil {
			return
		}

		name := node.Item.Name
		if name == "" {
			name = "unknown"
		}

		for _, pattern := range secretPatterns {
			matched := pattern.re.FindString(requestJSON)
			if matched == "" || strings.Contains(matched, "{{") {
				continue
			}

			preview := matched
			if len(preview) > secretPreviewLength {
				preview = preview[:secretPreviewLength] + "..."
			}

			issues = append(issues, m.Issue{
				RuleID:   "hardcoded-secrets",
				Severity: m.SeverityError,
				Message: fmt.Sprintf(
					"🔒 %s hardcodé détecté \"%s\" dans '%s' - Utilisez des variables d'environnement (%s)",
					pattern.label, preview, name, pattern.suggestion,
				),
				Path: node.Path.String() + "/request",
			})

			break
		}
	})

	return issues
}
