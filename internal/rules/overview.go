package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	m "linterman.dev/pkg/linterman/internal/model"
)

// minDescriptionLength is the smallest acceptable collection description, in
// bytes.
const minDescriptionLength = 100

// requiredSections maps each mandatory documentation section to the keywords
// accepted as evidence of its presence.
var requiredSections = []struct {
	name     string
	keywords []string
}{
	{"Prérequis", []string{"prérequis", "prerequis", "requirements", "pré-requis"}},
	{"Présentation", []string{"présentation", "presentation", "description", "overview"}},
	{"Mode d'emploi", []string{"mode d'emploi", "mode d emploi", "utilisation", "usage", "how to use", "instructions"}},
	{"Reste à faire", []string{"reste à faire", "todo", "à faire", "remaining", "next steps"}},
}

var (
	referentWordPattern   = regexp.MustCompile(`(?i)référent`)
	referentTablePattern  = regexp.MustCompile(`(?i)\|.*référent.*\|`)
	referentInlinePattern = regexp.MustCompile(`(?i)référent\s*:`)
	versionWordPattern    = regexp.MustCompile(`(?i)version.*collection`)
	versionTablePattern   = regexp.MustCompile(`(?i)\|.*version.*collection.*\|`)
	versionInlinePattern  = regexp.MustCompile(`(?i)version.*collection\s*:`)
	emptyCellValuePattern = regexp.MustCompile(`^[\*\-\s]*$`)
)

var versionFallbackPatterns = compileAll([]string{
	`(?i)version.*collection\s*:?\s*([v]?\d+\.\d+\.\d+)`,
	`(?i)version\s+de\s+collection\s*:?\s*([v]?\d+\.\d+\.\d+)`,
	`(?i)collection\s+version\s*:?\s*([v]?\d+\.\d+\.\d+)`,
})

var referentFallbackPatterns = compileAll([]string{
	`(?i)référent\s*:?\s*([^\n\r\|*]+)`,
	`(?i)referent\s*:?\s*([^\n\r\|*]+)`,
	`(?i)contact\s*:?\s*([^\n\r\|*]+)`,
	`(?i)responsable\s*:?\s*([^\n\r\|*]+)`,
})

// CheckCollectionOverview validates the collection description against the
// documentation template: four named sections, a metadata table with a
// referent and a collection version, and a minimum length.
func CheckCollectionOverview(c *m.Collection) []m.Issue {
	var issues []m.Issue

	description := string(c.Info.Description)
	lower := strings.ToLower(description)

	for _, section := range requiredSections {
		found := false
		for _, keyword := range section.keywords {
			if strings.Contains(lower, keyword) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, m.Issue{
				RuleID:   "collection-overview-template",
				Severity: m.SeverityError,
				Message:  fmt.Sprintf("❌ Section de documentation manquante : \"%s\"", section.name),
				Path:     "/info/description",
			})
		}
	}

	meta := extractOverviewMetadata(description)

	hasReferentColumn := referentWordPattern.MatchString(description) &&
		(referentTablePattern.MatchString(description) || referentInlinePattern.MatchString(description))
	hasVersionColumn := versionWordPattern.MatchString(description) &&
		(versionTablePattern.MatchString(description) || versionInlinePattern.MatchString(description))

	if !hasReferentColumn {
		issues = append(issues, m.Issue{
			RuleID:   "collection-documentation-structure",
			Severity: m.SeverityError,
			Message:  "👤 Tableau de documentation manquant : colonne \"Référent\" non présente",
			Path:     "/info/description",
		})
	} else if meta.referent == "" {
		issues = append(issues, m.Issue{
			RuleID:   "collection-documentation-structure",
			Severity: m.SeverityError,
			Message:  "👤 Référent manquant : la colonne \"Référent\" est présente mais vide",
			Path:     "/info/description",
		})
	}

	if !hasVersionColumn {
		issues = append(issues, m.Issue{
			RuleID:   "collection-documentation-structure",
			Severity: m.SeverityError,
			Message:  "🔢 Tableau de documentation manquant : colonne \"Version de collection\" non présente",
			Path:     "/info/description",
		})
	} else if meta.version == "" {
		issues = append(issues, m.Issue{
			RuleID:   "collection-documentation-structure",
			Severity: m.SeverityError,
			Message:  "🔢 Version de collection manquante : la colonne \"Version de collection\" est présente mais vide",
			Path:     "/info/description",
		})
	}

	if len(description) < minDescriptionLength {
		issues = append(issues, m.Issue{
			RuleID:   "collection-documentation-structure",
			Severity: m.SeverityError,
			Message:  "📝 Description de collection trop courte (minimum 100 caractères requis)",
			Path:     "/info/description",
		})
	}

	return issues
}

type overviewMetadata struct {
	version  string
	referent string
}

// extractOverviewMetadata pulls the referent and collection version out of
// the description, preferring a Markdown metadata table over loose "key:
// value" lines.
func extractOverviewMetadata(description string) overviewMetadata {
	meta := metadataFromTable(description)

	if meta.version == "" {
		for _, re := range versionFallbackPatterns {
			if match := re.FindStringSubmatch(description); match != nil {
				v := strings.TrimSpace(match[1])
				if !strings.HasPrefix(v, "v") {
					v = "v" + v
				}
				meta.version = v
				break
			}
		}
	}

	if meta.referent == "" {
		for _, re := range referentFallbackPatterns {
			match := re.FindStringSubmatch(description)
			if match == nil {
				continue
			}
			r := strings.TrimSpace(strings.Map(func(c rune) rune {
				if c == '|' || c == '*' {
					return -1
				}
				return c
			}, strings.TrimSpace(match[1])))
			if r != "" && !emptyCellValuePattern.MatchString(r) {
				meta.referent = r
				break
			}
		}
	}

	return meta
}

// metadataFromTable parses the first Markdown table of the description. A
// two-column table is read as key/value pairs, anything wider is read as a
// header row followed by value rows.
func metadataFromTable(description string) overviewMetadata {
	var meta overviewMetadata

	source := []byte(description)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var table *east.Table
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*east.Table); ok && entering {
			table = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if table == nil {
		return meta
	}

	var headers []string
	var rows [][]string
	for section := table.FirstChild(); section != nil; section = section.NextSibling() {
		cells := tableRowCells(section, source)
		switch section.(type) {
		case *east.TableHeader:
			for _, cell := range cells {
				headers = append(headers, strings.ToLower(strings.ReplaceAll(cell, "*", "")))
			}
		case *east.TableRow:
			rows = append(rows, cells)
		}
	}

	for _, values := range rows {
		if len(headers) == 2 && len(values) == 2 {
			key := strings.ToLower(values[0])
			val := values[1]
			if val == "" || val == "---" {
				continue
			}
			applyMetadataCell(&meta, key, val)
			continue
		}

		for j, val := range values {
			if j >= len(headers) {
				break
			}
			if val == "" || val == "---" {
				continue
			}
			applyMetadataCell(&meta, headers[j], val)
		}
	}

	return meta
}

func applyMetadataCell(meta *overviewMetadata, key, value string) {
	if strings.Contains(key, "version") && strings.Contains(key, "collection") {
		v := value
		if !strings.HasPrefix(v, "v") && startsWithDigit(v) {
			v = "v" + v
		}
		meta.version = v
	}
	if strings.Contains(key, "référent") || strings.Contains(key, "referent") {
		meta.referent = value
	}
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func tableRowCells(row ast.Node, source []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		text := strings.TrimSpace(strings.ReplaceAll(string(cell.Text(source)), "*", ""))
		cells = append(cells, text)
	}
	return cells
}
