package model

// Severity classifies how strongly an issue weighs on the score.
type Severity string

// Available severities, from most to least penalizing.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single finding reported by a rule.
type Issue struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Line     *int     `json:"line"`
	Fix      *Fix     `json:"fix"`
}

// Fix types understood by the fixer. Historic alias spellings emitted by
// older rule versions are accepted on apply.
const (
	FixRenameRequest            = "rename_request"
	FixAddTest                  = "add_test"
	FixAddResponseTimeTest      = "add_response_time_test"
	FixUpdateTestDescription    = "update_test_description"
	FixTestDescriptionURIAlias  = "fix_test_description_uri"
	FixUpdateThreshold          = "update_threshold"
	FixAdjustThresholdAlias     = "adjust_threshold"
	FixUseEnvironmentVariable   = "use_environment_variable"
	FixAddSchemaValidation      = "add_schema_validation"
)

// Fix is a machine-actionable remediation directive attached to an issue.
// Type selects the remediation kind; only the fields that kind requires are
// populated.
type Fix struct {
	Type               string `json:"type"`
	SuggestedName      string `json:"suggested_name,omitempty"`
	TestCode           string `json:"test_code,omitempty"`
	SuggestedCode      string `json:"suggested_code,omitempty"`
	OldDescription     string `json:"old_description,omitempty"`
	NewDescription     string `json:"new_description,omitempty"`
	CurrentThreshold   int    `json:"current_threshold,omitempty"`
	SuggestedThreshold int    `json:"suggested_threshold,omitempty"`
	NewThreshold       int    `json:"new_threshold,omitempty"`
	Field              string `json:"field,omitempty"`
	SuggestedVariable  string `json:"suggested_variable,omitempty"`
}

// Stats summarizes the analyzed collection and the issue counts by severity.
type Stats struct {
	TotalRequests int `json:"total_requests"`
	TotalTests    int `json:"total_tests"`
	TotalFolders  int `json:"total_folders"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Infos         int `json:"infos"`
}

// Result is the outcome of one lint run.
type Result struct {
	Score  int     `json:"score"`
	Issues []Issue `json:"issues"`
	Stats  Stats   `json:"stats"`
}

// Summary is the condensed before/after view of a fix run.
type Summary struct {
	Score  int `json:"score"`
	Issues int `json:"issues"`
}

// FixOutcome is the combined result of lint, fix and re-lint.
type FixOutcome struct {
	FixedCollection *Collection `json:"fixed_collection"`
	FixesApplied    int         `json:"fixes_applied"`
	Before          Summary     `json:"before"`
	After           Summary     `json:"after"`
	RemainingIssues []Issue     `json:"remaining_issues"`
}
