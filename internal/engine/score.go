package engine

import (
	m "linterman.dev/pkg/linterman/internal/model"
)

// Score penalties are proportional to the share of requests affected, not the
// absolute issue count: a collection where every request has an error loses
// the full error penalty, one where half do loses half of it.
const (
	baseScore      = 100.0
	errorPenalty   = 15.0
	warningPenalty = 8.0
	infoPenalty    = 3.0

	// cleanBonus rewards collections with no errors and at most
	// cleanBonusMaxWarnings warnings.
	cleanBonus            = 5.0
	cleanBonusMaxWarnings = 2
)

// computeScore turns issue counts into a 0-100 quality score.
func computeScore(issues []m.Issue, stats m.Stats) int {
	errors := 0
	warnings := 0
	infos := 0
	for _, issue := range issues {
		switch issue.Severity {
		case m.SeverityError:
			errors++
		case m.SeverityWarning:
			warnings++
		case m.SeverityInfo:
			infos++
		}
	}

	totalRequests := stats.TotalRequests
	if totalRequests < 1 {
		totalRequests = 1
	}

	score := baseScore -
		ratio(errors, totalRequests)*errorPenalty -
		ratio(warnings, totalRequests)*warningPenalty -
		ratio(infos, totalRequests)*infoPenalty

	if errors == 0 && warnings <= cleanBonusMaxWarnings {
		score += cleanBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(score)
}

// ratio is the affected share of requests, capped at 1.
func ratio(count, totalRequests int) float64 {
	r := float64(count) / float64(totalRequests)
	if r > 1 {
		r = 1
	}

	return r
}
