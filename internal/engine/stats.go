package engine

import (
	m "linterman.dev/pkg/linterman/internal/model"
)

// computeStats tallies the collection structure alongside the issue counts by
// severity.
func computeStats(c *m.Collection, issues []m.Issue) m.Stats {
	stats := m.Stats{
		TotalRequests: countRequests(c.Item),
		TotalTests:    countTestEvents(c.Event) + countTests(c.Item),
		TotalFolders:  countFolders(c.Item),
	}

	for _, issue := range issues {
		switch issue.Severity {
		case m.SeverityError:
			stats.Errors++
		case m.SeverityWarning:
			stats.Warnings++
		case m.SeverityInfo:
			stats.Infos++
		}
	}

	return stats
}

func countRequests(items []m.Item) int {
	count := 0
	for i := range items {
		if items[i].IsRequest() {
			count++
		}
		count += countRequests(items[i].Item)
	}

	return count
}

// countTests includes folder and request level test events. Collection root
// events are added separately by computeStats.
func countTests(items []m.Item) int {
	count := 0
	for i := range items {
		count += countTestEvents(items[i].Event)
		count += countTests(items[i].Item)
	}

	return count
}

func countTestEvents(events []m.Event) int {
	count := 0
	for _, event := range events {
		if event.Listen == "test" {
			count++
		}
	}

	return count
}

func countFolders(items []m.Item) int {
	count := 0
	for i := range items {
		if items[i].IsFolder() {
			count++
		}
		count += countFolders(items[i].Item)
	}

	return count
}
