// Package rules implements the individual lint checks. Every check is a pure
// function from a collection to a list of issues: absent optional fields read
// as empty values and a pattern that fails to compile makes its check find
// nothing rather than failing the run.
package rules

import (
	"fmt"
	"regexp"

	m "linterman.dev/pkg/linterman/internal/model"
)

// compileAll compiles a pattern table, dropping any pattern that does not
// compile so one bad expression cannot take the whole rule down.
func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}

		out = append(out, re)
	}

	return out
}

// compileAlternation compiles patterns joined into a single alternation,
// returning nil when the combined expression does not compile.
func compileAlternation(patterns []string) *regexp.Regexp {
	combined := ""
	for i, pattern := range patterns {
		if i > 0 {
			combined += "|"
		}

		combined += pattern
	}

	re, err := regexp.Compile(combined)
	if err != nil {
		return nil
	}

	return re
}

// matchAny reports whether any compiled pattern matches the text.
func matchAny(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}

// matchAnyScript reports whether any pattern matches any of the scripts.
func matchAnyScript(res []*regexp.Regexp, scripts []string) bool {
	for _, script := range scripts {
		if matchAny(res, script) {
			return true
		}
	}

	return false
}

// itemDisplayName names an item for messages, falling back to its 1-based
// position among its siblings when it has no name.
func itemDisplayName(item *m.Item, index int) string {
	if item.Name != "" {
		return item.Name
	}

	return fmt.Sprintf("Item-%d", index+1)
}

// rawURL returns the raw URL text of a request, whichever shape it arrived
// in, or the empty string.
func rawURL(req *m.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}

	return req.URL.Raw
}
