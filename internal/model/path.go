package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node in the collection tree as a sequence of child indexes
// into nested "item" arrays. The root collection is the empty path. Rules
// report issue locations with it and the fixer resolves mutation targets
// through the same type, so detection and remediation can never disagree
// about which node is meant.
type Path []int

// Child returns a new path descending into the child at the given index.
func (p Path) Child(index int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = index

	return out
}

// String serializes the path as "/item[i]/item[j]". The root path serializes
// as the empty string.
func (p Path) String() string {
	var b strings.Builder
	for _, index := range p {
		fmt.Fprintf(&b, "/item[%d]", index)
	}

	return b.String()
}

// ParsePath decodes the string form back into a Path. Segments that do not
// start with "item[" are ignored, so issue paths carrying a trailing
// "/request/url" or "/response[0]" suffix still resolve to the owning item.
// An "item[...]" segment that does not hold a valid index makes the whole
// path unparseable: dropping it would re-anchor the remaining indexes at the
// wrong depth and address a different node.
func ParsePath(s string) (Path, bool) {
	var p Path

	for _, part := range strings.Split(s, "/") {
		if !strings.HasPrefix(part, "item[") {
			continue
		}

		if !strings.HasSuffix(part, "]") {
			return nil, false
		}

		index, err := strconv.Atoi(part[len("item[") : len(part)-1])
		if err != nil || index < 0 {
			return nil, false
		}

		p = append(p, index)
	}

	return p, true
}

// Resolve walks the path from the collection root and returns the addressed
// item, or nil when any segment is out of range. The returned pointer aliases
// the collection's tree, so the same call serves read-only lookup by rules
// and mutable lookup by the fixer. The empty path addresses the root and
// resolves to nil, since the root is not an item.
func Resolve(c *Collection, p Path) *Item {
	if c == nil || len(p) == 0 {
		return nil
	}

	items := c.Item

	var node *Item

	for _, index := range p {
		if index < 0 || index >= len(items) {
			return nil
		}

		node = &items[index]
		items = node.Item
	}

	return node
}
