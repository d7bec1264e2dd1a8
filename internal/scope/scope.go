// Package scope computes the script context a request inherits from its
// ancestor folders. A folder-level test or prerequest script applies to every
// descendant request, so rules consult the inherited scripts before deciding
// a request lacks one of its own.
package scope

import (
	"strings"

	m "linterman.dev/pkg/linterman/internal/model"
)

// Scripts holds the joined source text of the test and prerequest scripts
// collected from a chain of ancestor folders.
type Scripts struct {
	Test       []string
	Prerequest []string
}

// HasNonEmptyTest reports whether any inherited test script has content.
func (s Scripts) HasNonEmptyTest() bool {
	for _, script := range s.Test {
		if strings.TrimSpace(script) != "" {
			return true
		}
	}

	return false
}

// TestScripts returns the joined source text of every "test" event on an
// item, one string per event.
func TestScripts(item *m.Item) []string {
	return eventScripts(item.Event, "test")
}

// PrerequestScripts returns the joined source text of every "prerequest"
// event on an item, one string per event.
func PrerequestScripts(item *m.Item) []string {
	return eventScripts(item.Event, "prerequest")
}

// JoinedTestScript returns all of an item's test script text as one blob.
func JoinedTestScript(item *m.Item) string {
	return strings.Join(TestScripts(item), "\n")
}

func eventScripts(events []m.Event, listen string) []string {
	var scripts []string

	for i := range events {
		if events[i].Listen != listen {
			continue
		}

		if events[i].Script.Exec == nil {
			continue
		}

		scripts = append(scripts, strings.Join(events[i].Script.Exec, "\n"))
	}

	return scripts
}

// Inherited collects the scripts of every ancestor folder along the given
// path, excluding the addressed node's own scripts. An unresolvable segment
// ends the walk early with whatever was collected above it.
func Inherited(c *m.Collection, p m.Path) Scripts {
	var inherited Scripts

	items := c.Item

	for step, index := range p {
		if index < 0 || index >= len(items) {
			break
		}

		node := &items[index]

		// The final segment is the node itself; its own scripts are not
		// part of its inherited scope.
		if step < len(p)-1 {
			inherited.Test = append(inherited.Test, TestScripts(node)...)
			inherited.Prerequest = append(inherited.Prerequest, PrerequestScripts(node)...)
		}

		items = node.Item
	}

	return inherited
}

// Node is one visited item during a tree walk, together with its address and
// the scripts inherited from its ancestors.
type Node struct {
	Item      *m.Item
	Path      m.Path
	Inherited Scripts
}

// frame is one resumable level of the iterative walk.
type frame struct {
	items []m.Item
	next  int
	base  m.Path
	inh   Scripts
}

// Walk visits every item of the collection in document order (depth first,
// parents before children). The walk is driven by an explicit work list, so
// folder nesting depth never translates into call-stack depth.
func Walk(c *m.Collection, visit func(Node)) {
	if c == nil || len(c.Item) == 0 {
		return
	}

	stack := []frame{{items: c.Item}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.items) {
			stack = stack[:len(stack)-1]
			continue
		}

		item := &f.items[f.next]
		path := f.base.Child(f.next)
		f.next++

		visit(Node{Item: item, Path: path, Inherited: f.inh})

		if len(item.Item) > 0 {
			child := Scripts{
				Test:       appendCopy(f.inh.Test, TestScripts(item)),
				Prerequest: appendCopy(f.inh.Prerequest, PrerequestScripts(item)),
			}
			stack = append(stack, frame{items: item.Item, base: path, inh: child})
		}
	}
}

// appendCopy concatenates without sharing backing arrays between siblings.
func appendCopy(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}

	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)

	return out
}
