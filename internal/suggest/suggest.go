// Package suggest maps free-text expense notes to category suggestions
// via an ordered keyword table.
package suggest

import "strings"

// Engine evaluates notes against a fixed rule table. It is stateless and
// safe for concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine over the given rules. Rule order is
// preserved; it determines match precedence.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// NewDefaultEngine creates an engine over the built-in keyword table.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRules())
}

// Suggest returns the category id implied by the note. Matching is
// case-insensitive substring containment; the first rule with any
// matching keyword wins. The boolean is false when the note is empty or
// nothing matches.
func (e *Engine) Suggest(note string) (string, bool) {
	if note == "" {
		return "", false
	}

	lower := strings.ToLower(note)
	for _, rule := range e.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.CategoryID, true
			}
		}
	}

	return "", false
}
