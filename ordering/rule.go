package ordering

import (
	"context"
	"slices"
)

// Guard is a per-rule predicate evaluated against the request context.
type Guard func(ctx context.Context) bool

// Rule maps a public sort alias to an internal attribute path and
// restricts the actions it applies to.
type Rule struct {
	Alias  string   // public name used in sort tokens; defaults to Attr on Register
	Attr   string   // "column" or "association.column"
	Only   []string // if non-empty, the rule applies only to these actions
	Except []string // ignored when Only is non-empty
	If     Guard    // must return true for the rule to apply
	Unless Guard    // must return false for the rule to apply
}

// Applicable reports whether the rule may serve the current action.
// Guards run first; Only takes precedence over Except.
func (r Rule) Applicable(ctx context.Context, action string) bool {
	if r.If != nil && !r.If(ctx) {
		return false
	}
	if r.Unless != nil && r.Unless(ctx) {
		return false
	}
	if len(r.Only) > 0 {
		return slices.Contains(r.Only, action)
	}
	return !slices.Contains(r.Except, action)
}
