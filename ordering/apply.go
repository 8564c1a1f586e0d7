package ordering

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var regexIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Apply translates the client-supplied sort token into an ORDER BY
// fragment appended to q's existing order state.
//
// A blank token, an unknown public alias, and a rule that does not
// apply to the current action all fall back to the default order —
// sorting is a best-effort convenience, client input never causes an
// error. ConfigurationError/ResolutionError on the registered rules do
// surface; they mean the configuration itself is broken.
func (c *Conf) Apply(ctx context.Context, q Query, token, action string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return c.ApplyDefault(q)
	}
	key := Parse(token)
	rule, ok := c.Lookup(key.Attr)
	if !ok || !rule.Applicable(ctx, action) {
		return c.ApplyDefault(q)
	}
	table, column, err := resolveAttr(q, rule.Attr)
	if err != nil {
		return err
	}
	q.AppendOrder(orderFragment(table, column, key.Desc, key.Nulls))
	return nil
}

// ApplyDefault sets the default ordering, replacing any order state on
// q in one call. Default tokens carry their own attribute paths (no
// rule lookup) and their nulls directives are ignored. With no default
// order configured, q is left untouched.
func (c *Conf) ApplyDefault(q Query) error {
	defaults := c.DefaultOrder()
	if len(defaults) == 0 {
		return nil
	}
	frags := make([]string, 0, len(defaults))
	for _, token := range defaults {
		key := Parse(token)
		table, column, err := resolveAttr(q, key.Attr)
		if err != nil {
			return err
		}
		frags = append(frags, orderFragment(table, column, key.Desc, NullsDefault))
	}
	q.SetOrder(strings.Join(frags, ", "))
	return nil
}

// resolveAttr splits an attribute path and resolves the table half.
// Paths nesting deeper than one association are rejected rather than
// guessed at with chained joins.
func resolveAttr(q Query, attr string) (table, column string, err error) {
	parts := strings.Split(attr, ".")
	switch len(parts) {
	case 1:
		table, column = q.Table(), parts[0]
	case 2:
		column = parts[1]
		table, err = Resolve(q, parts[0])
		if err != nil {
			return "", "", err
		}
	default:
		return "", "", &ConfigurationError{
			Reason: fmt.Sprintf("attribute path %q nests deeper than one association", attr),
		}
	}
	if !regexIdentifier.MatchString(column) {
		return "", "", &ConfigurationError{
			Reason: fmt.Sprintf("invalid column identifier %q in attribute path %q", column, attr),
		}
	}
	return table, column, nil
}

func orderFragment(table, column string, desc bool, nulls Nulls) string {
	var b strings.Builder
	b.Grow(len(table) + len(column) + 17)
	b.WriteString(table)
	b.WriteByte('.')
	b.WriteString(column)
	if desc {
		b.WriteString(" desc")
	} else {
		b.WriteString(" asc")
	}
	switch nulls {
	case NullsFirst:
		b.WriteString(" NULLS FIRST")
	case NullsLast:
		b.WriteString(" NULLS LAST")
	}
	return b.String()
}
