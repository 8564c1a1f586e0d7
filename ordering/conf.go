package ordering

import (
	"maps"
	"slices"
)

// Conf is a per-controller ordering configuration: rules keyed by their
// public alias plus the default-order token list.
//
// A derived Conf reads its parent's state until its own first mutation,
// at which point it takes a private copy; later parent mutations no
// longer reach a diverged child. Register everything during a
// non-concurrent setup phase — a Conf is read-only while requests are
// in flight. To override the default order for a single request, derive
// a request-local child instead of mutating the shared Conf.
type Conf struct {
	parent   *Conf
	rules    map[string]Rule
	defaults []string
	diverged bool
}

func NewConf() *Conf {
	return &Conf{
		rules:    make(map[string]Rule),
		diverged: true,
	}
}

// Derive returns a child configuration sharing c's state until the
// child's first Register or SetDefaultOrder call.
func (c *Conf) Derive() *Conf {
	return &Conf{parent: c}
}

// Register adds a rule. An empty Alias defaults to the rule's attribute
// path. Registering the same alias twice keeps the last rule.
func (c *Conf) Register(r Rule) {
	if r.Alias == "" {
		r.Alias = r.Attr
	}
	c.mutate()
	c.rules[r.Alias] = r
}

// SetDefaultOrder replaces the default-order token list. Each token is
// parsed like a client sort token when the default order is applied.
func (c *Conf) SetDefaultOrder(tokens ...string) {
	c.mutate()
	c.defaults = slices.Clone(tokens)
}

// Lookup returns the rule registered under the public alias.
func (c *Conf) Lookup(alias string) (Rule, bool) {
	r, ok := c.base().rules[alias]
	return r, ok
}

// DefaultOrder returns the default-order tokens.
func (c *Conf) DefaultOrder() []string {
	return c.base().defaults
}

// base returns the Conf whose state c currently reads: itself once
// diverged, otherwise the nearest diverged ancestor.
func (c *Conf) base() *Conf {
	cur := c
	for !cur.diverged && cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// mutate takes a private copy of the inherited state before the first
// own mutation.
func (c *Conf) mutate() {
	if c.diverged {
		return
	}
	src := c.base()
	c.rules = maps.Clone(src.rules)
	if c.rules == nil {
		c.rules = make(map[string]Rule)
	}
	c.defaults = slices.Clone(src.defaults)
	c.diverged = true
}
