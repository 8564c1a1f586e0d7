package ordering

import "strings"

// Nulls is the NULL-placement policy of a sort key.
type Nulls int

const (
	NullsDefault Nulls = iota // engine default, no NULLS clause emitted
	NullsFirst
	NullsLast
)

// SortKey is a decoded client sort token.
// Attr carries the public alias (or attribute path) exactly as sent,
// with the direction prefix and nulls directive stripped.
type SortKey struct {
	Attr  string
	Desc  bool
	Nulls Nulls
}

// Parse decodes a raw sort token:
//
//	"-foo:nulls_first" -> {Attr: "foo", Desc: true, Nulls: NullsFirst}
//	"+foo"             -> {Attr: "foo", Desc: false, Nulls: NullsDefault}
//
// A `-` prefix means descending, `+` or no prefix means ascending. An
// optional `:`-separated directive follows the attribute: `nulls_first`
// selects NullsFirst, any other non-empty directive selects NullsLast.
// Parse never fails; whether Attr names anything real is decided later
// by the rule lookup and the alias resolver.
func Parse(raw string) SortKey {
	var key SortKey
	switch {
	case strings.HasPrefix(raw, "-"):
		key.Desc = true
		raw = raw[1:]
	case strings.HasPrefix(raw, "+"):
		raw = raw[1:]
	}
	attr, directive, found := strings.Cut(raw, ":")
	key.Attr = attr
	if found && directive != "" {
		if directive == "nulls_first" {
			key.Nulls = NullsFirst
		} else {
			key.Nulls = NullsLast
		}
	}
	return key
}
