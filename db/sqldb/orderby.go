package sqldb

import (
	"strings"

	"github.com/zeptools/gw-ordering/ordering"
)

// OrderBy defines a validated ORDER BY item.
type OrderBy struct {
	Column Column
	Desc   bool
	Nulls  ordering.Nulls
}

// String returns the safe ORDER BY fragment (without the "ORDER BY" prefix).
func (o OrderBy) String() string {
	var b strings.Builder
	b.Grow(len(o.Column.Name()) + 17)
	b.WriteString(o.Column.Name())
	if o.Desc {
		b.WriteString(" desc")
	} else {
		b.WriteString(" asc")
	}
	switch o.Nulls {
	case ordering.NullsFirst:
		b.WriteString(" NULLS FIRST")
	case ordering.NullsLast:
		b.WriteString(" NULLS LAST")
	}
	return b.String()
}

// OrderByClause joins multiple OrderBy items into a valid ORDER BY SQL fragment.
func OrderByClause(orders []OrderBy) string {
	if len(orders) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(24 * len(orders)) // rough prealloc: "column desc NULLS LAST, "
	b.WriteString(" ORDER BY ")
	for i, o := range orders {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(o.String())
	}
	return b.String()
}
