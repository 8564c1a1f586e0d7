package sqldb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeptools/gw-ordering/ordering"
)

// SelectQuery builds a single-table SELECT with optional left outer
// joins, WHERE conditions (static `?` placeholders), ORDER BY state,
// and LIMIT/OFFSET. It implements ordering.Query, so the ordering core
// can join associations and append validated ORDER BY fragments.
type SelectQuery struct {
	schema  *Schema
	columns []Column
	joins   []joinEntry
	conds   []string
	args    []any
	orders  []string
	limit   int
	offset  int
}

type joinEntry struct {
	assoc  string
	clause ordering.JoinClause
}

// Ensure SelectQuery implements ordering.Query
var _ ordering.Query = (*SelectQuery)(nil)

func NewSelect(schema *Schema) *SelectQuery {
	return &SelectQuery{schema: schema}
}

func (q *SelectQuery) Table() string { return q.schema.Table() }

func (q *SelectQuery) Association(name string) (ordering.Association, bool) {
	return q.schema.Association(name)
}

// LeftOuterJoin adds a left outer join over the named association.
// Idempotent: joining the same association twice keeps a single join.
func (q *SelectQuery) LeftOuterJoin(name string) error {
	for _, j := range q.joins {
		if j.assoc == name {
			return nil
		}
	}
	assoc, ok := q.schema.Association(name)
	if !ok {
		return fmt.Errorf("sqldb: unknown association %q on table %q", name, q.Table())
	}
	binding := q.allocBinding(name, assoc.TargetTable)
	clause := ordering.JoinClause{Table: assoc.TargetTable, Binding: binding}
	if assoc.Kind == ordering.BelongsTo {
		clause.OnLeft = q.Table() + "." + assoc.ForeignKey
		clause.OnRight = binding + ".id"
	} else {
		clause.OnLeft = binding + "." + assoc.ForeignKey
		clause.OnRight = q.Table() + "." + q.schema.PrimaryKey()
	}
	q.joins = append(q.joins, joinEntry{assoc: name, clause: clause})
	return nil
}

// JoinClauses reports the joins actually present, bindings included.
func (q *SelectQuery) JoinClauses() []ordering.JoinClause {
	clauses := make([]ordering.JoinClause, len(q.joins))
	for i, j := range q.joins {
		clauses[i] = j.clause
	}
	return clauses
}

// allocBinding picks the SQL binding for a joined table: the bare table
// name when still free, the association name otherwise. Two join
// instances of the same table must never share a binding.
func (q *SelectQuery) allocBinding(assocName, targetTable string) string {
	if !q.bindingTaken(targetTable) {
		return targetTable
	}
	if !q.bindingTaken(assocName) {
		return assocName
	}
	return assocName + "_" + targetTable
}

func (q *SelectQuery) bindingTaken(name string) bool {
	if name == q.Table() {
		return true
	}
	for _, j := range q.joins {
		if j.clause.Binding == name {
			return true
		}
	}
	return false
}

// AppendOrder adds a raw ORDER BY fragment after the existing order state.
func (q *SelectQuery) AppendOrder(fragment string) {
	q.orders = append(q.orders, fragment)
}

// SetOrder replaces the whole order state with one fragment.
func (q *SelectQuery) SetOrder(fragment string) {
	if fragment == "" {
		q.orders = nil
		return
	}
	q.orders = []string{fragment}
}

// Columns restricts the selected columns (default `*`).
func (q *SelectQuery) Columns(cols ...Column) *SelectQuery {
	q.columns = append(q.columns, cols...)
	return q
}

// Where adds a condition; multiple conditions are ANDed. Use static `?`
// placeholders, converted per engine at render time.
func (q *SelectQuery) Where(cond string, args ...any) *SelectQuery {
	q.conds = append(q.conds, cond)
	q.args = append(q.args, args...)
	return q
}

// OrderBy appends validated ORDER BY items.
func (q *SelectQuery) OrderBy(items ...OrderBy) *SelectQuery {
	for _, item := range items {
		q.AppendOrder(item.String())
	}
	return q
}

func (q *SelectQuery) Limit(n int) *SelectQuery {
	q.limit = n
	return q
}

func (q *SelectQuery) Offset(n int) *SelectQuery {
	q.offset = n
	return q
}

// Args returns the bind arguments accumulated by Where, in placeholder order.
func (q *SelectQuery) Args() []any { return q.args }

// SQL renders the statement for the given engine placeholder prefix
// (see PlaceholderPrefixForDBType).
func (q *SelectQuery) SQL(placeholderPrefix byte) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(q.columns) == 0 {
		b.WriteByte('*')
	} else {
		for i, c := range q.columns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.Name())
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(q.Table())
	for _, j := range q.joins {
		b.WriteString(" LEFT OUTER JOIN ")
		b.WriteString(j.clause.Table)
		if j.clause.Binding != j.clause.Table {
			b.WriteString(" AS ")
			b.WriteString(j.clause.Binding)
		}
		b.WriteString(" ON ")
		b.WriteString(j.clause.OnLeft)
		b.WriteString(" = ")
		b.WriteString(j.clause.OnRight)
	}
	if len(q.conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.conds, " AND "))
	}
	if len(q.orders) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(q.orders, ", "))
	}
	if q.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}
	if q.offset > 0 {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(q.offset))
	}
	return ReplaceStaticPlaceholders(b.String(), placeholderPrefix)
}
