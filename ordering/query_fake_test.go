package ordering

import "fmt"

// fakeQuery mimics a query engine binding: joins are recorded with the
// binding the engine would allocate (target table name when free, the
// association name otherwise).
type fakeQuery struct {
	table    string
	assocs   map[string]Association
	joins    []JoinClause
	joined   map[string]bool
	appended []string
	set      string
	setCalls int

	// brokenJoins records joins with an ON pairing that matches no
	// declared foreign key, to provoke resolution failures.
	brokenJoins bool
}

func newFakeQuery(table string, assocs ...Association) *fakeQuery {
	m := make(map[string]Association, len(assocs))
	for _, a := range assocs {
		m[a.Name] = a
	}
	return &fakeQuery{table: table, assocs: m, joined: make(map[string]bool)}
}

func (q *fakeQuery) Table() string { return q.table }

func (q *fakeQuery) Association(name string) (Association, bool) {
	a, ok := q.assocs[name]
	return a, ok
}

func (q *fakeQuery) LeftOuterJoin(name string) error {
	if q.joined[name] {
		return nil
	}
	assoc, ok := q.assocs[name]
	if !ok {
		return fmt.Errorf("unknown association %q", name)
	}
	binding := assoc.TargetTable
	taken := binding == q.table
	for _, j := range q.joins {
		if j.Binding == binding {
			taken = true
		}
	}
	if taken {
		binding = name
	}
	clause := JoinClause{Table: assoc.TargetTable, Binding: binding}
	switch {
	case q.brokenJoins:
		clause.OnLeft = q.table + ".bogus_id"
		clause.OnRight = binding + ".id"
	case assoc.Kind == BelongsTo:
		clause.OnLeft = q.table + "." + assoc.ForeignKey
		clause.OnRight = binding + ".id"
	default:
		clause.OnLeft = binding + "." + assoc.ForeignKey
		clause.OnRight = q.table + ".id"
	}
	q.joins = append(q.joins, clause)
	q.joined[name] = true
	return nil
}

func (q *fakeQuery) JoinClauses() []JoinClause { return q.joins }

func (q *fakeQuery) AppendOrder(fragment string) {
	q.appended = append(q.appended, fragment)
}

func (q *fakeQuery) SetOrder(fragment string) {
	q.set = fragment
	q.appended = nil
	q.setCalls++
}
