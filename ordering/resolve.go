package ordering

import "fmt"

// Resolve ensures a left outer join over the named to-one association
// and returns the table name or alias the query engine bound that join
// to.
//
// The binding is read back from the join graph by matching the
// association's declared foreign key and target table against the joins
// actually present. Engines alias a table joined more than once
// (self-joins, or two associations targeting the same table), so a name
// derived from convention instead of the join graph can order by the
// wrong table instance.
func Resolve(q Query, name string) (string, error) {
	assoc, ok := q.Association(name)
	if !ok {
		return "", &ConfigurationError{
			Reason: fmt.Sprintf("unknown association %q on table %q", name, q.Table()),
		}
	}
	if !assoc.Kind.ToOne() {
		return "", &ConfigurationError{
			Reason: fmt.Sprintf("association %q on table %q is not a to-one relation", name, q.Table()),
		}
	}
	if err := q.LeftOuterJoin(name); err != nil {
		return "", err
	}
	for _, j := range q.JoinClauses() {
		if j.Table != assoc.TargetTable {
			continue
		}
		if matchesForeignKey(q.Table(), assoc, j) {
			if j.Binding != "" {
				return j.Binding, nil
			}
			return j.Table, nil
		}
	}
	return "", &ResolutionError{
		Association: name,
		Table:       assoc.TargetTable,
		ForeignKey:  assoc.ForeignKey,
	}
}

// matchesForeignKey checks the join's ON equality against the
// association's declared foreign key.
func matchesForeignKey(ownerTable string, assoc Association, j JoinClause) bool {
	var fk string
	if assoc.Kind == BelongsTo {
		// FK on the owning table: owner.fk = binding.pk
		fk = ownerTable + "." + assoc.ForeignKey
	} else {
		// HasOne, FK on the joined table: binding.fk = owner.pk
		binding := j.Binding
		if binding == "" {
			binding = j.Table
		}
		fk = binding + "." + assoc.ForeignKey
	}
	return j.OnLeft == fk || j.OnRight == fk
}
